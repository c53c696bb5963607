package commands

import (
	"context"

	"bookline/internal/domain/appointment"
	domclient "bookline/internal/domain/client"
	domservice "bookline/internal/domain/service"
	"bookline/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands off the read-side view types.
type ServiceSnapshot struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Name       string
	PriceCents int64
	Active     bool
}

// AppointmentRepository is the write half of the store facade. Every method
// round-trips the external store exactly once.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *appointment.Appointment) error
	Update(ctx context.Context, appt *appointment.Appointment) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	AccessCodeExists(ctx context.Context, ownerID uuid.UUID, code appointment.AccessCode) (bool, error)
}

// ServiceReader resolves a service snapshot for write-time validation,
// scoped to the owner.
type ServiceReader interface {
	Snapshot(ctx context.Context, ownerID, serviceID uuid.UUID) (*ServiceSnapshot, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, svc *domservice.Service) error
	Update(ctx context.Context, svc *domservice.Service) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domservice.Service, error)
}

type ClientRepository interface {
	Create(ctx context.Context, cl *domclient.Client) error
	Update(ctx context.Context, cl *domclient.Client) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*domclient.Client, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}
