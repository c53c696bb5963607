//go:build unit || e2e

package builder

import (
	"time"

	"bookline/internal/domain/appointment"
	reqdto "bookline/internal/handler/dto/request"
	"bookline/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	OwnerID            uuid.UUID
	AccessCode         appointment.AccessCode
	RegisteredClientID *uuid.UUID
	WalkInName         string
	WalkInPhone        string
	ServiceID          uuid.UUID
	ServiceName        string
	ClientName         string
	ScheduledAt        time.Time
	Notes              string
	PriceMode          appointment.PriceMode
	CustomPriceCents   *int64
	FinalPriceCents    int64
	Now                time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	clientID := uuid.New()
	return &AppointmentBuilder{
		OwnerID:            uuid.New(),
		AccessCode:         "ABC234",
		RegisteredClientID: &clientID,
		ServiceID:          uuid.New(),
		ServiceName:        "Haircut",
		ClientName:         "Jane Doe",
		ScheduledAt:        now.Add(48 * time.Hour),
		Notes:              "",
		PriceMode:          appointment.PriceModeStandard,
		FinalPriceCents:    4500,
		Now:                now,
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) clientRef() (appointment.ClientRef, error) {
	if b.WalkInName != "" {
		return appointment.NewWalkInRef(b.WalkInName, b.WalkInPhone)
	}
	return appointment.ResolveClientRef(b.RegisteredClientID, nil)
}

func (b *AppointmentBuilder) BuildDomain() (*appointment.Appointment, error) {
	ref, err := b.clientRef()
	if err != nil {
		return nil, err
	}
	return appointment.NewAppointment(
		b.OwnerID,
		b.AccessCode,
		ref,
		b.ServiceID,
		b.ScheduledAt,
		b.Notes,
		b.PriceMode,
		b.CustomPriceCents,
		b.FinalPriceCents,
		b.Now,
	)
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	req := reqdto.CreateAppointmentRequest{
		RegisteredClientID: b.RegisteredClientID,
		ServiceID:          b.ServiceID,
		ScheduledAt:        b.ScheduledAt,
		Notes:              b.Notes,
		PriceMode:          b.PriceMode.String(),
		CustomPriceCents:   b.CustomPriceCents,
	}
	if b.WalkInName != "" {
		req.RegisteredClientID = nil
		req.WalkIn = &reqdto.WalkInRequest{Name: b.WalkInName, Phone: b.WalkInPhone}
	}
	return req
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	kind := appointment.ClientKindRegistered
	if b.WalkInName != "" {
		kind = appointment.ClientKindWalkIn
	}
	return &queries.AppointmentView{
		ID:                 uuid.New(),
		OwnerID:            b.OwnerID,
		AccessCode:         b.AccessCode.String(),
		ClientKind:         kind.String(),
		RegisteredClientID: b.RegisteredClientID,
		ClientName:         b.ClientName,
		ServiceID:          b.ServiceID,
		ServiceName:        b.ServiceName,
		RegisteredAt:       b.Now,
		ScheduledAt:        b.ScheduledAt,
		Status:             appointment.StatusPending.String(),
		PriceMode:          b.PriceMode.String(),
		CustomPriceCents:   b.CustomPriceCents,
		FinalPriceCents:    b.FinalPriceCents,
		Paid:               false,
		CreatedAt:          b.Now,
		UpdatedAt:          b.Now,
	}
}

func (b *AppointmentBuilder) BuildListItem() *queries.AppointmentListItem {
	return &queries.AppointmentListItem{
		ID:              uuid.New(),
		AccessCode:      b.AccessCode.String(),
		ClientName:      b.ClientName,
		ServiceName:     b.ServiceName,
		ScheduledAt:     b.ScheduledAt,
		Status:          appointment.StatusPending.String(),
		FinalPriceCents: b.FinalPriceCents,
		Paid:            false,
	}
}
