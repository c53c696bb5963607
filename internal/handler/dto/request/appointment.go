package request

import (
	"strings"
	"time"

	"bookline/internal/domain/appointment"
	"bookline/internal/usecase/commands"

	"github.com/google/uuid"
)

type WalkInRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

type CreateAppointmentRequest struct {
	RegisteredClientID *uuid.UUID     `json:"registered_client_id,omitempty"`
	WalkIn             *WalkInRequest `json:"walk_in,omitempty"`
	ServiceID          uuid.UUID      `json:"service_id" binding:"required"`
	ScheduledAt        time.Time      `json:"scheduled_at" binding:"required"`
	Notes              string         `json:"notes"`
	PriceMode          string         `json:"price_mode"`
	CustomPriceCents   *int64         `json:"custom_price_cents,omitempty"`
}

func (r CreateAppointmentRequest) ToParams() commands.CreateAppointmentParams {
	params := commands.CreateAppointmentParams{
		RegisteredClientID: r.RegisteredClientID,
		ServiceID:          r.ServiceID,
		ScheduledAt:        r.ScheduledAt,
		Notes:              strings.TrimSpace(r.Notes),
		PriceMode:          parsePriceMode(r.PriceMode),
		CustomPriceCents:   r.CustomPriceCents,
	}
	if r.WalkIn != nil {
		params.WalkIn = &appointment.WalkInSpec{
			Name:  r.WalkIn.Name,
			Phone: r.WalkIn.Phone,
		}
	}
	return params
}

type UpdateAppointmentRequest struct {
	ScheduledAt      *time.Time `json:"scheduled_at,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	ServiceID        *uuid.UUID `json:"service_id,omitempty"`
	PriceMode        *string    `json:"price_mode,omitempty"`
	CustomPriceCents *int64     `json:"custom_price_cents,omitempty"`
}

func (r UpdateAppointmentRequest) ToParams() commands.UpdateAppointmentParams {
	params := commands.UpdateAppointmentParams{
		ScheduledAt:      r.ScheduledAt,
		Notes:            r.Notes,
		ServiceID:        r.ServiceID,
		CustomPriceCents: r.CustomPriceCents,
	}
	if r.PriceMode != nil {
		mode := parsePriceMode(*r.PriceMode)
		params.PriceMode = &mode
	}
	return params
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type TogglePaidRequest struct {
	Paid *bool `json:"paid,omitempty"`
}

// An omitted mode means the service list price applies.
func parsePriceMode(raw string) appointment.PriceMode {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return appointment.PriceModeStandard
	}
	return appointment.PriceMode(trimmed)
}
