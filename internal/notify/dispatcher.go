package notify

import (
	"context"
	"log/slog"
	"time"

	"bookline/internal/pkg/clock"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventAppointmentCreated   EventKind = "appointment_created"
	EventAppointmentConfirmed EventKind = "appointment_confirmed"
	EventAppointmentCancelled EventKind = "appointment_cancelled"
	EventAppointmentReminder  EventKind = "appointment_reminder"
)

// Event is the payload handed to the delivery transport. Summary is the
// human-readable line shown in whatever channel ends up delivering it.
type Event struct {
	Kind          EventKind
	AppointmentID uuid.UUID
	OwnerID       uuid.UUID
	Summary       string
}

// Dispatcher is fire-and-forget: a failed dispatch is logged and never
// propagated, so a state change is never rolled back by a delivery problem.
type Dispatcher interface {
	Dispatch(ctx context.Context, event Event)
}

// OutboxWriter persists an event for a delivery worker to pick up.
type OutboxWriter interface {
	Enqueue(ctx context.Context, event Event, runAt time.Time) error
}

type OutboxDispatcher struct {
	outbox OutboxWriter
	clock  clock.Clock
	logger *slog.Logger
}

func NewOutboxDispatcher(outbox OutboxWriter, clk clock.Clock, logger *slog.Logger) *OutboxDispatcher {
	return &OutboxDispatcher{
		outbox: outbox,
		clock:  clk,
		logger: logger,
	}
}

func (d *OutboxDispatcher) Dispatch(ctx context.Context, event Event) {
	if err := d.outbox.Enqueue(ctx, event, d.clock.Now()); err != nil {
		d.logger.Error("notification dispatch failed",
			"kind", string(event.Kind),
			"appointment_id", event.AppointmentID,
			"error", err.Error(),
		)
		return
	}
	d.logger.Info("notification queued",
		"kind", string(event.Kind),
		"appointment_id", event.AppointmentID,
	)
}
