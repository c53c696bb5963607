package repository

import (
	"context"
	"time"

	"bookline/internal/infra"
	"bookline/internal/notify"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationOutbox persists dispatched events for an external sender to
// drain. Rows start pending; the delivery process owns the rest of the
// lifecycle.
type NotificationOutbox struct {
	pool *pgxpool.Pool
}

func NewNotificationOutbox(pool *pgxpool.Pool) *NotificationOutbox {
	return &NotificationOutbox{pool: pool}
}

var _ notify.OutboxWriter = (*NotificationOutbox)(nil)

func (o *NotificationOutbox) Enqueue(ctx context.Context, event notify.Event, runAt time.Time) error {
	_, err := o.pool.Exec(ctx, `
		INSERT INTO notification_jobs (id, owner_id, appointment_id, kind, summary, run_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending')`,
		uuid.New(), event.OwnerID, event.AppointmentID, string(event.Kind), event.Summary, runAt,
	)
	if err != nil {
		return infra.WrapRepoErr("enqueue notification job", err)
	}
	return nil
}
