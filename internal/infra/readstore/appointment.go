package readstore

import (
	"context"
	"time"

	"bookline/internal/infra"
	"bookline/internal/infra/pgconv"
	"bookline/internal/notify"
	"bookline/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AppointmentReadStore resolves display names with LEFT JOINs so a dangling
// client or deactivated service degrades to a placeholder label instead of
// dropping the row. The joins are owner scoped: a reference into another
// owner's roster or catalog resolves like a dangling one.
type AppointmentReadStore struct {
	pool *pgxpool.Pool
}

func NewAppointmentReadStore(pool *pgxpool.Pool) *AppointmentReadStore {
	return &AppointmentReadStore{pool: pool}
}

var (
	_ queries.AppointmentReadStore = (*AppointmentReadStore)(nil)
	_ notify.ReminderSource        = (*AppointmentReadStore)(nil)
)

func (s *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	var (
		view        queries.AppointmentView
		clientName  *string
		clientPhone *string
		serviceName *string
		walkInName  *string
		walkInPhone *string
	)
	err := s.pool.QueryRow(ctx, `
		SELECT a.id, a.owner_id, a.access_code, a.client_kind, a.registered_client_id,
		       a.walk_in_name, a.walk_in_phone, c.name, c.phone,
		       a.service_id, s.name,
		       a.registered_at, a.scheduled_at, a.notes, a.status,
		       a.price_mode, a.custom_price_cents, a.final_price_cents, a.paid,
		       a.created_at, a.updated_at
		FROM appointments a
		LEFT JOIN clients c ON c.id = a.registered_client_id AND c.owner_id = a.owner_id
		LEFT JOIN services s ON s.id = a.service_id AND s.owner_id = a.owner_id
		WHERE a.id = $1`, id,
	).Scan(
		&view.ID, &view.OwnerID, &view.AccessCode, &view.ClientKind, &view.RegisteredClientID,
		&walkInName, &walkInPhone, &clientName, &clientPhone,
		&view.ServiceID, &serviceName,
		&view.RegisteredAt, &view.ScheduledAt, &view.Notes, &view.Status,
		&view.PriceMode, &view.CustomPriceCents, &view.FinalPriceCents, &view.Paid,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("select appointment view", err)
	}

	view.ClientName, view.ClientPhone = resolveClientDisplay(view.ClientKind, clientName, clientPhone, walkInName, walkInPhone)
	view.ServiceName = resolveServiceDisplay(serviceName)
	return &view, nil
}

func (s *AppointmentReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID, limit int32) ([]*queries.AppointmentListItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT a.id, a.access_code, a.client_kind,
		       a.walk_in_name, c.name, s.name,
		       a.scheduled_at, a.status, a.final_price_cents, a.paid
		FROM appointments a
		LEFT JOIN clients c ON c.id = a.registered_client_id AND c.owner_id = a.owner_id
		LEFT JOIN services s ON s.id = a.service_id AND s.owner_id = a.owner_id
		WHERE a.owner_id = $1
		ORDER BY a.scheduled_at ASC
		LIMIT $2`, ownerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("select appointment list", err)
	}
	defer rows.Close()

	items := make([]*queries.AppointmentListItem, 0)
	for rows.Next() {
		var (
			item        queries.AppointmentListItem
			clientKind  string
			walkInName  *string
			clientName  *string
			serviceName *string
		)
		if err := rows.Scan(
			&item.ID, &item.AccessCode, &clientKind,
			&walkInName, &clientName, &serviceName,
			&item.ScheduledAt, &item.Status, &item.FinalPriceCents, &item.Paid,
		); err != nil {
			return nil, infra.WrapRepoErr("scan appointment list row", err)
		}
		item.ClientName, _ = resolveClientDisplay(clientKind, clientName, nil, walkInName, nil)
		item.ServiceName = resolveServiceDisplay(serviceName)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("iterate appointment list", err)
	}
	return items, nil
}

// ListActiveBetween feeds the reminder sweep: pending and confirmed
// appointments scheduled inside the closed range.
func (s *AppointmentReadStore) ListActiveBetween(ctx context.Context, start, end time.Time) ([]notify.ReminderItem, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT a.id, a.owner_id, a.client_kind, a.walk_in_name, c.name, s.name, a.scheduled_at
		FROM appointments a
		LEFT JOIN clients c ON c.id = a.registered_client_id AND c.owner_id = a.owner_id
		LEFT JOIN services s ON s.id = a.service_id AND s.owner_id = a.owner_id
		WHERE a.status IN ('pending', 'confirmed')
		  AND a.scheduled_at >= $1 AND a.scheduled_at <= $2
		ORDER BY a.scheduled_at ASC`, start, end)
	if err != nil {
		return nil, infra.WrapRepoErr("select reminder candidates", err)
	}
	defer rows.Close()

	items := make([]notify.ReminderItem, 0)
	for rows.Next() {
		var (
			item        notify.ReminderItem
			clientKind  string
			walkInName  *string
			clientName  *string
			serviceName *string
		)
		if err := rows.Scan(&item.AppointmentID, &item.OwnerID, &clientKind,
			&walkInName, &clientName, &serviceName, &item.ScheduledAt); err != nil {
			return nil, infra.WrapRepoErr("scan reminder row", err)
		}
		item.ClientName, _ = resolveClientDisplay(clientKind, clientName, nil, walkInName, nil)
		item.ServiceName = resolveServiceDisplay(serviceName)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("iterate reminder candidates", err)
	}
	return items, nil
}

func resolveClientDisplay(kind string, clientName, clientPhone, walkInName, walkInPhone *string) (string, *string) {
	if kind == "walk_in" {
		name := queries.ClientNotFoundLabel
		if walkInName != nil {
			name = *walkInName
		}
		return name, walkInPhone
	}
	if clientName == nil {
		return queries.ClientNotFoundLabel, nil
	}
	return *clientName, clientPhone
}

func resolveServiceDisplay(serviceName *string) string {
	if serviceName == nil {
		return queries.ServiceUnavailableLabel
	}
	return *serviceName
}
