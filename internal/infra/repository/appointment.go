package repository

import (
	"context"
	"time"

	"bookline/internal/domain/appointment"
	"bookline/internal/infra"
	"bookline/internal/infra/pgconv"
	"bookline/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

var _ commands.AppointmentRepository = (*AppointmentRepository)(nil)

// appointmentRow mirrors the appointments table. The client reference is
// flattened into client_kind plus either registered_client_id or the walk-in
// columns.
type appointmentRow struct {
	ID                 uuid.UUID
	OwnerID            uuid.UUID
	AccessCode         string
	ClientKind         string
	RegisteredClientID *uuid.UUID
	WalkInName         *string
	WalkInPhone        *string
	ServiceID          uuid.UUID
	RegisteredAt       time.Time
	ScheduledAt        time.Time
	Notes              *string
	Status             string
	PriceMode          string
	CustomPriceCents   *int64
	FinalPriceCents    int64
	Paid               bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func encodeAppointment(appt *appointment.Appointment) appointmentRow {
	row := appointmentRow{
		ID:               appt.ID(),
		OwnerID:          appt.OwnerID(),
		AccessCode:       appt.AccessCode().String(),
		ClientKind:       string(appt.ClientRef().Kind()),
		ServiceID:        appt.ServiceID(),
		RegisteredAt:     appt.RegisteredAt(),
		ScheduledAt:      appt.ScheduledAt(),
		Status:           string(appt.Status()),
		PriceMode:        string(appt.PriceMode()),
		CustomPriceCents: appt.CustomPriceCents(),
		FinalPriceCents:  appt.FinalPriceCents(),
		Paid:             appt.Paid(),
	}
	if notes := appt.Notes(); notes != "" {
		row.Notes = &notes
	}
	if clientID, ok := appt.ClientRef().RegisteredClientID(); ok {
		id := clientID
		row.RegisteredClientID = &id
	}
	if walkIn, ok := appt.ClientRef().WalkIn(); ok {
		name := walkIn.Name()
		row.WalkInName = &name
		if phone := walkIn.Phone(); phone != "" {
			row.WalkInPhone = &phone
		}
	}
	return row
}

func decodeAppointment(row appointmentRow) (*appointment.Appointment, error) {
	code, err := appointment.ParseAccessCode(row.AccessCode)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt access code in store", err)
	}

	var ref appointment.ClientRef
	switch appointment.ClientKind(row.ClientKind) {
	case appointment.ClientKindRegistered:
		if row.RegisteredClientID == nil {
			return nil, infra.WrapRepoErr("registered appointment row without client id", nil)
		}
		ref, err = appointment.NewRegisteredRef(*row.RegisteredClientID)
	case appointment.ClientKindWalkIn:
		name := ""
		if row.WalkInName != nil {
			name = *row.WalkInName
		}
		phone := ""
		if row.WalkInPhone != nil {
			phone = *row.WalkInPhone
		}
		ref, err = appointment.NewWalkInRef(name, phone)
	default:
		return nil, infra.WrapRepoErr("unknown client kind in store", nil)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt client reference in store", err)
	}

	notes := ""
	if row.Notes != nil {
		notes = *row.Notes
	}

	return appointment.ReconstructAppointment(
		row.ID,
		row.OwnerID,
		code,
		ref,
		row.ServiceID,
		row.RegisteredAt,
		row.ScheduledAt,
		notes,
		appointment.Status(row.Status),
		appointment.PriceMode(row.PriceMode),
		row.CustomPriceCents,
		row.FinalPriceCents,
		row.Paid,
		row.CreatedAt,
		row.UpdatedAt,
	), nil
}

const appointmentColumns = `
	id, owner_id, access_code, client_kind, registered_client_id,
	walk_in_name, walk_in_phone, service_id, registered_at, scheduled_at,
	notes, status, price_mode, custom_price_cents, final_price_cents,
	paid, created_at, updated_at`

func (r *AppointmentRepository) Create(ctx context.Context, appt *appointment.Appointment) error {
	row := encodeAppointment(appt)
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointments (
			id, owner_id, access_code, client_kind, registered_client_id,
			walk_in_name, walk_in_phone, service_id, registered_at, scheduled_at,
			notes, status, price_mode, custom_price_cents, final_price_cents, paid
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		row.ID, row.OwnerID, row.AccessCode, row.ClientKind, row.RegisteredClientID,
		row.WalkInName, row.WalkInPhone, row.ServiceID, row.RegisteredAt, row.ScheduledAt,
		row.Notes, row.Status, row.PriceMode, row.CustomPriceCents, row.FinalPriceCents, row.Paid,
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("appointment already exists", err, infra.KindDuplicateKey)
		}
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("appointment references a missing row", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("insert appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) Update(ctx context.Context, appt *appointment.Appointment) error {
	row := encodeAppointment(appt)
	tag, err := r.pool.Exec(ctx, `
		UPDATE appointments SET
			client_kind = $2, registered_client_id = $3, walk_in_name = $4,
			walk_in_phone = $5, service_id = $6, scheduled_at = $7, notes = $8,
			status = $9, price_mode = $10, custom_price_cents = $11,
			final_price_cents = $12, paid = $13, updated_at = now()
		WHERE id = $1`,
		row.ID, row.ClientKind, row.RegisteredClientID, row.WalkInName,
		row.WalkInPhone, row.ServiceID, row.ScheduledAt, row.Notes,
		row.Status, row.PriceMode, row.CustomPriceCents,
		row.FinalPriceCents, row.Paid,
	)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("appointment references a missing row", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("update appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM appointments WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return infra.WrapRepoErr("delete appointment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	var row appointmentRow
	err := r.pool.QueryRow(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id,
	).Scan(
		&row.ID, &row.OwnerID, &row.AccessCode, &row.ClientKind, &row.RegisteredClientID,
		&row.WalkInName, &row.WalkInPhone, &row.ServiceID, &row.RegisteredAt, &row.ScheduledAt,
		&row.Notes, &row.Status, &row.PriceMode, &row.CustomPriceCents, &row.FinalPriceCents,
		&row.Paid, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("select appointment", err)
	}
	return decodeAppointment(row)
}

func (r *AppointmentRepository) AccessCodeExists(ctx context.Context, ownerID uuid.UUID, code appointment.AccessCode) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM appointments WHERE owner_id = $1 AND access_code = $2)`,
		ownerID, code.String(),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("check access code", err)
	}
	return exists, nil
}
