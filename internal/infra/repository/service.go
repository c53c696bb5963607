package repository

import (
	"context"
	"time"

	domservice "bookline/internal/domain/service"
	"bookline/internal/infra"
	"bookline/internal/infra/pgconv"
	"bookline/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceRepository struct {
	pool *pgxpool.Pool
}

func NewServiceRepository(pool *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{pool: pool}
}

var (
	_ commands.ServiceRepository = (*ServiceRepository)(nil)
	_ commands.ServiceReader     = (*ServiceRepository)(nil)
)

func (r *ServiceRepository) Create(ctx context.Context, svc *domservice.Service) error {
	var imageRef *string
	if ref := svc.ImageRef(); ref != "" {
		imageRef = &ref
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO services (
			id, owner_id, name, service_type, category, subcategory,
			details, price_cents, active, image_ref
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		svc.ID(), svc.OwnerID(), svc.Name(), svc.Type(), svc.Category(), svc.Subcategory(),
		svc.Details(), svc.PriceCents(), svc.Active(), imageRef,
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("service already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("insert service", err)
	}
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, svc *domservice.Service) error {
	var imageRef *string
	if ref := svc.ImageRef(); ref != "" {
		imageRef = &ref
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE services SET
			name = $2, service_type = $3, category = $4, subcategory = $5,
			details = $6, price_cents = $7, active = $8, image_ref = $9,
			updated_at = now()
		WHERE id = $1`,
		svc.ID(), svc.Name(), svc.Type(), svc.Category(), svc.Subcategory(),
		svc.Details(), svc.PriceCents(), svc.Active(), imageRef,
	)
	if err != nil {
		return infra.WrapRepoErr("update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM services WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("service is referenced by appointments", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*domservice.Service, error) {
	var (
		svcID, ownerID                        uuid.UUID
		name, serviceType, category, sub      string
		details                               string
		priceCents                            int64
		active                                bool
		imageRef                              *string
		createdAt, updatedAt                  time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, name, service_type, category, subcategory,
		       details, price_cents, active, image_ref, created_at, updated_at
		FROM services WHERE id = $1`, id,
	).Scan(&svcID, &ownerID, &name, &serviceType, &category, &sub,
		&details, &priceCents, &active, &imageRef, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("select service", err)
	}

	ref := ""
	if imageRef != nil {
		ref = *imageRef
	}
	return domservice.Reconstruct(svcID, ownerID, name, serviceType, category, sub,
		details, priceCents, active, ref, createdAt, updatedAt), nil
}

// Snapshot resolves the owner-scoped write-time view of a service. A service
// belonging to another owner is reported as missing.
func (r *ServiceRepository) Snapshot(ctx context.Context, ownerID, serviceID uuid.UUID) (*commands.ServiceSnapshot, error) {
	var snap commands.ServiceSnapshot
	err := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, name, price_cents, active
		FROM services WHERE id = $1 AND owner_id = $2`, serviceID, ownerID,
	).Scan(&snap.ID, &snap.OwnerID, &snap.Name, &snap.PriceCents, &snap.Active)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("select service snapshot", err)
	}
	return &snap, nil
}
