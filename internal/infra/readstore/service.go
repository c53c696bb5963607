package readstore

import (
	"context"

	"bookline/internal/infra"
	"bookline/internal/infra/pgconv"
	"bookline/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceReadStore struct {
	pool *pgxpool.Pool
}

func NewServiceReadStore(pool *pgxpool.Pool) *ServiceReadStore {
	return &ServiceReadStore{pool: pool}
}

var _ queries.ServiceReadStore = (*ServiceReadStore)(nil)

const serviceViewColumns = `
	id, owner_id, name, service_type, category, subcategory,
	details, price_cents, active, image_ref, created_at, updated_at`

func (s *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	var view queries.ServiceView
	err := s.pool.QueryRow(ctx,
		`SELECT `+serviceViewColumns+` FROM services WHERE id = $1`, id,
	).Scan(
		&view.ID, &view.OwnerID, &view.Name, &view.Type, &view.Category, &view.Subcategory,
		&view.Details, &view.PriceCents, &view.Active, &view.ImageRef, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("select service view", err)
	}
	return &view, nil
}

func (s *ServiceReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ServiceView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+serviceViewColumns+` FROM services WHERE owner_id = $1 ORDER BY name ASC`, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("select service list", err)
	}
	defer rows.Close()

	views := make([]*queries.ServiceView, 0)
	for rows.Next() {
		var view queries.ServiceView
		if err := rows.Scan(
			&view.ID, &view.OwnerID, &view.Name, &view.Type, &view.Category, &view.Subcategory,
			&view.Details, &view.PriceCents, &view.Active, &view.ImageRef, &view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("scan service row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("iterate service list", err)
	}
	return views, nil
}
