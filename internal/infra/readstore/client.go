package readstore

import (
	"context"

	"bookline/internal/infra"
	"bookline/internal/infra/pgconv"
	"bookline/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientReadStore struct {
	pool *pgxpool.Pool
}

func NewClientReadStore(pool *pgxpool.Pool) *ClientReadStore {
	return &ClientReadStore{pool: pool}
}

var _ queries.ClientReadStore = (*ClientReadStore)(nil)

const clientViewColumns = `
	id, owner_id, client_type, name, email, phone, status, created_at, updated_at`

func (s *ClientReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ClientView, error) {
	var view queries.ClientView
	err := s.pool.QueryRow(ctx,
		`SELECT `+clientViewColumns+` FROM clients WHERE id = $1`, id,
	).Scan(
		&view.ID, &view.OwnerID, &view.Type, &view.Name, &view.Email, &view.Phone,
		&view.Status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("select client view", err)
	}
	return &view, nil
}

func (s *ClientReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ClientView, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+clientViewColumns+` FROM clients WHERE owner_id = $1 ORDER BY name ASC`, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("select client list", err)
	}
	defer rows.Close()

	views := make([]*queries.ClientView, 0)
	for rows.Next() {
		var view queries.ClientView
		if err := rows.Scan(
			&view.ID, &view.OwnerID, &view.Type, &view.Name, &view.Email, &view.Phone,
			&view.Status, &view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("scan client row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("iterate client list", err)
	}
	return views, nil
}
