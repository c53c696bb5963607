package readstore

import (
	"context"

	"bookline/internal/infra"
	"bookline/internal/infra/pgconv"
	"bookline/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

var _ queries.UserReadStore = (*UserReadStore)(nil)

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.OwnerView, error) {
	return s.findOne(ctx, `WHERE email = $1`, email)
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OwnerView, error) {
	return s.findOne(ctx, `WHERE id = $1`, id)
}

func (s *UserReadStore) findOne(ctx context.Context, where string, arg any) (*queries.OwnerView, error) {
	var view queries.OwnerView
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, name, password_hash, is_active, last_login FROM users `+where, arg,
	).Scan(&view.ID, &view.Email, &view.Name, &view.PasswordHash, &view.IsActive, &view.LastLogin)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("select user", err)
	}
	return &view, nil
}
