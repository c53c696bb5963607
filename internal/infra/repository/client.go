package repository

import (
	"context"
	"time"

	domclient "bookline/internal/domain/client"
	"bookline/internal/infra"
	"bookline/internal/infra/pgconv"
	"bookline/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

var _ commands.ClientRepository = (*ClientRepository)(nil)

func (r *ClientRepository) Create(ctx context.Context, cl *domclient.Client) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO clients (id, owner_id, client_type, name, email, phone, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		cl.ID(), cl.OwnerID(), string(cl.Type()), cl.Name(),
		nullable(cl.Email()), nullable(cl.Phone()), string(cl.Status()),
	)
	if err != nil {
		if pgconv.IsUniqueViolation(err) {
			return infra.WrapRepoErr("client already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("insert client", err)
	}
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, cl *domclient.Client) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE clients SET
			client_type = $2, name = $3, email = $4, phone = $5, status = $6,
			updated_at = now()
		WHERE id = $1`,
		cl.ID(), string(cl.Type()), cl.Name(),
		nullable(cl.Email()), nullable(cl.Phone()), string(cl.Status()),
	)
	if err != nil {
		return infra.WrapRepoErr("update client", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM clients WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		if pgconv.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("client is referenced by appointments", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("delete client", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id uuid.UUID) (*domclient.Client, error) {
	var (
		clientID, ownerID    uuid.UUID
		clientType, name     string
		email, phone         *string
		status               string
		createdAt, updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, client_type, name, email, phone, status, created_at, updated_at
		FROM clients WHERE id = $1`, id,
	).Scan(&clientID, &ownerID, &clientType, &name, &email, &phone, &status, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("select client", err)
	}

	return domclient.Reconstruct(
		clientID, ownerID,
		domclient.Type(clientType),
		name, deref(email), deref(phone),
		domclient.Status(status),
		createdAt, updatedAt,
	), nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
