package queries

import (
	"context"
	"time"

	"bookline/internal/infra"
	"bookline/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrClientNotFound = errs.New("client not found")

type ClientView struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ClientReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ClientView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ClientView, error)
}

type ClientQueries interface {
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*ClientView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ClientView, error)
}

type clientQueriesImpl struct {
	readStore ClientReadStore
}

func NewClientQueries(readStore ClientReadStore) ClientQueries {
	return &clientQueriesImpl{readStore: readStore}
}

func (q *clientQueriesImpl) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*ClientView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	if view.OwnerID != ownerID {
		return nil, ErrUnauthorizedOwner
	}
	return view, nil
}

func (q *clientQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ClientView, error) {
	return q.readStore.FindByOwner(ctx, ownerID)
}
