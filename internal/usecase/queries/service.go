package queries

import (
	"context"
	"time"

	"bookline/internal/infra"
	"bookline/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrServiceNotFound = errs.New("service not found")

type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Details     string    `json:"details"`
	PriceCents  int64     `json:"price_cents"`
	Active      bool      `json:"active"`
	ImageRef    *string   `json:"image_ref,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ServiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ServiceView, error)
}

type ServiceQueries interface {
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*ServiceView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	readStore ServiceReadStore
}

func NewServiceQueries(readStore ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{readStore: readStore}
}

func (q *serviceQueriesImpl) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*ServiceView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if view.OwnerID != ownerID {
		return nil, ErrUnauthorizedOwner
	}
	return view, nil
}

func (q *serviceQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ServiceView, error) {
	return q.readStore.FindByOwner(ctx, ownerID)
}
