package queries

import (
	"context"
	"time"

	"bookline/internal/infra"
	"bookline/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

// OwnerView is the read model of an owner account; the password hash rides
// along for the login command only and never reaches a response DTO.
type OwnerView struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	PasswordHash string     `json:"-"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*OwnerView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*OwnerView, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OwnerView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{readStore: readStore}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OwnerView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}
