//go:build unit || e2e

package builder

import (
	reqdto "bookline/internal/handler/dto/request"
	"bookline/internal/usecase/queries"

	"github.com/google/uuid"
)

type OwnerBuilder struct {
	ID       uuid.UUID
	Email    string
	Password string
	Name     string
	IsActive bool
}

func NewOwnerBuilder() *OwnerBuilder {
	return &OwnerBuilder{
		ID:       uuid.New(),
		Email:    "owner@example.com",
		Password: "password123",
		Name:     "Pat Owner",
		IsActive: true,
	}
}

func (b *OwnerBuilder) With(mutate func(*OwnerBuilder)) *OwnerBuilder {
	mutate(b)
	return b
}

func (b *OwnerBuilder) BuildView() *queries.OwnerView {
	return &queries.OwnerView{
		ID:       b.ID,
		Email:    b.Email,
		Name:     b.Name,
		IsActive: b.IsActive,
	}
}

func (b *OwnerBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *OwnerBuilder) BuildRegisterRequestDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    b.Email,
		Password: b.Password,
		Name:     b.Name,
	}
}
