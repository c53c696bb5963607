package response

import (
	"time"

	"bookline/internal/usecase/queries"

	"github.com/google/uuid"
)

type OwnerResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	Owner       *OwnerResponse `json:"owner"`
}

func FromOwnerView(view *queries.OwnerView) *OwnerResponse {
	return &OwnerResponse{
		ID:        view.ID,
		Email:     view.Email,
		Name:      view.Name,
		IsActive:  view.IsActive,
		LastLogin: view.LastLogin,
	}
}
