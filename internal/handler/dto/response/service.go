package response

import (
	"time"

	"bookline/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory"`
	Details     string    `json:"details"`
	PriceCents  int64     `json:"priceCents"`
	Active      bool      `json:"active"`
	ImageRef    *string   `json:"imageRef,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromServiceView(view *queries.ServiceView) *ServiceResponse {
	var resp ServiceResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromServiceViews(views []*queries.ServiceView) []*ServiceResponse {
	resps := make([]*ServiceResponse, 0, len(views))
	for _, view := range views {
		resps = append(resps, FromServiceView(view))
	}
	return resps
}
