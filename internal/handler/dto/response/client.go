package response

import (
	"time"

	"bookline/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromClientView(view *queries.ClientView) *ClientResponse {
	var resp ClientResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromClientViews(views []*queries.ClientView) []*ClientResponse {
	resps := make([]*ClientResponse, 0, len(views))
	for _, view := range views {
		resps = append(resps, FromClientView(view))
	}
	return resps
}
