package response

import (
	"time"

	"bookline/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID                 uuid.UUID  `json:"id"`
	AccessCode         string     `json:"accessCode"`
	ClientKind         string     `json:"clientKind"`
	RegisteredClientID *uuid.UUID `json:"registeredClientId,omitempty"`
	ClientName         string     `json:"clientName"`
	ClientPhone        *string    `json:"clientPhone,omitempty"`
	ServiceID          uuid.UUID  `json:"serviceId"`
	ServiceName        string     `json:"serviceName"`
	RegisteredAt       time.Time  `json:"registeredAt"`
	ScheduledAt        time.Time  `json:"scheduledAt"`
	Notes              *string    `json:"notes,omitempty"`
	Status             string     `json:"status"`
	PriceMode          string     `json:"priceMode"`
	CustomPriceCents   *int64     `json:"customPriceCents,omitempty"`
	FinalPriceCents    int64      `json:"finalPriceCents"`
	Paid               bool       `json:"paid"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type AppointmentListResponse struct {
	ID              uuid.UUID `json:"id"`
	AccessCode      string    `json:"accessCode"`
	ClientName      string    `json:"clientName"`
	ServiceName     string    `json:"serviceName"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	Status          string    `json:"status"`
	FinalPriceCents int64     `json:"finalPriceCents"`
	Paid            bool      `json:"paid"`
}

func FromAppointmentView(view *queries.AppointmentView) *AppointmentResponse {
	var resp AppointmentResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromAppointmentListItems(items []*queries.AppointmentListItem) []*AppointmentListResponse {
	resps := make([]*AppointmentListResponse, 0, len(items))
	for _, item := range items {
		var resp AppointmentListResponse
		_ = copier.Copy(&resp, item)
		resps = append(resps, &resp)
	}
	return resps
}
