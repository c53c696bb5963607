package request

import (
	domclient "bookline/internal/domain/client"
	"bookline/internal/usecase/commands"
)

type CreateClientRequest struct {
	Type  string `json:"type" binding:"required,oneof=regular walk_in"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r CreateClientRequest) ToParams() commands.CreateClientParams {
	return commands.CreateClientParams{
		Type:  domclient.Type(r.Type),
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}

type UpdateClientRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Status *string `json:"status,omitempty"`
}

func (r UpdateClientRequest) ToParams() commands.UpdateClientParams {
	params := commands.UpdateClientParams{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
	if r.Status != nil {
		status := domclient.Status(*r.Status)
		params.Status = &status
	}
	return params
}
