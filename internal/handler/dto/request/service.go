package request

import "bookline/internal/usecase/commands"

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Details     string `json:"details"`
	PriceCents  int64  `json:"price_cents" binding:"required,gt=0"`
	ImageRef    string `json:"image_ref"`
}

func (r CreateServiceRequest) ToParams() commands.CreateServiceParams {
	return commands.CreateServiceParams{
		Name:        r.Name,
		Type:        r.Type,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Details:     r.Details,
		PriceCents:  r.PriceCents,
		ImageRef:    r.ImageRef,
	}
}

type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	Type        *string `json:"type,omitempty"`
	Category    *string `json:"category,omitempty"`
	Subcategory *string `json:"subcategory,omitempty"`
	Details     *string `json:"details,omitempty"`
	PriceCents  *int64  `json:"price_cents,omitempty"`
	Active      *bool   `json:"active,omitempty"`
	ImageRef    *string `json:"image_ref,omitempty"`
}

func (r UpdateServiceRequest) ToParams() commands.UpdateServiceParams {
	return commands.UpdateServiceParams{
		Name:        r.Name,
		Type:        r.Type,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Details:     r.Details,
		PriceCents:  r.PriceCents,
		Active:      r.Active,
		ImageRef:    r.ImageRef,
	}
}
