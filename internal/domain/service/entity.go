package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired  = errors.New("service name is required")
	ErrOwnerRequired = errors.New("service owner id is required")
	ErrInvalidPrice  = errors.New("service price must be positive")
)

// Service is a catalog entry a professional offers for booking.
type Service struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	serviceType string
	category    string
	subcategory string
	details     string
	priceCents  int64
	active      bool
	imageRef    string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewService(ownerID uuid.UUID, name, serviceType, category, subcategory, details string, priceCents int64, imageRef string) (*Service, error) {
	if ownerID == uuid.Nil {
		return nil, ErrOwnerRequired
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrNameRequired
	}
	if priceCents <= 0 {
		return nil, ErrInvalidPrice
	}

	return &Service{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        trimmed,
		serviceType: strings.TrimSpace(serviceType),
		category:    strings.TrimSpace(category),
		subcategory: strings.TrimSpace(subcategory),
		details:     details,
		priceCents:  priceCents,
		active:      true,
		imageRef:    imageRef,
	}, nil
}

func Reconstruct(
	id, ownerID uuid.UUID,
	name, serviceType, category, subcategory, details string,
	priceCents int64,
	active bool,
	imageRef string,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		serviceType: serviceType,
		category:    category,
		subcategory: subcategory,
		details:     details,
		priceCents:  priceCents,
		active:      active,
		imageRef:    imageRef,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Service) Rename(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameRequired
	}
	s.name = trimmed
	return nil
}

func (s *Service) ChangePrice(priceCents int64) error {
	if priceCents <= 0 {
		return ErrInvalidPrice
	}
	s.priceCents = priceCents
	return nil
}

func (s *Service) Activate()   { s.active = true }
func (s *Service) Deactivate() { s.active = false }

// UpdateCatalog overwrites the descriptive fields that are set; nil means
// keep the current value.
func (s *Service) UpdateCatalog(serviceType, category, subcategory, details, imageRef *string) {
	if serviceType != nil {
		s.serviceType = strings.TrimSpace(*serviceType)
	}
	if category != nil {
		s.category = strings.TrimSpace(*category)
	}
	if subcategory != nil {
		s.subcategory = strings.TrimSpace(*subcategory)
	}
	if details != nil {
		s.details = *details
	}
	if imageRef != nil {
		s.imageRef = *imageRef
	}
}

func (s *Service) ID() uuid.UUID       { return s.id }
func (s *Service) OwnerID() uuid.UUID  { return s.ownerID }
func (s *Service) Name() string        { return s.name }
func (s *Service) Type() string        { return s.serviceType }
func (s *Service) Category() string    { return s.category }
func (s *Service) Subcategory() string { return s.subcategory }
func (s *Service) Details() string     { return s.details }
func (s *Service) PriceCents() int64   { return s.priceCents }
func (s *Service) Active() bool        { return s.active }
func (s *Service) ImageRef() string    { return s.imageRef }
func (s *Service) CreatedAt() time.Time { return s.createdAt }
func (s *Service) UpdatedAt() time.Time { return s.updatedAt }
