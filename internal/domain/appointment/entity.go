package appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrOwnerRequired     = errors.New("owner id is required")
	ErrServiceRequired   = errors.New("service id is required")
	ErrScheduledInPast   = errors.New("scheduled time cannot be in the past")
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Appointment is a scheduled booking of a service for either a registered
// client or a walk-in client, owned by one professional.
type Appointment struct {
	id               uuid.UUID
	ownerID          uuid.UUID
	accessCode       AccessCode
	clientRef        ClientRef
	serviceID        uuid.UUID
	registeredAt     time.Time
	scheduledAt      time.Time
	notes            string
	status           Status
	priceMode        PriceMode
	customPriceCents *int64
	finalPriceCents  int64
	paid             bool
	createdAt        time.Time
	updatedAt        time.Time
}

// NewAppointment validates and assembles a fresh aggregate in PENDING state.
// finalPriceCents must already be resolved through ResolvePrice against the
// same mode and custom price; the pairing invariant is re-checked here.
// scheduledAt strictly before now is rejected at creation only; later
// mutation to a past time is allowed for record-keeping.
func NewAppointment(
	ownerID uuid.UUID,
	accessCode AccessCode,
	clientRef ClientRef,
	serviceID uuid.UUID,
	scheduledAt time.Time,
	notes string,
	priceMode PriceMode,
	customPriceCents *int64,
	finalPriceCents int64,
	now time.Time,
) (*Appointment, error) {
	if ownerID == uuid.Nil {
		return nil, ErrOwnerRequired
	}
	if serviceID == uuid.Nil {
		return nil, ErrServiceRequired
	}
	if clientRef.IsZero() {
		return nil, ErrClientRefMissing
	}
	if _, err := ParseAccessCode(accessCode.String()); err != nil {
		return nil, err
	}
	if err := validatePricing(priceMode, customPriceCents); err != nil {
		return nil, err
	}
	if scheduledAt.Before(now) {
		return nil, ErrScheduledInPast
	}

	return &Appointment{
		id:               uuid.New(),
		ownerID:          ownerID,
		accessCode:       accessCode,
		clientRef:        clientRef,
		serviceID:        serviceID,
		registeredAt:     now,
		scheduledAt:      scheduledAt,
		notes:            notes,
		status:           StatusPending,
		priceMode:        priceMode,
		customPriceCents: customPriceCents,
		finalPriceCents:  finalPriceCents,
		paid:             false,
	}, nil
}

// ReconstructAppointment rebuilds an aggregate from stored state without
// re-running creation-time validation.
func ReconstructAppointment(
	id, ownerID uuid.UUID,
	accessCode AccessCode,
	clientRef ClientRef,
	serviceID uuid.UUID,
	registeredAt, scheduledAt time.Time,
	notes string,
	status Status,
	priceMode PriceMode,
	customPriceCents *int64,
	finalPriceCents int64,
	paid bool,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:               id,
		ownerID:          ownerID,
		accessCode:       accessCode,
		clientRef:        clientRef,
		serviceID:        serviceID,
		registeredAt:     registeredAt,
		scheduledAt:      scheduledAt,
		notes:            notes,
		status:           status,
		priceMode:        priceMode,
		customPriceCents: customPriceCents,
		finalPriceCents:  finalPriceCents,
		paid:             paid,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// ChangeStatus applies the state machine. Disallowed transitions, including
// no-ops and anything out of CANCELLED, are reported rather than ignored.
func (a *Appointment) ChangeStatus(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !a.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	a.status = next
	return nil
}

// Reschedule moves the appointment. Past times are accepted here: operators
// backfill completed visits.
func (a *Appointment) Reschedule(t time.Time) {
	a.scheduledAt = t
}

func (a *Appointment) UpdateNotes(notes string) {
	a.notes = notes
}

// ChangeService repoints the appointment at a service with freshly resolved
// pricing. finalPriceCents must come from ResolvePrice for the given pair.
func (a *Appointment) ChangeService(serviceID uuid.UUID, priceMode PriceMode, customPriceCents *int64, finalPriceCents int64) error {
	if serviceID == uuid.Nil {
		return ErrServiceRequired
	}
	if err := validatePricing(priceMode, customPriceCents); err != nil {
		return err
	}
	a.serviceID = serviceID
	a.priceMode = priceMode
	a.customPriceCents = customPriceCents
	a.finalPriceCents = finalPriceCents
	return nil
}

// SetPaid sets the payment flag to explicit when given, otherwise flips it.
// Returns the resulting value. Repeated explicit calls are no-ops in effect.
func (a *Appointment) SetPaid(explicit *bool) bool {
	if explicit != nil {
		a.paid = *explicit
	} else {
		a.paid = !a.paid
	}
	return a.paid
}

func (a *Appointment) ID() uuid.UUID             { return a.id }
func (a *Appointment) OwnerID() uuid.UUID        { return a.ownerID }
func (a *Appointment) AccessCode() AccessCode    { return a.accessCode }
func (a *Appointment) ClientRef() ClientRef      { return a.clientRef }
func (a *Appointment) ServiceID() uuid.UUID      { return a.serviceID }
func (a *Appointment) RegisteredAt() time.Time   { return a.registeredAt }
func (a *Appointment) ScheduledAt() time.Time    { return a.scheduledAt }
func (a *Appointment) Notes() string             { return a.notes }
func (a *Appointment) Status() Status            { return a.status }
func (a *Appointment) PriceMode() PriceMode      { return a.priceMode }
func (a *Appointment) CustomPriceCents() *int64  { return a.customPriceCents }
func (a *Appointment) FinalPriceCents() int64    { return a.finalPriceCents }
func (a *Appointment) Paid() bool                { return a.paid }
func (a *Appointment) CreatedAt() time.Time      { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time      { return a.updatedAt }

func (a *Appointment) IsCancelled() bool {
	return a.status == StatusCancelled
}
