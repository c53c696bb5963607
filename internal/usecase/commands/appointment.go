package commands

import (
	"context"
	"time"

	"bookline/internal/domain/appointment"
	"bookline/internal/infra"
	"bookline/internal/notify"
	"bookline/internal/pkg/clock"
	"bookline/internal/pkg/errs"
	"bookline/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrServiceNotFound     = errs.New("service not found")
	ErrUnauthorizedOwner   = errs.New("appointment belongs to another owner")
	ErrValidation          = errs.New("validation failed")
	ErrInvalidTransition   = errs.New("invalid status transition")
	ErrAccessCodeConflict  = errs.New("could not allocate a unique access code")
	ErrPersistenceFailed   = errs.New("persistence operation failed")
)

type CreateAppointmentParams struct {
	RegisteredClientID *uuid.UUID
	WalkIn             *appointment.WalkInSpec
	ServiceID          uuid.UUID
	ScheduledAt        time.Time
	Notes              string
	PriceMode          appointment.PriceMode
	CustomPriceCents   *int64
}

// UpdateAppointmentParams applies only the fields that are set. Changing the
// pricing requires PriceMode to be set; CustomPriceCents rides along with it.
type UpdateAppointmentParams struct {
	ScheduledAt      *time.Time
	Notes            *string
	ServiceID        *uuid.UUID
	PriceMode        *appointment.PriceMode
	CustomPriceCents *int64
}

type AppointmentCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, params CreateAppointmentParams) (*queries.AppointmentView, error)
	UpdateDetails(ctx context.Context, ownerID, id uuid.UUID, params UpdateAppointmentParams) (*queries.AppointmentView, error)
	ChangeStatus(ctx context.Context, ownerID, id uuid.UUID, next appointment.Status) (*queries.AppointmentView, error)
	TogglePaid(ctx context.Context, ownerID, id uuid.UUID, explicit *bool) (*queries.AppointmentView, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type appointmentCommands struct {
	repo       AppointmentRepository
	services   ServiceReader
	queries    queries.AppointmentQueries
	dispatcher notify.Dispatcher
	clk        clock.Clock
}

func NewAppointmentCommands(
	repo AppointmentRepository,
	services ServiceReader,
	q queries.AppointmentQueries,
	dispatcher notify.Dispatcher,
	clk clock.Clock,
) AppointmentCommands {
	return &appointmentCommands{
		repo:       repo,
		services:   services,
		queries:    q,
		dispatcher: dispatcher,
		clk:        clk,
	}
}

func (c *appointmentCommands) Create(ctx context.Context, ownerID uuid.UUID, params CreateAppointmentParams) (*queries.AppointmentView, error) {
	clientRef, err := appointment.ResolveClientRef(params.RegisteredClientID, params.WalkIn)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	svc, err := c.serviceSnapshot(ctx, ownerID, params.ServiceID)
	if err != nil {
		return nil, err
	}

	finalPrice, err := appointment.ResolvePrice(params.PriceMode, params.CustomPriceCents, svc.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	appt, err := c.createWithFreshCode(ctx, ownerID, clientRef, params, finalPrice)
	if err != nil {
		return nil, err
	}

	view, err := c.queries.GetByIDSystem(ctx, appt.ID())
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "read back created appointment"), ErrPersistenceFailed)
	}

	c.dispatchEvent(ctx, notify.EventAppointmentCreated, view)
	return view, nil
}

// createWithFreshCode retries code generation until the owner-scoped
// uniqueness check passes. A duplicate-key failure on insert means another
// request won the same code, so that also counts as a retry.
func (c *appointmentCommands) createWithFreshCode(
	ctx context.Context,
	ownerID uuid.UUID,
	clientRef appointment.ClientRef,
	params CreateAppointmentParams,
	finalPrice int64,
) (*appointment.Appointment, error) {
	for attempt := 0; attempt < appointment.MaxAccessCodeAttempts; attempt++ {
		code, err := appointment.GenerateAccessCode()
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "generate access code"), ErrPersistenceFailed)
		}

		exists, err := c.repo.AccessCodeExists(ctx, ownerID, code)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, "check access code uniqueness"), ErrPersistenceFailed)
		}
		if exists {
			continue
		}

		appt, err := appointment.NewAppointment(
			ownerID,
			code,
			clientRef,
			params.ServiceID,
			params.ScheduledAt,
			params.Notes,
			params.PriceMode,
			params.CustomPriceCents,
			finalPrice,
			c.clk.Now(),
		)
		if err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}

		err = c.repo.Create(ctx, appt)
		if err == nil {
			return appt, nil
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			continue
		}
		return nil, errs.Mark(errs.Wrap(err, "persist appointment"), ErrPersistenceFailed)
	}
	return nil, ErrAccessCodeConflict
}

func (c *appointmentCommands) UpdateDetails(ctx context.Context, ownerID, id uuid.UUID, params UpdateAppointmentParams) (*queries.AppointmentView, error) {
	appt, err := c.loadOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if params.ServiceID != nil || params.PriceMode != nil || params.CustomPriceCents != nil {
		serviceID := appt.ServiceID()
		if params.ServiceID != nil {
			serviceID = *params.ServiceID
		}
		mode := appt.PriceMode()
		custom := appt.CustomPriceCents()
		if params.PriceMode != nil {
			mode = *params.PriceMode
			custom = params.CustomPriceCents
		}
		// A bare custom price keeps the current mode; ResolvePrice rejects
		// it when that mode does not allow an override.
		if params.CustomPriceCents != nil {
			custom = params.CustomPriceCents
		}

		svc, err := c.serviceSnapshot(ctx, ownerID, serviceID)
		if err != nil {
			return nil, err
		}
		finalPrice, err := appointment.ResolvePrice(mode, custom, svc.PriceCents)
		if err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}
		if err := appt.ChangeService(serviceID, mode, custom, finalPrice); err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}
	}

	if params.ScheduledAt != nil {
		appt.Reschedule(*params.ScheduledAt)
	}
	if params.Notes != nil {
		appt.UpdateNotes(*params.Notes)
	}

	if err := c.repo.Update(ctx, appt); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "persist appointment update"), ErrPersistenceFailed)
	}
	return c.viewOf(ctx, id)
}

func (c *appointmentCommands) ChangeStatus(ctx context.Context, ownerID, id uuid.UUID, next appointment.Status) (*queries.AppointmentView, error) {
	appt, err := c.loadOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := appt.ChangeStatus(next); err != nil {
		return nil, errs.Mark(err, ErrInvalidTransition)
	}
	if err := c.repo.Update(ctx, appt); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "persist status change"), ErrPersistenceFailed)
	}

	view, err := c.viewOf(ctx, id)
	if err != nil {
		return nil, err
	}
	switch next {
	case appointment.StatusConfirmed:
		c.dispatchEvent(ctx, notify.EventAppointmentConfirmed, view)
	case appointment.StatusCancelled:
		c.dispatchEvent(ctx, notify.EventAppointmentCancelled, view)
	}
	return view, nil
}

func (c *appointmentCommands) TogglePaid(ctx context.Context, ownerID, id uuid.UUID, explicit *bool) (*queries.AppointmentView, error) {
	appt, err := c.loadOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	appt.SetPaid(explicit)
	if err := c.repo.Update(ctx, appt); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "persist paid flag"), ErrPersistenceFailed)
	}
	return c.viewOf(ctx, id)
}

func (c *appointmentCommands) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := c.loadOwned(ctx, ownerID, id); err != nil {
		return err
	}
	if err := c.repo.Delete(ctx, ownerID, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrAppointmentNotFound
		}
		return errs.Mark(errs.Wrap(err, "delete appointment"), ErrPersistenceFailed)
	}
	return nil
}

func (c *appointmentCommands) loadOwned(ctx context.Context, ownerID, id uuid.UUID) (*appointment.Appointment, error) {
	appt, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "load appointment"), ErrPersistenceFailed)
	}
	if appt.OwnerID() != ownerID {
		return nil, ErrUnauthorizedOwner
	}
	return appt, nil
}

func (c *appointmentCommands) serviceSnapshot(ctx context.Context, ownerID, serviceID uuid.UUID) (*ServiceSnapshot, error) {
	svc, err := c.services.Snapshot(ctx, ownerID, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "load service snapshot"), ErrPersistenceFailed)
	}
	return svc, nil
}

func (c *appointmentCommands) viewOf(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	view, err := c.queries.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "read back appointment"), ErrPersistenceFailed)
	}
	return view, nil
}

// dispatchEvent is best effort. Appointment writes never fail because a
// notification could not be queued.
func (c *appointmentCommands) dispatchEvent(ctx context.Context, kind notify.EventKind, view *queries.AppointmentView) {
	event := notify.Event{
		Kind:          kind,
		AppointmentID: view.ID,
		OwnerID:       view.OwnerID,
		Summary:       view.ClientName + " / " + view.ServiceName + " @ " + view.ScheduledAt.Format(time.RFC3339),
	}
	go c.dispatcher.Dispatch(context.WithoutCancel(ctx), event)
}
