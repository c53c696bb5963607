//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"bookline/internal/domain/appointment"
	"bookline/internal/infra"
	"bookline/internal/notify"
	"bookline/internal/pkg/clock"
	"bookline/internal/usecase/commands"
	"bookline/internal/usecase/queries"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAppointmentRepo struct {
	mu          sync.Mutex
	stored      map[uuid.UUID]*appointment.Appointment
	existsQueue []bool
	createErrs  []error
	updateErr   error
	deleteErr   error
	createCalls int
	existsCalls int
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{stored: map[uuid.UUID]*appointment.Appointment{}}
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *appointment.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	f.stored[appt.ID()] = appt
	return nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, appt *appointment.Appointment) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.stored[appt.ID()] = appt
	return nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.stored, id)
	return nil
}

func (f *fakeAppointmentRepo) FindByID(_ context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	appt, ok := f.stored[id]
	if !ok {
		return nil, infra.WrapRepoErr("appointment not found", errors.New("no rows"), infra.KindNotFound)
	}
	return appt, nil
}

func (f *fakeAppointmentRepo) AccessCodeExists(_ context.Context, _ uuid.UUID, _ appointment.AccessCode) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.existsCalls++
	if len(f.existsQueue) > 0 {
		v := f.existsQueue[0]
		f.existsQueue = f.existsQueue[1:]
		return v, nil
	}
	return false, nil
}

type fakeServiceReader struct {
	snapshots map[uuid.UUID]*commands.ServiceSnapshot
}

func (f *fakeServiceReader) Snapshot(_ context.Context, ownerID, serviceID uuid.UUID) (*commands.ServiceSnapshot, error) {
	svc, ok := f.snapshots[serviceID]
	if !ok || svc.OwnerID != ownerID {
		return nil, infra.WrapRepoErr("service not found", errors.New("no rows"), infra.KindNotFound)
	}
	return svc, nil
}

// fakeAppointmentQueries projects views straight from the write-side repo.
type fakeAppointmentQueries struct {
	repo *fakeAppointmentRepo
}

func (f *fakeAppointmentQueries) viewFrom(appt *appointment.Appointment) *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:              appt.ID(),
		OwnerID:         appt.OwnerID(),
		AccessCode:      appt.AccessCode().String(),
		ClientName:      "Jane Doe",
		ServiceID:       appt.ServiceID(),
		ServiceName:     "Haircut",
		ScheduledAt:     appt.ScheduledAt(),
		Status:          appt.Status().String(),
		PriceMode:       appt.PriceMode().String(),
		FinalPriceCents: appt.FinalPriceCents(),
		Paid:            appt.Paid(),
	}
}

func (f *fakeAppointmentQueries) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*queries.AppointmentView, error) {
	view, err := f.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.OwnerID != ownerID {
		return nil, queries.ErrUnauthorizedOwner
	}
	return view, nil
}

func (f *fakeAppointmentQueries) GetByIDSystem(_ context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	appt, ok := f.repo.stored[id]
	if !ok {
		return nil, queries.ErrAppointmentNotFound
	}
	return f.viewFrom(appt), nil
}

func (f *fakeAppointmentQueries) ListByOwner(context.Context, uuid.UUID, queries.ListFilter) ([]*queries.AppointmentListItem, error) {
	return nil, nil
}

func (f *fakeAppointmentQueries) ListToday(context.Context, uuid.UUID, *appointment.Status) ([]*queries.AppointmentListItem, error) {
	return nil, nil
}

func (f *fakeAppointmentQueries) ListThisWeek(context.Context, uuid.UUID, *appointment.Status) ([]*queries.AppointmentListItem, error) {
	return nil, nil
}

func (f *fakeAppointmentQueries) ListThisMonth(context.Context, uuid.UUID, *appointment.Status) ([]*queries.AppointmentListItem, error) {
	return nil, nil
}

// recordingDispatcher captures async dispatches through a channel so tests
// can wait for them deterministically.
type recordingDispatcher struct {
	events chan notify.Event
}

func newRecordingDispatcher() *recordingDispatcher {
	return &recordingDispatcher{events: make(chan notify.Event, 8)}
}

func (d *recordingDispatcher) Dispatch(_ context.Context, event notify.Event) {
	d.events <- event
}

func (d *recordingDispatcher) waitForEvent(t *testing.T) notify.Event {
	t.Helper()
	select {
	case event := <-d.events:
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("expected a dispatched event")
		return notify.Event{}
	}
}

func (d *recordingDispatcher) assertNoEvent(t *testing.T) {
	t.Helper()
	select {
	case event := <-d.events:
		t.Fatalf("unexpected event dispatched: %s", event.Kind)
	case <-time.After(50 * time.Millisecond):
	}
}

type appointmentFixture struct {
	ownerID    uuid.UUID
	serviceID  uuid.UUID
	clientID   uuid.UUID
	now        time.Time
	repo       *fakeAppointmentRepo
	services   *fakeServiceReader
	dispatcher *recordingDispatcher
	commands   commands.AppointmentCommands
}

func newAppointmentFixture() *appointmentFixture {
	f := &appointmentFixture{
		ownerID:    uuid.New(),
		serviceID:  uuid.New(),
		clientID:   uuid.New(),
		now:        time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		repo:       newFakeAppointmentRepo(),
		dispatcher: newRecordingDispatcher(),
	}
	f.services = &fakeServiceReader{snapshots: map[uuid.UUID]*commands.ServiceSnapshot{
		f.serviceID: {ID: f.serviceID, OwnerID: f.ownerID, Name: "Haircut", PriceCents: 4500, Active: true},
	}}
	f.commands = commands.NewAppointmentCommands(
		f.repo,
		f.services,
		&fakeAppointmentQueries{repo: f.repo},
		f.dispatcher,
		clock.NewMockClock(f.now),
	)
	return f
}

func (f *appointmentFixture) createParams() commands.CreateAppointmentParams {
	return commands.CreateAppointmentParams{
		RegisteredClientID: &f.clientID,
		ServiceID:          f.serviceID,
		ScheduledAt:        f.now.Add(48 * time.Hour),
		PriceMode:          appointment.PriceModeStandard,
	}
}

func (f *appointmentFixture) mustCreate(t *testing.T) *queries.AppointmentView {
	t.Helper()
	view, err := f.commands.Create(context.Background(), f.ownerID, f.createParams())
	require.NoError(t, err)
	f.dispatcher.waitForEvent(t)
	return view
}

func TestCreateAppointment(t *testing.T) {
	t.Run("creates pending with the standard price and dispatches", func(t *testing.T) {
		f := newAppointmentFixture()

		view, err := f.commands.Create(context.Background(), f.ownerID, f.createParams())
		require.NoError(t, err)

		assert.Equal(t, "pending", view.Status)
		assert.Equal(t, int64(4500), view.FinalPriceCents)
		assert.Len(t, view.AccessCode, appointment.AccessCodeLength)
		assert.False(t, view.Paid)

		event := f.dispatcher.waitForEvent(t)
		assert.Equal(t, notify.EventAppointmentCreated, event.Kind)
		assert.Equal(t, view.ID, event.AppointmentID)
		assert.Equal(t, f.ownerID, event.OwnerID)
		assert.Contains(t, event.Summary, "Haircut")
	})

	t.Run("custom price overrides the service price", func(t *testing.T) {
		f := newAppointmentFixture()
		custom := int64(9900)
		params := f.createParams()
		params.PriceMode = appointment.PriceModeCustom
		params.CustomPriceCents = &custom

		view, err := f.commands.Create(context.Background(), f.ownerID, params)
		require.NoError(t, err)
		assert.Equal(t, int64(9900), view.FinalPriceCents)
		f.dispatcher.waitForEvent(t)
	})

	t.Run("retries when the generated code is taken", func(t *testing.T) {
		f := newAppointmentFixture()
		f.repo.existsQueue = []bool{true, true, false}

		_, err := f.commands.Create(context.Background(), f.ownerID, f.createParams())
		require.NoError(t, err)
		assert.Equal(t, 3, f.repo.existsCalls)
		assert.Equal(t, 1, f.repo.createCalls)
		f.dispatcher.waitForEvent(t)
	})

	t.Run("retries when insert loses the code race", func(t *testing.T) {
		f := newAppointmentFixture()
		f.repo.createErrs = []error{
			infra.WrapRepoErr("duplicate access code", errors.New("unique violation"), infra.KindDuplicateKey),
		}

		_, err := f.commands.Create(context.Background(), f.ownerID, f.createParams())
		require.NoError(t, err)
		assert.Equal(t, 2, f.repo.createCalls)
		f.dispatcher.waitForEvent(t)
	})

	t.Run("gives up after exhausting code attempts", func(t *testing.T) {
		f := newAppointmentFixture()
		f.repo.existsQueue = []bool{true, true, true, true, true}

		_, err := f.commands.Create(context.Background(), f.ownerID, f.createParams())
		assert.ErrorIs(t, err, commands.ErrAccessCodeConflict)
		assert.Equal(t, appointment.MaxAccessCodeAttempts, f.repo.existsCalls)
		f.dispatcher.assertNoEvent(t)
	})

	t.Run("unknown service", func(t *testing.T) {
		f := newAppointmentFixture()
		params := f.createParams()
		params.ServiceID = uuid.New()

		_, err := f.commands.Create(context.Background(), f.ownerID, params)
		assert.ErrorIs(t, err, commands.ErrServiceNotFound)
	})

	t.Run("another owner's service is invisible", func(t *testing.T) {
		f := newAppointmentFixture()

		_, err := f.commands.Create(context.Background(), uuid.New(), f.createParams())
		assert.ErrorIs(t, err, commands.ErrServiceNotFound)
	})

	t.Run("client reference validation", func(t *testing.T) {
		f := newAppointmentFixture()

		params := f.createParams()
		params.RegisteredClientID = nil
		_, err := f.commands.Create(context.Background(), f.ownerID, params)
		assert.ErrorIs(t, err, commands.ErrValidation)
		assert.ErrorIs(t, err, appointment.ErrClientRefMissing)

		params = f.createParams()
		params.WalkIn = &appointment.WalkInSpec{Name: "Drop In"}
		_, err = f.commands.Create(context.Background(), f.ownerID, params)
		assert.ErrorIs(t, err, commands.ErrValidation)
		assert.ErrorIs(t, err, appointment.ErrClientRefAmbiguous)
	})

	t.Run("pricing validation", func(t *testing.T) {
		f := newAppointmentFixture()
		custom := int64(9900)
		params := f.createParams()
		params.CustomPriceCents = &custom

		_, err := f.commands.Create(context.Background(), f.ownerID, params)
		assert.ErrorIs(t, err, commands.ErrValidation)
		assert.ErrorIs(t, err, appointment.ErrCustomPriceNotAllowed)
	})

	t.Run("scheduling in the past", func(t *testing.T) {
		f := newAppointmentFixture()
		params := f.createParams()
		params.ScheduledAt = f.now.Add(-time.Hour)

		_, err := f.commands.Create(context.Background(), f.ownerID, params)
		assert.ErrorIs(t, err, commands.ErrValidation)
		assert.ErrorIs(t, err, appointment.ErrScheduledInPast)
	})
}

func TestUpdateAppointmentDetails(t *testing.T) {
	t.Run("reschedules and updates notes", func(t *testing.T) {
		f := newAppointmentFixture()
		created := f.mustCreate(t)

		newTime := f.now.Add(96 * time.Hour)
		notes := "bring photos"
		view, err := f.commands.UpdateDetails(context.Background(), f.ownerID, created.ID, commands.UpdateAppointmentParams{
			ScheduledAt: &newTime,
			Notes:       &notes,
		})
		require.NoError(t, err)
		assert.Equal(t, newTime, view.ScheduledAt)
		f.dispatcher.assertNoEvent(t)
	})

	t.Run("switching to custom pricing re-resolves the price", func(t *testing.T) {
		f := newAppointmentFixture()
		created := f.mustCreate(t)

		mode := appointment.PriceModeCustom
		custom := int64(12000)
		view, err := f.commands.UpdateDetails(context.Background(), f.ownerID, created.ID, commands.UpdateAppointmentParams{
			PriceMode:        &mode,
			CustomPriceCents: &custom,
		})
		require.NoError(t, err)
		assert.Equal(t, "custom", view.PriceMode)
		assert.Equal(t, int64(12000), view.FinalPriceCents)
	})

	t.Run("bare custom price reprices a custom appointment", func(t *testing.T) {
		f := newAppointmentFixture()
		created := f.mustCreate(t)

		mode := appointment.PriceModeCustom
		custom := int64(10000)
		_, err := f.commands.UpdateDetails(context.Background(), f.ownerID, created.ID, commands.UpdateAppointmentParams{
			PriceMode:        &mode,
			CustomPriceCents: &custom,
		})
		require.NoError(t, err)

		newCustom := int64(20000)
		view, err := f.commands.UpdateDetails(context.Background(), f.ownerID, created.ID, commands.UpdateAppointmentParams{
			CustomPriceCents: &newCustom,
		})
		require.NoError(t, err)
		assert.Equal(t, "custom", view.PriceMode)
		assert.Equal(t, int64(20000), view.FinalPriceCents)
	})

	t.Run("bare custom price on a standard appointment fails validation", func(t *testing.T) {
		f := newAppointmentFixture()
		created := f.mustCreate(t)

		custom := int64(20000)
		_, err := f.commands.UpdateDetails(context.Background(), f.ownerID, created.ID, commands.UpdateAppointmentParams{
			CustomPriceCents: &custom,
		})
		assert.ErrorIs(t, err, commands.ErrValidation)
		assert.ErrorIs(t, err, appointment.ErrCustomPriceNotAllowed)
	})

	t.Run("changing service under standard pricing picks up its price", func(t *testing.T) {
		f := newAppointmentFixture()
		created := f.mustCreate(t)

		otherID := uuid.New()
		f.services.snapshots[otherID] = &commands.ServiceSnapshot{
			ID: otherID, OwnerID: f.ownerID, Name: "Coloring", PriceCents: 8000, Active: true,
		}

		view, err := f.commands.UpdateDetails(context.Background(), f.ownerID, created.ID, commands.UpdateAppointmentParams{
			ServiceID: &otherID,
		})
		require.NoError(t, err)
		assert.Equal(t, otherID, view.ServiceID)
		assert.Equal(t, int64(8000), view.FinalPriceCents)
	})

	t.Run("custom mode without a price fails validation", func(t *testing.T) {
		f := newAppointmentFixture()
		created := f.mustCreate(t)

		mode := appointment.PriceModeCustom
		_, err := f.commands.UpdateDetails(context.Background(), f.ownerID, created.ID, commands.UpdateAppointmentParams{
			PriceMode: &mode,
		})
		assert.ErrorIs(t, err, commands.ErrValidation)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		f := newAppointmentFixture()
		_, err := f.commands.UpdateDetails(context.Background(), f.ownerID, uuid.New(), commands.UpdateAppointmentParams{})
		assert.ErrorIs(t, err, commands.ErrAppointmentNotFound)
	})

	t.Run("another owner's appointment", func(t *testing.T) {
		f := newAppointmentFixture()
		created := f.mustCreate(t)

		_, err := f.commands.UpdateDetails(context.Background(), uuid.New(), created.ID, commands.UpdateAppointmentParams{})
		assert.ErrorIs(t, err, commands.ErrUnauthorizedOwner)
	})
}

func TestChangeAppointmentStatus(t *testing.T) {
	t.Run("confirming dispatches a confirmation", func(t *testing.T) {
		f := newAppointmentFixture()
		created := f.mustCreate(t)

		view, err := f.commands.ChangeStatus(context.Background(), f.ownerID, created.ID, appointment.StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, "confirmed", view.Status)

		event := f.dispatcher.waitForEvent(t)
		assert.Equal(t, notify.EventAppointmentConfirmed, event.Kind)
	})

	t.Run("cancelling dispatches a cancellation", func(t *testing.T) {
		f := newAppointmentFixture()
		created := f.mustCreate(t)

		view, err := f.commands.ChangeStatus(context.Background(), f.ownerID, created.ID, appointment.StatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", view.Status)

		event := f.dispatcher.waitForEvent(t)
		assert.Equal(t, notify.EventAppointmentCancelled, event.Kind)
	})

	t.Run("no-op transition is rejected without dispatch", func(t *testing.T) {
		f := newAppointmentFixture()
		created := f.mustCreate(t)

		_, err := f.commands.ChangeStatus(context.Background(), f.ownerID, created.ID, appointment.StatusPending)
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
		f.dispatcher.assertNoEvent(t)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		f := newAppointmentFixture()
		created := f.mustCreate(t)

		_, err := f.commands.ChangeStatus(context.Background(), f.ownerID, created.ID, appointment.StatusCancelled)
		require.NoError(t, err)
		f.dispatcher.waitForEvent(t)

		_, err = f.commands.ChangeStatus(context.Background(), f.ownerID, created.ID, appointment.StatusConfirmed)
		assert.ErrorIs(t, err, commands.ErrInvalidTransition)
		f.dispatcher.assertNoEvent(t)
	})
}

func TestTogglePaid(t *testing.T) {
	t.Run("nil flips, explicit sets", func(t *testing.T) {
		f := newAppointmentFixture()
		created := f.mustCreate(t)

		view, err := f.commands.TogglePaid(context.Background(), f.ownerID, created.ID, nil)
		require.NoError(t, err)
		assert.True(t, view.Paid)

		view, err = f.commands.TogglePaid(context.Background(), f.ownerID, created.ID, nil)
		require.NoError(t, err)
		assert.False(t, view.Paid)

		yes := true
		view, err = f.commands.TogglePaid(context.Background(), f.ownerID, created.ID, &yes)
		require.NoError(t, err)
		assert.True(t, view.Paid)

		view, err = f.commands.TogglePaid(context.Background(), f.ownerID, created.ID, &yes)
		require.NoError(t, err)
		assert.True(t, view.Paid)
	})
}

func TestDeleteAppointment(t *testing.T) {
	t.Run("removes the owner's appointment", func(t *testing.T) {
		f := newAppointmentFixture()
		created := f.mustCreate(t)

		require.NoError(t, f.commands.Delete(context.Background(), f.ownerID, created.ID))

		_, err := f.commands.TogglePaid(context.Background(), f.ownerID, created.ID, nil)
		assert.ErrorIs(t, err, commands.ErrAppointmentNotFound)
	})

	t.Run("another owner cannot delete", func(t *testing.T) {
		f := newAppointmentFixture()
		created := f.mustCreate(t)

		err := f.commands.Delete(context.Background(), uuid.New(), created.ID)
		assert.ErrorIs(t, err, commands.ErrUnauthorizedOwner)
	})
}
