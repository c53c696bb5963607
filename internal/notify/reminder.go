package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bookline/internal/domain/appointment"
	"bookline/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// ReminderItem is the slice of an appointment the reminder needs.
type ReminderItem struct {
	AppointmentID uuid.UUID
	OwnerID       uuid.UUID
	ClientName    string
	ServiceName   string
	ScheduledAt   time.Time
}

// ReminderSource lists non-cancelled appointments scheduled inside a window,
// across all owners.
type ReminderSource interface {
	ListActiveBetween(ctx context.Context, start, end time.Time) ([]ReminderItem, error)
}

// ReminderScheduler emits one reminder event per appointment scheduled on the
// next local calendar day, on a cron cadence.
type ReminderScheduler struct {
	cron       *cron.Cron
	spec       string
	source     ReminderSource
	dispatcher Dispatcher
	clock      clock.Clock
	loc        *time.Location
	logger     *slog.Logger
}

func NewReminderScheduler(
	spec string,
	source ReminderSource,
	dispatcher Dispatcher,
	clk clock.Clock,
	loc *time.Location,
	logger *slog.Logger,
) *ReminderScheduler {
	return &ReminderScheduler{
		cron:       cron.New(cron.WithLocation(loc)),
		spec:       spec,
		source:     source,
		dispatcher: dispatcher,
		clock:      clk,
		loc:        loc,
		logger:     logger,
	}
}

func (s *ReminderScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.Run); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("reminder scheduler started", "spec", s.spec, "timezone", s.loc.String())
	return nil
}

func (s *ReminderScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Run performs one reminder sweep. Exported so the cron cadence and the sweep
// logic can be exercised separately.
func (s *ReminderScheduler) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tomorrow := appointment.DayWindow(s.clock.Now().AddDate(0, 0, 1), s.loc)
	items, err := s.source.ListActiveBetween(ctx, tomorrow.Start(), tomorrow.End())
	if err != nil {
		s.logger.Error("reminder sweep failed", "error", err.Error())
		return
	}

	for _, item := range items {
		s.dispatcher.Dispatch(ctx, Event{
			Kind:          EventAppointmentReminder,
			AppointmentID: item.AppointmentID,
			OwnerID:       item.OwnerID,
			Summary: fmt.Sprintf("Reminder: %s for %s at %s",
				item.ServiceName, item.ClientName, item.ScheduledAt.In(s.loc).Format("Mon Jan 2 15:04")),
		})
	}

	s.logger.Info("reminder sweep completed", "count", len(items))
}
