package components

import (
	"context"
	"log/slog"
	"time"

	"bookline/internal/notify"
	"bookline/internal/pkg/clock"
	"bookline/internal/pkg/config"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		fx.Annotate(
			notify.NewOutboxDispatcher,
			fx.As(new(notify.Dispatcher)),
		),
		NewReminderScheduler,
	),
	fx.Invoke(registerReminderScheduler),
)

func NewReminderScheduler(
	cfg config.Config,
	source notify.ReminderSource,
	dispatcher notify.Dispatcher,
	clk clock.Clock,
	loc *time.Location,
	logger *slog.Logger,
) *notify.ReminderScheduler {
	return notify.NewReminderScheduler(cfg.Schedule.ReminderCronSpec, source, dispatcher, clk, loc, logger)
}

func registerReminderScheduler(lc fx.Lifecycle, cfg config.Config, scheduler *notify.ReminderScheduler, logger *slog.Logger) {
	if !cfg.Schedule.ReminderEnabled {
		logger.Info("reminder scheduler disabled")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return scheduler.Start()
		},
		OnStop: func(_ context.Context) error {
			scheduler.Stop()
			return nil
		},
	})
}
