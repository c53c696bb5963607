package components

import (
	"bookline/internal/infra/readstore"
	repo_impl "bookline/internal/infra/repository"
	"bookline/internal/notify"
	"bookline/internal/usecase/commands"
	"bookline/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewAppointmentRepository,
			fx.As(new(commands.AppointmentRepository)),
		),
		fx.Annotate(
			repo_impl.NewServiceRepository,
			fx.As(new(commands.ServiceRepository)),
			fx.As(new(commands.ServiceReader)),
		),
		fx.Annotate(
			repo_impl.NewClientRepository,
			fx.As(new(commands.ClientRepository)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewNotificationOutbox,
			fx.As(new(notify.OutboxWriter)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
			fx.As(new(notify.ReminderSource)),
		),
		fx.Annotate(
			readstore.NewServiceReadStore,
			fx.As(new(queries.ServiceReadStore)),
		),
		fx.Annotate(
			readstore.NewClientReadStore,
			fx.As(new(queries.ClientReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)
