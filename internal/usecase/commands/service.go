package commands

import (
	"context"

	domservice "bookline/internal/domain/service"
	"bookline/internal/infra"
	"bookline/internal/pkg/errs"
	"bookline/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateServiceParams struct {
	Name        string
	Type        string
	Category    string
	Subcategory string
	Details     string
	PriceCents  int64
	ImageRef    string
}

type UpdateServiceParams struct {
	Name        *string
	Type        *string
	Category    *string
	Subcategory *string
	Details     *string
	PriceCents  *int64
	Active      *bool
	ImageRef    *string
}

type ServiceCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, params CreateServiceParams) (*queries.ServiceView, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, params UpdateServiceParams) (*queries.ServiceView, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type serviceCommands struct {
	repo    ServiceRepository
	queries queries.ServiceQueries
}

func NewServiceCommands(repo ServiceRepository, q queries.ServiceQueries) ServiceCommands {
	return &serviceCommands{repo: repo, queries: q}
}

func (c *serviceCommands) Create(ctx context.Context, ownerID uuid.UUID, params CreateServiceParams) (*queries.ServiceView, error) {
	svc, err := domservice.NewService(
		ownerID,
		params.Name,
		params.Type,
		params.Category,
		params.Subcategory,
		params.Details,
		params.PriceCents,
		params.ImageRef,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if err := c.repo.Create(ctx, svc); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "persist service"), ErrPersistenceFailed)
	}
	return c.viewOf(ctx, ownerID, svc.ID())
}

func (c *serviceCommands) Update(ctx context.Context, ownerID, id uuid.UUID, params UpdateServiceParams) (*queries.ServiceView, error) {
	svc, err := c.loadOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		if err := svc.Rename(*params.Name); err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}
	}
	if params.PriceCents != nil {
		if err := svc.ChangePrice(*params.PriceCents); err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}
	}
	svc.UpdateCatalog(params.Type, params.Category, params.Subcategory, params.Details, params.ImageRef)
	if params.Active != nil {
		if *params.Active {
			svc.Activate()
		} else {
			svc.Deactivate()
		}
	}

	if err := c.repo.Update(ctx, svc); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "persist service update"), ErrPersistenceFailed)
	}
	return c.viewOf(ctx, ownerID, id)
}

func (c *serviceCommands) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := c.loadOwned(ctx, ownerID, id); err != nil {
		return err
	}
	if err := c.repo.Delete(ctx, ownerID, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrServiceNotFound
		}
		return errs.Mark(errs.Wrap(err, "delete service"), ErrPersistenceFailed)
	}
	return nil
}

func (c *serviceCommands) loadOwned(ctx context.Context, ownerID, id uuid.UUID) (*domservice.Service, error) {
	svc, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "load service"), ErrPersistenceFailed)
	}
	if svc.OwnerID() != ownerID {
		return nil, ErrUnauthorizedOwner
	}
	return svc, nil
}

func (c *serviceCommands) viewOf(ctx context.Context, ownerID, id uuid.UUID) (*queries.ServiceView, error) {
	view, err := c.queries.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "read back service"), ErrPersistenceFailed)
	}
	return view, nil
}
