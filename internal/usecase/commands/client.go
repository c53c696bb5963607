package commands

import (
	"context"

	domclient "bookline/internal/domain/client"
	"bookline/internal/infra"
	"bookline/internal/pkg/errs"
	"bookline/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrClientNotFound = errs.New("client not found")

type CreateClientParams struct {
	Type  domclient.Type
	Name  string
	Email string
	Phone string
}

type UpdateClientParams struct {
	Name   *string
	Email  *string
	Phone  *string
	Status *domclient.Status
}

type ClientCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, params CreateClientParams) (*queries.ClientView, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, params UpdateClientParams) (*queries.ClientView, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type clientCommands struct {
	repo    ClientRepository
	queries queries.ClientQueries
}

func NewClientCommands(repo ClientRepository, q queries.ClientQueries) ClientCommands {
	return &clientCommands{repo: repo, queries: q}
}

func (c *clientCommands) Create(ctx context.Context, ownerID uuid.UUID, params CreateClientParams) (*queries.ClientView, error) {
	cl, err := domclient.NewClient(ownerID, params.Type, params.Name, params.Email, params.Phone)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if err := c.repo.Create(ctx, cl); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "persist client"), ErrPersistenceFailed)
	}
	return c.viewOf(ctx, ownerID, cl.ID())
}

func (c *clientCommands) Update(ctx context.Context, ownerID, id uuid.UUID, params UpdateClientParams) (*queries.ClientView, error) {
	cl, err := c.loadOwned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		if err := cl.Rename(*params.Name); err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}
	}
	if params.Email != nil || params.Phone != nil {
		email := cl.Email()
		if params.Email != nil {
			email = *params.Email
		}
		phone := cl.Phone()
		if params.Phone != nil {
			phone = *params.Phone
		}
		cl.UpdateContact(email, phone)
	}
	if params.Status != nil {
		if err := cl.ChangeStatus(*params.Status); err != nil {
			return nil, errs.Mark(err, ErrValidation)
		}
	}

	if err := c.repo.Update(ctx, cl); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "persist client update"), ErrPersistenceFailed)
	}
	return c.viewOf(ctx, ownerID, id)
}

func (c *clientCommands) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if _, err := c.loadOwned(ctx, ownerID, id); err != nil {
		return err
	}
	if err := c.repo.Delete(ctx, ownerID, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrClientNotFound
		}
		return errs.Mark(errs.Wrap(err, "delete client"), ErrPersistenceFailed)
	}
	return nil
}

func (c *clientCommands) loadOwned(ctx context.Context, ownerID, id uuid.UUID) (*domclient.Client, error) {
	cl, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, errs.Mark(errs.Wrap(err, "load client"), ErrPersistenceFailed)
	}
	if cl.OwnerID() != ownerID {
		return nil, ErrUnauthorizedOwner
	}
	return cl, nil
}

func (c *clientCommands) viewOf(ctx context.Context, ownerID, id uuid.UUID) (*queries.ClientView, error) {
	view, err := c.queries.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "read back client"), ErrPersistenceFailed)
	}
	return view, nil
}
