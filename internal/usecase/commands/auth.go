package commands

import (
	"context"
	"log/slog"

	"bookline/internal/domain/user"
	"bookline/internal/infra"
	"bookline/internal/pkg/errs"
	"bookline/internal/pkg/jwt"
	"bookline/internal/pkg/password"
	"bookline/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrEmailTaken           = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type LoginResult struct {
	OwnerID   uuid.UUID
	TokenPair *TokenPair
}

type RegisterParams struct {
	Email    string
	Password string
	Name     string
}

type AuthCommands interface {
	Register(ctx context.Context, params RegisterParams) (*queries.OwnerView, error)
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	users      UserRepository
	readStore  queries.UserReadStore
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewAuthCommands(users UserRepository, readStore queries.UserReadStore, jwtService *jwt.Service, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		users:      users,
		readStore:  readStore,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, params RegisterParams) (*queries.OwnerView, error) {
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	hash, err := password.HashPassword(params.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	owner, err := user.NewUser(email, hash, params.Name)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	if err := a.users.Create(ctx, owner); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(errs.Wrap(err, "persist owner account"), ErrPersistenceFailed)
	}

	view, err := a.readStore.FindByID(ctx, owner.ID())
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "read back owner account"), ErrPersistenceFailed)
	}
	return view, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	owner, err := a.validateOwner(ctx, email, rawPassword)
	if err != nil {
		return nil, err
	}

	pair, err := a.issueTokens(owner.ID)
	if err != nil {
		return nil, err
	}

	if err := a.users.UpdateLastLogin(ctx, owner.ID); err != nil {
		a.logger.Warn("failed to update last login", "owner_id", owner.ID, "error", err.Error())
	}

	return &LoginResult{OwnerID: owner.ID, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	owner, err := a.readStore.FindByID(ctx, claims.OwnerID)
	if err != nil || owner == nil {
		return nil, ErrUserNotFound
	}
	if !owner.IsActive {
		return nil, ErrUserInactive
	}

	return a.issueTokens(claims.OwnerID)
}

func (a *authCommandsImpl) issueTokens(ownerID uuid.UUID) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(ownerID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authCommandsImpl) validateOwner(ctx context.Context, email, rawPassword string) (*queries.OwnerView, error) {
	parsed, err := user.NewEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// A missing account and a wrong password look identical to the caller
	// to avoid user enumeration.
	owner, err := a.readStore.FindByEmail(ctx, parsed.String())
	if err != nil || owner == nil {
		return nil, ErrInvalidCredentials
	}
	if !owner.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(owner.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	return owner, nil
}
