package usecase

import (
	"context"

	"bookline/internal/pkg/errs"
	"bookline/internal/pkg/jwt"
	"bookline/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrInvalidAccessToken = errs.New("invalid access token")

// TokenValidator resolves a bearer token to the owner it authenticates.
// Refresh tokens are rejected here; they are only good for the refresh flow.
type TokenValidator interface {
	Validate(ctx context.Context, tokenString string) (uuid.UUID, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	readStore  queries.UserReadStore
}

func NewTokenValidator(jwtService *jwt.Service, readStore queries.UserReadStore) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService, readStore: readStore}
}

func (v *tokenValidatorImpl) Validate(ctx context.Context, tokenString string) (uuid.UUID, error) {
	claims, err := v.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidAccessToken)
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return uuid.Nil, ErrInvalidAccessToken
	}

	owner, err := v.readStore.FindByID(ctx, claims.OwnerID)
	if err != nil || owner == nil || !owner.IsActive {
		return uuid.Nil, ErrInvalidAccessToken
	}
	return claims.OwnerID, nil
}
