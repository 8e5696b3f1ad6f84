package usecase

import (
	"badge-promotion-engine/internal/domain/user"
	"badge-promotion-engine/internal/pkg/jwt"
)

// TokenValidator turns a bearer token issued by the identity provider into
// the calling actor.
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Actor{}, err
	}
	return user.NewActor(claims.UserID, claims.IsAdmin), nil
}
