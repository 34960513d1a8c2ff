package jwttoken

import (
	"consentry/internal/platform/middleware"
)

// ToPrincipal maps token claims onto the middleware's authenticated principal.
// The subject identifier falls back to the registered subject claim when the
// token was issued without a user_id field.
func ToPrincipal(claims *Claims) *middleware.Principal {
	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	return &middleware.Principal{
		UserID:    userID,
		SessionID: claims.SessionID,
	}
}

// VerifierAdapter exposes Service as a middleware.TokenVerifier.
type VerifierAdapter struct {
	service *Service
}

func NewVerifierAdapter(service *Service) *VerifierAdapter {
	return &VerifierAdapter{service: service}
}

func (a *VerifierAdapter) Verify(tokenString string) (*middleware.Principal, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return ToPrincipal(claims), nil
}
