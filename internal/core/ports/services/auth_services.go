package services

import (
	"context"
	"time"

	"golang.org/x/oauth2"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
)

// TokenSvcFacade issues application access tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user and returns it
	// with its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleIDClaims is the subset of a validated Google ID token that the
// sign-in flow consumes.
type GoogleIDClaims struct {
	Email string
	Name  string
}

// GoogleOAuthSvcFacade wraps the Google authorization-code exchange and ID
// token validation used by the OAuth sign-in endpoint.
type GoogleOAuthSvcFacade interface {
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*GoogleIDClaims, error)
}
