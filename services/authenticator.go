// services/authenticator.go
package services

import (
	"context"

	"google.golang.org/api/idtoken"

	"github.com/ediestyles/closet_backend/apperr"
	"github.com/ediestyles/closet_backend/middleware"
	"github.com/ediestyles/closet_backend/models"
	"github.com/ediestyles/closet_backend/repositories"
)

// IdentityVerifier checks a Google identity credential and returns the email
// address it was issued for.
type IdentityVerifier interface {
	Verify(ctx context.Context, credential, audience string) (string, error)
}

// GoogleIdentityVerifier validates credentials against Google's public keys.
type GoogleIdentityVerifier struct{}

func (GoogleIdentityVerifier) Verify(ctx context.Context, credential, audience string) (string, error) {
	payload, err := idtoken.Validate(ctx, credential, audience)
	if err != nil {
		return "", apperr.Unauthenticated("invalid credential")
	}
	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return "", apperr.Unauthenticated("invalid credential")
	}
	return email, nil
}

// AuthService exchanges verified identities for session tokens.
type AuthService struct {
	clients  repositories.ClientStore
	verifier IdentityVerifier
}

func NewAuthService(clients repositories.ClientStore, verifier IdentityVerifier) *AuthService {
	return &AuthService{clients: clients, verifier: verifier}
}

// Authenticate verifies the credential, looks up the client by the verified
// email, and issues a token carrying the client's stored role flags.
func (s *AuthService) Authenticate(ctx context.Context, credential, audience string) (*models.AuthResponse, error) {
	if credential == "" || audience == "" {
		return nil, apperr.InvalidArgument("missing credential or client id")
	}

	email, err := s.verifier.Verify(ctx, credential, audience)
	if err != nil {
		return nil, err
	}

	client, err := s.clients.FindByEmail(ctx, email)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, apperr.Unauthenticated("client not found")
		}
		return nil, err
	}

	token, err := middleware.GenerateJWT(client.ID.Hex(), client.IsAdmin, client.IsSuperAdmin)
	if err != nil {
		return nil, apperr.Internal("error generating token: %v", err)
	}

	return &models.AuthResponse{Token: token, User: *client}, nil
}

// VerifySession re-reads the client behind a parsed claim and rejects the
// session when the client is gone or its role flags no longer match.
func (s *AuthService) VerifySession(ctx context.Context, claim *middleware.JwtCustomClaims) (*models.Client, error) {
	client, err := s.clients.FindByID(ctx, claim.UserID)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) || apperr.Is(err, apperr.KindInvalidArgument) {
			return nil, apperr.Unauthenticated("invalid token")
		}
		return nil, err
	}

	if client.IsAdmin != claim.IsAdmin || client.IsSuperAdmin != claim.IsSuperAdmin {
		return nil, apperr.Unauthenticated("invalid token")
	}

	return client, nil
}
