package auth

import (
	"context"

	"legato/models"
)

// AuthService performs account creation, credential verification, and
// profile retrieval against the identity provider. It is the sole writer of
// profile documents.
type AuthService interface {
	// RegisterClient creates a client account. Validation failures are
	// returned before any provider call is made.
	RegisterClient(ctx context.Context, reg models.ClientRegistration) (*models.UserAccount, error)
	// RegisterLawyer creates a lawyer account. Validation failures are
	// returned before any provider call is made.
	RegisterLawyer(ctx context.Context, reg models.LawyerRegistration) (*models.UserAccount, error)
	// Login verifies credentials and returns the account with its role.
	// A missing profile document fails the login with ErrProfileNotFound.
	Login(ctx context.Context, req models.LoginRequest) (*models.UserAccount, error)
	// GetProfile reads the profile document for uid.
	GetProfile(ctx context.Context, uid string) (*models.UserAccount, error)
	// UpdateProfile merges the edit onto the stored profile and returns the
	// result. Omitted fields stay untouched; the role is never changed.
	UpdateProfile(ctx context.Context, uid string, edit models.ProfileUpdate) (*models.UserAccount, error)
	// Logout terminates the provider-side session. Errors are logged, not
	// surfaced.
	Logout(ctx context.Context, uid string)
	// Provider exposes the identity provider for session-change
	// subscriptions.
	Provider() IdentityProvider
}
