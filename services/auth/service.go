package auth

import (
	"context"
	"time"

	profileRepo "legato/database/repository/profile"
	"legato/models"
	"legato/utils"

	"go.uber.org/zap"
)

// DefaultAuthService implements AuthService on an IdentityProvider and a
// ProfileRepository.
type DefaultAuthService struct {
	IDP     IdentityProvider
	Profile profileRepo.ProfileRepository
}

// register runs the shared provider flow once the account skeleton is built:
// create the identity, set its display name, write the profile document.
func (s *DefaultAuthService) register(ctx context.Context, password string, account *models.UserAccount) (*models.UserAccount, error) {
	uid, err := s.IDP.CreateAccount(ctx, account.Email, password)
	if err != nil {
		return nil, err
	}

	if err := s.IDP.SetDisplayName(ctx, uid, account.DisplayName); err != nil {
		utils.GetLogger().Error("Failed to set display name", zap.String("uid", uid), zap.Error(err))
	}

	now := time.Now()
	account.UID = uid
	account.CreatedAt = now
	account.UpdatedAt = now

	if err := s.Profile.Create(account); err != nil {
		utils.GetLogger().Error("Failed to write profile document", zap.String("uid", uid), zap.Error(err))
		return nil, err
	}
	return account, nil
}

// RegisterClient creates a client account.
func (s *DefaultAuthService) RegisterClient(ctx context.Context, reg models.ClientRegistration) (*models.UserAccount, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	account := &models.UserAccount{
		Email:       reg.Email,
		DisplayName: reg.DisplayName,
		Role:        models.RoleClient,
		Phone:       reg.Phone,
	}
	return s.register(ctx, reg.Password, account)
}

// RegisterLawyer creates a lawyer account.
func (s *DefaultAuthService) RegisterLawyer(ctx context.Context, reg models.LawyerRegistration) (*models.UserAccount, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	account := &models.UserAccount{
		Email:       reg.Email,
		DisplayName: reg.DisplayName,
		Role:        models.RoleLawyer,
		Phone:       reg.Phone,
		Lawyer: &models.LawyerAttributes{
			Specialization: reg.Specialization,
			HourlyRate:     reg.HourlyRate,
			Experience:     reg.Experience,
			Bio:            reg.Bio,
			BarLicense:     reg.BarLicense,
			Languages:      reg.Languages,
		},
	}
	return s.register(ctx, reg.Password, account)
}

// Login verifies credentials and returns the account with its role.
func (s *DefaultAuthService) Login(ctx context.Context, req models.LoginRequest) (*models.UserAccount, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cred, err := s.IDP.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	account, err := s.Profile.GetByUID(cred.UID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch profile after login", zap.String("uid", cred.UID), zap.Error(err))
		return nil, err
	}
	if account == nil {
		// Identity exists but no profile document: fatal to the login flow,
		// the role is never defaulted.
		return nil, ErrProfileNotFound
	}
	return account, nil
}

// GetProfile reads the profile document for uid.
func (s *DefaultAuthService) GetProfile(ctx context.Context, uid string) (*models.UserAccount, error) {
	account, err := s.Profile.GetByUID(uid)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrProfileNotFound
	}
	return account, nil
}

// UpdateProfile merges the edit onto the stored profile document and writes
// it back. Fields the edit omits keep their stored values, so a partial
// payload can never blank the lawyer attributes or the email.
func (s *DefaultAuthService) UpdateProfile(ctx context.Context, uid string, edit models.ProfileUpdate) (*models.UserAccount, error) {
	if err := edit.Validate(); err != nil {
		return nil, err
	}

	account, err := s.Profile.GetByUID(uid)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrProfileNotFound
	}

	edit.Apply(account)
	if err := s.Profile.Update(account); err != nil {
		utils.GetLogger().Error("Failed to update profile", zap.String("uid", uid), zap.Error(err))
		return nil, err
	}
	return account, nil
}

// Logout terminates the provider-side session. Never fails.
func (s *DefaultAuthService) Logout(ctx context.Context, uid string) {
	if err := s.IDP.EndSession(ctx, uid); err != nil {
		utils.GetLogger().Error("Logout failed", zap.String("uid", uid), zap.Error(err))
	}
}

// Provider exposes the identity provider for session-change subscriptions.
func (s *DefaultAuthService) Provider() IdentityProvider {
	return s.IDP
}
