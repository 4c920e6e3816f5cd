package auth

import (
	"context"
	"testing"

	profileRepo "legato/database/repository/profile"
	"legato/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingProvider wraps MemoryProvider and counts provider calls so tests
// can assert that validation happens before any network-facing call.
type countingProvider struct {
	*MemoryProvider
	createCalls int
	authCalls   int
}

func (p *countingProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	p.createCalls++
	return p.MemoryProvider.CreateAccount(ctx, email, password)
}

func (p *countingProvider) Authenticate(ctx context.Context, email, password string) (*Credential, error) {
	p.authCalls++
	return p.MemoryProvider.Authenticate(ctx, email, password)
}

func newTestService() (*DefaultAuthService, *countingProvider, *profileRepo.MemoryProfileRepo) {
	idp := &countingProvider{MemoryProvider: NewMemoryProvider()}
	profiles := profileRepo.NewMemoryProfileRepo()
	return &DefaultAuthService{IDP: idp, Profile: profiles}, idp, profiles
}

func validClient() models.ClientRegistration {
	return models.ClientRegistration{
		Email:           "jane@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		DisplayName:     "Jane Doe",
		Phone:           "0712345678",
	}
}

func validLawyer() models.LawyerRegistration {
	return models.LawyerRegistration{
		Email:           "amos@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		DisplayName:     "Amos Kip",
		Phone:           "0712345678",
		Specialization:  []string{"Family Law"},
		Experience:      8,
		HourlyRate:      120,
		Bio:             "Family law practitioner with eight years of courtroom and mediation experience.",
		Languages:       []string{"English", "Swahili"},
	}
}

func TestRegisterClientShortPasswordFailsBeforeProviderCall(t *testing.T) {
	svc, idp, _ := newTestService()

	reg := validClient()
	reg.Password = "abc"
	reg.ConfirmPassword = "abc"

	_, err := svc.RegisterClient(context.Background(), reg)

	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Must be at least 6 characters", ve.Message)
	assert.Zero(t, idp.createCalls, "provider must not be called on validation failure")
}

func TestRegisterClientPasswordMismatchFailsBeforeProviderCall(t *testing.T) {
	svc, idp, _ := newTestService()

	reg := validClient()
	reg.ConfirmPassword = "different"

	_, err := svc.RegisterClient(context.Background(), reg)

	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Passwords do not match", ve.Message)
	assert.Zero(t, idp.createCalls)
}

func TestRegisterLawyerRequiresSpecialization(t *testing.T) {
	svc, idp, profiles := newTestService()

	reg := validLawyer()
	reg.Specialization = nil

	_, err := svc.RegisterLawyer(context.Background(), reg)

	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Please select at least one specialization", ve.Message)
	assert.Zero(t, idp.createCalls)

	account, err := profiles.GetByEmail(reg.Email)
	require.NoError(t, err)
	assert.Nil(t, account, "no account may be created")
}

func TestRegisterLawyerRequiresLanguage(t *testing.T) {
	svc, _, _ := newTestService()

	reg := validLawyer()
	reg.Languages = nil

	_, err := svc.RegisterLawyer(context.Background(), reg)

	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Please select at least one language", ve.Message)
}

func TestRegisterWritesProfileWithRoleAndTimestamps(t *testing.T) {
	svc, _, profiles := newTestService()

	account, err := svc.RegisterLawyer(context.Background(), validLawyer())
	require.NoError(t, err)
	require.NotEmpty(t, account.UID)
	assert.Equal(t, models.RoleLawyer, account.Role)
	assert.False(t, account.CreatedAt.IsZero())
	assert.False(t, account.UpdatedAt.IsZero())
	require.NotNil(t, account.Lawyer)
	assert.Equal(t, []string{"Family Law"}, account.Lawyer.Specialization)

	stored, err := profiles.GetByUID(account.UID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.RoleLawyer, stored.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.RegisterClient(context.Background(), validClient())
	require.NoError(t, err)

	_, err = svc.RegisterClient(context.Background(), validClient())
	require.Error(t, err)

	var ae *Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "auth/email-already-in-use", ae.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.RegisterClient(context.Background(), validClient())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "jane@example.com", Password: "wrong1"})
	require.Error(t, err)

	var ae *Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "auth/invalid-credential", ae.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestLoginReturnsProfileRole(t *testing.T) {
	svc, _, _ := newTestService()

	registered, err := svc.RegisterClient(context.Background(), validClient())
	require.NoError(t, err)

	account, err := svc.Login(context.Background(), models.LoginRequest{Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, registered.UID, account.UID)
	assert.Equal(t, models.RoleClient, account.Role)
}

func TestLoginWithoutProfileDocumentIsFatal(t *testing.T) {
	svc, idp, _ := newTestService()

	// Identity created out-of-band: exists in the provider, no profile doc.
	_, err := idp.MemoryProvider.CreateAccount(context.Background(), "ghost@example.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "secret1"})
	require.Error(t, err)

	var ae *Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "auth/profile-not-found", ae.Code)
}

func TestProfileUpdateCannotChangeRole(t *testing.T) {
	svc, _, profiles := newTestService()

	account, err := svc.RegisterClient(context.Background(), validClient())
	require.NoError(t, err)

	_, err = svc.UpdateProfile(context.Background(), account.UID, models.ProfileUpdate{DisplayName: "Jane Q. Doe"})
	require.NoError(t, err)

	stored, err := profiles.GetByUID(account.UID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleClient, stored.Role)
	assert.Equal(t, "Jane Q. Doe", stored.DisplayName)
}

func TestProfileUpdatePartialKeepsLawyerAttributes(t *testing.T) {
	svc, _, profiles := newTestService()

	account, err := svc.RegisterLawyer(context.Background(), validLawyer())
	require.NoError(t, err)

	// An edit that omits the lawyer block must not touch it.
	updated, err := svc.UpdateProfile(context.Background(), account.UID, models.ProfileUpdate{Phone: "0798765432"})
	require.NoError(t, err)
	assert.Equal(t, "0798765432", updated.Phone)

	stored, err := profiles.GetByUID(account.UID)
	require.NoError(t, err)
	require.NotNil(t, stored.Lawyer)
	assert.Equal(t, []string{"Family Law"}, stored.Lawyer.Specialization)
	assert.Equal(t, 120.0, stored.Lawyer.HourlyRate)
	assert.Equal(t, account.Lawyer.Bio, stored.Lawyer.Bio)
	assert.Equal(t, account.Email, stored.Email)
}

func TestProfileUpdateMergesLawyerFields(t *testing.T) {
	svc, _, profiles := newTestService()

	account, err := svc.RegisterLawyer(context.Background(), validLawyer())
	require.NoError(t, err)

	rate := 150.0
	_, err = svc.UpdateProfile(context.Background(), account.UID, models.ProfileUpdate{
		Lawyer: &models.LawyerUpdate{HourlyRate: &rate},
	})
	require.NoError(t, err)

	stored, err := profiles.GetByUID(account.UID)
	require.NoError(t, err)
	require.NotNil(t, stored.Lawyer)
	assert.Equal(t, 150.0, stored.Lawyer.HourlyRate)
	assert.Equal(t, []string{"Family Law"}, stored.Lawyer.Specialization)
	assert.Equal(t, []string{"English", "Swahili"}, stored.Lawyer.Languages)
}

func TestProfileUpdateValidatesEdit(t *testing.T) {
	svc, _, _ := newTestService()

	account, err := svc.RegisterLawyer(context.Background(), validLawyer())
	require.NoError(t, err)

	rate := 5000.0
	_, err = svc.UpdateProfile(context.Background(), account.UID, models.ProfileUpdate{
		Lawyer: &models.LawyerUpdate{HourlyRate: &rate},
	})
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Please enter a reasonable hourly rate", ve.Message)
}

func TestProfileUpdateUnknownUID(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.UpdateProfile(context.Background(), "no-such-uid", models.ProfileUpdate{Phone: "0798765432"})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
