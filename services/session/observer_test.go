package session

import (
	"context"
	"testing"
	"time"

	profileRepo "legato/database/repository/profile"
	"legato/models"
	"legato/services/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newObserverFixture(t *testing.T) (*Observer, *auth.DefaultAuthService, *MemoryRoleMirror) {
	t.Helper()

	svc := &auth.DefaultAuthService{
		IDP:     auth.NewMemoryProvider(),
		Profile: profileRepo.NewMemoryProfileRepo(),
	}
	mirror := NewMemoryRoleMirror()
	obs := NewObserver(svc, mirror)
	obs.Start()
	t.Cleanup(obs.Stop)
	return obs, svc, mirror
}

func registerLawyer(t *testing.T, svc *auth.DefaultAuthService) *models.UserAccount {
	t.Helper()

	account, err := svc.RegisterLawyer(context.Background(), models.LawyerRegistration{
		Email:           "amos@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		DisplayName:     "Amos Kip",
		Phone:           "0712345678",
		Specialization:  []string{"Family Law"},
		Experience:      8,
		HourlyRate:      120,
		Bio:             "Family law practitioner with eight years of courtroom and mediation experience.",
		Languages:       []string{"English"},
	})
	require.NoError(t, err)
	return account
}

func TestObserverStartsLoading(t *testing.T) {
	obs, _, _ := newObserverFixture(t)

	state, profile := obs.State()
	assert.Equal(t, StateLoading, state)
	assert.Nil(t, profile)
}

func TestObserverFollowsLoginAndLogout(t *testing.T) {
	obs, svc, mirror := newObserverFixture(t)
	account := registerLawyer(t, svc)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: account.Email, Password: "secret1"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		state, _ := obs.State()
		return state == StateAuthenticated
	}, time.Second, 10*time.Millisecond)

	state, profile := obs.State()
	require.Equal(t, StateAuthenticated, state)
	require.NotNil(t, profile)
	assert.Equal(t, account.UID, profile.UID)
	assert.Equal(t, models.RoleLawyer, profile.Role)

	role, ok, err := mirror.Get(context.Background(), account.UID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.RoleLawyer, role)

	svc.Logout(context.Background(), account.UID)

	require.Eventually(t, func() bool {
		state, _ := obs.State()
		return state == StateAnonymous
	}, time.Second, 10*time.Millisecond)

	_, profile = obs.State()
	assert.Nil(t, profile)

	_, ok, err = mirror.Get(context.Background(), account.UID)
	require.NoError(t, err)
	assert.False(t, ok, "mirror entry must be cleared on logout")
}

func TestObserverFailedLoginLeavesStateUnchanged(t *testing.T) {
	obs, svc, _ := newObserverFixture(t)
	account := registerLawyer(t, svc)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: account.Email, Password: "wrong1"})
	require.Error(t, err)

	// Failed authentication emits no session event.
	time.Sleep(50 * time.Millisecond)
	state, _ := obs.State()
	assert.Equal(t, StateLoading, state)
}

func TestObserverStartIsIdempotent(t *testing.T) {
	obs, svc, _ := newObserverFixture(t)
	account := registerLawyer(t, svc)

	// Repeated starts must not spawn extra subscriptions or loops.
	obs.Start()
	obs.Start()

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: account.Email, Password: "secret1"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		state, _ := obs.State()
		return state == StateAuthenticated
	}, time.Second, 10*time.Millisecond)
}
