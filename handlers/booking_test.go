package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	bookingRepo "legato/database/repository/booking"
	profileRepo "legato/database/repository/profile"
	"legato/middleware"
	"legato/models"
	"legato/services/auth"
	"legato/services/session"
	"legato/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type bookingFixture struct {
	router   *gin.Engine
	svc      *auth.DefaultAuthService
	profiles *profileRepo.MemoryProfileRepo
	bookings *bookingRepo.MemoryBookingRepo
}

// newBookingFixture builds the booking route without a recovery middleware,
// so a panicking handler fails the test instead of becoming a silent 500.
func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	profiles := profileRepo.NewMemoryProfileRepo()
	bookings := bookingRepo.NewMemoryBookingRepo()
	svc := &auth.DefaultAuthService{IDP: auth.NewMemoryProvider(), Profile: profiles}
	h := NewBookingHandler(bookings, profiles, zap.NewNop())

	r := gin.New()
	r.POST("/api/lawyers/:id/booking", middleware.SessionAuth(models.RoleClient), h.CreateBookingHandler)
	return &bookingFixture{router: r, svc: svc, profiles: profiles, bookings: bookings}
}

func (f *bookingFixture) registerParties(t *testing.T) (lawyerUID, clientUID string) {
	t.Helper()

	lawyer, err := f.svc.RegisterLawyer(context.Background(), models.LawyerRegistration{
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

	client, err := f.svc.RegisterClient(context.Background(), models.ClientRegistration{
		Email:           "jane@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		DisplayName:     "Jane Doe",
		Phone:           "0712345679",
	})
	require.NoError(t, err)
	return lawyer.UID, client.UID
}

func (f *bookingFixture) postBooking(t *testing.T, lawyerUID, clientUID string) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(map[string]any{
		"topic":           "Custody arrangement",
		"scheduledAt":     time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"durationMinutes": 60,
	})
	require.NoError(t, err)

	token, err := utils.GenerateSessionToken(clientUID, "client", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/lawyers/"+lawyerUID+"/booking", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: session.TokenCookie, Value: token})
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestCreateBookingPricesFromHourlyRate(t *testing.T) {
	f := newBookingFixture(t)
	lawyerUID, clientUID := f.registerParties(t)

	w := f.postBooking(t, lawyerUID, clientUID)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var booking models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booking))
	assert.Equal(t, 120.0, booking.Fee)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, lawyerUID, booking.LawyerUID)
	assert.Equal(t, clientUID, booking.ClientUID)
}

func TestCreateBookingLawyerWithoutAttributes(t *testing.T) {
	f := newBookingFixture(t)
	lawyerUID, clientUID := f.registerParties(t)

	// A lawyer document stripped of its attributes must be unbookable, not a
	// nil dereference.
	stored, err := f.profiles.GetByUID(lawyerUID)
	require.NoError(t, err)
	stored.Lawyer = nil
	require.NoError(t, f.profiles.Update(stored))

	w := f.postBooking(t, lawyerUID, clientUID)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Lawyer not found")
}

func TestCreateBookingAgainstClientProfile(t *testing.T) {
	f := newBookingFixture(t)
	_, clientUID := f.registerParties(t)

	w := f.postBooking(t, clientUID, clientUID)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBookingRequiresClientSession(t *testing.T) {
	f := newBookingFixture(t)
	lawyerUID, _ := f.registerParties(t)

	payload := []byte(`{"topic":"Custody arrangement","durationMinutes":60}`)
	req := httptest.NewRequest(http.MethodPost, "/api/lawyers/"+lawyerUID+"/booking", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
