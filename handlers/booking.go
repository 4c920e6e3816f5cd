package handlers

import (
	"net/http"

	bookingRepo "legato/database/repository/booking"
	profileRepo "legato/database/repository/profile"
	"legato/middleware"
	"legato/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingHandler serves the consultation booking endpoints.
type BookingHandler struct {
	Bookings bookingRepo.BookingRepository
	Profiles profileRepo.ProfileRepository
	Logger   *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(bookings bookingRepo.BookingRepository, profiles profileRepo.ProfileRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Profiles: profiles, Logger: logger}
}

// CreateBookingHandler handles POST /api/lawyers/:id/booking. Requires a
// client session.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	lawyerUID := c.Param("id")
	clientUID := middleware.SessionUID(c)

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := input.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lawyer, err := h.Profiles.GetByUID(lawyerUID)
	if err != nil {
		h.Logger.Error("Failed to fetch lawyer for booking", zap.String("uid", lawyerUID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	// A lawyer document without its attributes cannot price a consultation.
	if lawyer == nil || lawyer.Role != models.RoleLawyer || lawyer.Lawyer == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lawyer not found"})
		return
	}

	client, err := h.Profiles.GetByUID(clientUID)
	if err != nil || client == nil {
		h.Logger.Error("Failed to fetch client for booking", zap.String("uid", clientUID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}

	fee := lawyer.Lawyer.HourlyRate * float64(input.DurationMinutes) / 60
	booking := &models.Booking{
		ID:              uuid.New().String(),
		ClientUID:       clientUID,
		ClientName:      client.DisplayName,
		LawyerUID:       lawyerUID,
		LawyerName:      lawyer.DisplayName,
		Topic:           input.Topic,
		ScheduledAt:     input.ScheduledAt,
		DurationMinutes: input.DurationMinutes,
		Fee:             fee,
		Status:          models.BookingPending,
	}

	if err := h.Bookings.Create(booking); err != nil {
		h.Logger.Error("Failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// ListBookingsHandler handles GET /api/dashboard/bookings. Clients see the
// bookings they made; lawyers see the consultations assigned to them.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	uid := middleware.SessionUID(c)

	var (
		bookings []models.Booking
		err      error
	)
	if middleware.SessionRole(c) == models.RoleLawyer {
		bookings, err = h.Bookings.ListByLawyer(uid)
	} else {
		bookings, err = h.Bookings.ListByClient(uid)
	}
	if err != nil {
		h.Logger.Error("Failed to list bookings", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBookingStatusHandler handles PATCH /api/dashboard/bookings/:id.
// Only the two parties of the booking may move its status.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	id := c.Param("id")
	uid := middleware.SessionUID(c)

	var req struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	switch req.Status {
	case models.BookingConfirmed, models.BookingCompleted, models.BookingCancelled:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking status"})
		return
	}

	booking, err := h.Bookings.GetByID(id)
	if err != nil {
		h.Logger.Error("Failed to fetch booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	if booking == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if booking.ClientUID != uid && booking.LawyerUID != uid {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your booking"})
		return
	}

	if err := h.Bookings.UpdateStatus(id, req.Status); err != nil {
		h.Logger.Error("Failed to update booking status", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking updated"})
}

// EarningsHandler handles GET /api/dashboard/earnings. Lawyer only.
func (h *BookingHandler) EarningsHandler(c *gin.Context) {
	uid := middleware.SessionUID(c)

	summary, err := h.Bookings.EarningsSummary(uid)
	if err != nil {
		h.Logger.Error("Failed to aggregate earnings", zap.String("uid", uid), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}
	c.JSON(http.StatusOK, summary)
}
