package bookingRepo

import (
	"testing"
	"time"

	"legato/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBooking(t *testing.T, repo *MemoryBookingRepo, id, lawyerUID string, status models.BookingStatus, fee float64, scheduled time.Time) {
	t.Helper()
	require.NoError(t, repo.Create(&models.Booking{
		ID:              id,
		ClientUID:       "client-1",
		LawyerUID:       lawyerUID,
		Topic:           "Contract review",
		ScheduledAt:     scheduled,
		DurationMinutes: 60,
		Fee:             fee,
		Status:          status,
	}))
}

func TestEarningsSummaryCountsCompletedOnly(t *testing.T) {
	repo := NewMemoryBookingRepo()
	jan := time.Date(2026, time.January, 10, 9, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 3, 14, 0, 0, 0, time.UTC)

	seedBooking(t, repo, "b1", "lawyer-1", models.BookingCompleted, 120, jan)
	seedBooking(t, repo, "b2", "lawyer-1", models.BookingCompleted, 80, jan.AddDate(0, 0, 5))
	seedBooking(t, repo, "b3", "lawyer-1", models.BookingCompleted, 200, feb)
	seedBooking(t, repo, "b4", "lawyer-1", models.BookingCancelled, 500, feb)
	seedBooking(t, repo, "b5", "lawyer-1", models.BookingPending, 75, feb)
	seedBooking(t, repo, "b6", "lawyer-2", models.BookingCompleted, 90, feb)

	summary, err := repo.EarningsSummary("lawyer-1")
	require.NoError(t, err)
	assert.Equal(t, 400.0, summary.Total)
	assert.Equal(t, 3, summary.Completed)
	assert.Equal(t, 200.0, summary.ByMonth["2026-01"])
	assert.Equal(t, 200.0, summary.ByMonth["2026-02"])
}

func TestEarningsSummaryEmpty(t *testing.T) {
	repo := NewMemoryBookingRepo()

	summary, err := repo.EarningsSummary("lawyer-1")
	require.NoError(t, err)
	assert.Zero(t, summary.Total)
	assert.Zero(t, summary.Completed)
	assert.Empty(t, summary.ByMonth)
}

func TestListByLawyerSortsNewestFirst(t *testing.T) {
	repo := NewMemoryBookingRepo()
	base := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)

	seedBooking(t, repo, "b1", "lawyer-1", models.BookingConfirmed, 100, base)
	seedBooking(t, repo, "b2", "lawyer-1", models.BookingConfirmed, 100, base.AddDate(0, 0, 2))
	seedBooking(t, repo, "b3", "lawyer-1", models.BookingConfirmed, 100, base.AddDate(0, 0, 1))

	bookings, err := repo.ListByLawyer("lawyer-1")
	require.NoError(t, err)
	require.Len(t, bookings, 3)
	assert.Equal(t, "b2", bookings[0].ID)
	assert.Equal(t, "b3", bookings[1].ID)
	assert.Equal(t, "b1", bookings[2].ID)
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	repo := NewMemoryBookingRepo()
	assert.Error(t, repo.UpdateStatus("missing", models.BookingConfirmed))
}
