package bookingRepo

import "legato/models"

// BookingRepository defines methods for consultation booking access.
type BookingRepository interface {
	// Create inserts a new booking.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// ListByClient retrieves bookings made by a client, newest first.
	ListByClient(clientUID string) ([]models.Booking, error)
	// ListByLawyer retrieves bookings assigned to a lawyer, newest first.
	ListByLawyer(lawyerUID string) ([]models.Booking, error)
	// UpdateStatus moves a booking to the given status.
	UpdateStatus(id string, status models.BookingStatus) error
	// EarningsSummary aggregates a lawyer's completed bookings.
	EarningsSummary(lawyerUID string) (*models.EarningsSummary, error)
}
