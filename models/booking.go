// models/booking.go
package models

import "time"

// BookingStatus is the lifecycle state of a consultation booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a consultation booked by a client with a lawyer.
type Booking struct {
	ID              string        `bson:"id" json:"id"`
	ClientUID       string        `bson:"client_uid" json:"clientUid"`
	ClientName      string        `bson:"client_name" json:"clientName"`
	LawyerUID       string        `bson:"lawyer_uid" json:"lawyerUid"`
	LawyerName      string        `bson:"lawyer_name" json:"lawyerName"`
	Topic           string        `bson:"topic" json:"topic"`
	ScheduledAt     time.Time     `bson:"scheduled_at" json:"scheduledAt"`
	DurationMinutes int           `bson:"duration_minutes" json:"durationMinutes"`
	Fee             float64       `bson:"fee" json:"fee"`
	Status          BookingStatus `bson:"status" json:"status"`
	CreatedAt       time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time     `bson:"updated_at" json:"updatedAt"`
}

// BookingInput is the payload for creating a booking through the guarded
// booking flow under a lawyer profile.
type BookingInput struct {
	Topic           string    `json:"topic"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	DurationMinutes int       `json:"durationMinutes"`
}

// Validate enforces the booking constraints.
func (b BookingInput) Validate() error {
	if b.Topic == "" {
		return &ValidationError{Field: "topic", Message: "This field is required"}
	}
	if b.ScheduledAt.IsZero() || b.ScheduledAt.Before(time.Now()) {
		return &ValidationError{Field: "scheduledAt", Message: "Please pick a future time"}
	}
	if b.DurationMinutes < 15 || b.DurationMinutes > 240 {
		return &ValidationError{Field: "durationMinutes", Message: "Duration must be between 15 and 240 minutes"}
	}
	return nil
}

// EarningsSummary aggregates a lawyer's completed bookings.
type EarningsSummary struct {
	Total     float64            `json:"total"`
	Completed int                `json:"completed"`
	ByMonth   map[string]float64 `json:"byMonth"`
}
