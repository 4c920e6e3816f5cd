package bookingRepo

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"legato/models"
)

// MemoryBookingRepo is an in-memory BookingRepository for tests and
// development mode.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
}

// NewMemoryBookingRepo creates an empty in-memory booking repository.
func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *MemoryBookingRepo) Create(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[booking.ID]; ok {
		return fmt.Errorf("booking with id %s already exists", booking.ID)
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *MemoryBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	return &booking, nil
}

func (r *MemoryBookingRepo) list(match func(models.Booking) bool) []models.Booking {
	var out []models.Booking
	for _, b := range r.bookings {
		if match(b) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.After(out[j].ScheduledAt) })
	return out
}

func (r *MemoryBookingRepo) ListByClient(clientUID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(func(b models.Booking) bool { return b.ClientUID == clientUID }), nil
}

func (r *MemoryBookingRepo) ListByLawyer(lawyerUID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(func(b models.Booking) bool { return b.LawyerUID == lawyerUID }), nil
}

func (r *MemoryBookingRepo) UpdateStatus(id string, status models.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking with id %s not found", id)
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	r.bookings[id] = booking
	return nil
}

func (r *MemoryBookingRepo) EarningsSummary(lawyerUID string) (*models.EarningsSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summary := &models.EarningsSummary{ByMonth: make(map[string]float64)}
	for _, b := range r.bookings {
		if b.LawyerUID != lawyerUID || b.Status != models.BookingCompleted {
			continue
		}
		month := b.ScheduledAt.Format("2006-01")
		summary.ByMonth[month] += b.Fee
		summary.Total += b.Fee
		summary.Completed++
	}
	return summary, nil
}
