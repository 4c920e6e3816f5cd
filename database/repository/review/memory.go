package reviewRepo

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"legato/models"
)

// MemoryReviewRepo is an in-memory ReviewRepository for tests and
// development mode.
type MemoryReviewRepo struct {
	mu      sync.RWMutex
	reviews map[string]models.Review
}

// NewMemoryReviewRepo creates an empty in-memory review repository.
func NewMemoryReviewRepo() *MemoryReviewRepo {
	return &MemoryReviewRepo{reviews: make(map[string]models.Review)}
}

func (r *MemoryReviewRepo) Create(review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[review.ID]; ok {
		return fmt.Errorf("review with id %s already exists", review.ID)
	}
	review.CreatedAt = time.Now()
	r.reviews[review.ID] = *review
	return nil
}

func (r *MemoryReviewRepo) list(match func(models.Review) bool) []models.Review {
	var out []models.Review
	for _, review := range r.reviews {
		if match(review) {
			out = append(out, review)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *MemoryReviewRepo) ListByLawyer(lawyerUID string) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(func(rv models.Review) bool { return rv.LawyerUID == lawyerUID }), nil
}

func (r *MemoryReviewRepo) ListByClient(clientUID string) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.list(func(rv models.Review) bool { return rv.ClientUID == clientUID }), nil
}

func (r *MemoryReviewRepo) AverageRating(lawyerUID string) (float64, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sum, count int
	for _, review := range r.reviews {
		if review.LawyerUID == lawyerUID {
			sum += review.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}
