package reviewRepo

import "legato/models"

// ReviewRepository defines methods for lawyer review access.
type ReviewRepository interface {
	// Create inserts a new review.
	Create(review *models.Review) error
	// ListByLawyer retrieves reviews of a lawyer, newest first.
	ListByLawyer(lawyerUID string) ([]models.Review, error)
	// ListByClient retrieves reviews written by a client, newest first.
	ListByClient(clientUID string) ([]models.Review, error)
	// AverageRating returns the mean rating of a lawyer and the review count.
	AverageRating(lawyerUID string) (float64, int, error)
}
