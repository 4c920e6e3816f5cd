package profileRepo

import "legato/models"

// LawyerFilter narrows the public lawyer listing.
type LawyerFilter struct {
	Specialization string
	Language       string
	VerifiedOnly   bool
}

// ProfileRepository defines methods for profile document access. The profile
// document is keyed by the identity provider's uid; a missing document is a
// valid state (identity created out-of-band) and is reported as (nil, nil).
type ProfileRepository interface {
	// Create inserts a new profile document.
	Create(account *models.UserAccount) error
	// GetByUID retrieves a profile by the account uid.
	GetByUID(uid string) (*models.UserAccount, error)
	// GetByEmail retrieves a profile by email address.
	GetByEmail(email string) (*models.UserAccount, error)
	// Update modifies an existing profile document. The role field is never
	// changed by an update.
	Update(account *models.UserAccount) error
	// ListLawyers retrieves lawyer profiles matching the filter.
	ListLawyers(filter LawyerFilter) ([]models.UserAccount, error)
}
