package documentRepo

import "legato/models"

// DocumentRepository defines methods for vault document metadata access.
type DocumentRepository interface {
	// Create inserts a new document record.
	Create(doc *models.Document) error
	// ListByOwner retrieves a user's documents, newest first.
	ListByOwner(ownerUID string) ([]models.Document, error)
	// Delete removes a document owned by ownerUID.
	Delete(ownerUID, id string) error
}
