package todoRepo

import "legato/models"

// TodoRepository defines methods for to-do list access.
type TodoRepository interface {
	// Create inserts a new to-do item.
	Create(item *models.TodoItem) error
	// ListByOwner retrieves a user's to-do items, newest first.
	ListByOwner(ownerUID string) ([]models.TodoItem, error)
	// SetDone toggles the completion flag of an item owned by ownerUID.
	SetDone(ownerUID, id string, done bool) error
	// Delete removes an item owned by ownerUID.
	Delete(ownerUID, id string) error
}
