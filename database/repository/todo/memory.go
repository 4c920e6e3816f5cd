package todoRepo

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"legato/models"
)

// MemoryTodoRepo is an in-memory TodoRepository for tests and development mode.
type MemoryTodoRepo struct {
	mu    sync.RWMutex
	items map[string]models.TodoItem
}

// NewMemoryTodoRepo creates an empty in-memory to-do repository.
func NewMemoryTodoRepo() *MemoryTodoRepo {
	return &MemoryTodoRepo{items: make(map[string]models.TodoItem)}
}

func (r *MemoryTodoRepo) Create(item *models.TodoItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; ok {
		return fmt.Errorf("todo item with id %s already exists", item.ID)
	}
	item.CreatedAt = time.Now()
	r.items[item.ID] = *item
	return nil
}

func (r *MemoryTodoRepo) ListByOwner(ownerUID string) ([]models.TodoItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []models.TodoItem
	for _, item := range r.items {
		if item.OwnerUID == ownerUID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.After(items[j].CreatedAt) })
	return items, nil
}

func (r *MemoryTodoRepo) SetDone(ownerUID, id string, done bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok || item.OwnerUID != ownerUID {
		return fmt.Errorf("todo item with id %s not found", id)
	}
	item.Done = done
	r.items[id] = item
	return nil
}

func (r *MemoryTodoRepo) Delete(ownerUID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok || item.OwnerUID != ownerUID {
		return fmt.Errorf("todo item with id %s not found", id)
	}
	delete(r.items, id)
	return nil
}
