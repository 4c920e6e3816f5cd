package documentRepo

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"legato/models"
)

// MemoryDocumentRepo is an in-memory DocumentRepository for tests and
// development mode.
type MemoryDocumentRepo struct {
	mu   sync.RWMutex
	docs map[string]models.Document
}

// NewMemoryDocumentRepo creates an empty in-memory document repository.
func NewMemoryDocumentRepo() *MemoryDocumentRepo {
	return &MemoryDocumentRepo{docs: make(map[string]models.Document)}
}

func (r *MemoryDocumentRepo) Create(doc *models.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[doc.ID]; ok {
		return fmt.Errorf("document with id %s already exists", doc.ID)
	}
	doc.UploadedAt = time.Now()
	r.docs[doc.ID] = *doc
	return nil
}

func (r *MemoryDocumentRepo) ListByOwner(ownerUID string) ([]models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var docs []models.Document
	for _, doc := range r.docs {
		if doc.OwnerUID == ownerUID {
			docs = append(docs, doc)
		}
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].UploadedAt.After(docs[j].UploadedAt) })
	return docs, nil
}

func (r *MemoryDocumentRepo) Delete(ownerUID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok || doc.OwnerUID != ownerUID {
		return fmt.Errorf("document with id %s not found", id)
	}
	delete(r.docs, id)
	return nil
}
