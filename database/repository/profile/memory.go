package profileRepo

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"legato/models"
)

// MemoryProfileRepo is an in-memory ProfileRepository for tests and
// development mode.
type MemoryProfileRepo struct {
	mu       sync.RWMutex
	accounts map[string]models.UserAccount
}

// NewMemoryProfileRepo creates an empty in-memory profile repository.
func NewMemoryProfileRepo() *MemoryProfileRepo {
	return &MemoryProfileRepo{accounts: make(map[string]models.UserAccount)}
}

func (r *MemoryProfileRepo) Create(account *models.UserAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.UID]; ok {
		return fmt.Errorf("profile with uid %s already exists", account.UID)
	}
	r.accounts[account.UID] = *account
	return nil
}

func (r *MemoryProfileRepo) GetByUID(uid string) (*models.UserAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[uid]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

func (r *MemoryProfileRepo) GetByEmail(email string) (*models.UserAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, account := range r.accounts {
		if account.Email == email {
			a := account
			return &a, nil
		}
	}
	return nil, nil
}

func (r *MemoryProfileRepo) Update(account *models.UserAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.accounts[account.UID]
	if !ok {
		return fmt.Errorf("profile with uid %s not found", account.UID)
	}
	updated := *account
	// Role is immutable after creation.
	updated.Role = existing.Role
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	r.accounts[account.UID] = updated
	return nil
}

func (r *MemoryProfileRepo) ListLawyers(filter LawyerFilter) ([]models.UserAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var accounts []models.UserAccount
	for _, account := range r.accounts {
		if account.Role != models.RoleLawyer || account.Lawyer == nil {
			continue
		}
		if filter.VerifiedOnly && !account.Lawyer.Verified {
			continue
		}
		if filter.Specialization != "" && !contains(account.Lawyer.Specialization, filter.Specialization) {
			continue
		}
		if filter.Language != "" && !contains(account.Lawyer.Languages, filter.Language) {
			continue
		}
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].DisplayName < accounts[j].DisplayName })
	return accounts, nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
