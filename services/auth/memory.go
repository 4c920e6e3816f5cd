package auth

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// memoryIdentity is one account held by the in-memory provider.
type memoryIdentity struct {
	uid          string
	email        string
	displayName  string
	passwordHash []byte
}

// MemoryProvider is an in-memory IdentityProvider for development mode and
// tests. It applies the same minimum-length password policy as the hosted
// provider.
type MemoryProvider struct {
	mu      sync.RWMutex
	byEmail map[string]*memoryIdentity
	byUID   map[string]*memoryIdentity
	events  *sessionBroadcaster
}

// NewMemoryProvider creates an empty in-memory identity provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		byEmail: make(map[string]*memoryIdentity),
		byUID:   make(map[string]*memoryIdentity),
		events:  newSessionBroadcaster(),
	}
}

func (p *MemoryProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	if len(password) < 6 {
		return "", ErrWeakCredential
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	key := strings.ToLower(email)
	if _, ok := p.byEmail[key]; ok {
		return "", ErrDuplicateAccount
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	id := &memoryIdentity{
		uid:          uuid.New().String(),
		email:        email,
		passwordHash: hash,
	}
	p.byEmail[key] = id
	p.byUID[id.uid] = id
	return id.uid, nil
}

func (p *MemoryProvider) SetDisplayName(ctx context.Context, uid, name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, ok := p.byUID[uid]
	if !ok {
		return ErrInvalidCredential
	}
	id.displayName = name
	return nil
}

func (p *MemoryProvider) Authenticate(ctx context.Context, email, password string) (*Credential, error) {
	p.mu.RLock()
	id, ok := p.byEmail[strings.ToLower(email)]
	p.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword(id.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredential
	}

	p.events.publish(SessionEvent{UID: id.uid})
	return &Credential{UID: id.uid, Email: id.email}, nil
}

func (p *MemoryProvider) EndSession(ctx context.Context, uid string) error {
	p.events.publish(SessionEvent{})
	return nil
}

func (p *MemoryProvider) Subscribe() (<-chan SessionEvent, func()) {
	return p.events.subscribe()
}
