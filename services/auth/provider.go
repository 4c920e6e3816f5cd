package auth

import (
	"context"
	"sync"
)

// Credential is a live provider session handle returned by a successful
// authentication.
type Credential struct {
	UID   string
	Email string
}

// SessionEvent announces a change of the provider-side session. An empty
// UID means the session ended.
type SessionEvent struct {
	UID string
}

// IdentityProvider is the external identity collaborator. It owns account
// creation and credential verification; profile documents live in the
// ProfileRepository, not here.
type IdentityProvider interface {
	// CreateAccount registers a new identity and returns its uid.
	// Returns ErrDuplicateAccount or ErrWeakCredential on policy failures.
	CreateAccount(ctx context.Context, email, password string) (string, error)
	// SetDisplayName updates the identity's display name.
	SetDisplayName(ctx context.Context, uid, name string) error
	// Authenticate verifies credentials and returns a live session handle.
	// Returns ErrInvalidCredential on a bad combination.
	Authenticate(ctx context.Context, email, password string) (*Credential, error)
	// EndSession terminates the provider-side session for uid.
	EndSession(ctx context.Context, uid string) error
	// Subscribe registers a session-change listener. The returned cancel
	// function must be called exactly once to release the subscription.
	Subscribe() (<-chan SessionEvent, func())
}

// sessionBroadcaster fans session events out to subscribers. Shared by the
// provider implementations.
type sessionBroadcaster struct {
	mu   sync.Mutex
	subs map[int]chan SessionEvent
	next int
}

func newSessionBroadcaster() *sessionBroadcaster {
	return &sessionBroadcaster{subs: make(map[int]chan SessionEvent)}
}

func (b *sessionBroadcaster) publish(ev SessionEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		// Drop the event rather than block the auth path on a slow listener.
		select {
		case ch <- ev:
		default:
		}
	}
}

func (b *sessionBroadcaster) subscribe() (<-chan SessionEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan SessionEvent, 16)
	b.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}
