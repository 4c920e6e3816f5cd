package session

import (
	"context"
	"sync"

	"legato/models"
	"legato/services/auth"
	"legato/utils"

	"go.uber.org/zap"
)

// AuthState is the observer's view of the provider session.
type AuthState int

const (
	StateLoading AuthState = iota
	StateAuthenticated
	StateAnonymous
)

// Observer keeps an in-memory mirror of the identity provider's live
// session. It subscribes exactly once per process lifetime; on a session
// start it fetches the full profile and mirrors the role, on a session end
// it clears the mirror entry.
type Observer struct {
	svc    auth.AuthService
	mirror RoleMirror

	mu      sync.RWMutex
	state   AuthState
	profile *models.UserAccount

	once   sync.Once
	cancel func()
	done   chan struct{}
}

// NewObserver creates an observer in the loading state.
func NewObserver(svc auth.AuthService, mirror RoleMirror) *Observer {
	return &Observer{
		svc:    svc,
		mirror: mirror,
		state:  StateLoading,
		done:   make(chan struct{}),
	}
}

// Start subscribes to provider session events. Subsequent calls are no-ops,
// preventing concurrent re-subscription.
func (o *Observer) Start() {
	o.once.Do(func() {
		ch, cancel := o.svc.Provider().Subscribe()
		o.cancel = cancel
		go o.run(ch)
	})
}

// Stop releases the subscription and waits for the event loop to drain.
func (o *Observer) Stop() {
	if o.cancel == nil {
		return
	}
	o.cancel()
	<-o.done
}

func (o *Observer) run(ch <-chan auth.SessionEvent) {
	defer close(o.done)
	for ev := range ch {
		if ev.UID == "" {
			o.setAnonymous()
			continue
		}
		o.setAuthenticated(ev.UID)
	}
}

func (o *Observer) setAuthenticated(uid string) {
	ctx := context.Background()

	profile, err := o.svc.GetProfile(ctx, uid)
	if err != nil {
		utils.GetLogger().Error("Observer failed to fetch profile", zap.String("uid", uid), zap.Error(err))
		o.setAnonymous()
		return
	}

	if err := o.mirror.Set(ctx, uid, profile.Role); err != nil {
		utils.GetLogger().Error("Observer failed to mirror role", zap.String("uid", uid), zap.Error(err))
	}

	o.mu.Lock()
	o.state = StateAuthenticated
	o.profile = profile
	o.mu.Unlock()
}

func (o *Observer) setAnonymous() {
	o.mu.Lock()
	prev := o.profile
	o.state = StateAnonymous
	o.profile = nil
	o.mu.Unlock()

	if prev != nil {
		if err := o.mirror.Delete(context.Background(), prev.UID); err != nil {
			utils.GetLogger().Error("Observer failed to clear role mirror", zap.String("uid", prev.UID), zap.Error(err))
		}
	}
}

// State returns the current auth state and, when authenticated, the
// mirrored profile.
func (o *Observer) State() (AuthState, *models.UserAccount) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state, o.profile
}
