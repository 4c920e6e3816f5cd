package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"legato/models"
	"legato/utils"

	"github.com/go-redis/redis/v8"
)

// RoleMirror caches the role of the live provider session keyed by uid. It
// keeps guard and UI state consistent even when the user authenticated
// through a path that bypassed the cookie issuer.
type RoleMirror interface {
	Set(ctx context.Context, uid string, role models.Role) error
	Get(ctx context.Context, uid string) (models.Role, bool, error)
	Delete(ctx context.Context, uid string) error
}

// RedisRoleMirror stores the mirror in the dedicated session Redis DB.
type RedisRoleMirror struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisRoleMirror wraps a Redis client with the default 7-day TTL.
func NewRedisRoleMirror(client *redis.Client) *RedisRoleMirror {
	return &RedisRoleMirror{Client: client, TTL: 7 * 24 * time.Hour}
}

func (m *RedisRoleMirror) Set(ctx context.Context, uid string, role models.Role) error {
	return m.Client.Set(ctx, utils.SessionMirrorPrefix+uid, string(role), m.TTL).Err()
}

func (m *RedisRoleMirror) Get(ctx context.Context, uid string) (models.Role, bool, error) {
	val, err := m.Client.Get(ctx, utils.SessionMirrorPrefix+uid).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	role, ok := models.ParseRole(val)
	return role, ok, nil
}

func (m *RedisRoleMirror) Delete(ctx context.Context, uid string) error {
	return m.Client.Del(ctx, utils.SessionMirrorPrefix+uid).Err()
}

// MemoryRoleMirror is an in-memory RoleMirror for tests and development mode.
type MemoryRoleMirror struct {
	mu    sync.RWMutex
	roles map[string]models.Role
}

// NewMemoryRoleMirror creates an empty in-memory role mirror.
func NewMemoryRoleMirror() *MemoryRoleMirror {
	return &MemoryRoleMirror{roles: make(map[string]models.Role)}
}

func (m *MemoryRoleMirror) Set(ctx context.Context, uid string, role models.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roles[uid] = role
	return nil
}

func (m *MemoryRoleMirror) Get(ctx context.Context, uid string) (models.Role, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	role, ok := m.roles[uid]
	return role, ok, nil
}

func (m *MemoryRoleMirror) Delete(ctx context.Context, uid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.roles, uid)
	return nil
}
