// Package session holds the process-wide authentication state. It is the only
// place the bearer token lives: hydrated once at startup, replaced on a
// successful credential exchange, wiped on logout.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"stock-backtest/internal/dto"
	"stock-backtest/internal/repository"
)

type Manager struct {
	mu    sync.RWMutex
	repo  repository.SessionRepository
	token string
	user  *dto.UserProfile
}

func NewManager(repo repository.SessionRepository) *Manager {
	return &Manager{repo: repo}
}

// Hydrate reads the persisted store once. An empty store leaves the manager
// unauthenticated; corrupt user data is dropped but the token is kept.
func (m *Manager) Hydrate(ctx context.Context) error {
	token, userRaw, err := m.repo.Load(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
	m.user = nil
	if len(userRaw) > 0 {
		var user dto.UserProfile
		if err := json.Unmarshal(userRaw, &user); err == nil {
			m.user = &user
		}
	}
	return nil
}

// Set stores the session in memory and persists it.
func (m *Manager) Set(ctx context.Context, token string, user dto.UserProfile) error {
	userRaw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := m.repo.Save(ctx, token, userRaw); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.user = &user
	return nil
}

// Clear wipes both the in-memory and the persisted session.
func (m *Manager) Clear(ctx context.Context) error {
	if err := m.repo.Clear(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.user = nil
	return nil
}

// Token implements httpclient.TokenProvider.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *Manager) User() (dto.UserProfile, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return dto.UserProfile{}, false
	}
	return *m.user, true
}

func (m *Manager) Authenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != ""
}
