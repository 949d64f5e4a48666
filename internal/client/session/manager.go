package session

import (
	"context"
	"time"

	"github.com/dmitrijs2005/netflex/internal/logging"
)

// Manager is the single authority over the current session. Components other
// than the login flow never touch the CredentialStore directly.
type Manager struct {
	store CredentialStore
	log   logging.Logger
	now   func() time.Time
}

func NewManager(store CredentialStore, log logging.Logger) *Manager {
	return &Manager{store: store, log: log, now: time.Now}
}

// CurrentSession returns the claims of the stored credential. It returns false when
// there is no credential, it cannot be read, it does not decode, it lacks a
// username, or it has expired. Undecodable and expired credentials are
// cleared.
func (m *Manager) CurrentSession(ctx context.Context) (Claims, bool) {
	_, claims, ok := m.resolve(ctx)
	return claims, ok
}

// Credential returns the stored credential if it still describes a valid
// session.
func (m *Manager) Credential(ctx context.Context) (Credential, bool) {
	cred, _, ok := m.resolve(ctx)
	return cred, ok
}

func (m *Manager) resolve(ctx context.Context) (Credential, Claims, bool) {
	cred, found, err := m.store.Load(ctx)
	if err != nil {
		m.log.Warn(ctx, "credential unreadable", "error", err)
		return Credential{}, Claims{}, false
	}
	if !found {
		return Credential{}, Claims{}, false
	}

	claims, err := Decode(cred)
	if err != nil {
		m.log.Info(ctx, "discarding invalid credential", "error", err)
		m.clear(ctx)
		return Credential{}, Claims{}, false
	}

	if claims.Expired(m.now()) {
		m.log.Info(ctx, "discarding expired credential", "username", claims.Username)
		m.clear(ctx)
		return Credential{}, Claims{}, false
	}

	return cred, claims, true
}

func (m *Manager) clear(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.log.Warn(ctx, "credential clear failed", "error", err)
	}
}

// Logout removes the stored credential.
func (m *Manager) Logout(ctx context.Context) error {
	return m.store.Clear(ctx)
}
