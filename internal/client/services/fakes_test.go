package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/netflex/internal/client/models"
	"github.com/dmitrijs2005/netflex/internal/client/session"
)

// fakeClient implements client.Client for unit tests. Every call is appended
// to calls so tests can assert on order.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	LoginToken string
	LoginErr   error
	LastUser   string
	LastPass   string

	// ListResults is consumed one entry per ListUsers call; the last entry
	// repeats.
	ListResults []listResult
	ListTokens  []string

	CreateMsg  string
	CreateErr  error
	LastCreate models.NewUser

	DeleteMsg string
	DeleteErr error
	LastID    int64
}

type listResult struct {
	users []models.User
	err   error
}

func (f *fakeClient) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) count(call string) int {
	n := 0
	for _, c := range f.Calls() {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeClient) Login(_ context.Context, username string, password []byte) (string, error) {
	f.record("login")
	f.LastUser = username
	f.LastPass = string(password)
	return f.LoginToken, f.LoginErr
}

func (f *fakeClient) ListUsers(_ context.Context, token string) ([]models.User, error) {
	f.record("list")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ListTokens = append(f.ListTokens, token)
	if len(f.ListResults) == 0 {
		return nil, nil
	}
	r := f.ListResults[0]
	if len(f.ListResults) > 1 {
		f.ListResults = f.ListResults[1:]
	}
	return append([]models.User(nil), r.users...), r.err
}

func (f *fakeClient) CreateUser(_ context.Context, _ string, user models.NewUser) (string, error) {
	f.record("create")
	f.LastCreate = user
	return f.CreateMsg, f.CreateErr
}

func (f *fakeClient) DeleteUser(_ context.Context, _ string, id int64) (string, error) {
	f.record("delete")
	f.LastID = id
	return f.DeleteMsg, f.DeleteErr
}

// memStore is an in-memory session.CredentialStore.
type memStore struct {
	cred    *session.Credential
	saveErr error
	saves   int
	clears  int
}

func (m *memStore) Load(context.Context) (session.Credential, bool, error) {
	if m.cred == nil {
		return session.Credential{}, false, nil
	}
	return *m.cred, true, nil
}

func (m *memStore) Save(_ context.Context, c session.Credential) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.cred = &c
	return nil
}

func (m *memStore) Clear(context.Context) error {
	m.clears++
	m.cred = nil
	return nil
}

// staticCreds is a CredentialSource with a fixed answer.
type staticCreds struct {
	token string
}

func (s staticCreds) Credential(context.Context) (session.Credential, bool) {
	if s.token == "" {
		return session.Credential{}, false
	}
	return session.Credential{RawToken: s.token}, true
}

// switchCreds is a CredentialSource whose token can change between calls.
type switchCreds struct {
	token string
}

func (s *switchCreds) Credential(ctx context.Context) (session.Credential, bool) {
	return staticCreds{token: s.token}.Credential(ctx)
}
