package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/dmitrijs2005/netflex/internal/client/models"
	"github.com/dmitrijs2005/netflex/internal/client/services"
	"github.com/dmitrijs2005/netflex/internal/client/session"
	"github.com/dmitrijs2005/netflex/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

type fakeSessions struct {
	claims session.Claims
	ok     bool
	checks int
}

func (f *fakeSessions) CurrentSession(context.Context) (session.Claims, bool) {
	f.checks++
	return f.claims, f.ok
}

func (f *fakeSessions) signIn(username string) {
	f.claims = session.Claims{Username: username}
	f.ok = true
}

func (f *fakeSessions) signOut() {
	f.claims = session.Claims{}
	f.ok = false
}

// fakeAuth flips the shared fakeSessions the way the real store would.
type fakeAuth struct {
	sessions  *fakeSessions
	loginErr  error
	logoutErr error
	lastUser  string
	lastPass  string
	logouts   int
}

func (f *fakeAuth) Login(_ context.Context, username string, password []byte) error {
	f.lastUser = username
	f.lastPass = string(password)
	if f.loginErr != nil {
		return f.loginErr
	}
	f.sessions.signIn(username)
	return nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logouts++
	f.sessions.signOut()
	return f.logoutErr
}

type fakeDir struct {
	listUsers []models.User
	listErr   error
	listCtxs  []context.Context

	createRes  services.MutationResult
	createErr  error
	lastCreate models.NewUser

	deleteRes services.MutationResult
	deleteErr error
	deleteIDs []int64

	users    []models.User
	selected *models.User
	resets   int
}

func (f *fakeDir) List(ctx context.Context) ([]models.User, error) {
	f.listCtxs = append(f.listCtxs, ctx)
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.users = append([]models.User(nil), f.listUsers...)
	return f.users, nil
}

func (f *fakeDir) Create(_ context.Context, u models.NewUser) (services.MutationResult, error) {
	f.lastCreate = u
	return f.createRes, f.createErr
}

func (f *fakeDir) Delete(_ context.Context, id int64) (services.MutationResult, error) {
	f.deleteIDs = append(f.deleteIDs, id)
	return f.deleteRes, f.deleteErr
}

func (f *fakeDir) Users() []models.User { return f.users }
func (f *fakeDir) ValidationErrors() models.ValidationErrors { return nil }

func (f *fakeDir) Select(id int64) bool {
	for _, u := range f.users {
		if u.ID == id {
			u := u
			f.selected = &u
			return true
		}
	}
	return false
}

func (f *fakeDir) Selected() (models.User, bool) {
	if f.selected == nil {
		return models.User{}, false
	}
	return *f.selected, true
}

func (f *fakeDir) Reset() {
	f.resets++
	f.users = nil
}

type recNotifier struct {
	successes []string
	errors    []string
	fields    []map[string][]string
}

func (r *recNotifier) Success(msg string) { r.successes = append(r.successes, msg) }
func (r *recNotifier) Error(msg string) { r.errors = append(r.errors, msg) }
func (r *recNotifier) FieldErrors(fields map[string][]string) { r.fields = append(r.fields, fields) }

type testApp struct {
	*App
	sessions *fakeSessions
	auth     *fakeAuth
	dir      *fakeDir
	notes    *recNotifier
	reg      *prometheus.Registry
	buf      *bytes.Buffer
}

// newTestApp builds an App over fakes. input feeds the line prompts; the
// password prompt always answers "pw".
func newTestApp(t *testing.T, input string) *testApp {
	t.Helper()

	old := readPassword
	readPassword = func(int) ([]byte, error) { return []byte("pw"), nil }
	t.Cleanup(func() { readPassword = old })

	sessions := &fakeSessions{}
	ta := &testApp{
		sessions: sessions,
		auth:     &fakeAuth{sessions: sessions},
		dir:      &fakeDir{},
		notes:    &recNotifier{},
		reg:      prometheus.NewRegistry(),
		buf:      &bytes.Buffer{},
	}
	ta.App = &App{
		sessions: ta.sessions,
		auth:     ta.auth,
		dir:      ta.dir,
		notify:   ta.notes,
		stats:    ta.reg,
		log:      logging.Nop(),
		reader:   rdr(input),
		out:      ta.buf,
	}
	return ta
}
