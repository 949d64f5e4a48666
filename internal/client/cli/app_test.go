package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/netflex/internal/client/client"
	"github.com/dmitrijs2005/netflex/internal/client/models"
	"github.com/dmitrijs2005/netflex/internal/client/services"
	"github.com/dmitrijs2005/netflex/internal/client/session"
	"github.com/dmitrijs2005/netflex/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ann = models.User{ID: 1, Username: "ann", Fullname: "Ann Lee"}
	bob = models.User{ID: 7, Username: "bob", Fullname: "Bob Ray"}
)

func TestDashboard_WithoutSessionRedirectsAndFetchesNothing(t *testing.T) {
	a := newTestApp(t, "")

	a.navigate(RouteDashboard)

	require.Equal(t, RouteLogin, a.currentRoute())
	require.Empty(t, a.dir.listCtxs)
	require.Empty(t, a.identity)
	require.NotContains(t, a.buf.String(), "Username")
	require.Equal(t, "netflex> ", a.prompt())
}

func TestDashboard_WithSessionBindsIdentityAndListsOnce(t *testing.T) {
	a := newTestApp(t, "")
	a.sessions.signIn("ann")
	a.dir.listUsers = []models.User{ann, bob}

	a.navigate(RouteDashboard)

	require.Equal(t, RouteDashboard, a.currentRoute())
	require.Len(t, a.dir.listCtxs, 1)
	require.Equal(t, "netflex (User: ann)> ", a.prompt())
	assert.Contains(t, a.buf.String(), "Ann Lee")
	assert.Contains(t, a.buf.String(), "Bob Ray")
}

func TestDashboard_EmptyList(t *testing.T) {
	a := newTestApp(t, "")
	a.sessions.signIn("ann")

	a.navigate(RouteDashboard)
	assert.Contains(t, a.buf.String(), "No users available")
}

func TestLoginView_ForwardsSignedInUser(t *testing.T) {
	for _, route := range []string{RouteRoot, RouteLogin} {
		t.Run(route, func(t *testing.T) {
			a := newTestApp(t, "")
			a.sessions.signIn("ann")

			a.navigate(route)

			require.Equal(t, RouteDashboard, a.currentRoute())
			require.Len(t, a.dir.listCtxs, 1)
		})
	}
}

func TestLogin_SuccessEntersDashboard(t *testing.T) {
	a := newTestApp(t, "ann\n")
	a.navigate(RouteLogin)
	require.Equal(t, RouteLogin, a.currentRoute())

	require.NoError(t, a.Login(a.viewContext()))

	require.Equal(t, "ann", a.auth.lastUser)
	require.Equal(t, "pw", a.auth.lastPass)
	require.Equal(t, RouteDashboard, a.currentRoute())
	require.Len(t, a.dir.listCtxs, 1)
	require.Empty(t, a.notes.errors)
}

func TestLogin_FailureShowsMessageAndStays(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: fmt.Errorf("%w: 404", services.ErrUserNotFound), want: "Username not found"},
		{err: fmt.Errorf("%w: 401", services.ErrWrongPassword), want: "Incorrect password"},
		{err: services.ErrNetwork, want: "Network error. Please try again later."},
		{err: fmt.Errorf("%w: disk full", services.ErrStorage), want: "Could not save your session. Please try again."},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			a := newTestApp(t, "ann\n")
			a.auth.loginErr = tt.err
			a.navigate(RouteLogin)

			require.Error(t, a.Login(a.viewContext()))
			require.Equal(t, []string{tt.want}, a.notes.errors)
			require.Equal(t, RouteLogin, a.currentRoute())
			require.Empty(t, a.dir.listCtxs)
		})
	}
}

func TestLeavingDashboardCancelsItsRequests(t *testing.T) {
	a := newTestApp(t, "")
	a.sessions.signIn("ann")
	a.dir.listUsers = []models.User{ann}

	a.navigate(RouteDashboard)
	viewCtx := a.dir.listCtxs[0]
	require.NoError(t, viewCtx.Err())

	require.NoError(t, a.Logout(a.viewContext()))

	require.ErrorIs(t, viewCtx.Err(), context.Canceled)
	require.Equal(t, 1, a.dir.resets)
	require.Equal(t, 1, a.auth.logouts)
	require.Equal(t, RouteLogin, a.currentRoute())
	require.Equal(t, "netflex> ", a.prompt())
}

func TestReenteringDashboardChecksSessionAgain(t *testing.T) {
	a := newTestApp(t, "")
	a.sessions.signIn("ann")

	a.navigate(RouteDashboard)
	a.sessions.signOut()
	a.navigate(RouteDashboard)

	require.Equal(t, RouteLogin, a.currentRoute())
	require.Len(t, a.dir.listCtxs, 1)
}

func TestList_NoSessionReturnsToLogin(t *testing.T) {
	a := newTestApp(t, "")
	a.sessions.signIn("ann")
	a.navigate(RouteDashboard)

	a.sessions.signOut()
	a.dir.listErr = services.ErrNoSession
	require.Error(t, a.List(a.viewContext()))

	require.Equal(t, RouteLogin, a.currentRoute())
	require.Empty(t, a.notes.errors)
}

func TestList_ErrorIsNotified(t *testing.T) {
	a := newTestApp(t, "")
	a.sessions.signIn("ann")
	a.navigate(RouteDashboard)

	a.dir.listErr = &services.ServerError{StatusCode: 500, Message: "An error occurred while fetching users."}
	require.Error(t, a.List(a.viewContext()))
	require.Equal(t, []string{"An error occurred while fetching users."}, a.notes.errors)
	require.Equal(t, RouteDashboard, a.currentRoute())
}

func TestCreate_ValidationErrorsShownPerField(t *testing.T) {
	a := newTestApp(t, "Ann Lee\nann\n")
	a.sessions.signIn("ann")
	a.navigate(RouteDashboard)

	fields := models.ValidationErrors{"username": {"taken"}}
	a.dir.createErr = &services.ValidationError{Fields: fields}

	require.Error(t, a.Create(a.viewContext()))
	require.Equal(t, models.NewUser{Fullname: "Ann Lee", Username: "ann", Password: "pw"}, a.dir.lastCreate)
	require.Equal(t, []map[string][]string{fields}, a.notes.fields)
	require.Empty(t, a.notes.errors)
}

func TestCreate_SuccessNotifies(t *testing.T) {
	a := newTestApp(t, "Bob Ray\nbob\n")
	a.sessions.signIn("ann")
	a.navigate(RouteDashboard)

	a.dir.createRes = services.MutationResult{Message: "User created successfully"}
	require.NoError(t, a.Create(a.viewContext()))
	require.Equal(t, []string{"User created successfully"}, a.notes.successes)
}

func TestCreate_RefreshFailureStillReportsSuccess(t *testing.T) {
	a := newTestApp(t, "Bob Ray\nbob\n")
	a.sessions.signIn("ann")
	a.navigate(RouteDashboard)

	a.dir.createRes = services.MutationResult{
		Message:    "User created successfully",
		RefreshErr: fmt.Errorf("%w: timeout", services.ErrDirectoryNetwork),
	}
	require.NoError(t, a.Create(a.viewContext()))
	require.Equal(t, []string{"User created successfully"}, a.notes.successes)
	require.Equal(t, []string{services.MsgNetwork}, a.notes.errors)
}

func TestDelete(t *testing.T) {
	a := newTestApp(t, "")
	a.sessions.signIn("ann")
	a.navigate(RouteDashboard)

	a.dir.deleteRes = services.MutationResult{Message: "User deleted successfully"}
	require.NoError(t, a.Delete(a.viewContext(), "7"))
	require.Equal(t, []int64{7}, a.dir.deleteIDs)
	require.Equal(t, []string{"User deleted successfully"}, a.notes.successes)

	a.dir.deleteErr = &services.MutationError{Op: "delete user", Message: "User not found"}
	require.Error(t, a.Delete(a.viewContext(), "42"))
	require.Equal(t, []string{"User not found"}, a.notes.errors)
}

func TestDelete_PromptsAndRejectsBadID(t *testing.T) {
	a := newTestApp(t, "abc\n")
	a.sessions.signIn("ann")
	a.navigate(RouteDashboard)

	require.Error(t, a.Delete(a.viewContext(), ""))
	require.Empty(t, a.dir.deleteIDs)
	require.Len(t, a.notes.errors, 1)
}

func TestShow(t *testing.T) {
	a := newTestApp(t, "")
	a.sessions.signIn("ann")
	a.dir.listUsers = []models.User{ann, bob}
	a.navigate(RouteDashboard)
	a.buf.Reset()

	require.NoError(t, a.Show(a.viewContext(), "7"))
	assert.Contains(t, a.buf.String(), "User Details")
	assert.Contains(t, a.buf.String(), "Bob Ray")

	require.NoError(t, a.Show(a.viewContext(), "99"))
	require.Equal(t, []string{"No user with id 99 in the list."}, a.notes.errors)
}

func TestStats(t *testing.T) {
	a := newTestApp(t, "")

	require.NoError(t, a.Stats(context.Background()))
	assert.Contains(t, a.buf.String(), "No requests made yet")

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "netflex_api_requests_total"}, []string{"code", "method"})
	a.reg.MustRegister(requests)
	requests.WithLabelValues("200", "get").Add(4)

	a.buf.Reset()
	require.NoError(t, a.Stats(context.Background()))
	assert.Contains(t, a.buf.String(), "Method")
	assert.Regexp(t, `get\s+200\s+4`, a.buf.String())
}

func TestRun_StartsOnLoginWithoutSession(t *testing.T) {
	a := newTestApp(t, "help\nexit\n")

	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, a.buf.String(), helpLogin)
	assert.Contains(t, a.buf.String(), "Bye!")
	require.Empty(t, a.dir.listCtxs)
}

func TestRun_SignedInUserLandsOnDashboard(t *testing.T) {
	a := newTestApp(t, "help\n")
	a.sessions.claims = session.Claims{Username: "ann"}
	a.sessions.ok = true

	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, a.buf.String(), helpDashboard)
	assert.Contains(t, a.buf.String(), "netflex (User: ann)> ")
	require.Len(t, a.dir.listCtxs, 1)
	// leaving at EOF cancels the last view
	require.Error(t, a.dir.listCtxs[0].Err())
}

func TestDashboard_MalformedStoredTokenNeverRenders(t *testing.T) {
	ctx := context.Background()
	db, err := client.InitDatabase(ctx, filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := session.NewCredentialStore(db)

	for _, raw := range []string{"garbage", "a.b.c", "eyJhbGciOiJub25lIn0.eyJmb28iOiJiYXIifQ."} {
		require.NoError(t, store.Save(ctx, session.Credential{RawToken: raw}))

		a := newTestApp(t, "")
		a.App.sessions = session.NewManager(store, logging.Nop())
		a.dir.listUsers = []models.User{ann}

		a.navigate(RouteDashboard)

		require.Equal(t, RouteLogin, a.currentRoute(), raw)
		require.Empty(t, a.dir.listCtxs, raw)
		require.NotContains(t, a.buf.String(), "Ann Lee", raw)

		_, ok, err := store.Load(ctx)
		require.NoError(t, err)
		require.False(t, ok, "invalid credential %q is cleared", raw)
	}
}
