package cli

import (
	"context"
	"fmt"
)

// navigate leaves the current view and enters route. Each entry gets a fresh
// context derived from the one given to Run; leaving the view cancels it, so
// requests started by a view never outlive it.
func (a *App) navigate(route string) {
	a.leave()

	parent := a.parent
	if parent == nil {
		parent = context.Background()
	}
	a.viewCtx, a.viewCancel = context.WithCancel(parent)

	a.log.Debug(a.viewCtx, "enter view", "route", route)

	switch route {
	case RouteDashboard:
		a.enterDashboard()
	default:
		a.enterLogin()
	}
}

func (a *App) leave() {
	if a.viewCancel != nil {
		a.viewCancel()
		a.viewCancel = nil
	}
	if a.route == RouteDashboard {
		a.dir.Reset()
	}
	a.route = ""
	a.identity = ""
}

// enterLogin shows the login view, or skips straight to the dashboard when a
// valid session already exists.
func (a *App) enterLogin() {
	if _, ok := a.sessions.CurrentSession(a.viewCtx); ok {
		a.navigate(RouteDashboard)
		return
	}
	a.route = RouteLogin
	fmt.Fprintln(a.out, "Please log in (type 'login').")
}

// enterDashboard renders the protected view. Without a valid session nothing
// is fetched or drawn; the user is sent to the login view instead.
func (a *App) enterDashboard() {
	d := Guard(a.sessions.CurrentSession(a.viewCtx))
	if !d.Proceed() {
		a.navigate(d.Redirect)
		return
	}

	a.route = RouteDashboard
	a.identity = d.Identity
	a.refresh(a.viewCtx)
}
