package cli

import "github.com/dmitrijs2005/netflex/internal/client/session"

// Routes of the client.
const (
	RouteRoot      = "/"
	RouteLogin     = "/login"
	RouteDashboard = "/dashboard"
)

// Decision is the outcome of Guard: exactly one of Redirect or Identity is
// meaningful.
type Decision struct {
	Redirect string
	Identity string
}

// Proceed reports whether the protected view may render.
func (d Decision) Proceed() bool {
	return d.Redirect == ""
}

// Guard decides whether a protected view may render for the session
// described by claims and ok, as returned by session.Manager.CurrentSession.
func Guard(claims session.Claims, ok bool) Decision {
	if !ok || claims.Username == "" {
		return Decision{Redirect: RouteLogin}
	}
	return Decision{Identity: claims.Username}
}
