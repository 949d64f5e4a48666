// Package cli provides the interactive netflex command-line client.
//
// The client has two views. The login view asks for credentials; the
// dashboard lists the remote user directory and lets the user create, delete
// and inspect users. The dashboard is protected: every time it is entered,
// Guard checks the stored session and, without a valid one, the user is sent
// back to the login view before anything is fetched or drawn. The login view
// in turn forwards an already signed-in user to the dashboard.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
