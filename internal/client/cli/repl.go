package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL drives. *App implements it;
// tests use a lightweight stub.
type execIface interface {
	currentRoute() string
	viewContext() context.Context
	prompt() string

	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Create(ctx context.Context) error
	Delete(ctx context.Context, arg string) error
	Show(ctx context.Context, arg string) error
	Stats(ctx context.Context) error
}

const (
	helpLogin     = "Available commands: login, stats, exit"
	helpDashboard = "Available commands: (l)ist, create, delete <id>, show <id>, stats, logout, exit"
)

// runREPL reads one command per line from reader and dispatches it to e.
// Which commands are accepted depends on the current view:
//
//	login view:
//	  - help           show available commands
//	  - login          authenticate
//	  - stats          API request counters
//	  - exit | quit    leave the program
//
//	dashboard:
//	  - help           show available commands
//	  - list | l       refetch and print users
//	  - create         create a user
//	  - delete <id>    delete a user
//	  - show <id>      show one user's details
//	  - stats          API request counters
//	  - logout         end the session
//	  - exit | quit    leave the program
//
// Command errors are reported by the handlers themselves. The loop ends on
// EOF, exit/quit, or when ctx is done.
func runREPL(ctx context.Context, e execIface, reader *bufio.Reader, w io.Writer) {
	for ctx.Err() == nil {
		fmt.Fprint(w, e.prompt())

		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, arg := parts[0], ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		vctx := e.viewContext()
		dashboard := e.currentRoute() == RouteDashboard

		switch {
		case cmd == "exit" || cmd == "quit":
			fmt.Fprintln(w, "Bye!")
			return

		case cmd == "help" && dashboard:
			fmt.Fprintln(w, helpDashboard)
		case cmd == "help":
			fmt.Fprintln(w, helpLogin)

		case cmd == "stats":
			_ = e.Stats(vctx)

		case cmd == "login" && !dashboard:
			_ = e.Login(vctx)

		case (cmd == "list" || cmd == "l") && dashboard:
			_ = e.List(vctx)
		case cmd == "create" && dashboard:
			_ = e.Create(vctx)
		case cmd == "delete" && dashboard:
			_ = e.Delete(vctx, arg)
		case cmd == "show" && dashboard:
			_ = e.Show(vctx, arg)
		case cmd == "logout" && dashboard:
			_ = e.Logout(vctx)

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
