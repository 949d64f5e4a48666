package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/netflex/internal/client/models"
)

// Login failures. Each wraps ErrAuth.
var (
	ErrAuth               = errors.New("authentication failed")
	ErrUserNotFound       = fmt.Errorf("%w: user not found", ErrAuth)
	ErrWrongPassword      = fmt.Errorf("%w: wrong password", ErrAuth)
	ErrInvalidCredentials = fmt.Errorf("%w: credentials rejected", ErrAuth)
	ErrLoginFailed        = fmt.Errorf("%w: no token issued", ErrAuth)
	ErrNetwork            = fmt.Errorf("%w: network error", ErrAuth)
)

// ErrStorage is a local failure to persist the session after the server
// accepted the login.
var ErrStorage = errors.New("session storage failed")

// Directory failures.
var (
	ErrNoSession        = errors.New("no active session")
	ErrDirectoryNetwork = errors.New("user directory unreachable")
	ErrDirectoryUnknown = errors.New("user directory request failed")
)

// Messages shown to the user.
const (
	MsgUserNotFound       = "Username not found"
	MsgWrongPassword      = "Incorrect password"
	MsgInvalidCredentials = "Invalid username or password."
	MsgLoginFailed        = "Login failed. Please check your credentials."
	MsgNetwork            = "Network error. Please try again later."
	MsgStorage            = "Could not save your session. Please try again."

	MsgListFailed   = "An error occurred while fetching users."
	MsgUnknown      = "An error occurred. Please try again."
	MsgCreateFailed = "An error occurred while creating the user."
	MsgDeleteFailed = "An error occurred while deleting the user."
)

// ServerError is a non-2xx answer to a directory call. Message is the
// server's text, or the operation's default when the server sent none.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.StatusCode, e.Message)
}

// ValidationError carries per-field messages for a rejected create.
type ValidationError struct {
	Fields models.ValidationErrors
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}

// MutationError is a failed create or delete, other than a validation
// rejection. Message is what the user sees; Err is the classified cause
// (*ServerError, ErrDirectoryNetwork or ErrDirectoryUnknown).
type MutationError struct {
	Op      string
	Message string
	Err     error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }

// MutationResult reports a successful create or delete. RefreshErr is set
// when the list refresh that follows the mutation failed; the mutation itself
// still succeeded.
type MutationResult struct {
	Message    string
	RefreshErr error
}

var authMessages = []struct {
	err error
	msg string
}{
	{ErrUserNotFound, MsgUserNotFound},
	{ErrWrongPassword, MsgWrongPassword},
	{ErrInvalidCredentials, MsgInvalidCredentials},
	{ErrLoginFailed, MsgLoginFailed},
	{ErrNetwork, MsgNetwork},
	{ErrStorage, MsgStorage},
}

// UserMessage returns the text to show for err. fallback is used when err
// carries nothing more specific.
func UserMessage(err error, fallback string) string {
	for _, m := range authMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}

	var mutErr *MutationError
	if errors.As(err, &mutErr) {
		return mutErr.Message
	}
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Message
	}

	switch {
	case errors.Is(err, ErrDirectoryNetwork):
		return MsgNetwork
	case errors.Is(err, ErrDirectoryUnknown):
		return MsgUnknown
	}
	return fallback
}
