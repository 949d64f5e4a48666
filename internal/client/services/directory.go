package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/dmitrijs2005/netflex/internal/client/client"
	"github.com/dmitrijs2005/netflex/internal/client/models"
	"github.com/dmitrijs2005/netflex/internal/client/session"
	"github.com/dmitrijs2005/netflex/internal/logging"
)

// CredentialSource yields the bearer credential for the current session.
// *session.Manager implements it.
type CredentialSource interface {
	Credential(ctx context.Context) (session.Credential, bool)
}

// DirectoryService lists, creates and deletes users on the remote directory
// and keeps the last fetched list, the create-form validation errors and the
// user picked for the details view.
//
// A successful create or delete is always followed by one list refresh,
// issued after the mutation's response has been received. Concurrent calls
// are not coalesced; each issues its own request.
type DirectoryService interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, user models.NewUser) (MutationResult, error)
	Delete(ctx context.Context, id int64) (MutationResult, error)

	Users() []models.User
	ValidationErrors() models.ValidationErrors
	Select(id int64) bool
	Selected() (models.User, bool)
	Reset()
}

type directoryService struct {
	client client.Client
	creds  CredentialSource
	log    logging.Logger

	mu         sync.Mutex
	users      []models.User
	validation models.ValidationErrors
	selected   *models.User
}

func NewDirectoryService(c client.Client, creds CredentialSource, log logging.Logger) DirectoryService {
	return &directoryService{client: c, creds: creds, log: log}
}

func (s *directoryService) token(ctx context.Context) (string, error) {
	cred, ok := s.creds.Credential(ctx)
	if !ok {
		return "", ErrNoSession
	}
	return cred.RawToken, nil
}

// List fetches the directory and replaces the held list. On failure the
// previous list is kept.
func (s *directoryService) List(ctx context.Context) ([]models.User, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.client.ListUsers(ctx, token)
	if err != nil {
		cerr := classifyDirectory(err, MsgListFailed)
		s.log.Warn(ctx, "list users failed", "error", err)
		return nil, cerr
	}

	s.mu.Lock()
	s.users = append([]models.User(nil), users...)
	s.mu.Unlock()

	s.log.Debug(ctx, "users listed", "count", len(users))
	return append([]models.User(nil), users...), nil
}

// Create submits the create-user form. Field errors from the previous attempt
// are dropped first; only a precheck failure or a 422 sets new ones.
func (s *directoryService) Create(ctx context.Context, user models.NewUser) (MutationResult, error) {
	s.setValidation(nil)

	token, err := s.token(ctx)
	if err != nil {
		return MutationResult{}, err
	}

	if missing := user.MissingFields(); missing != nil {
		s.setValidation(missing)
		return MutationResult{}, &ValidationError{Fields: missing.Clone()}
	}

	msg, err := s.client.CreateUser(ctx, token, user)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnprocessableEntity {
			fields := models.ValidationErrors(apiErr.Errors).Clone()
			if fields == nil {
				fields = models.ValidationErrors{}
			}
			s.setValidation(fields)
			s.log.Info(ctx, "create user rejected", "username", user.Username, "fields", len(fields))
			return MutationResult{}, &ValidationError{Fields: fields.Clone()}
		}

		s.log.Warn(ctx, "create user failed", "username", user.Username, "error", err)
		return MutationResult{}, mutationError("create user", err, MsgCreateFailed)
	}

	s.log.Info(ctx, "user created", "username", user.Username)

	return s.afterMutation(ctx, msg), nil
}

// Delete removes a user by id. Existence is not checked locally; the server
// decides.
func (s *directoryService) Delete(ctx context.Context, id int64) (MutationResult, error) {
	token, err := s.token(ctx)
	if err != nil {
		return MutationResult{}, err
	}

	msg, err := s.client.DeleteUser(ctx, token, id)
	if err != nil {
		s.log.Warn(ctx, "delete user failed", "id", id, "error", err)
		return MutationResult{}, mutationError("delete user", err, MsgDeleteFailed)
	}

	s.log.Info(ctx, "user deleted", "id", id)
	return s.afterMutation(ctx, msg), nil
}

func (s *directoryService) afterMutation(ctx context.Context, msg string) MutationResult {
	res := MutationResult{Message: msg}
	if _, err := s.List(ctx); err != nil {
		res.RefreshErr = err
	}
	return res
}

func (s *directoryService) setValidation(v models.ValidationErrors) {
	s.mu.Lock()
	s.validation = v
	s.mu.Unlock()
}

func (s *directoryService) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.User(nil), s.users...)
}

func (s *directoryService) ValidationErrors() models.ValidationErrors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validation.Clone()
}

// Select marks the user with the given id in the held list for the details
// view. It reports false when no such user is held.
func (s *directoryService) Select(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			u := u
			s.selected = &u
			return true
		}
	}
	return false
}

// Selected returns the last selected user. A later delete or refresh does
// not clear it.
func (s *directoryService) Selected() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return models.User{}, false
	}
	return *s.selected, true
}

// Reset drops all held state.
func (s *directoryService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = nil
	s.validation = nil
	s.selected = nil
}

// classifyDirectory maps a transport error onto the directory taxonomy.
// fallback becomes the ServerError message when the server sent none.
func classifyDirectory(err error, fallback string) error {
	if client.IsUnavailable(err) {
		return fmt.Errorf("%w: %w", ErrDirectoryNetwork, err)
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = fallback
		}
		return &ServerError{StatusCode: apiErr.StatusCode, Message: msg}
	}

	return fmt.Errorf("%w: %w", ErrDirectoryUnknown, err)
}

// mutationError shows the server's message when there is one and fallback
// otherwise, network failures included.
func mutationError(op string, err error, fallback string) *MutationError {
	cerr := classifyDirectory(err, fallback)
	msg := fallback
	var serverErr *ServerError
	if errors.As(cerr, &serverErr) {
		msg = serverErr.Message
	}
	return &MutationError{Op: op, Message: msg, Err: cerr}
}
