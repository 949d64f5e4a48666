// Package services contains the application services of the netflex client:
// login/logout and the remote user directory.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/netflex/internal/client/client"
	"github.com/dmitrijs2005/netflex/internal/client/session"
	"github.com/dmitrijs2005/netflex/internal/logging"
)

// AuthService exchanges credentials for a bearer token and ends sessions.
//
// Login stores the token only on success; any failure leaves the stored
// credential untouched. Failures are classified into the ErrAuth family.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
}

type authService struct {
	client  client.Client
	store   session.CredentialStore
	manager *session.Manager
	log     logging.Logger
}

func NewAuthService(c client.Client, store session.CredentialStore, manager *session.Manager, log logging.Logger) AuthService {
	return &authService{client: c, store: store, manager: manager, log: log}
}

func (a *authService) Login(ctx context.Context, username string, password []byte) error {
	token, err := a.client.Login(ctx, username, password)
	if err != nil {
		cerr := classifyLogin(err)
		a.log.Info(ctx, "login rejected", "username", username, "reason", cerr)
		return cerr
	}

	if err := a.store.Save(ctx, session.Credential{RawToken: token}); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}

	a.log.Info(ctx, "logged in", "username", username)
	return nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.manager.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func classifyLogin(err error) error {
	if errors.Is(err, client.ErrMalformedResponse) {
		return fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}
	if client.IsUnavailable(err) {
		return fmt.Errorf("%w: %w", ErrNetwork, err)
	}

	switch client.StatusCode(err) {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", ErrWrongPassword, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
}
