package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/netflex/internal/client/client"
	"github.com/dmitrijs2005/netflex/internal/client/models"
	"github.com/dmitrijs2005/netflex/internal/client/services"
	"github.com/dmitrijs2005/netflex/internal/common"
)

// Login asks for credentials and, on success, moves to the dashboard.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, username, password); err != nil {
		a.notify.Error(services.UserMessage(err, services.MsgInvalidCredentials))
		return err
	}

	a.navigate(RouteDashboard)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	err := a.auth.Logout(ctx)
	if err != nil {
		a.log.Warn(ctx, "logout failed", "error", err)
		a.notify.Error("Logout failed.")
	}
	a.navigate(RouteLogin)
	return err
}

// List refetches the directory and prints it.
func (a *App) List(ctx context.Context) error {
	return a.refresh(ctx)
}

func (a *App) refresh(ctx context.Context) error {
	if _, err := a.dir.List(ctx); err != nil {
		a.directoryFailed(err, services.MsgListFailed)
		return err
	}
	a.renderUsers(a.dir.Users())
	return nil
}

// Create asks for the new user's details and submits them.
func (a *App) Create(ctx context.Context) error {
	fullname, err := GetSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword("Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.dir.Create(ctx, models.NewUser{
		Fullname: fullname,
		Username: username,
		Password: string(password),
	})
	if err != nil {
		var ve *services.ValidationError
		if errors.As(err, &ve) {
			a.notify.FieldErrors(ve.Fields)
			return err
		}
		a.directoryFailed(err, services.MsgCreateFailed)
		return err
	}

	a.mutated(res)
	return nil
}

// Delete removes the user with the id given as arg, asking for it when arg
// is empty.
func (a *App) Delete(ctx context.Context, arg string) error {
	id, err := a.userID(arg, "User id to delete")
	if err != nil {
		return err
	}

	res, err := a.dir.Delete(ctx, id)
	if err != nil {
		a.directoryFailed(err, services.MsgDeleteFailed)
		return err
	}

	a.mutated(res)
	return nil
}

// Show prints the details of a user from the last fetched list.
func (a *App) Show(_ context.Context, arg string) error {
	id, err := a.userID(arg, "User id to show")
	if err != nil {
		return err
	}

	if !a.dir.Select(id) {
		a.notify.Error(fmt.Sprintf("No user with id %d in the list.", id))
		return nil
	}

	u, _ := a.dir.Selected()
	a.renderDetails(u)
	return nil
}

// Stats prints how many API requests were made, by method and status.
func (a *App) Stats(_ context.Context) error {
	stats, err := client.RequestStats(a.stats)
	if err != nil {
		return err
	}
	a.renderStats(stats)
	return nil
}

func (a *App) mutated(res services.MutationResult) {
	a.notify.Success(res.Message)
	if res.RefreshErr != nil {
		a.directoryFailed(res.RefreshErr, services.MsgListFailed)
		return
	}
	a.renderUsers(a.dir.Users())
}

// directoryFailed reports err, or returns to the login view when the
// session has gone away.
func (a *App) directoryFailed(err error, fallback string) {
	if errors.Is(err, services.ErrNoSession) {
		a.navigate(RouteLogin)
		return
	}
	a.notify.Error(services.UserMessage(err, fallback))
}

func (a *App) userID(arg, prompt string) (int64, error) {
	if arg == "" {
		var err error
		if arg, err = GetSimpleText(a.reader, prompt, a.out); err != nil {
			return 0, err
		}
	}

	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		a.notify.Error(fmt.Sprintf("Invalid user id %q.", arg))
		return 0, fmt.Errorf("parse user id: %w", err)
	}
	return id, nil
}
