package client

import (
	"context"

	"github.com/dmitrijs2005/netflex/internal/client/models"
)

// Client is the remote API contract. Token-bearing calls take the raw
// credential explicitly; the transport keeps no session state of its own.
type Client interface {
	Login(ctx context.Context, username string, password []byte) (string, error)
	ListUsers(ctx context.Context, token string) ([]models.User, error)
	CreateUser(ctx context.Context, token string, user models.NewUser) (string, error)
	DeleteUser(ctx context.Context, token string, id int64) (string, error)
}
