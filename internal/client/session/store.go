package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/netflex/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/netflex/internal/common"
	"github.com/dmitrijs2005/netflex/internal/dbx"
)

// Credential is the opaque bearer token issued by the remote service.
type Credential struct {
	RawToken string
}

// CredentialStore reads and writes the single persisted credential.
type CredentialStore interface {
	Load(ctx context.Context) (Credential, bool, error)
	Save(ctx context.Context, c Credential) error
	Clear(ctx context.Context) error
}

type sqliteStore struct {
	db *sql.DB
}

// NewCredentialStore binds a CredentialStore to the metadata table in db.
func NewCredentialStore(db *sql.DB) CredentialStore {
	return &sqliteStore{db: db}
}

func (s *sqliteStore) repo(tx dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(tx)
}

func (s *sqliteStore) Load(ctx context.Context) (Credential, bool, error) {
	v, err := s.repo(s.db).Get(ctx, common.TokenMetadataKey)
	if err != nil {
		return Credential{}, false, fmt.Errorf("load credential: %w", err)
	}
	if len(v) == 0 {
		return Credential{}, false, nil
	}
	return Credential{RawToken: string(v)}, true, nil
}

// Save replaces the stored credential. The old value is removed and the new
// one written in the same transaction.
func (s *sqliteStore) Save(ctx context.Context, c Credential) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := s.repo(tx)
		if err := r.Delete(ctx, common.TokenMetadataKey); err != nil {
			return err
		}
		return r.Set(ctx, common.TokenMetadataKey, []byte(c.RawToken))
	})
	if err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

func (s *sqliteStore) Clear(ctx context.Context) error {
	if err := s.repo(s.db).Delete(ctx, common.TokenMetadataKey); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}
