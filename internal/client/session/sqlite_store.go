package session

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/hbnbclient/internal/client/models"
	"github.com/dmitrijs2005/hbnbclient/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/hbnbclient/internal/common"
	"github.com/dmitrijs2005/hbnbclient/internal/dbx"
)

// SQLiteStore persists credentials in the credentials table so a login
// survives restarts of the CLI. All rows it touches share one path scope.
type SQLiteStore struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

func NewSQLiteStore(db *sql.DB, path string, now func() time.Time) *SQLiteStore {
	if now == nil {
		now = time.Now
	}
	if path == "" {
		path = common.CookieRootPath
	}
	return &SQLiteStore{db: db, path: path, now: now}
}

func (s *SQLiteStore) repo(db dbx.DBTX) credentials.Repository {
	return credentials.NewSQLiteRepository(db)
}

func (s *SQLiteStore) Get(ctx context.Context, name string) (models.Credential, error) {
	repo := s.repo(s.db)

	c, err := repo.Get(ctx, name, s.path)
	if errors.Is(err, common.ErrorNotFound) {
		return models.Credential{}, ErrNoCredential
	}
	if err != nil {
		return models.Credential{}, err
	}

	if c.Expired(s.now()) {
		if err := repo.Delete(ctx, name, s.path); err != nil {
			return models.Credential{}, err
		}
		return models.Credential{}, ErrNoCredential
	}
	return *c, nil
}

// Set stores c under the store's path, purging expired rows in the same
// transaction.
func (s *SQLiteStore) Set(ctx context.Context, c models.Credential) error {
	c.Path = s.path

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if _, err := repo.DeleteExpired(ctx, s.now()); err != nil {
			return err
		}
		if c.Expired(s.now()) {
			return repo.Delete(ctx, c.Name, c.Path)
		}
		return repo.Set(ctx, c)
	})
}

func (s *SQLiteStore) Delete(ctx context.Context, name string) error {
	return s.repo(s.db).Delete(ctx, name, s.path)
}
