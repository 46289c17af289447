package credentials

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/hbnbclient/internal/client/models"
	"github.com/dmitrijs2005/hbnbclient/internal/common"
	"github.com/dmitrijs2005/hbnbclient/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, name, path string) (*models.Credential, error) {
	c := models.Credential{Name: name, Path: path}
	var expiresAt int64

	err := r.db.QueryRowContext(ctx,
		`SELECT value, expires_at FROM credentials WHERE name = ? AND path = ?`,
		name, path,
	).Scan(&c.Value, &expiresAt)
	if dbx.IsNoRows(err) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credential[%s]: %w", name, err)
	}

	c.ExpiresAt = time.Unix(expiresAt, 0).UTC()
	return &c, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, c models.Credential) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO credentials (name, path, value, expires_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(name, path) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at
	`, c.Name, c.Path, c.Value, c.ExpiresAt.Unix())
	if err != nil {
		return fmt.Errorf("failed to set credential[%s]: %w", c.Name, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, name, path string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE name = ? AND path = ?`, name, path)
	if err != nil {
		return fmt.Errorf("failed to delete credential[%s]: %w", name, err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE expires_at <= ?`, now.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired credentials: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired credentials: %w", err)
	}
	return n, nil
}
