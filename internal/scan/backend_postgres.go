package scan

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBackend stores the history blob in the scan_storage table,
// one row per store name. The pool is owned by the caller.
type PostgresBackend struct {
	db *pgxpool.Pool
}

func NewPostgresBackend(db *pgxpool.Pool) *PostgresBackend {
	return &PostgresBackend{db: db}
}

func (b *PostgresBackend) Load(ctx context.Context, name string) ([]byte, error) {
	var data []byte
	err := b.db.QueryRow(ctx,
		`SELECT data FROM scan_storage WHERE name = $1`,
		name,
	).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (b *PostgresBackend) Save(ctx context.Context, name string, data []byte) error {
	_, err := b.db.Exec(ctx,
		`INSERT INTO scan_storage (name, data, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (name)
		 DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()`,
		name, data,
	)
	return err
}

func (b *PostgresBackend) Delete(ctx context.Context, name string) error {
	_, err := b.db.Exec(ctx, `DELETE FROM scan_storage WHERE name = $1`, name)
	return err
}

// Close is a no-op; the pool belongs to the application.
func (b *PostgresBackend) Close() error { return nil }
