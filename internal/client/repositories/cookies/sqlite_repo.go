package cookies

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/walletsession/internal/dbx"
)

// ISO8601 is the layout used for stored expiry values.
const ISO8601 = "2006-01-02T15:04:05.000Z07:00"

// FormatExpiry renders t the way expiries are stored.
func FormatExpiry(t time.Time) string {
	return t.UTC().Format(ISO8601)
}

type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func (r *SQLiteRepository) Create(ctx context.Context, name, value string, expires time.Time) error {
	err := dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM cookies WHERE expires <= ?`, FormatExpiry(r.now())); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO cookies (name, value, expires) VALUES (?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET value = excluded.value, expires = excluded.expires
		`, name, value, FormatExpiry(expires))
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to create cookie[%s]: %w", name, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, name string) (Cookie, bool, error) {
	var value, expires string
	err := r.db.QueryRowContext(ctx, `SELECT value, expires FROM cookies WHERE name = ?`, name).Scan(&value, &expires)
	if errors.Is(err, sql.ErrNoRows) {
		return Cookie{}, false, nil
	}
	if err != nil {
		return Cookie{}, false, fmt.Errorf("failed to read cookie[%s]: %w", name, err)
	}

	exp, err := time.Parse(ISO8601, expires)
	if err != nil {
		return Cookie{}, false, fmt.Errorf("cookie[%s] has malformed expiry %q: %w", name, expires, err)
	}
	if !r.now().Before(exp) {
		return Cookie{}, false, nil
	}
	return Cookie{Name: name, Value: value, Expires: exp}, true, nil
}

func (r *SQLiteRepository) Read(ctx context.Context, name string) (string, bool, error) {
	c, ok, err := r.Get(ctx, name)
	return c.Value, ok, err
}

func (r *SQLiteRepository) Delete(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cookies WHERE name = ?`, name); err != nil {
		return fmt.Errorf("failed to delete cookie[%s]: %w", name, err)
	}
	return nil
}
