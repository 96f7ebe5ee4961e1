package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// GetPref returns the timestamp stored under key, reporting whether the key
// exists at all.
func (r *Repository) GetPref(ctx context.Context, key string) (time.Time, bool, error) {
	sqlQuery := `SELECT value FROM user_prefs WHERE key = $1`

	var value time.Time

	err := r.db.QueryRow(ctx, sqlQuery, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, false, nil
		}

		return time.Time{}, false, err
	}

	return value, true, nil
}

func (r *Repository) SetPref(ctx context.Context, key string, value time.Time) error {
	sqlQuery :=
		`INSERT INTO user_prefs (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = $3`

	_, err := r.db.Exec(ctx, sqlQuery, key, value, time.Now())
	if err != nil {
		return err
	}

	return nil
}
