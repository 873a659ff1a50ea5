package repository

import (
	"context"
	"database/sql"
	"errors"
)

const lastMatchKey = "last_match_id"

type MarkerPostgres struct {
	db *sql.DB
}

func NewMarkerPostgres(db *sql.DB) *MarkerPostgres {
	return &MarkerPostgres{db: db}
}

func (r *MarkerPostgres) Get(ctx context.Context) (string, error) {
	return r.getSetting(ctx, lastMatchKey)
}

func (r *MarkerPostgres) Set(ctx context.Context, matchID string) error {
	return r.setSetting(ctx, lastMatchKey, matchID)
}

func (r *MarkerPostgres) getSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM tracker_settings WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

func (r *MarkerPostgres) setSetting(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tracker_settings (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = NOW()
	`, key, value)
	return err
}
