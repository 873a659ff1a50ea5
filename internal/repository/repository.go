package repository

import (
	"context"
	"database/sql"
	"io"
)

// Marker persists the id of the last match a notification was attempted for.
type Marker interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, matchID string) error
}

type Repository struct {
	Marker
	closer io.Closer
}

func NewFileRepository(path string) *Repository {
	return &Repository{Marker: NewFileMarker(path)}
}

func NewPostgresRepository(db *sql.DB) *Repository {
	return &Repository{Marker: NewMarkerPostgres(db), closer: db}
}

func NewSQLiteRepository(ctx context.Context, path string) (*Repository, error) {
	m, err := NewMarkerSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	return &Repository{Marker: m, closer: m}, nil
}

// Close releases the backing store, if any.
func (r *Repository) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
