// Package storage owns the SQLite handle and the repositories built on it.
// The composition root opens it once, runs Init and passes the
// repositories down; nothing else opens the database.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/museumkeeper/internal/client/migrations"
	"github.com/dmitrijs2005/museumkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/museumkeeper/internal/client/repositories/users"
	"github.com/dmitrijs2005/museumkeeper/internal/client/repositories/venues"

	_ "modernc.org/sqlite"
)

type Storage struct {
	DB *sql.DB

	KV     *kv.SQLiteRepository
	Venues *venues.SQLiteRepository
	Users  *users.SQLiteRepository
}

// Open opens the database at dsn (a file path or an SQLite URI) and checks
// that it is reachable. The pool is limited to one connection so that
// statements from concurrent callers are serialized.
func Open(ctx context.Context, dsn string) (*Storage, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Storage{
		DB:     db,
		KV:     kv.NewSQLiteRepository(db),
		Venues: venues.NewSQLiteRepository(db),
		Users:  users.NewSQLiteRepository(db),
	}, nil
}

// Init creates or upgrades the schema. It is safe to call on every start.
func (s *Storage) Init(ctx context.Context) error {
	return migrations.Up(ctx, s.DB)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
