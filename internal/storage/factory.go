package storage

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/noshow/internal/colors"
	"github.com/cristianoliveira/noshow/internal/config"
	"github.com/cristianoliveira/noshow/internal/storage/sqlite"
)

const recordsDBFileName = "records.db"

var _ Store = (*sqlite.SQLiteStorage)(nil)

// NewFromConfig opens the record store configured by db_path, falling back to
// {state_dir}/records.db.
func NewFromConfig() (Store, error) {
	config.Load()
	return Open(DBPath())
}

// DBPath returns the configured database path.
func DBPath() string {
	if path := strings.TrimSpace(config.Get("db_path", "")); path != "" {
		return path
	}
	return filepath.Join(config.Get("state_dir", "."), recordsDBFileName)
}

// Open opens a SQLite record store at path.
func Open(path string) (Store, error) {
	colors.Debug("opening record store:", path)
	s, err := sqlite.NewSQLiteStorage(path)
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}
	return s, nil
}
