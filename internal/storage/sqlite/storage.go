// Package sqlite provides a SQLite-backed record store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cristianoliveira/noshow/internal/colors"
	"github.com/cristianoliveira/noshow/internal/domain"
	_ "modernc.org/sqlite"
)

const timestampLayout = time.RFC3339Nano

var _ domain.RecordRepository = (*SQLiteStorage)(nil)

// SQLiteStorage implements domain.RecordRepository using SQLite.
type SQLiteStorage struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStorage creates a SQLite-backed store at the provided path.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("sqlite storage: db path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite storage: create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: open db: %w", err)
	}

	storage := &SQLiteStorage{db: db, now: time.Now}
	if err := storage.init(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return storage, nil
}

// Close closes the underlying SQLite connection.
func (s *SQLiteStorage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStorage) init() error {
	if _, err := s.db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("sqlite storage: set busy timeout: %w", err)
	}

	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("sqlite storage: create schema: %w", err)
	}

	return nil
}

// Add stores a record with its fields in one transaction and returns the new ID.
// A zero CreatedAt is stamped with the current time.
func (s *SQLiteStorage) Add(ctx context.Context, r domain.Record) (int64, error) {
	if err := r.Validate(); err != nil {
		return 0, fmt.Errorf("sqlite storage: add record: %w", err)
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = s.now()
	}

	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, insertRecordSQL,
			r.CreatedAt.UTC().Format(timestampLayout),
			r.ReasonID,
			r.ReasonTitle,
			r.VariantLabel,
			r.Action,
			r.Usage,
			r.Text,
		)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		if err != nil {
			return err
		}
		for i, f := range r.Fields {
			if _, err := tx.ExecContext(ctx, insertFieldSQL, id, i, f.Label, f.Key, f.Value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: add record: %w", err)
	}

	colors.Debug(fmt.Sprintf("stored record %d for reason %s", id, r.ReasonID))
	return id, nil
}

// List returns every record in insertion order.
func (s *SQLiteStorage) List(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx, selectRecordsSQL)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list records: %w", err)
	}
	defer rows.Close()

	var records []domain.Record
	index := make(map[int64]int)
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite storage: list records: %w", err)
		}
		index[r.ID] = len(records)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list records: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	fields, err := s.db.QueryContext(ctx, selectFieldsSQL)
	if err != nil {
		return nil, fmt.Errorf("sqlite storage: list record fields: %w", err)
	}
	defer fields.Close()

	for fields.Next() {
		recordID, f, err := scanField(fields)
		if err != nil {
			return nil, fmt.Errorf("sqlite storage: list record fields: %w", err)
		}
		if i, ok := index[recordID]; ok {
			records[i].Fields = append(records[i].Fields, f)
		}
	}
	if err := fields.Err(); err != nil {
		return nil, fmt.Errorf("sqlite storage: list record fields: %w", err)
	}

	return records, nil
}

// Get returns a single record by ID.
func (s *SQLiteStorage) Get(ctx context.Context, id int64) (domain.Record, error) {
	if id <= 0 {
		return domain.Record{}, fmt.Errorf("sqlite storage: get record: %w: %d", ErrInvalidRecordID, id)
	}

	r, err := scanRecord(s.db.QueryRowContext(ctx, selectRecordSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Record{}, fmt.Errorf("sqlite storage: get record: %w: id %d", ErrRecordNotFound, id)
		}
		return domain.Record{}, fmt.Errorf("sqlite storage: get record: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, selectFieldsByRecordSQL, id)
	if err != nil {
		return domain.Record{}, fmt.Errorf("sqlite storage: get record fields: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		_, f, err := scanField(rows)
		if err != nil {
			return domain.Record{}, fmt.Errorf("sqlite storage: get record fields: %w", err)
		}
		r.Fields = append(r.Fields, f)
	}
	if err := rows.Err(); err != nil {
		return domain.Record{}, fmt.Errorf("sqlite storage: get record fields: %w", err)
	}

	return r, nil
}

// Delete removes a record and its fields.
func (s *SQLiteStorage) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("sqlite storage: delete record: %w: %d", ErrInvalidRecordID, id)
	}

	var affected int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteFieldsSQL, id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, deleteRecordSQL, id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("sqlite storage: delete record: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("sqlite storage: delete record: %w: id %d", ErrRecordNotFound, id)
	}
	return nil
}

// Clear removes every record, restarts ID numbering and reports how many records were removed.
func (s *SQLiteStorage) Clear(ctx context.Context) (int, error) {
	var affected int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteAllFieldsSQL); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, deleteAllRecordsSQL)
		if err != nil {
			return err
		}
		if affected, err = res.RowsAffected(); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, resetRecordSequenceSQL)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("sqlite storage: clear records: %w", err)
	}

	colors.Debug(fmt.Sprintf("cleared %d records", affected))
	return int(affected), nil
}

func (s *SQLiteStorage) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (domain.Record, error) {
	var (
		r         domain.Record
		createdAt string
	)
	if err := row.Scan(&r.ID, &createdAt, &r.ReasonID, &r.ReasonTitle, &r.VariantLabel, &r.Action, &r.Usage, &r.Text); err != nil {
		return domain.Record{}, err
	}
	ts, err := time.Parse(timestampLayout, createdAt)
	if err != nil {
		return domain.Record{}, fmt.Errorf("invalid created_at %q for record %d: %w", createdAt, r.ID, err)
	}
	r.CreatedAt = ts
	return r, nil
}

func scanField(row rowScanner) (int64, domain.FieldValue, error) {
	var (
		recordID int64
		f        domain.FieldValue
	)
	if err := row.Scan(&recordID, &f.Label, &f.Key, &f.Value); err != nil {
		return 0, domain.FieldValue{}, err
	}
	return recordID, f, nil
}
