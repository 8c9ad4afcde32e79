package domain

import (
	"context"
	"errors"
)

var (
	// ErrRecordNotFound is returned when no record has the requested ID.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidRecordID is returned for IDs that can never exist.
	ErrInvalidRecordID = errors.New("invalid record ID")
)

// RecordRepository defines the interface for record persistence.
type RecordRepository interface {
	// Add stores a record and returns its generated ID.
	Add(ctx context.Context, r Record) (int64, error)

	// List returns every record in insertion order.
	List(ctx context.Context) ([]Record, error)

	// Get returns the record with the given ID.
	Get(ctx context.Context, id int64) (Record, error)

	// Delete removes one record.
	Delete(ctx context.Context, id int64) error

	// Clear removes every record and reports how many were removed.
	Clear(ctx context.Context) (int, error)

	Close() error
}
