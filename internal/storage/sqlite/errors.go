package sqlite

import "github.com/cristianoliveira/noshow/internal/domain"

var (
	// ErrInvalidRecordID indicates a zero or negative record ID.
	ErrInvalidRecordID = domain.ErrInvalidRecordID
	// ErrRecordNotFound indicates that a record cannot be found.
	ErrRecordNotFound = domain.ErrRecordNotFound
)
