// Package storage provides the record store used to collect accepted justifications.
package storage

import "github.com/cristianoliveira/noshow/internal/domain"

// Store defines the interface for record storage operations.
type Store = domain.RecordRepository
