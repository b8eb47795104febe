package store

import (
	"errors"

	"gorm.io/gorm"
)

// Store wraps all database access behind parameterized statements. Every
// mutating operation runs inside a transaction: committed on success, rolled
// back on any failure so no partial state survives.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{db: db} }

var (
	// ErrReadOnly rejects anything but a single SELECT in RunRawQuery.
	ErrReadOnly = errors.New("only SELECT queries are allowed")
	// ErrNoLot means no inventory lot exists for the addressed item and
	// customer, so a price or a stock decrement could not be resolved.
	ErrNoLot = errors.New("no inventory lot for item and customer")
	// ErrMissingSource means a Sale line carried no supplying customer.
	ErrMissingSource = errors.New("missing inventory source customer")
)
