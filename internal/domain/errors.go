package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrBookNotFound indicates the book ID is not in the catalog
	ErrBookNotFound = errors.New("book not found")

	// ErrStoreClosed indicates the durable store has been closed
	ErrStoreClosed = errors.New("store is closed")

	// ErrInvalidFilter indicates a quick filter expression failed to compile or run
	ErrInvalidFilter = errors.New("invalid filter expression")
)
