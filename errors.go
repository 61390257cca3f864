package htable

import "errors"

var (
	// ErrInvalidArgument is returned by Put, Get and HasKey for an empty key.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTableFull is returned by Put when no slot for the key could be found
	// even after growing the table. It indicates a broken invariant.
	ErrTableFull = errors.New("hash table full")
)
