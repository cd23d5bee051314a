package store

import "errors"

var (
	// ErrDuplicateRecord reports that an income record for the same
	// (address, tx id) pair already exists. Re-scans of a height after a
	// crash hit this; callers treat it as a no-op.
	ErrDuplicateRecord = errors.New("income record already exists")
)
