package snapshot

import "errors"

var (
	// ErrNotFound indicates no snapshot is archived for the requested height.
	ErrNotFound = errors.New("snapshot: not found")

	// ErrNilSnapshot indicates a nil snapshot was passed.
	ErrNilSnapshot = errors.New("snapshot: nil snapshot")

	// ErrZeroPayment indicates the amount to distribute is zero.
	ErrZeroPayment = errors.New("snapshot: payment must be greater than zero")

	// ErrNoHolders indicates the snapshot has no address with a positive balance.
	ErrNoHolders = errors.New("snapshot: no holders with a positive balance")

	// ErrSharesOverflow indicates the holder balances sum past 64 bits.
	ErrSharesOverflow = errors.New("snapshot: holder balances overflow")
)
