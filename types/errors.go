package types

import "errors"

var (
	// ErrInvalidHex indicates a hash or script string is not valid hex of the
	// expected length.
	ErrInvalidHex = errors.New("types: invalid hex")

	// ErrInvalidAmount indicates a coin amount string could not be parsed.
	ErrInvalidAmount = errors.New("types: invalid amount")

	// ErrUnknownChainTipStatus indicates getchaintips returned an unrecognized status.
	ErrUnknownChainTipStatus = errors.New("types: unknown chain tip status")
)
