// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package chainconf

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigNotFound indicates the chain's configuration file does not exist.
	ErrConfigNotFound = errors.New("chainconf: configuration file not found")

	// ErrConfigUnreadable indicates the configuration file exists but could not be read.
	ErrConfigUnreadable = errors.New("chainconf: configuration file unreadable")

	// ErrMissingKey indicates a required key is absent from the configuration.
	ErrMissingKey = errors.New("chainconf: required key missing")

	// ErrInvalidPort indicates rpcport is not a number in 0-65535.
	ErrInvalidPort = errors.New("chainconf: invalid rpcport")

	// ErrInvalidSettings indicates the resolved settings failed validation.
	ErrInvalidSettings = errors.New("chainconf: invalid settings")

	// ErrInvalidChain indicates the chain name cannot be used to locate a
	// configuration file.
	ErrInvalidChain = errors.New("chainconf: invalid chain name")
)

// ConfigError reports why a chain's endpoint could not be resolved. A client
// cannot be constructed from a chain that produces one.
type ConfigError struct {
	Chain Chain
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("chainconf: %s: %v", e.Chain, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
