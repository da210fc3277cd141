// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package chainconf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ConfigSource supplies the raw contents of a chain's daemon configuration.
type ConfigSource interface {
	ReadConfig(chain Chain) ([]byte, error)
}

// FileSource reads configuration files from the conventional per-chain
// location under a home directory.
type FileSource struct {
	// Home is the directory containing .komodo. Empty means the current
	// user's home directory.
	Home string
}

// Compile-time interface check.
var _ ConfigSource = FileSource{}

// ReadConfig reads the configuration file for chain.
func (s FileSource) ReadConfig(chain Chain) ([]byte, error) {
	if !chain.Valid() {
		return nil, ErrInvalidChain
	}
	home := s.Home
	if home == "" {
		var err error
		if home, err = os.UserHomeDir(); err != nil {
			return nil, fmt.Errorf("%w: locate home directory: %w", ErrConfigUnreadable, err)
		}
	}

	path := ConfigPath(home, chain)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigUnreadable, err)
	}
	return data, nil
}

// MapSource serves configuration contents from memory, keyed by chain.
type MapSource map[Chain]string

// Compile-time interface check.
var _ ConfigSource = MapSource{}

// ReadConfig returns the stored contents for chain.
func (s MapSource) ReadConfig(chain Chain) ([]byte, error) {
	contents, ok := s[chain]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, chain)
	}
	return []byte(contents), nil
}
