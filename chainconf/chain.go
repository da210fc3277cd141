// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package chainconf

import (
	"path/filepath"
	"strings"
)

// Chain names a Komodo chain: KMD itself or an asset chain ticker.
type Chain string

// KMD is the Komodo main chain.
const KMD Chain = "KMD"

// Well-known asset chains.
const (
	RICK     Chain = "RICK"
	MORTY    Chain = "MORTY"
	PIRATE   Chain = "PIRATE"
	DEX      Chain = "DEX"
	SUPERNET Chain = "SUPERNET"
	KOIN     Chain = "KOIN"
	THC      Chain = "THC"
	CCL      Chain = "CCL"
	TOKEL    Chain = "TOKEL"
	DOC      Chain = "DOC"
	MARTY    Chain = "MARTY"
)

// ParseChain normalizes a ticker to upper case and validates it.
func ParseChain(s string) (Chain, error) {
	c := Chain(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", &ConfigError{Chain: Chain(s), Err: ErrInvalidChain}
	}
	return c, nil
}

// Valid reports whether c can safely name a directory under the data dir.
func (c Chain) Valid() bool {
	s := string(c)
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, `/\`+string(filepath.Separator)) && !strings.ContainsRune(s, 0)
}

func (c Chain) String() string { return string(c) }

// ConfigPath returns the daemon configuration file for chain under home.
// KMD uses <home>/.komodo/komodo.conf; asset chains use
// <home>/.komodo/<AC>/<AC>.conf.
func ConfigPath(home string, chain Chain) string {
	if chain == KMD {
		return filepath.Join(home, ".komodo", "komodo.conf")
	}
	return filepath.Join(home, ".komodo", string(chain), string(chain)+".conf")
}
