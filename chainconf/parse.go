// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package chainconf

import "strings"

// Keys every daemon configuration must define.
const (
	KeyRPCUser     = "rpcuser"
	KeyRPCPassword = "rpcpassword"
	KeyRPCPort     = "rpcport"
)

// Parse reads newline-separated key=value lines into a map.
//
// Each line is split on its first '=', so values may themselves contain '='.
// Lines without '=' and '#' comments are ignored. Keys and values are
// trimmed of surrounding whitespace. When a key repeats, the last value wins.
func Parse(data []byte) map[string]string {
	values := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return values
}
