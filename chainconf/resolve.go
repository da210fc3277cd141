// Copyright (c) 2024 The BitFS developers
// Use of this source code is governed by the Open BSV License v5
// that can be found in the LICENSE file.

package chainconf

import (
	"fmt"
	"net"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// DefaultHost is the loopback address daemons listen on for RPC.
const DefaultHost = "127.0.0.1"

// DefaultPort is the KMD main chain RPC port.
const DefaultPort uint16 = 7771

var validate = validator.New()

// Credentials authenticate RPC requests with HTTP Basic Auth.
type Credentials struct {
	User     string `validate:"required"`
	Password string `validate:"required"`
}

// Endpoint is the daemon's RPC listen address.
type Endpoint struct {
	Host string `validate:"required,hostname|ip"`
	Port uint16 `validate:"required"`
}

// URL returns the http URL for the endpoint.
func (e Endpoint) URL() string {
	return "http://" + net.JoinHostPort(e.Host, strconv.FormatUint(uint64(e.Port), 10))
}

// Validate checks the host and port.
func (e Endpoint) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return nil
}

// Settings is what a chain's configuration resolves to.
type Settings struct {
	Chain       Chain
	Credentials Credentials
	Endpoint    Endpoint
}

// Resolve reads chain's configuration from src and extracts credentials and
// the loopback endpoint. Every failure is a *ConfigError.
func Resolve(chain Chain, src ConfigSource) (*Settings, error) {
	data, err := src.ReadConfig(chain)
	if err != nil {
		return nil, &ConfigError{Chain: chain, Err: err}
	}
	settings, err := FromValues(Parse(data))
	if err != nil {
		return nil, &ConfigError{Chain: chain, Err: err}
	}
	settings.Chain = chain
	return settings, nil
}

// FromValues builds Settings from parsed configuration values.
func FromValues(values map[string]string) (*Settings, error) {
	var missing []string
	for _, key := range []string{KeyRPCUser, KeyRPCPassword, KeyRPCPort} {
		if _, ok := values[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrMissingKey, missing)
	}

	port, err := strconv.ParseUint(values[KeyRPCPort], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPort, err)
	}

	settings := &Settings{
		Credentials: Credentials{
			User:     values[KeyRPCUser],
			Password: values[KeyRPCPassword],
		},
		Endpoint: Endpoint{Host: DefaultHost, Port: uint16(port)},
	}
	if err := validate.Struct(settings); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return settings, nil
}
