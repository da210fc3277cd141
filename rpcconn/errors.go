package rpcconn

import (
	"errors"
	"fmt"
)

var (
	// ErrConnectionFailed indicates the client could not reach the daemon.
	ErrConnectionFailed = errors.New("rpcconn: connection failed")

	// ErrAuthFailed indicates the daemon rejected the RPC credentials.
	ErrAuthFailed = errors.New("rpcconn: authentication failed")

	// ErrInvalidResponse indicates the daemon returned a body that is not a
	// JSON-RPC response envelope.
	ErrInvalidResponse = errors.New("rpcconn: invalid response")

	// ErrResponseTooLarge indicates the response body exceeded the
	// transport's size limit.
	ErrResponseTooLarge = errors.New("rpcconn: response body too large")

	// ErrProtocolViolation indicates a response envelope carried both or
	// neither of result and error.
	ErrProtocolViolation = errors.New("rpcconn: response must contain either result or error")
)

// CodeWarmingUp is returned by the daemon while it is still loading the
// block index and wallet.
const CodeWarmingUp int32 = -28

// RPCError is an error reported by the daemon inside a well-formed response.
type RPCError struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// IsWarmingUp reports whether the daemon is still initializing.
func (e *RPCError) IsWarmingUp() bool {
	return e.Code == CodeWarmingUp
}

// ClientErrorKind classifies failures that prevented an exchange from
// completing.
type ClientErrorKind uint8

const (
	// KindTransport covers connection, HTTP and body read failures.
	KindTransport ClientErrorKind = iota + 1
	// KindDecode covers JSON encoding and decoding failures.
	KindDecode
)

func (k ClientErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ClientError is returned when the request/response exchange itself failed.
// It never carries a daemon-reported error; those are *RPCError.
type ClientError struct {
	Kind ClientErrorKind
	Err  error
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("rpcconn: %s failure: %v", e.Kind, e.Err)
}

func (e *ClientError) Unwrap() error { return e.Err }

// ProtocolError reports a response envelope that violates the
// result-xor-error invariant.
type ProtocolError struct {
	ID        string
	HasResult bool
	HasError  bool
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%v (id %q, result=%t, error=%t)", ErrProtocolViolation, e.ID, e.HasResult, e.HasError)
}

// Is lets errors.Is match ErrProtocolViolation.
func (e *ProtocolError) Is(target error) bool {
	return target == ErrProtocolViolation
}

func transportError(err error) *ClientError {
	return &ClientError{Kind: KindTransport, Err: err}
}

func decodeError(err error) *ClientError {
	return &ClientError{Kind: KindDecode, Err: err}
}
