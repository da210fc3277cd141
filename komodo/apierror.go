package komodo

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"

	berrors "go.etcd.io/bbolt/errors"

	"github.com/bitfsorg/komodorpc-go/chainconf"
	"github.com/bitfsorg/komodorpc-go/rpcconn"
	"github.com/bitfsorg/komodorpc-go/types"
)

// ErrorKind identifies which failure an APIError carries.
type ErrorKind uint8

const (
	// KindRPC is an error reported by the daemon.
	KindRPC ErrorKind = iota + 1
	// KindClient is a transport or decode failure.
	KindClient
	// KindProtocol is a response envelope with both or neither of result
	// and error.
	KindProtocol
	// KindConfig is a chain configuration problem.
	KindConfig
	// KindIO is a filesystem or storage failure.
	KindIO
	// KindParseInt is a failed integer conversion.
	KindParseInt
	// KindHex is a failed hex decode.
	KindHex
	// KindOther is anything else.
	KindOther
)

func (k ErrorKind) String() string {
	switch k {
	case KindRPC:
		return "rpc"
	case KindClient:
		return "client"
	case KindProtocol:
		return "protocol"
	case KindConfig:
		return "config"
	case KindIO:
		return "io"
	case KindParseInt:
		return "parse"
	case KindHex:
		return "hex"
	case KindOther:
		return "other"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// APIError is the single error type applications can branch on. Exactly one
// of RPC, Client, Msg or Err describes the failure, selected by Kind.
type APIError struct {
	Kind   ErrorKind
	RPC    *rpcconn.RPCError
	Client *rpcconn.ClientError
	Msg    string
	Err    error
}

// FromRPC wraps a daemon-reported error.
func FromRPC(e *rpcconn.RPCError) *APIError {
	return &APIError{Kind: KindRPC, RPC: e}
}

// FromClient wraps a transport or decode failure.
func FromClient(e *rpcconn.ClientError) *APIError {
	return &APIError{Kind: KindClient, Client: e}
}

// FromProtocol wraps a malformed envelope.
func FromProtocol(err error) *APIError {
	return &APIError{Kind: KindProtocol, Err: err}
}

// FromIO wraps a filesystem or storage failure.
func FromIO(err error) *APIError {
	return &APIError{Kind: KindIO, Err: err}
}

// FromParseInt wraps a failed integer conversion.
func FromParseInt(err error) *APIError {
	return &APIError{Kind: KindParseInt, Err: err}
}

// FromHex wraps a failed hex decode.
func FromHex(err error) *APIError {
	return &APIError{Kind: KindHex, Err: err}
}

// Config reports a configuration problem.
func Config(msg string) *APIError {
	return &APIError{Kind: KindConfig, Msg: msg}
}

// Other reports a failure that fits no other kind.
func Other(msg string) *APIError {
	return &APIError{Kind: KindOther, Msg: msg}
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindRPC:
		return e.RPC.Error()
	case KindClient:
		return e.Client.Error()
	case KindProtocol:
		return "protocol error: " + e.cause()
	case KindConfig:
		return "config: " + e.cause()
	case KindIO:
		return "io error: " + e.cause()
	case KindParseInt:
		return "parse error: " + e.cause()
	case KindHex:
		return "hex error: " + e.cause()
	default:
		return e.cause()
	}
}

func (e *APIError) cause() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *APIError) Unwrap() error {
	switch {
	case e.RPC != nil:
		return e.RPC
	case e.Client != nil:
		return e.Client
	default:
		return e.Err
	}
}

// storageErrors are the bbolt failures reported as KindIO.
var storageErrors = []error{
	berrors.ErrDatabaseNotOpen,
	berrors.ErrInvalid,
	berrors.ErrVersionMismatch,
	berrors.ErrChecksum,
	berrors.ErrTimeout,
	berrors.ErrDatabaseReadOnly,
}

// AsAPIError folds any error returned by this module into an *APIError.
// It returns nil for a nil error and err itself when it already is one.
func AsAPIError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	var rpcErr *rpcconn.RPCError
	if errors.As(err, &rpcErr) {
		return FromRPC(rpcErr)
	}
	var protoErr *rpcconn.ProtocolError
	if errors.As(err, &protoErr) {
		return FromProtocol(protoErr)
	}
	var clientErr *rpcconn.ClientError
	if errors.As(err, &clientErr) {
		return FromClient(clientErr)
	}
	var cfgErr *chainconf.ConfigError
	if errors.As(err, &cfgErr) {
		return &APIError{Kind: KindConfig, Msg: cfgErr.Error(), Err: cfgErr}
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return FromParseInt(err)
	}
	var byteErr hex.InvalidByteError
	if errors.Is(err, types.ErrInvalidHex) || errors.Is(err, hex.ErrLength) || errors.As(err, &byteErr) {
		return FromHex(err)
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return FromIO(err)
	}
	for _, target := range storageErrors {
		if errors.Is(err, target) {
			return FromIO(err)
		}
	}
	return &APIError{Kind: KindOther, Msg: err.Error(), Err: err}
}
