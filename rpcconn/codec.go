package rpcconn

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// Version is the JSON-RPC protocol version tag sent with every request.
const Version = "1.0"

// Request is a JSON-RPC 1.0 request envelope.
type Request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// NewRequest builds a request envelope. With no params an empty array is
// sent, never null.
func NewRequest(id, method string, params ...any) *Request {
	if params == nil {
		params = []any{}
	}
	return &Request{
		JSONRPC: Version,
		ID:      id,
		Method:  method,
		Params:  params,
	}
}

// Response is the generic response envelope. Result stays raw until it is
// resolved against a caller-declared type.
type Response struct {
	ID     string          `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

var jsonNull = []byte("null")

// HasResult reports whether a non-null result is present.
func (r *Response) HasResult() bool {
	trimmed := bytes.TrimSpace(r.Result)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, jsonNull)
}

// HasError reports whether an error object is present.
func (r *Response) HasError() bool {
	return r.Error != nil
}

// Codec serializes request envelopes and parses response envelopes.
type Codec interface {
	EncodeRequest(req *Request) ([]byte, error)
	DecodeResponse(data []byte) (*Response, error)
}

// JSONCodec is the default Codec.
type JSONCodec struct{}

// Compile-time interface check.
var _ Codec = JSONCodec{}

func (JSONCodec) EncodeRequest(req *Request) ([]byte, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("rpcconn: marshal request: %w", err)
	}
	return body, nil
}

func (JSONCodec) DecodeResponse(data []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrInvalidResponse, err)
	}
	return &resp, nil
}
