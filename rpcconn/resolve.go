package rpcconn

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Resolve turns a response envelope into either a decoded result or the
// daemon's RPCError.
//
// A result is decoded into out (out may be nil to discard it); a shape
// mismatch is a *ClientError of KindDecode. An envelope carrying both or
// neither of result and error yields a *ProtocolError.
func Resolve(resp *Response, out any) (*RPCError, error) {
	hasResult, hasError := resp.HasResult(), resp.HasError()
	switch {
	case hasResult && !hasError:
		if out == nil {
			return nil, nil
		}
		if err := json.Unmarshal(resp.Result, out); err != nil {
			return nil, decodeError(fmt.Errorf("%w: unmarshal result: %w", ErrInvalidResponse, err))
		}
		return nil, nil
	case hasError && !hasResult:
		return resp.Error, nil
	default:
		return nil, &ProtocolError{ID: resp.ID, HasResult: hasResult, HasError: hasError}
	}
}
