package rpcconn

import "context"

// Conn runs single request/response exchanges over a Transport. It holds no
// per-call state and is safe for concurrent use.
type Conn struct {
	transport Transport
	codec     Codec
}

// NewConn creates a Conn. A nil codec selects JSONCodec.
func NewConn(transport Transport, codec Codec) *Conn {
	if codec == nil {
		codec = JSONCodec{}
	}
	return &Conn{transport: transport, codec: codec}
}

// Exchange sends req and resolves the response into out.
//
// The returned error is the outer layer: a *ClientError when the exchange
// could not complete, or a *ProtocolError for a malformed envelope. When it
// is nil, a non-nil *RPCError is the daemon's answer. A transport failure
// returns before any decoding is attempted.
func (c *Conn) Exchange(ctx context.Context, req *Request, out any) (*RPCError, error) {
	body, err := c.codec.EncodeRequest(req)
	if err != nil {
		return nil, decodeError(err)
	}

	raw, err := c.transport.RoundTrip(ctx, body)
	if err != nil {
		return nil, transportError(err)
	}

	resp, err := c.codec.DecodeResponse(raw)
	if err != nil {
		return nil, decodeError(err)
	}

	return Resolve(resp, out)
}
