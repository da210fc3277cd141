package rpcconn

import (
	"context"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// transportFunc adapts a function to the Transport interface.
type transportFunc func(ctx context.Context, body []byte) ([]byte, error)

func (f transportFunc) RoundTrip(ctx context.Context, body []byte) ([]byte, error) {
	return f(ctx, body)
}

// countingCodec wraps JSONCodec and counts decode attempts.
type countingCodec struct {
	JSONCodec
	decodes int
}

func (c *countingCodec) DecodeResponse(data []byte) (*Response, error) {
	c.decodes++
	return c.JSONCodec.DecodeResponse(data)
}

// echoTransport answers every request with its own params as the result.
func echoTransport(t require.TestingT) Transport {
	return transportFunc(func(_ context.Context, body []byte) ([]byte, error) {
		var req Request
		require.NoError(t, json.Unmarshal(body, &req))
		result, err := json.Marshal(req.Params)
		require.NoError(t, err)
		return json.Marshal(Response{ID: req.ID, Result: result})
	})
}

func TestExchangeTransportFailureSkipsDecode(t *testing.T) {
	codec := &countingCodec{}
	conn := NewConn(transportFunc(func(context.Context, []byte) ([]byte, error) {
		return nil, ErrConnectionFailed
	}), codec)

	var out string
	rpcErr, err := conn.Exchange(context.Background(), NewRequest("777", "getnewaddress"), &out)
	assert.Nil(t, rpcErr)
	require.Error(t, err)

	var clientErr *ClientError
	require.True(t, errors.As(err, &clientErr))
	assert.Equal(t, KindTransport, clientErr.Kind)
	assert.ErrorIs(t, err, ErrConnectionFailed)
	assert.Equal(t, 0, codec.decodes)
}

func TestExchangeUndecodableBody(t *testing.T) {
	conn := NewConn(transportFunc(func(context.Context, []byte) ([]byte, error) {
		return []byte("not json"), nil
	}), nil)

	rpcErr, err := conn.Exchange(context.Background(), NewRequest("777", "getinfo"), nil)
	assert.Nil(t, rpcErr)

	var clientErr *ClientError
	require.True(t, errors.As(err, &clientErr))
	assert.Equal(t, KindDecode, clientErr.Kind)
}

func TestExchangeUnencodableParams(t *testing.T) {
	called := false
	conn := NewConn(transportFunc(func(context.Context, []byte) ([]byte, error) {
		called = true
		return nil, nil
	}), nil)

	_, err := conn.Exchange(context.Background(), NewRequest("777", "bad", make(chan int)), nil)
	var clientErr *ClientError
	require.True(t, errors.As(err, &clientErr))
	assert.Equal(t, KindDecode, clientErr.Kind)
	assert.False(t, called, "nothing should be sent when encoding fails")
}

func TestExchangeEchoRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		addr := rapid.String().Draw(t, "addr")
		count := rapid.Int64().Draw(t, "count")
		txids := rapid.SliceOf(rapid.StringMatching(`[0-9a-f]{64}`)).Draw(t, "txids")

		conn := NewConn(echoTransport(t), nil)
		var echoed []json.RawMessage
		rpcErr, err := conn.Exchange(context.Background(), NewRequest("777", "echo", addr, count, txids), &echoed)
		require.NoError(t, err)
		require.Nil(t, rpcErr)
		require.Len(t, echoed, 3)

		var gotAddr string
		var gotCount int64
		var gotTxids []string
		require.NoError(t, json.Unmarshal(echoed[0], &gotAddr))
		require.NoError(t, json.Unmarshal(echoed[1], &gotCount))
		require.NoError(t, json.Unmarshal(echoed[2], &gotTxids))

		assert.Equal(t, addr, gotAddr)
		assert.Equal(t, count, gotCount)
		if len(txids) == 0 {
			assert.Empty(t, gotTxids)
		} else {
			assert.Equal(t, txids, gotTxids)
		}
	})
}
