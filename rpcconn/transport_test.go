package rpcconn

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPTransportBasicAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "user1234", user)
		assert.Equal(t, "pass5678", pass)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "1.0", req.JSONRPC)
		assert.Equal(t, "getdifficulty", req.Method)

		_, _ = w.Write([]byte(`{"id":"777","result":1.5,"error":null}`))
	}))
	defer server.Close()

	tr := NewHTTPTransport(HTTPConfig{URL: server.URL, User: "user1234", Password: "pass5678"})
	body, err := JSONCodec{}.EncodeRequest(NewRequest("777", "getdifficulty"))
	require.NoError(t, err)

	raw, err := tr.RoundTrip(context.Background(), body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"777","result":1.5,"error":null}`, string(raw))
	assert.Equal(t, server.URL, tr.URL())
}

func TestHTTPTransportServerErrorWithEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"id":"777","result":null,"error":{"code":-5,"message":"Invalid or non-wallet transaction id"}}`))
	}))
	defer server.Close()

	tr := NewHTTPTransport(HTTPConfig{URL: server.URL})
	raw, err := tr.RoundTrip(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "non-wallet transaction")
}

func TestHTTPTransportUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	tr := NewHTTPTransport(HTTPConfig{URL: server.URL, User: "bad", Password: "creds"})
	_, err := tr.RoundTrip(context.Background(), []byte(`{}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestHTTPTransportBadGateway(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	tr := NewHTTPTransport(HTTPConfig{URL: server.URL})
	_, err := tr.RoundTrip(context.Background(), []byte(`{}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnectionFailed)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream unavailable")
}

func TestHTTPTransportConnectionRefused(t *testing.T) {
	tr := NewHTTPTransport(HTTPConfig{URL: "http://127.0.0.1:1"})
	_, err := tr.RoundTrip(context.Background(), []byte(`{}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnectionFailed)
}

func TestHTTPTransportContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	tr := NewHTTPTransport(HTTPConfig{URL: server.URL})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := tr.RoundTrip(ctx, []byte(`{}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPTransportCustomClient(t *testing.T) {
	client := &http.Client{}
	tr := NewHTTPTransport(HTTPConfig{URL: "http://127.0.0.1:7771", Client: client})
	assert.Same(t, client, tr.client)
}

func TestHTTPTransportBodyTooLarge(t *testing.T) {
	payload := `{"id":"777","result":"` + strings.Repeat("a", 64) + `","error":null}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	tr := NewHTTPTransport(HTTPConfig{URL: server.URL, MaxBodySize: int64(len(payload)) - 1})
	_, err := tr.RoundTrip(context.Background(), []byte(`{}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrResponseTooLarge)

	// Through a Conn the failure is a transport error, not a decode error.
	_, err = NewConn(tr, nil).Exchange(context.Background(), NewRequest("777", "getsnapshot"), nil)
	var clientErr *ClientError
	require.True(t, errors.As(err, &clientErr))
	assert.Equal(t, KindTransport, clientErr.Kind)
	assert.ErrorIs(t, err, ErrResponseTooLarge)

	// A body exactly at the limit is accepted.
	exact := NewHTTPTransport(HTTPConfig{URL: server.URL, MaxBodySize: int64(len(payload))})
	raw, err := exact.RoundTrip(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, payload, string(raw))
}

func TestHTTPTransportDefaultBodyLimit(t *testing.T) {
	tr := NewHTTPTransport(HTTPConfig{URL: "http://127.0.0.1:7771"})
	assert.Equal(t, int64(DefaultMaxBodySize), tr.maxBody)
}
