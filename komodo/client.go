package komodo

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bitfsorg/komodorpc-go/chainconf"
	"github.com/bitfsorg/komodorpc-go/rpcconn"
)

const (
	// clientID is the request id sent with every call except getinfo.
	clientID = "777"
	// getInfoID is the request id getinfo is sent with.
	getInfoID = "curltest"

	bootingNotice = "komodod is still booting, try again"
)

// Client calls a Komodo daemon's JSON-RPC interface. Its fields are fixed
// at construction and it is safe for concurrent use.
//
// Every operation returns a single error. A *rpcconn.RPCError means the
// daemon answered with an error. A *rpcconn.ClientError or
// *rpcconn.ProtocolError means no usable answer was received. AsAPIError
// folds any of them into an *APIError.
type Client struct {
	conn     *rpcconn.Conn
	endpoint chainconf.Endpoint
	logger   *zerolog.Logger
}

// Option configures a Client.
type Option func(*options)

type options struct {
	endpoint   chainconf.Endpoint
	transport  rpcconn.Transport
	codec      rpcconn.Codec
	logger     *zerolog.Logger
	httpClient *http.Client
}

// WithEndpoint overrides the daemon address.
func WithEndpoint(endpoint chainconf.Endpoint) Option {
	return func(o *options) { o.endpoint = endpoint }
}

// WithTransport replaces the HTTP transport. Credentials and endpoint are
// then the transport's concern.
func WithTransport(t rpcconn.Transport) Option {
	return func(o *options) { o.transport = t }
}

// WithCodec replaces the JSON envelope codec.
func WithCodec(c rpcconn.Codec) Option {
	return func(o *options) { o.codec = c }
}

// WithLogger sets the logger used for retry notices. The global zerolog
// logger is used by default.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = &l }
}

// WithHTTPClient sets the HTTP client used by the default transport.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// New creates a client for the KMD main chain on 127.0.0.1:7771 with
// explicit credentials.
func New(user, password string, opts ...Option) *Client {
	return newClient(
		chainconf.Credentials{User: user, Password: password},
		chainconf.Endpoint{Host: chainconf.DefaultHost, Port: chainconf.DefaultPort},
		opts,
	)
}

// NewForChain creates a client for chain, taking credentials and port from
// the chain's configuration in src. A nil src reads the configuration files
// under the user's home directory. Any resolution failure is returned as an
// *APIError of kind KindConfig and no client is built.
func NewForChain(chain chainconf.Chain, src chainconf.ConfigSource, opts ...Option) (*Client, error) {
	if src == nil {
		src = chainconf.FileSource{}
	}
	settings, err := chainconf.Resolve(chain, src)
	if err != nil {
		return nil, AsAPIError(err)
	}
	return newClient(settings.Credentials, settings.Endpoint, opts), nil
}

// MustNewForChain is like NewForChain but panics on failure. It is meant for
// program start-up where a missing configuration is fatal.
func MustNewForChain(chain chainconf.Chain, src chainconf.ConfigSource, opts ...Option) *Client {
	c, err := NewForChain(chain, src, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func newClient(creds chainconf.Credentials, endpoint chainconf.Endpoint, opts []Option) *Client {
	o := options{endpoint: endpoint, logger: &log.Logger}
	for _, opt := range opts {
		opt(&o)
	}

	transport := o.transport
	if transport == nil {
		transport = rpcconn.NewHTTPTransport(rpcconn.HTTPConfig{
			URL:      o.endpoint.URL(),
			User:     creds.User,
			Password: creds.Password,
			Client:   o.httpClient,
		})
	}

	return &Client{
		conn:     rpcconn.NewConn(transport, o.codec),
		endpoint: o.endpoint,
		logger:   o.logger,
	}
}

// Endpoint returns the daemon address the client was built for.
func (c *Client) Endpoint() chainconf.Endpoint { return c.endpoint }

// send performs one call. When the daemon reports that it is still warming
// up, the call is re-issued exactly once and the second outcome is returned
// whatever it is.
func (c *Client) send(ctx context.Context, method string, out any, params ...any) error {
	id := clientID
	if method == "getinfo" {
		id = getInfoID
	}

	rpcErr, err := c.conn.Exchange(ctx, rpcconn.NewRequest(id, method, params...), out)
	if err != nil {
		return err
	}
	if rpcErr == nil {
		return nil
	}
	if !rpcErr.IsWarmingUp() {
		return rpcErr
	}

	c.logger.Warn().Str("method", method).Int32("code", rpcErr.Code).Msg(bootingNotice)

	rpcErr, err = c.conn.Exchange(ctx, rpcconn.NewRequest(id, method, params...), out)
	if err != nil {
		return err
	}
	if rpcErr != nil {
		return rpcErr
	}
	return nil
}

// Call invokes an arbitrary method and decodes its result into out. It
// follows the same retry rule as the typed operations.
//
// A nil out discards the result. In that case a reply carrying neither
// result nor error, which is how komodod answers void methods such as
// setgenerate, counts as success. With a non-nil out the same reply is a
// *rpcconn.ProtocolError.
func (c *Client) Call(ctx context.Context, method string, out any, params ...any) error {
	err := c.send(ctx, method, out, params...)
	if out == nil && isNullReply(err) {
		return nil
	}
	return err
}

// isNullReply reports whether err is a response envelope with neither a
// result nor an error.
func isNullReply(err error) bool {
	var protoErr *rpcconn.ProtocolError
	return errors.As(err, &protoErr) && !protoErr.HasResult && !protoErr.HasError
}
