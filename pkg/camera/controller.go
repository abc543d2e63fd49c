package camera

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urmzd/kodakam/pkg/catalog"
	"github.com/urmzd/kodakam/pkg/device"
	"github.com/urmzd/kodakam/pkg/protocol"
)

const (
	DefaultRequestTimeout   = 10 * time.Second
	DefaultSweepConcurrency = 8
	DefaultPort             = 80

	// Replies are a single line; anything longer is truncated.
	maxReplyBytes = 64 << 10
)

// Options configures a Controller. Zero values select the defaults.
type Options struct {
	RequestTimeout   time.Duration
	SweepConcurrency int
	Port             int          // used when an address carries no port
	HTTPClient       *http.Client // defaults to a client without its own timeout
}

// Controller implements device.Controller over plain HTTP GET.
type Controller struct {
	client *http.Client
	opts   Options
	tokens []string

	// one slot per address; sweeps against the same camera queue up
	sweepsMu sync.Mutex
	sweeps   map[string]chan struct{}
}

var _ device.Controller = (*Controller)(nil)

// NewController creates a camera controller.
func NewController(opts Options) *Controller {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}
	if opts.SweepConcurrency <= 0 {
		opts.SweepConcurrency = DefaultSweepConcurrency
	}
	if opts.Port <= 0 {
		opts.Port = DefaultPort
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	return &Controller{
		client: client,
		opts:   opts,
		tokens: catalog.SweepTokens(),
		sweeps: make(map[string]chan struct{}),
	}
}

// Options returns the effective options.
func (c *Controller) Options() Options {
	return c.opts
}

// BaseURL returns the request base for address, applying the default port.
func (c *Controller) BaseURL(address string) (string, error) {
	host, err := c.hostPort(address)
	if err != nil {
		return "", err
	}
	return protocol.BaseURL(host), nil
}

func (c *Controller) hostPort(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" || strings.ContainsAny(address, "/?#@ \t") {
		return "", fmt.Errorf("%w: %q", device.ErrInvalidAddress, address)
	}

	if host, port, err := net.SplitHostPort(address); err == nil {
		if host == "" {
			return "", fmt.Errorf("%w: %q", device.ErrInvalidAddress, address)
		}
		if _, err := strconv.Atoi(port); err != nil {
			return "", fmt.Errorf("%w: bad port in %q", device.ErrInvalidAddress, address)
		}
		return address, nil
	}

	if c.opts.Port == DefaultPort {
		return address, nil
	}
	return net.JoinHostPort(address, strconv.Itoa(c.opts.Port)), nil
}

// endpoint returns the canonical host:port of address, with the port always
// spelled out. It keys per-camera state.
func (c *Controller) endpoint(address string) (string, error) {
	hp, err := c.hostPort(address)
	if err != nil {
		return "", err
	}
	host, port, err := net.SplitHostPort(hp)
	if err != nil {
		return net.JoinHostPort(strings.ToLower(hp), strconv.Itoa(DefaultPort)), nil
	}
	n, _ := strconv.Atoi(port)
	return net.JoinHostPort(strings.ToLower(host), strconv.Itoa(n)), nil
}

// Execute sends cmd with values to the camera at address.
// Values are not validated here; callers run catalog.Validate first.
func (c *Controller) Execute(ctx context.Context, address string, cmd catalog.Command, values catalog.Values) (*protocol.Response, error) {
	base, err := c.BaseURL(address)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, address, cmd.Token, protocol.Encode(base, cmd, values))
}

// Query sends a parameterless raw wire token.
func (c *Controller) Query(ctx context.Context, address, token string) (*protocol.Response, error) {
	base, err := c.BaseURL(address)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, address, token, protocol.EncodeToken(base, token))
}

// Probe asks for get_caminfo and reports device.ErrNotCamera when the reply
// does not carry the get_caminfo prefix.
func (c *Controller) Probe(ctx context.Context, address string) (*protocol.Response, error) {
	resp, err := c.Query(ctx, address, "get_caminfo")
	if err != nil {
		return nil, err
	}
	if resp.Outcome == protocol.OutcomeUnparseable {
		return resp, fmt.Errorf("%w: %s", device.ErrNotCamera, address)
	}
	return resp, nil
}

func (c *Controller) do(ctx context.Context, address, token, url string) (*protocol.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.RequestTimeout)
	defer cancel()

	start := time.Now()
	body, err := c.get(ctx, url)
	elapsed := time.Since(start)
	requestDuration.WithLabelValues(token).Observe(elapsed.Seconds())

	if err != nil {
		requestsTotal.WithLabelValues(token, "error").Inc()
		log.Warn().
			Err(err).
			Str("address", address).
			Str("command", token).
			Dur("latency", elapsed).
			Msg("Camera request failed")
		return nil, err
	}

	resp := protocol.Decode(token, body)
	requestsTotal.WithLabelValues(token, resp.Outcome.String()).Inc()

	log.Debug().
		Str("address", address).
		Str("command", token).
		Str("outcome", resp.Outcome.String()).
		Int("fields", len(resp.Fields)).
		Dur("latency", elapsed).
		Msg("Camera request")

	return &resp, nil
}

func (c *Controller) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", device.ErrInvalidAddress, err)
	}
	req.Header.Set("Accept", "text/plain")

	res, err := c.client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s", device.ErrTimeout, c.opts.RequestTimeout)
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", device.ErrUnreachable, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s", device.ErrHTTPStatus, res.Status)
	}

	b, err := io.ReadAll(io.LimitReader(res.Body, maxReplyBytes))
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s", device.ErrTimeout, c.opts.RequestTimeout)
		}
		return "", fmt.Errorf("%w: read body: %v", device.ErrUnreachable, err)
	}
	return string(b), nil
}
