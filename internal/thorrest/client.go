// Package thorrest is a driver backed by the REST API of a thor node.
// It serves chain reads only; signing needs a wallet and is refused.
package thorrest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/connex-go/internal/clock"
	"github.com/goodnatureofminers/connex-go/pkg/driver"
	"github.com/goodnatureofminers/connex-go/pkg/thor"
)

const (
	blockInterval = 10 * time.Second
	// maxErrorBody bounds how much of a failed response ends up in an error.
	maxErrorBody = 512
)

// ErrVendorUnsupported is returned by the signing methods.
var ErrVendorUnsupported = errors.New("thorrest: signing is not supported by a node driver")

// Config configures a Client.
type Config struct {
	// BaseURL is the node API root, e.g. http://localhost:8669.
	BaseURL string
	// MinPollInterval is the least time PollHead waits between two requests.
	MinPollInterval time.Duration
	// RPS caps the requests per second sent to the node.
	RPS int
	// Timeout bounds a single HTTP request.
	Timeout time.Duration
}

// Client implements driver.Driver over HTTP.
type Client struct {
	baseURL      *url.URL
	http         *http.Client
	limiter      ratelimit.Limiter
	logger       *zap.Logger
	clock        clock.Clock
	pollInterval time.Duration

	genesis thor.Block

	mu   sync.Mutex
	head thor.Head

	done   context.Context
	cancel context.CancelFunc
}

var _ driver.Driver = (*Client)(nil)

// New connects to the node and loads the genesis block and the best block.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("thorrest: invalid base url %q", cfg.BaseURL)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	rps := cfg.RPS
	if rps <= 0 {
		rps = 10
	}
	interval := cfg.MinPollInterval
	if interval <= 0 {
		interval = time.Second
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	done, cancel := context.WithCancel(context.Background())
	c := &Client{
		baseURL:      base,
		http:         &http.Client{Timeout: timeout},
		limiter:      ratelimit.New(rps),
		logger:       logger.Named("thorrest"),
		clock:        clock.System{},
		pollInterval: interval,
		done:         done,
		cancel:       cancel,
	}

	genesis, err := c.block(ctx, "0")
	if err == nil && genesis == nil {
		err = errors.New("not found")
	}
	if err != nil {
		cancel()
		return nil, fmt.Errorf("load genesis: %w", err)
	}
	best, err := c.block(ctx, "best")
	if err == nil && best == nil {
		err = errors.New("not found")
	}
	if err != nil {
		cancel()
		return nil, fmt.Errorf("load best block: %w", err)
	}
	c.genesis = *genesis
	c.head = best.Head()

	c.logger.Info("connected",
		zap.String("url", base.String()),
		zap.String("genesis", genesis.ID),
		zap.Uint32("head", best.Number))
	return c, nil
}

// Close stops the client. PollHead fails with driver.ErrClosed afterwards.
func (c *Client) Close() error {
	c.cancel()
	return nil
}

func (c *Client) Genesis() thor.Block {
	return c.genesis.Clone()
}

func (c *Client) Head() thor.Head {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.head
}

// PollHead waits until the node reports a best block other than the
// current head. The first request is timed for when the next block is due.
func (c *Client) PollHead(ctx context.Context) (thor.Head, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(c.done, cancel)
	defer stop()

	for {
		current := c.Head()
		next := time.Unix(int64(current.Timestamp), 0).Add(blockInterval)
		if earliest := c.clock.Now().Add(c.pollInterval); next.Before(earliest) {
			next = earliest
		}
		if err := clock.SleepUntil(ctx, c.clock, next); err != nil {
			return thor.Head{}, c.closedOr(err)
		}

		best, err := c.block(ctx, "best")
		if err != nil {
			return thor.Head{}, c.closedOr(err)
		}
		if best == nil || best.ID == current.ID {
			continue
		}

		head := best.Head()
		c.mu.Lock()
		c.head = head
		c.mu.Unlock()
		return head, nil
	}
}

// closedOr reports driver.ErrClosed once the client is closed, err otherwise.
func (c *Client) closedOr(err error) error {
	if c.done.Err() != nil {
		return driver.ErrClosed
	}
	return err
}

func (c *Client) block(ctx context.Context, revision string) (*thor.Block, error) {
	var b *thor.Block
	if err := c.get(ctx, "/blocks/"+url.PathEscape(revision), nil, &b); err != nil {
		return nil, err
	}
	return b, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, out any) error {
	target := c.baseURL.String() + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.limiter.Take()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, strings.TrimSpace(string(msg)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
