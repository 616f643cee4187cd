// Package headtracker turns a driver's head polling primitive into a shared
// notification that any number of consumers can wait on.
package headtracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/connex-go/internal/clock"
	"github.com/goodnatureofminers/connex-go/pkg/driver"
	"github.com/goodnatureofminers/connex-go/pkg/thor"
)

const (
	// blockInterval is the expected time between two blocks.
	blockInterval = 10 * time.Second
	// syncedLag is how old the head may be while still considered in sync.
	syncedLag = 3 * blockInterval
)

var (
	// ErrClosed is returned by every wait once the tracker stopped for good.
	ErrClosed = errors.New("head tracker closed")
	// ErrAlreadyRunning is returned by Run when a poll loop is already active.
	ErrAlreadyRunning = errors.New("head tracker already running")
)

// generation is resolved exactly once, by the poll that ends it.
type generation struct {
	done    chan struct{}
	head    thor.Head
	err     error
	waiters int
}

func newGeneration() *generation {
	return &generation{done: make(chan struct{})}
}

// Tracker keeps the best known head and fans out head changes.
type Tracker struct {
	source  HeadSource
	logger  *zap.Logger
	metrics Metrics
	clock   clock.Clock
	genesis thor.Block

	running atomic.Bool

	mu       sync.Mutex
	head     thor.Head
	pending  *generation
	closeErr error
}

// New builds a Tracker starting from the source's current head.
// A nil metrics records nothing.
func New(source HeadSource, logger *zap.Logger, metrics Metrics) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Tracker{
		source:  source,
		logger:  logger.Named("headTracker"),
		metrics: metrics,
		clock:   clock.System{},
		genesis: source.Genesis().Clone(),
		head:    source.Head(),
		pending: newGeneration(),
	}
}

// Head returns the most recently observed head.
func (t *Tracker) Head() thor.Head {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.head
}

// Progress estimates sync completeness in [0,1].
func (t *Tracker) Progress() float64 {
	return progress(t.Head().Timestamp, t.genesis.Timestamp, t.clock.Now())
}

// Status returns the head together with its progress.
func (t *Tracker) Status() thor.Status {
	head := t.Head()
	return thor.Status{
		Head:     head,
		Progress: progress(head.Timestamp, t.genesis.Timestamp, t.clock.Now()),
	}
}

// Err returns the terminal error once the tracker is closed, nil before.
func (t *Tracker) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closeErr
}

// NextHead waits for the poll in flight to deliver a new head. Every caller
// that joins before that poll resolves receives the same head.
func (t *Tracker) NextHead(ctx context.Context) (thor.Head, error) {
	t.mu.Lock()
	if t.closeErr != nil {
		err := t.closeErr
		t.mu.Unlock()
		return thor.Head{}, err
	}
	g := t.join()
	t.mu.Unlock()
	return g.wait(ctx)
}

// nextAfter returns the current head if its id is not lastID, otherwise it
// waits like NextHead. The check and the join happen under one lock so an
// update in between cannot be skipped.
func (t *Tracker) nextAfter(ctx context.Context, lastID string) (thor.Head, error) {
	t.mu.Lock()
	if t.closeErr != nil {
		err := t.closeErr
		t.mu.Unlock()
		return thor.Head{}, err
	}
	if t.head.ID != lastID {
		head := t.head
		t.mu.Unlock()
		return head, nil
	}
	g := t.join()
	t.mu.Unlock()
	return g.wait(ctx)
}

// join registers a waiter on the pending generation. t.mu must be held.
func (t *Tracker) join() *generation {
	t.pending.waiters++
	return t.pending
}

func (g *generation) wait(ctx context.Context) (thor.Head, error) {
	select {
	case <-g.done:
		return g.head, g.err
	case <-ctx.Done():
		return thor.Head{}, ctx.Err()
	}
}

// Run polls the source until it reports driver.ErrClosed or ctx is done.
// Transient poll errors are logged and the next poll starts immediately.
// Either way the tracker ends up closed and Run returns the terminal error.
func (t *Tracker) Run(ctx context.Context) error {
	if err := t.Err(); err != nil {
		return err
	}
	if !t.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer t.running.Store(false)

	t.logger.Info("head tracker started", zap.Uint32("number", t.Head().Number))
	for {
		started := time.Now()
		head, err := t.source.PollHead(ctx)
		t.metrics.ObservePoll(err, started)

		switch {
		case err == nil:
			t.update(head)
		case ctx.Err() != nil:
			return t.close(ctx.Err())
		case errors.Is(err, driver.ErrClosed):
			return t.close(err)
		default:
			t.logger.Warn("poll head failed", zap.Error(err))
		}
	}
}

func (t *Tracker) update(head thor.Head) {
	t.mu.Lock()
	if head.ID == t.head.ID {
		t.mu.Unlock()
		return
	}
	t.head = head
	g := t.pending
	t.pending = newGeneration()
	g.head = head
	close(g.done)
	t.mu.Unlock()

	p := progress(head.Timestamp, t.genesis.Timestamp, t.clock.Now())
	t.metrics.ObserveHead(head.Number, p)
	t.logger.Debug("new head",
		zap.Uint32("number", head.Number),
		zap.String("id", head.ID),
		zap.Int("waiters", g.waiters),
		zap.Float64("progress", p))
}

func (t *Tracker) close(cause error) error {
	err := fmt.Errorf("%w: %w", ErrClosed, cause)

	t.mu.Lock()
	t.closeErr = err
	g := t.pending
	g.err = err
	close(g.done)
	t.mu.Unlock()

	t.logger.Info("head tracker closed", zap.Error(cause), zap.Int("waiters", g.waiters))
	return err
}

func progress(headTs, genesisTs uint64, now time.Time) float64 {
	nowTs := float64(now.Unix())
	head := float64(headTs)
	if nowTs-head < syncedLag.Seconds() {
		return 1
	}
	span := nowTs - float64(genesisTs)
	if span <= 0 {
		return 1
	}
	p := (head - float64(genesisTs)) / span
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
