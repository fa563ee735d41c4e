package counter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-counter-client/internal/adapter"
	"github.com/MKhiriev/go-counter-client/internal/logger"
	"github.com/MKhiriev/go-counter-client/internal/push"
	"github.com/MKhiriev/go-counter-client/internal/workers"
	"github.com/MKhiriev/go-counter-client/models"
)

// DefaultPollInterval is the poll timer period used when Options leaves it
// unset.
const DefaultPollInterval = 3 * time.Second

// Options tunes a [Client].
type Options struct {
	// PollInterval is the poll timer period. Zero means DefaultPollInterval.
	PollInterval time.Duration
	// DisablePush skips the push subscription on Start.
	DisablePush bool
	// DiscardStale drops responses issued before the last applied update.
	// This deviates from the default last-write-wins behaviour.
	DiscardStale bool
}

// Listener is notified with a state snapshot after every state change.
type Listener func(state models.DisplayState)

// Client is the counter client core. It is safe for concurrent use; every
// exported method may be called from any goroutine.
type Client struct {
	adapter    adapter.CounterAdapter
	subscriber push.Subscriber
	opts       Options
	logger     *logger.Logger

	poll *workers.TickerJob

	// notifyMu serialises state changes together with their notifications so
	// listeners observe snapshots in the order they were produced.
	notifyMu sync.Mutex

	mu           sync.Mutex
	state        models.DisplayState
	issued       uint64
	applied      uint64
	sub          push.Subscription
	closed       bool
	listeners    map[int]Listener
	nextListener int
}

// New creates a Client. subscriber may be nil, which disables the push source
// the same way Options.DisablePush does.
func New(counterAdapter adapter.CounterAdapter, subscriber push.Subscriber, opts Options, log *logger.Logger) *Client {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if subscriber == nil {
		opts.DisablePush = true
	}

	c := &Client{
		adapter:    counterAdapter,
		subscriber: subscriber,
		opts:       opts,
		logger:     log.WithComponent("counter"),
		listeners:  make(map[int]Listener),
	}
	c.poll = workers.NewTickerJob(c.FetchValue)

	return c
}

// State returns a snapshot of the current display state.
func (c *Client) State() models.DisplayState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// PushConnected reports whether a push subscription is currently held.
func (c *Client) PushConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sub != nil
}

// Subscribe registers fn for state change notifications and returns a func
// that removes it. fn runs on the goroutine that caused the change and must
// not call back into methods that change the state.
func (c *Client) Subscribe(fn Listener) func() {
	c.mu.Lock()
	id := c.nextListener
	c.nextListener++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// FetchValue reads the current value from the backend. The error message is
// cleared when the request is issued; on success the value is replaced, on
// failure the error message is set and the value is kept. Loading is never
// touched.
func (c *Client) FetchValue(ctx context.Context) {
	seq := c.issue(func(s *models.DisplayState) {
		s.Err = ""
	})

	counter, err := c.adapter.Get(ctx)
	if err != nil {
		c.logger.Debug().Err(err).Msg("fetch counter failed")
	}
	c.applyResult(seq, opGet, counter, err)
}

// PostAction applies action remotely. Loading is true for the duration of the
// call and reset to false when it returns, whatever the outcome. Calls are not
// de-duplicated: overlapping calls each reset Loading on completion.
//
// The only error returned is [ErrUnknownAction]; request failures are
// reported through the state.
func (c *Client) PostAction(ctx context.Context, action models.Action) error {
	if !action.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	seq := c.issue(func(s *models.DisplayState) {
		s.Loading = true
		s.Err = ""
	})
	defer c.mutate(func(s *models.DisplayState) {
		s.Loading = false
	})

	counter, err := c.adapter.Apply(ctx, action)
	if err != nil {
		c.logger.Debug().Err(err).Str("action", action.String()).Msg("counter action failed")
	}
	c.applyResult(seq, opPost, counter, err)

	return nil
}

// Start mounts the client: it fires the initial read, opens the push
// subscription (unless disabled) and starts the poll timer. Start does not
// wait for the read or the subscription. Requests are issued with a context
// detached from ctx's cancellation, so they are never cancelled.
func (c *Client) Start(ctx context.Context) {
	reqCtx := context.WithoutCancel(ctx)

	go c.FetchValue(reqCtx)

	if !c.opts.DisablePush {
		go c.subscribe(ctx)
	}

	c.poll.Start(ctx, c.opts.PollInterval)
}

// Stop cancels the poll timer. In-flight requests complete normally and the
// push subscription stays open; use Close to release it.
func (c *Client) Stop() {
	if !c.poll.Running() {
		return
	}
	c.poll.Stop()
	c.logger.Debug().Msg("poll timer stopped")
}

// Close stops the poll timer and closes the push subscription if one is
// held. A subscription that is still being established is closed as soon as
// it is up.
func (c *Client) Close() error {
	c.Stop()

	c.mu.Lock()
	c.closed = true
	sub := c.sub
	c.mu.Unlock()

	if sub == nil {
		return nil
	}
	return sub.Close()
}

// issue assigns the next request sequence number and applies fn as part of
// the same state change.
func (c *Client) issue(fn func(s *models.DisplayState)) uint64 {
	var seq uint64
	c.mutate(func(s *models.DisplayState) {
		c.issued++
		seq = c.issued
		fn(s)
	})

	return seq
}

func (c *Client) applyResult(seq uint64, op string, counter models.Counter, err error) {
	c.mutate(func(s *models.DisplayState) {
		if !c.accept(seq) {
			c.logger.Debug().Uint64("seq", seq).Str("op", op).Msg("stale response discarded")
			return
		}

		if err != nil {
			s.Err = describeError(op, err)
			return
		}
		s.Value = counter.Value
		s.HasValue = true
		s.Err = ""
	})
}

// accept reports whether a response for seq may be applied and records it as
// applied. Must be called with c.mu held.
func (c *Client) accept(seq uint64) bool {
	if c.opts.DiscardStale && seq < c.applied {
		return false
	}
	if seq > c.applied {
		c.applied = seq
	}

	return true
}

// mutate applies fn to the state and notifies listeners with the resulting
// snapshot. Listeners are called without c.mu held.
func (c *Client) mutate(fn func(s *models.DisplayState)) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	fn(&c.state)
	snapshot := c.state
	listeners := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.mu.Unlock()

	for _, l := range listeners {
		l(snapshot)
	}
}

// notify re-publishes the current state, used when something listeners can
// observe outside DisplayState (the push connection) changes.
func (c *Client) notify() {
	c.mutate(func(*models.DisplayState) {})
}
