package counter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-counter-client/internal/push"
	"github.com/MKhiriev/go-counter-client/models"
)

// pushHandler binds one push subscription to the client. closed and sub are
// guarded by the client's mu.
type pushHandler struct {
	c      *Client
	sub    push.Subscription
	closed bool
}

var _ push.Handler = (*pushHandler)(nil)

// subscribe opens the push channel. Failures are logged at debug level and
// otherwise ignored: no error is surfaced and no retry is scheduled.
func (c *Client) subscribe(ctx context.Context) {
	url := c.adapter.PushURL()
	h := &pushHandler{c: c}

	sub, err := c.subscriber.Subscribe(ctx, url, h)
	if err != nil {
		c.logger.Debug().Err(err).Str("url", url).Msg("push channel unavailable")
		return
	}

	c.mu.Lock()
	switch {
	case c.closed:
		c.mu.Unlock()
		_ = sub.Close()
		return
	case h.closed:
		// the channel went away before the handle was stored
		c.mu.Unlock()
		return
	}
	if c.sub != nil {
		c.logger.Warn().Msg("replacing an active push subscription")
	}
	h.sub = sub
	c.sub = sub
	c.mu.Unlock()

	c.notify()
}

// OnMessage implements [push.Handler].
func (h *pushHandler) OnMessage(data []byte) {
	h.c.handlePush(data)
}

// OnClose implements [push.Handler]. The handle is cleared; there is no
// reconnection.
func (h *pushHandler) OnClose(err error) {
	c := h.c

	c.mu.Lock()
	h.closed = true
	wasCurrent := h.sub != nil && c.sub == h.sub
	if wasCurrent {
		c.sub = nil
	}
	c.mu.Unlock()

	c.logger.Debug().Err(err).Msg("push subscription ended")
	if wasCurrent {
		c.notify()
	}
}

// handlePush applies a counter frame. Frames that are not valid JSON are
// logged; frames of any other type are ignored. The value is applied without
// any staleness check against pulled values, and the error message is left
// as it is.
func (c *Client) handlePush(data []byte) {
	var msg models.PushMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.logger.Warn().Err(err).Bytes("payload", data).Msg("push frame parse failed")
		return
	}

	if !msg.IsCounter() {
		if msg.Type == models.PushTypeCounter {
			c.logger.Warn().Bytes("payload", data).Msg("counter push frame without value")
		}
		return
	}

	c.mutate(func(s *models.DisplayState) {
		c.issued++
		c.accept(c.issued)
		s.Value = *msg.Value
		s.HasValue = true
	})
}
