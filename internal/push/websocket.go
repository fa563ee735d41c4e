package push

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-counter-client/internal/logger"
	"github.com/gorilla/websocket"
)

const handshakeTimeout = 10 * time.Second

type wsSubscriber struct {
	dialer *websocket.Dialer
	logger *logger.Logger
}

// NewWebSocketSubscriber returns a [Subscriber] backed by gorilla/websocket.
func NewWebSocketSubscriber(log *logger.Logger) Subscriber {
	return &wsSubscriber{
		dialer: &websocket.Dialer{
			Proxy:            websocket.DefaultDialer.Proxy,
			HandshakeTimeout: handshakeTimeout,
		},
		logger: log.WithComponent("push"),
	}
}

// Subscribe implements [Subscriber].
func (s *wsSubscriber) Subscribe(ctx context.Context, url string, h Handler) (Subscription, error) {
	conn, _, err := s.dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial push channel %s: %w", url, err)
	}

	s.logger.Debug().Str("url", url).Msg("push channel established")

	return newSubscription(conn, h, s.logger), nil
}

type subscription struct {
	conn    Conn
	handler Handler
	logger  *logger.Logger

	closing   atomic.Bool
	closeOnce sync.Once
	closeErr  error
	done      chan struct{}
}

func newSubscription(conn Conn, h Handler, log *logger.Logger) *subscription {
	sub := &subscription{
		conn:    conn,
		handler: h,
		logger:  log,
		done:    make(chan struct{}),
	}
	go sub.readLoop()

	return sub
}

func (s *subscription) readLoop() {
	defer close(s.done)

	for {
		messageType, data, err := s.conn.ReadMessage()
		if err != nil {
			s.finish(err)
			return
		}

		switch messageType {
		case websocket.TextMessage, websocket.BinaryMessage:
			s.handler.OnMessage(data)
		}
	}
}

func (s *subscription) finish(readErr error) {
	var err error
	switch {
	case s.closing.Load():
	case websocket.IsCloseError(readErr, websocket.CloseNormalClosure, websocket.CloseGoingAway):
	default:
		err = readErr
	}

	s.logger.Debug().Err(err).Msg("push channel closed")
	_ = s.conn.Close()
	s.handler.OnClose(err)
}

// Close implements [Subscription].
func (s *subscription) Close() error {
	s.closeOnce.Do(func() {
		s.closing.Store(true)
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		if err := s.conn.WriteMessage(websocket.CloseMessage, msg); err != nil && !errors.Is(err, websocket.ErrCloseSent) {
			s.logger.Debug().Err(err).Msg("push close frame not sent")
		}
		s.closeErr = s.conn.Close()
	})

	return s.closeErr
}

// Done implements [Subscription].
func (s *subscription) Done() <-chan struct{} {
	return s.done
}
