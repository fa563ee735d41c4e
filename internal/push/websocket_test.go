package push

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-counter-client/internal/logger"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler collects delivered frames and the close outcome.
type recordingHandler struct {
	mu       sync.Mutex
	messages []string
	closed   chan error
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{closed: make(chan error, 1)}
}

func (h *recordingHandler) OnMessage(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, string(data))
}

func (h *recordingHandler) OnClose(err error) {
	h.closed <- err
}

func (h *recordingHandler) received() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.messages...)
}

// newPushServer upgrades /ws, sends frames, then runs after (if any) with the
// server-side connection.
func newPushServer(t *testing.T, frames []string, after func(conn *websocket.Conn)) string {
	t.Helper()
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ws" {
			http.NotFound(w, r)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for _, f := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
				return
			}
		}
		if after != nil {
			after(conn)
		}
	}))
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func waitClosed(t *testing.T, h *recordingHandler) error {
	t.Helper()
	select {
	case err := <-h.closed:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("OnClose was not called")
		return nil
	}
}

func TestSubscribe_DeliversFramesInOrder(t *testing.T) {
	frames := []string{`{"type":"counter","value":1}`, `{"type":"ping"}`, `garbage`}
	url := newPushServer(t, frames, func(conn *websocket.Conn) {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")
		_ = conn.WriteMessage(websocket.CloseMessage, msg)
	})

	h := newRecordingHandler()
	sub, err := NewWebSocketSubscriber(logger.Nop()).Subscribe(context.Background(), url, h)
	require.NoError(t, err)

	assert.NoError(t, waitClosed(t, h), "normal closure is reported as nil")
	<-sub.Done()
	assert.Equal(t, frames, h.received())
}

func TestSubscribe_AbruptDisconnect_ReportsError(t *testing.T) {
	url := newPushServer(t, nil, func(conn *websocket.Conn) {
		_ = conn.UnderlyingConn().Close()
	})

	h := newRecordingHandler()
	_, err := NewWebSocketSubscriber(logger.Nop()).Subscribe(context.Background(), url, h)
	require.NoError(t, err)

	assert.Error(t, waitClosed(t, h))
}

func TestSubscribe_DialFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	h := newRecordingHandler()
	sub, err := NewWebSocketSubscriber(logger.Nop()).Subscribe(context.Background(), url, h)

	require.Error(t, err)
	assert.Nil(t, sub)
	assert.Empty(t, h.closed, "handler must not be called when dialing fails")
}

func TestSubscription_Close_ReportsNil(t *testing.T) {
	release := make(chan struct{})
	url := newPushServer(t, nil, func(conn *websocket.Conn) {
		// keep reading so the close frame is consumed
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
		<-release
	})
	defer close(release)

	h := newRecordingHandler()
	sub, err := NewWebSocketSubscriber(logger.Nop()).Subscribe(context.Background(), url, h)
	require.NoError(t, err)

	require.NoError(t, sub.Close())
	assert.NoError(t, waitClosed(t, h))
	<-sub.Done()

	assert.NotPanics(t, func() { _ = sub.Close() })
}
