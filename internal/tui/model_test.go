package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-counter-client/internal/counter"
	"github.com/MKhiriev/go-counter-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	mu      sync.Mutex
	state   models.DisplayState
	live    bool
	actions []models.Action
	fetches int
}

func (f *fakeClient) State() models.DisplayState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeClient) PushConnected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.live
}

func (f *fakeClient) Subscribe(counter.Listener) func() { return func() {} }

func (f *fakeClient) FetchValue(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
}

func (f *fakeClient) PostAction(_ context.Context, action models.Action) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actions = append(f.actions, action)
	return nil
}

func newTestModel(state models.DisplayState) (counterModel, *fakeClient) {
	fc := &fakeClient{state: state}
	m := newCounterModel(context.Background(), fc, Options{
		BaseURL:      "http://localhost:8000",
		PushURL:      "ws://localhost:8000/ws",
		PollInterval: 3 * time.Second,
		BuildInfo:    models.NewAppBuildInfo("v1.0.0", "2026-10-01", "abc123"),
	})
	return m, fc
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m counterModel, k tea.KeyMsg) (counterModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(k)
	cm, ok := next.(counterModel)
	require.True(t, ok)
	return cm, cmd
}

// runCmd executes cmd and every command of a batch, returning all messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// ── actions ─────────────────────────────────────────────────────────────────

func TestCounterModel_ActionKeys(t *testing.T) {
	tests := []struct {
		key    string
		action models.Action
	}{
		{"+", models.ActionIncr},
		{"i", models.ActionIncr},
		{"-", models.ActionDecr},
		{"d", models.ActionDecr},
		{"r", models.ActionReset},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, fc := newTestModel(models.DisplayState{Value: 5, HasValue: true})

			m, cmd := press(t, m, runeKey(tt.key))
			require.NotNil(t, cmd)
			assert.True(t, m.state.Loading)

			msgs := runCmd(cmd)
			assert.Contains(t, msgs, tea.Msg(actionDoneMsg{action: tt.action}))
			assert.Equal(t, []models.Action{tt.action}, fc.actions)
		})
	}
}

func TestCounterModel_KeysIgnoredWhileLoading(t *testing.T) {
	m, fc := newTestModel(models.DisplayState{Value: 5, HasValue: true, Loading: true})

	for _, k := range []string{"+", "-", "r", "f"} {
		var cmd tea.Cmd
		m, cmd = press(t, m, runeKey(k))
		assert.Nil(t, cmd, k)
	}
	assert.Empty(t, fc.actions)
	assert.Zero(t, fc.fetches)
}

func TestCounterModel_SecondPressDroppedBeforeNotification(t *testing.T) {
	m, _ := newTestModel(models.DisplayState{})

	m, cmd := press(t, m, runeKey("+"))
	require.NotNil(t, cmd)

	_, cmd = press(t, m, runeKey("+"))
	assert.Nil(t, cmd)
}

func TestCounterModel_Refresh(t *testing.T) {
	m, fc := newTestModel(models.DisplayState{})

	_, cmd := press(t, m, runeKey("f"))
	require.NotNil(t, cmd)

	assert.Equal(t, []tea.Msg{fetchDoneMsg{}}, runCmd(cmd))
	assert.Equal(t, 1, fc.fetches)
}

func TestCounterModel_Quit(t *testing.T) {
	m, _ := newTestModel(models.DisplayState{})

	_, cmd := press(t, m, runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestCounterModel_CopyWithoutValue(t *testing.T) {
	m, _ := newTestModel(models.DisplayState{})

	m, cmd := press(t, m, runeKey("y"))
	assert.Nil(t, cmd)
	assert.Equal(t, "Nothing to copy", m.status)
}

// ── state ───────────────────────────────────────────────────────────────────

func TestCounterModel_StateChanged(t *testing.T) {
	m, _ := newTestModel(models.DisplayState{})

	next, cmd := m.Update(stateChangedMsg{state: models.DisplayState{Value: 7, HasValue: true}, live: true})
	m = next.(counterModel)

	assert.Nil(t, cmd)
	assert.Equal(t, int64(7), m.state.Value)
	assert.True(t, m.live)

	next, cmd = m.Update(stateChangedMsg{state: models.DisplayState{Value: 7, HasValue: true, Loading: true}})
	m = next.(counterModel)
	assert.NotNil(t, cmd, "spinner starts when loading begins")
	assert.True(t, m.state.Loading)
}

func TestCounterModel_InitPicksUpChangesAfterConstruction(t *testing.T) {
	m, fc := newTestModel(models.DisplayState{})

	fc.mu.Lock()
	fc.state = models.DisplayState{Value: 4, HasValue: true}
	fc.live = true
	fc.mu.Unlock()

	cmd := m.Init()
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	m = next.(counterModel)

	assert.Equal(t, int64(4), m.state.Value)
	assert.True(t, m.state.HasValue)
	assert.True(t, m.live)
}

func TestCounterModel_StatusClears(t *testing.T) {
	m, _ := newTestModel(models.DisplayState{})

	next, cmd := m.Update(copiedMsg{})
	m = next.(counterModel)
	assert.Equal(t, "Copied", m.status)
	assert.NotNil(t, cmd)

	next, _ = m.Update(clearStatusMsg{})
	assert.Empty(t, next.(counterModel).status)
}

// ── view ────────────────────────────────────────────────────────────────────

func TestCounterModel_View(t *testing.T) {
	t.Run("placeholder before first value", func(t *testing.T) {
		m, _ := newTestModel(models.DisplayState{})
		assert.Contains(t, m.View(), models.ValuePlaceholder)
	})

	t.Run("value and error", func(t *testing.T) {
		m, _ := newTestModel(models.DisplayState{Value: 6, HasValue: true, Err: "GET failed: db error"})
		view := m.View()
		assert.Contains(t, view, "6")
		assert.Contains(t, view, "GET failed: db error")
	})

	t.Run("endpoint help", func(t *testing.T) {
		m, _ := newTestModel(models.DisplayState{})
		view := m.View()
		assert.Contains(t, view, "GET  http://localhost:8000/counter")
		assert.Contains(t, view, "POST http://localhost:8000/counter/incr")
		assert.Contains(t, view, "POST http://localhost:8000/counter/decr")
		assert.Contains(t, view, "POST http://localhost:8000/counter/reset")
		assert.Contains(t, view, "WS   ws://localhost:8000/ws")
	})

	t.Run("push disabled", func(t *testing.T) {
		m, _ := newTestModel(models.DisplayState{})
		m.opts.PushURL = ""
		view := m.View()
		assert.NotContains(t, view, "WS ")
		assert.Contains(t, view, "Updates: poll every 3s")
	})
}

func TestCounterModel_BuildInfo(t *testing.T) {
	m, fc := newTestModel(models.DisplayState{})

	m, _ = press(t, m, runeKey("v"))
	require.True(t, m.showBuildInfo)
	view := m.View()
	assert.Contains(t, view, "v1.0.0")
	assert.Contains(t, view, "abc123")

	m, cmd := press(t, m, runeKey("+"))
	assert.Nil(t, cmd, "actions are disabled on the about screen")
	assert.Empty(t, fc.actions)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)
}
