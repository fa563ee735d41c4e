package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-counter-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

type counterModel struct {
	ctx    context.Context
	client CounterClient
	opts   Options

	state   models.DisplayState
	live    bool
	spinner spinner.Model
	status  string

	showBuildInfo bool
}

func newCounterModel(ctx context.Context, client CounterClient, opts Options) counterModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return counterModel{
		ctx:     ctx,
		client:  client,
		opts:    opts,
		state:   client.State(),
		live:    client.PushConnected(),
		spinner: s,
	}
}

func (m counterModel) Init() tea.Cmd {
	return func() tea.Msg { return syncStateMsg{} }
}

func (m counterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case syncStateMsg:
		// read on the event loop so a later stateChangedMsg always wins
		return m.applyState(m.client.State(), m.client.PushConnected())

	case stateChangedMsg:
		return m.applyState(msg.state, msg.live)

	case actionDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("%s: %v", msg.action, msg.err)
		}

	case copiedMsg:
		m.status = "Copied"
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""

	case spinner.TickMsg:
		if m.state.Loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m counterModel) applyState(state models.DisplayState, live bool) (tea.Model, tea.Cmd) {
	wasLoading := m.state.Loading
	m.state = state
	m.live = live
	if m.state.Loading && !wasLoading {
		return m, m.spinner.Tick
	}

	return m, nil
}

func (m counterModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(msg, keys.incr):
		return m.startAction(models.ActionIncr)
	case key.Matches(msg, keys.decr):
		return m.startAction(models.ActionDecr)
	case key.Matches(msg, keys.reset):
		return m.startAction(models.ActionReset)
	case key.Matches(msg, keys.refresh):
		if m.state.Loading {
			return m, nil
		}
		return m, m.cmdFetch()
	case key.Matches(msg, keys.copy):
		return m.copyValue()
	}

	return m, nil
}

// startAction ignores the key while a mutation is in flight. Loading is set
// locally so a second press is dropped before the client's own
// notification arrives.
func (m counterModel) startAction(action models.Action) (tea.Model, tea.Cmd) {
	if m.state.Loading {
		return m, nil
	}
	m.state.Loading = true
	m.status = ""

	return m, tea.Batch(m.spinner.Tick, m.cmdAction(action))
}

func (m counterModel) copyValue() (tea.Model, tea.Cmd) {
	if !m.state.HasValue {
		m.status = "Nothing to copy"
		return m, nil
	}
	if err := clipboard.WriteAll(m.state.DisplayValue()); err != nil {
		m.status = fmt.Sprintf("Copy failed: %v", err)
		return m, nil
	}

	return m, func() tea.Msg { return copiedMsg{} }
}

func (m counterModel) cmdAction(action models.Action) tea.Cmd {
	return func() tea.Msg {
		err := m.client.PostAction(m.ctx, action)
		return actionDoneMsg{action: action, err: err}
	}
}

func (m counterModel) cmdFetch() tea.Cmd {
	return func() tea.Msg {
		m.client.FetchValue(m.ctx)
		return fetchDoneMsg{}
	}
}

func (m counterModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.opts.BuildInfo)
	}

	var b strings.Builder

	value := valueStyle.Render(m.state.DisplayValue())
	if m.state.Loading {
		value += " " + m.spinner.View()
	}
	b.WriteString(value)
	b.WriteString("\n")

	if m.state.HasError() {
		b.WriteString(errorStyle.Render(m.state.Err))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.sourcesLine())
	b.WriteString("\n\n")
	b.WriteString(m.endpointsBlock())

	return renderPage("COUNTER", b.String(), helpLine(
		keys.incr, keys.decr, keys.reset, keys.refresh, keys.copy, keys.buildInfo, keys.quit,
	))
}

func (m counterModel) sourcesLine() string {
	poll := fmt.Sprintf("poll every %s", m.opts.PollInterval)
	switch {
	case m.opts.PushURL == "":
		return "Updates: " + poll
	case m.live:
		return "Updates: " + liveStyle.Render("push live") + ", " + poll
	default:
		return "Updates: push offline, " + poll
	}
}

func (m counterModel) endpointsBlock() string {
	base := strings.TrimRight(m.opts.BaseURL, "/")

	var b strings.Builder
	b.WriteString(helpStyle.Render("Backend endpoints:"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  GET  %s/counter\n", base)
	for _, a := range models.Actions {
		fmt.Fprintf(&b, "  POST %s/counter/%s\n", base, a)
	}
	if m.opts.PushURL != "" {
		fmt.Fprintf(&b, "  WS   %s", m.opts.PushURL)
	}

	return strings.TrimRight(b.String(), "\n")
}
