package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mydehq/ryu/internal/types"
	"github.com/mydehq/ryu/internal/view"
)

// FetchFunc loads one media entry
type FetchFunc func(ctx context.Context, mediaID int) (*types.Media, error)

// detailLoadedMsg delivers a fetch outcome to the program loop.
// seq identifies the fetch so results of superseded fetches can be dropped.
type detailLoadedMsg struct {
	seq   int
	media *types.Media
	err   error
}

// DetailScreen is a Bubble Tea model showing one catalog entry.
// Fetches run as commands off the program loop; every state change
// happens in Update.
type DetailScreen struct {
	mediaID int
	fetch   FetchFunc

	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc
	seq    int

	loading bool
	closed  bool
	detail  *view.Detail
	err     error
	width   int

	spinner spinner.Model
}

// NewDetailScreen creates a detail screen that loads mediaID with fetch.
// The first fetch starts when the program calls Init.
func NewDetailScreen(ctx context.Context, mediaID int, fetch FetchFunc) DetailScreen {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = StyleCommand

	m := DetailScreen{
		mediaID: mediaID,
		fetch:   fetch,
		parent:  ctx,
		cancel:  func() {},
		spinner: s,
	}
	return m.prepare()
}

func (m DetailScreen) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(), m.spinner.Tick)
}

// prepare cancels any fetch in flight and sets up state for a new one
func (m DetailScreen) prepare() DetailScreen {
	m.cancel()
	m.ctx, m.cancel = context.WithCancel(m.parent)
	m.seq++
	m.loading = true
	m.err = nil
	return m
}

func (m DetailScreen) fetchCmd() tea.Cmd {
	ctx, seq, id, fetch := m.ctx, m.seq, m.mediaID, m.fetch
	return func() tea.Msg {
		media, err := fetch(ctx, id)
		return detailLoadedMsg{seq: seq, media: media, err: err}
	}
}

func (m DetailScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case detailLoadedMsg:
		if m.closed || msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		d := view.Project(msg.media)
		m.detail = &d
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.closed = true
			m.cancel()
			return m, tea.Quit
		case "r":
			if m.loading {
				return m, nil
			}
			m = m.prepare()
			return m, tea.Batch(m.fetchCmd(), m.spinner.Tick)
		}
	}

	return m, nil
}

func (m DetailScreen) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(StyleCommand.Render(fmt.Sprintf("%s Loading anime %d…", m.spinner.View(), m.mediaID)) + "\n")
	case m.err != nil:
		b.WriteString(StyleFlag.Render("Failed to load anime: ") + m.err.Error() + "\n")
	case m.detail != nil:
		b.WriteString(RenderDetail(*m.detail, m.width))
	}

	if !m.closed {
		b.WriteString("\n" + StyleDim.Render("  r reload • q quit") + "\n")
	}
	return b.String()
}

// Detail returns the projected entry once loaded
func (m DetailScreen) Detail() (view.Detail, bool) {
	if m.detail == nil {
		return view.Detail{}, false
	}
	return *m.detail, true
}

// Err returns the error of the last fetch, if it failed
func (m DetailScreen) Err() error {
	return m.err
}

// Close cancels any fetch in flight
func (m DetailScreen) Close() {
	m.cancel()
}

// RunDetail runs the detail screen until the user quits or ctx ends
func RunDetail(ctx context.Context, mediaID int, fetch FetchFunc) (DetailScreen, error) {
	m := NewDetailScreen(ctx, mediaID, fetch)
	defer m.Close()

	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return m, fmt.Errorf("detail screen failed: %w", err)
	}

	screen := final.(DetailScreen)
	screen.Close()
	return screen, nil
}
