package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/marky"
	mlg "github.com/fwojciec/marky/lipgloss"
	"github.com/mattn/go-runewidth"
)

var _ tea.Model = Model{}

// footerHeight is the number of lines below the viewport.
const footerHeight = 1

// Model is the Bubble Tea model for the document viewer.
type Model struct {
	// Viewport is the scrollable document area. Exported for test access.
	Viewport viewport.Model

	nodes  []marky.Composable
	theme  marky.Theme
	styles Styles
	title  string
	width  int
	ready  bool
}

// New creates a viewer Model for nodes rendered with theme.
func New(nodes []marky.Composable, theme marky.Theme) Model {
	return Model{
		nodes:  nodes,
		theme:  theme,
		styles: NewStyles(theme),
	}
}

// WithTitle returns a copy of m that shows title in the status line.
func (m Model) WithTitle(title string) Model {
	m.title = title
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.Viewport.View() + "\n" + m.statusLine()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	vpHeight := max(msg.Height-footerHeight, 1)

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}

	// Tables are laid out against the width, so a resize re-renders.
	if msg.Width != m.width {
		m.width = msg.Width
		m.Viewport.SetContent(m.renderContent())
	}
	return m
}

func (m Model) renderContent() string {
	return mlg.Render(m.nodes, m.width, m.theme)
}

func (m Model) statusLine() string {
	percent := fmt.Sprintf("%3.f%%", m.Viewport.ScrollPercent()*100)
	help := "q quit"
	room := m.width - runewidth.StringWidth(percent) - runewidth.StringWidth(help) - 3
	title := ""
	if room > 0 {
		title = runewidth.Truncate(m.title, room, "…")
	}
	gap := max(m.width-runewidth.StringWidth(title)-runewidth.StringWidth(percent)-runewidth.StringWidth(help)-2, 1)
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(m.styles.Muted.Render(help))
	b.WriteString("  ")
	b.WriteString(m.styles.Muted.Render(percent))
	return b.String()
}
