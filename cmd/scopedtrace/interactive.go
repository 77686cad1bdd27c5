package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/scoped/track"
)

var (
	eventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type viewerModel struct {
	filename string
	events   []track.Event
	leaked   map[track.Handle]bool
	filtered []int
	filter   textinput.Model
	cursor   int
	height   int
	filterOn bool
}

func newViewerModel(filename string, events []track.Event) *viewerModel {
	ti := textinput.New()
	ti.Placeholder = "filter by label"
	ti.CharLimit = 64

	leaked := make(map[track.Handle]bool)
	for _, e := range replay(events) {
		leaked[e.Handle] = true
	}

	m := &viewerModel{
		filename: filename,
		events:   events,
		leaked:   leaked,
		filter:   ti,
		height:   24,
	}
	m.applyFilter()
	return m
}

func (m *viewerModel) applyFilter() {
	needle := strings.ToLower(m.filter.Value())
	m.filtered = m.filtered[:0]
	for i, e := range m.events {
		if needle == "" || strings.Contains(strings.ToLower(e.Label), needle) {
			m.filtered = append(m.filtered, i)
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

func (m *viewerModel) Init() tea.Cmd {
	return nil
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.filterOn {
			switch msg.String() {
			case "enter", "esc":
				m.filterOn = false
				m.filter.Blur()
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter()
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "/":
			m.filterOn = true
			m.filter.Focus()
			return m, textinput.Blink
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
		case "g":
			m.cursor = 0
		case "G":
			if n := len(m.filtered); n > 0 {
				m.cursor = n - 1
			}
		}
	}
	return m, nil
}

func (m *viewerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("scopedtrace "+m.filename) + "\n")
	b.WriteString(fmt.Sprintf("%d events, %d leaked\n", len(m.events), len(m.leaked)))
	if m.filterOn || m.filter.Value() != "" {
		b.WriteString(m.filter.View() + "\n")
	}
	b.WriteString("\n")

	window := m.height - 7
	if window < 1 {
		window = 1
	}
	start := 0
	if m.cursor >= window {
		start = m.cursor - window + 1
	}

	for row := start; row < len(m.filtered) && row < start+window; row++ {
		e := m.events[m.filtered[row]]
		line := fmt.Sprintf("%s  %-8s  #%-4d  %s",
			e.Time.Format("15:04:05.000"), e.Type, e.Handle, e.Label)

		switch {
		case row == m.cursor:
			line = selectedStyle.Render(line)
		case e.Type == track.EventAcquired && m.leaked[e.Handle]:
			line = leakStyle.Render(line)
		default:
			line = eventStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("↑/↓ move · / filter · q quit"))
	return b.String()
}

func runInteractive(filename string, events []track.Event) error {
	p := tea.NewProgram(newViewerModel(filename, events), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
