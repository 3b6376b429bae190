package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Status classifies a finished file in the progress view.
type Status uint8

const (
	StatusQueued Status = iota
	StatusChecking
	StatusClean
	StatusIssues
	StatusFailed
)

// Event reports that one script finished checking.
type Event struct {
	Path     string
	Status   Status
	Findings int
}

type progressModel struct {
	title   string
	events  <-chan Event
	spinner spinner.Model
	prog    progress.Model
	items   []fileItem
	index   map[string]int
	width   int
	done    int
	quit    bool
}

type fileItem struct {
	path     string
	status   Status
	findings int
}

type eventMsg Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders per-file check
// progress. The model quits when the events channel closes.
func NewProgressModel(title string, files []string, events <-chan Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]fileItem, 0, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		items = append(items, fileItem{path: file, status: StatusQueued})
		index[file] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		index:   index,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.quit = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.quit {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := fmt.Sprintf("%s (%d/%d)", m.title, m.done, len(m.items))
	if m.quit {
		header = fmt.Sprintf("done: %s", header)
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 12
	nameWidth := m.width - statusWidth - 4
	if nameWidth < 20 {
		nameWidth = 20
	}

	for _, item := range m.items {
		name := truncate(item.path, nameWidth)
		label := statusLabel(item)
		statusStyled := styleStatus(item.status).Render(fmt.Sprintf("%12s", label))
		fmt.Fprintf(&b, "  %s %s\n", statusStyled, name)
	}

	b.WriteString("\n")
	if m.quit {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")

	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev Event) tea.Cmd {
	idx, ok := m.index[ev.Path]
	if !ok {
		return nil
	}
	wasDone := isTerminal(m.items[idx].status)
	m.items[idx].status = ev.Status
	m.items[idx].findings = ev.Findings
	if !wasDone && isTerminal(ev.Status) {
		m.done++
	}

	return m.prog.SetPercent(float64(m.done) / float64(len(m.items)))
}

func isTerminal(s Status) bool {
	return s == StatusClean || s == StatusIssues || s == StatusFailed
}

func statusLabel(item fileItem) string {
	switch item.status {
	case StatusChecking:
		return "checking"
	case StatusClean:
		return "ok"
	case StatusIssues:
		if item.findings == 1 {
			return "1 issue"
		}
		return fmt.Sprintf("%d issues", item.findings)
	case StatusFailed:
		return "error"
	default:
		return "queued"
	}
}

func styleStatus(status Status) lipgloss.Style {
	switch status {
	case StatusClean:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case StatusIssues:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	case StatusFailed:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case StatusChecking:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
