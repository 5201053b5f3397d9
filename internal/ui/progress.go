package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"tinyjava/internal/driver"
)

type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	prog    progress.Model
	items   []fileItem
	index   map[string]int
	width   int
	done    bool
}

type fileItem struct {
	path   string
	status driver.Status
	stage  driver.Stage
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that lists files with their
// current pass until events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	items := make([]fileItem, len(files))
	index := make(map[string]int, len(files))
	for i, file := range files {
		items[i] = fileItem{path: file, status: driver.StatusQueued}
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
	return tea.Batch(m.spinner.Tick, m.listen())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(driver.Event(msg)), m.listen())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = max(msg.Width-4, 10)
		}
	case progress.FrameMsg:
		next, cmd := m.prog.Update(msg)
		m.prog = next.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	header := fmt.Sprintf("%s %s", m.spinner.View(), m.title)
	if m.done {
		header = "done: " + m.title
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(header))
	b.WriteString("\n\n")

	nameWidth := max(m.width-16, 20)
	for _, item := range m.items {
		label := itemLabel(item)
		fmt.Fprintf(&b, "  %s %s\n", statusStyle(item.status).Render(fmt.Sprintf("%12s", label)), truncate(item.path, nameWidth))
	}
	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) listen() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) apply(ev driver.Event) tea.Cmd {
	idx, ok := m.index[ev.File]
	if !ok {
		return nil
	}
	m.items[idx].status = ev.Status
	m.items[idx].stage = ev.Stage
	return m.prog.SetPercent(m.fraction())
}

// fraction is the share of work done: finished files count fully, running
// ones by the pass they are in.
func (m *progressModel) fraction() float64 {
	if len(m.items) == 0 {
		return 0
	}
	total := 0.0
	for _, item := range m.items {
		switch item.status {
		case driver.StatusDone, driver.StatusCached, driver.StatusError:
			total++
		case driver.StatusWorking:
			total += float64(item.stage-1) / float64(driver.StageIR)
		}
	}
	return total / float64(len(m.items))
}

func itemLabel(item fileItem) string {
	if item.status == driver.StatusWorking {
		return stageVerb(item.stage)
	}
	return string(item.status)
}

func stageVerb(stage driver.Stage) string {
	switch stage {
	case driver.StageTokenize:
		return "lexing"
	case driver.StageParse:
		return "parsing"
	case driver.StageCheck:
		return "checking"
	case driver.StageIR:
		return "lowering"
	}
	return "working"
}

func statusStyle(status driver.Status) lipgloss.Style {
	switch status {
	case driver.StatusDone:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case driver.StatusCached:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	case driver.StatusError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case driver.StatusWorking:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
}

func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
