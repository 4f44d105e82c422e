package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Messages sent by the pipeline while it runs.
type (
	// ParsedMsg reports how many rule records were segmented.
	ParsedMsg struct{ Count int }
	// ProgressMsg reports encoding progress after each batch.
	ProgressMsg struct{ Done, Total int }
	// SavedMsg reports the written output artifact.
	SavedMsg struct {
		Path  string
		Count int
	}
	// FailedMsg aborts the display with an error.
	FailedMsg struct{ Err error }
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Model is the Bubble Tea model shown while embeddings are computed.
type Model struct {
	bar       progress.Model
	modelName string
	parsed    int
	done      int
	total     int
	savedPath string
	err       error
}

// New creates a progress model for the given embedding model name.
func New(modelName string) Model {
	bar := progress.New(progress.WithDefaultGradient())
	return Model{bar: bar, modelName: modelName}
}

// Err returns the pipeline error, if the run failed.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update handles pipeline messages and window resizing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		w := msg.Width - 6
		if w > 60 {
			w = 60
		}
		if w > 0 {
			m.bar.Width = w
		}
	case ParsedMsg:
		m.parsed = msg.Count
	case ProgressMsg:
		m.done, m.total = msg.Done, msg.Total
	case SavedMsg:
		m.savedPath = msg.Path
		m.done, m.total = msg.Count, msg.Count
		return m, tea.Quit
	case FailedMsg:
		m.err = msg.Err
		return m, tea.Quit
	}
	return m, nil
}

// View renders the current pipeline state.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Building rule embeddings") + "\n")
	b.WriteString(statusStyle.Render("model: "+m.modelName) + "\n")
	if m.parsed > 0 {
		b.WriteString(fmt.Sprintf("Parsed rules: %d\n", m.parsed))
	}
	if m.total > 0 {
		b.WriteString(m.bar.ViewAs(float64(m.done)/float64(m.total)) + "\n")
		b.WriteString(statusStyle.Render(fmt.Sprintf("%d/%d encoded", m.done, m.total)) + "\n")
	}
	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n")
	case m.savedPath != "":
		b.WriteString(doneStyle.Render("Saved embeddings to: "+m.savedPath) + "\n")
	}
	return b.String()
}
