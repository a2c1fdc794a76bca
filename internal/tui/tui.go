// Package tui provides a Bubble Tea terminal user interface for dirzip.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bencewok/dirzip/internal/config"
	"github.com/bencewok/dirzip/internal/stats"
	"github.com/bencewok/dirzip/internal/zipper"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	fileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateDiscovering
	StateArchiving
	StateComplete
	StateError
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	err       error

	// Run context
	ctx    context.Context
	cancel context.CancelFunc

	// Manager reference
	manager *zipper.Manager

	// Run progress
	foundFiles   int32
	writtenFiles int32
	totalFiles   int32

	// Final result
	runStats    *stats.RunStats
	archivePath string

	// Options
	timestamp bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/directory"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  config.DefaultSettings(),
		timestamp: true,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// DiscoverDoneMsg is sent when the discovery phase completes.
	DiscoverDoneMsg struct {
		Err error
	}

	// RunDoneMsg is sent when the archive has been written.
	RunDoneMsg struct {
		Stats *stats.RunStats
		Path  string
		Err   error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateDiscovering || m.state == StateArchiving {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				m.state = StateDiscovering
				m.manager = m.newManager()
				return m, tea.Batch(m.startDiscovery(), m.spinner.Tick, m.tickProgress())
			}

		case "t":
			if m.state == StateInput {
				m.timestamp = !m.timestamp
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for a new run
				m.state = StateInput
				m.err = nil
				m.foundFiles = 0
				m.writtenFiles = 0
				m.totalFiles = 0
				m.runStats = nil
				m.archivePath = ""
				m.manager = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case DiscoverDoneMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
			if m.ctx.Err() != nil {
				m.err = fmt.Errorf("cancelled by user")
			}
		} else {
			m.state = StateArchiving
			cmds = append(cmds, m.startWrite(), m.tickProgress())
		}

	case RunDoneMsg:
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.runStats = msg.Stats
			m.archivePath = msg.Path
			m.state = StateComplete
		}

	case TickMsg:
		// Update progress from the manager
		if m.manager != nil && (m.state == StateDiscovering || m.state == StateArchiving) {
			found, written, total := m.manager.Progress()
			m.foundFiles = found
			m.writtenFiles = written
			m.totalFiles = total

			var percent float64
			if total > 0 {
				percent = float64(written) / float64(total)
			}
			progressCmd := m.progress.SetPercent(percent)
			cmds = append(cmds, progressCmd, m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("📦 dirzip"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Compress a directory tree into a zip archive"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateDiscovering:
		b.WriteString(m.viewDiscovering())
	case StateArchiving:
		b.WriteString(m.viewArchiving())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter directory to compress:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	timestampCheck := "[ ]"
	if m.timestamp {
		timestampCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Timestamped archive name (t)\n", timestampCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output directory: %s", m.settings.OutputPath)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewDiscovering() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Discovering files..."))
	b.WriteString("\n\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Found %d files", m.foundFiles)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewArchiving() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Compressing..."))
	b.WriteString("\n\n")

	var percent float64
	if m.totalFiles > 0 {
		percent = float64(m.writtenFiles) / float64(m.totalFiles)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf(
		"Files: %d/%d | Original: %s",
		m.writtenFiles,
		m.totalFiles,
		stats.HumanSize(m.manager.TotalBytes()),
	)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	st := m.runStats
	box := boxStyle.Render(fmt.Sprintf(
		"✨ Archive Complete!\n\n"+
			"Source:     %s\n"+
			"Files:      %d\n"+
			"Original:   %s\n"+
			"Compressed: %s\n"+
			"Ratio:      %.1f%%\n"+
			"Time:       %.2fs",
		st.SourceName,
		st.FileCount,
		stats.HumanSize(st.OriginalBytes),
		stats.HumanSize(st.CompressedBytes),
		st.RatioPercent,
		st.Elapsed.Seconds(),
	))
	b.WriteString(box)
	b.WriteString("\n\n")
	b.WriteString(fileStyle.Render(fmt.Sprintf("📦 %s", m.archivePath)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • t: toggle timestamp • esc: quit"
	case StateDiscovering, StateArchiving:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new archive • q: quit"
	}
	return ""
}

// newManager builds a manager from the current input and options.
// No Reporter is passed; the TUI polls the manager's counters via
// TickMsg instead of consuming events directly.
func (m *Model) newManager() *zipper.Manager {
	settings := *m.settings
	settings.SourcePath = m.textInput.Value()
	settings.UseTimestamp = m.timestamp
	return zipper.NewManager(&settings, nil)
}

// startDiscovery runs the discovery phase in the background.
func (m *Model) startDiscovery() tea.Cmd {
	manager := m.manager
	ctx := m.ctx

	return func() tea.Msg {
		return DiscoverDoneMsg{Err: manager.Discover(ctx)}
	}
}

// startWrite writes the archive in the background.
func (m *Model) startWrite() tea.Cmd {
	manager := m.manager
	ctx := m.ctx

	return func() tea.Msg {
		if manager == nil {
			return RunDoneMsg{Err: fmt.Errorf("no manager")}
		}

		st, err := manager.Write(ctx)
		return RunDoneMsg{
			Stats: st,
			Path:  manager.ArchivePath(),
			Err:   err,
		}
	}
}

// Run starts the TUI application.
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
