// Package tui renders a live monitor for sequential bulk transaction
// submission.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Stage string

const (
	StagePending    Stage = "pending"
	StageSubmitting Stage = "submitting"
	StageApplied    Stage = "applied"
	StageQueued     Stage = "queued"
	StageInflight   Stage = "inflight"
	StageRejected   Stage = "rejected"
	StageFailed     Stage = "failed"
)

type entryStatus struct {
	Reference string
	Stage     Stage
	Message   string
	Err       error
	StartTime time.Time
	DoneTime  time.Time
}

// Model is the bubbletea model for the submission monitor.
type Model struct {
	references []string
	statuses   map[string]*entryStatus
	logs       []string
	spinner    spinner.Model
	progress   progress.Model
	width      int
	height     int
	quit       bool
	done       int
	failed     int
}

// BatchLoaded announces the references about to be submitted.
type BatchLoaded struct {
	References []string
}

// SubmitUpdate reports progress for one transaction.
type SubmitUpdate struct {
	Reference string
	Stage     Stage
	Message   string
	Err       error
}

// LogMessage appends a line to the log pane.
type LogMessage struct {
	Message string
}

// BatchDone signals that every transaction has been attempted.
type BatchDone struct{}

func NewModel() Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	pr := progress.New(progress.WithDefaultGradient())

	return Model{
		references: []string{},
		statuses:   make(map[string]*entryStatus),
		logs:       []string{},
		spinner:    sp,
		progress:   pr,
		width:      80,
		height:     24,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quit = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 40

	case BatchLoaded:
		m.references = msg.References
		for _, ref := range msg.References {
			m.statuses[ref] = &entryStatus{Reference: ref, Stage: StagePending}
		}

	case SubmitUpdate:
		m = m.handleSubmitUpdate(msg)

	case LogMessage:
		m.logs = append(m.logs, fmt.Sprintf("[%s] %s",
			time.Now().Format("15:04:05"), msg.Message))
		if len(m.logs) > 10 {
			m.logs = m.logs[len(m.logs)-10:]
		}

	case BatchDone:
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		if progressModel, ok := progressModel.(progress.Model); ok {
			m.progress = progressModel
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleSubmitUpdate(msg SubmitUpdate) Model {
	status, exists := m.statuses[msg.Reference]
	if !exists {
		return m
	}

	status.Stage = msg.Stage
	status.Message = msg.Message
	status.Err = msg.Err

	if msg.Stage == StageSubmitting && status.StartTime.IsZero() {
		status.StartTime = time.Now()
	}
	if terminal(msg.Stage) {
		status.DoneTime = time.Now()
		if msg.Stage == StageFailed || msg.Stage == StageRejected {
			m.failed++
		} else {
			m.done++
		}
	}
	return m
}

func terminal(stage Stage) bool {
	switch stage {
	case StageApplied, StageQueued, StageInflight, StageRejected, StageFailed:
		return true
	}
	return false
}

func (m Model) View() string {
	if m.quit {
		return "Shutting down...\n"
	}

	var s strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginBottom(1)
	s.WriteString(headerStyle.Render("Blnk Bulk Submission"))
	s.WriteString("\n\n")

	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	summary := fmt.Sprintf("Transactions: %d | Done: %d | Failed: %d",
		len(m.references), m.done, m.failed)
	s.WriteString(summaryStyle.Render(summary))
	s.WriteString("\n\n")

	sectionStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1).
		Width(m.width - 2)

	var entries strings.Builder
	total := len(m.references)
	for _, ref := range m.references {
		status, exists := m.statuses[ref]
		if !exists {
			continue
		}

		line := fmt.Sprintf("%s %-30s %s %-10s",
			stageIcon(status.Stage),
			truncate(ref, 30),
			m.spinner.View(),
			status.Stage)

		if status.Err != nil {
			errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
			line += " " + errorStyle.Render(status.Err.Error())
		} else if status.Message != "" {
			messageStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
			line += " " + messageStyle.Render(status.Message)
		}

		stageStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(stageColor(status.Stage)))
		entries.WriteString(stageStyle.Render(line) + "\n")
	}
	if total > 0 {
		entries.WriteString("\n")
		entries.WriteString(m.progress.ViewAs(float64(m.done+m.failed) / float64(total)))
	}
	s.WriteString(sectionStyle.Render(entries.String()))
	s.WriteString("\n\n")

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Width(m.width - 2).
		Height(8)

	var logSection strings.Builder
	logSection.WriteString("Recent Logs\n")
	for _, log := range m.logs {
		logSection.WriteString(log + "\n")
	}
	s.WriteString(logStyle.Render(logSection.String()))
	s.WriteString("\n\n")

	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	s.WriteString(footerStyle.Render("Press 'q' to quit"))

	return s.String()
}

func stageIcon(stage Stage) string {
	switch stage {
	case StageApplied, StageQueued, StageInflight:
		return "✅"
	case StageRejected, StageFailed:
		return "❌"
	case StageSubmitting:
		return "⏳"
	default:
		return "•"
	}
}

func stageColor(stage Stage) string {
	switch stage {
	case StageApplied, StageQueued, StageInflight:
		return "42"
	case StageRejected, StageFailed:
		return "196"
	case StageSubmitting:
		return "214"
	default:
		return "244"
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
