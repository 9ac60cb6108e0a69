package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Monitor owns the bubbletea program driving the submission view.
type Monitor struct {
	program *tea.Program
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

// Run starts the view and invokes submit in a goroutine with a send function
// for pushing updates. It blocks until every transaction has been attempted
// or the user quits.
func (m *Monitor) Run(submit func(send func(msg tea.Msg))) error {
	m.program = tea.NewProgram(NewModel(), tea.WithAltScreen())

	go func() {
		submit(func(msg tea.Msg) {
			m.program.Send(msg)
		})
		m.program.Send(BatchDone{})
	}()

	_, err := m.program.Run()
	return err
}
