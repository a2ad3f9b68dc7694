package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Spin runs fn while showing a spinner with message on stderr.
// The spinner is only drawn when stderr is a terminal.
func Spin(message string, fn func() error) error {
	return spinTo(os.Stderr, isTerminal(os.Stderr), message, fn)
}

func spinTo(w io.Writer, tty bool, message string, fn func() error) error {
	if !tty {
		err := fn()
		fmt.Fprint(w, resultLine(message, err))
		return err
	}

	m := newSpinnerModel(message)
	p := tea.NewProgram(m, tea.WithOutput(w), tea.WithInput(nil))

	done := make(chan error, 1)
	go func() {
		err := fn()
		done <- err
		p.Send(spinnerDoneMsg{err: err})
	}()

	// Spinner failures never mask the result of fn
	_, _ = p.Run()
	return <-done
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// spinnerModel is the bubbletea model for the spinner
type spinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
	err     error
}

type spinnerDoneMsg struct {
	err error
}

func newSpinnerModel(message string) *spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return &spinnerModel{
		spinner: s,
		message: message,
	}
}

func (m *spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if !m.done {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *spinnerModel) View() string {
	if m.done {
		return resultLine(m.message, m.err)
	}
	return fmt.Sprintf("%s %s...", m.spinner.View(), m.message)
}

func resultLine(message string, err error) string {
	if err != nil {
		return fmt.Sprintf("❌ %s\n", message)
	}
	return fmt.Sprintf("✅ %s\n", message)
}
