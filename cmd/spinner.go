package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type opDoneMsg struct {
	err error
}

type opSpinnerModel struct {
	spinner spinner.Model
	label   string
	op      tea.Cmd
	err     error
	done    bool
}

func newOpSpinnerModel(label string, op tea.Cmd) opSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return opSpinnerModel{
		spinner: s,
		label:   label,
		op:      op,
	}
}

func (m opSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.op)
}

func (m opSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case opDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m opSpinnerModel) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// runWithSpinner shows a spinner on output while op runs. The operation is
// not cancelled on its own; ctx cancellation (Ctrl-C) tears the whole
// program down.
func runWithSpinner(ctx context.Context, output io.Writer, label string, op func(context.Context) error) error {
	opCmd := func() tea.Msg {
		return opDoneMsg{err: op(ctx)}
	}

	p := tea.NewProgram(
		newOpSpinnerModel(label, opCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(opSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
