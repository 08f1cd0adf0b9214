package internal

import (
	"io"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Reporter shows progress while the caller blocks on a slow operation.
type Reporter interface {
	Start(label string)
	Stop()
}

// NopReporter discards progress. Used for --quiet, tests, and non-terminal
// output.
type NopReporter struct{}

func (NopReporter) Start(string) {}
func (NopReporter) Stop()        {}

// NewReporter picks a spinner when out is a terminal and quiet is not set.
func NewReporter(out *os.File, quiet bool) Reporter {
	if quiet || out == nil || !isatty.IsTerminal(out.Fd()) {
		return NopReporter{}
	}
	return &SpinnerReporter{out: out}
}

// ────────────────────────────────
// SPINNER
// ────────────────────────────────

type busyDoneMsg struct{}

type busyModel struct {
	spinner spinner.Model
	label   string
	done    bool
}

func newBusyModel(label string) busyModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#FA8072"))),
	)
	return busyModel{spinner: s, label: label}
}

func (m busyModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m busyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case busyDoneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m busyModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.label
}

// SpinnerReporter renders a bubbles spinner from its own bubbletea program.
// The program never reads stdin so a following prompt is unaffected, and it
// installs no signal handler: signals are handled by whoever runs the backend.
type SpinnerReporter struct {
	out     io.Writer
	program *tea.Program
	done    chan struct{}
}

func (r *SpinnerReporter) Start(label string) {
	if r.program != nil {
		return
	}
	r.program = tea.NewProgram(newBusyModel(label),
		tea.WithOutput(r.out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	r.done = make(chan struct{})
	go func(p *tea.Program, done chan struct{}) {
		defer close(done)
		_, _ = p.Run()
	}(r.program, r.done)
}

func (r *SpinnerReporter) Stop() {
	if r.program == nil {
		return
	}
	select {
	case <-r.done:
	default:
		r.program.Send(busyDoneMsg{})
		<-r.done
	}
	r.program = nil
}
