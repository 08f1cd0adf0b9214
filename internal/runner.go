package internal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/shlex"
	"github.com/sirupsen/logrus"
)

// Runner executes a command to completion and returns everything it wrote to
// stdout. A non-nil error may be returned together with partial output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// logBuffer collects subprocess output and forwards each non-blank line to a
// logging callback as it arrives.
type logBuffer struct {
	buf    bytes.Buffer
	log    func(string)
	prefix string
}

func (l *logBuffer) Write(p []byte) (int, error) {
	n, err := l.buf.Write(p)
	if l.log != nil {
		for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			l.log(l.prefix + trimmed)
		}
	}
	return n, err
}

func (l *logBuffer) String() string { return l.buf.String() }

// waitDelay bounds how long a killed backend's leftover children may keep its
// output pipes open.
const waitDelay = time.Second

// ExecRunner runs commands with os/exec. Stderr is logged at debug level and
// attached to the returned ProcessError.
type ExecRunner struct {
	Log *logrus.Logger
}

func (r ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	log := r.Log
	if log == nil {
		log = discardLogger()
	}

	command := strings.Join(append([]string{name}, args...), " ")
	log.Debugf("running command: %s", command)

	// Interrupt and terminate kill the backend while it runs. Outside Run the
	// default signal behaviour applies, so the selection prompt stays
	// interruptible.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay
	var stdout bytes.Buffer
	stderr := &logBuffer{log: func(line string) { log.Debug(line) }, prefix: fmt.Sprintf("[%s stderr] ", name)}
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			// Exited on its own; the caller decides whether the output is usable.
			return stdout.Bytes(), &ProcessError{Command: command, Stderr: stderr.String(), Err: err}
		}
		if ctx.Err() != nil {
			err = fmt.Errorf("interrupted: %w", err)
		}
		return nil, &ProcessError{Command: command, Stderr: stderr.String(), Err: err}
	}
	return stdout.Bytes(), nil
}

// splitCommand splits a configured command line such as "mpv --no-terminal"
// into the program and its leading arguments.
func splitCommand(line string) ([]string, error) {
	parts, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("split command %q: %w", line, err)
	}
	if len(parts) == 0 {
		return nil, errors.New("empty command")
	}
	return parts, nil
}
