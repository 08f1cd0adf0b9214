package internal

import (
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	DefaultPlayer  = "mpv"
	WatchURLPrefix = "https://youtube.com/watch?v="
)

// WatchURL derives the canonical watch URL for a video id.
func WatchURL(id string) string {
	return WatchURLPrefix + stripQuotes(id)
}

// Launcher hands watch URLs to an external player.
type Launcher struct {
	player   string
	wait     bool
	announce func(url, player string)
	log      *logrus.Logger
}

// NewLauncher returns a Launcher for the player command line. When wait is
// true, Spawn keeps the player attached to the terminal and blocks until it
// exits; otherwise the player is started quietly and left running.
func NewLauncher(player string, wait bool, announce func(url, player string), log *logrus.Logger) *Launcher {
	if log == nil {
		log = discardLogger()
	}
	if announce == nil {
		announce = func(string, string) {}
	}
	return &Launcher{player: player, wait: wait, announce: announce, log: log}
}

// Command builds the player invocation for url without starting it.
func (l *Launcher) Command(url string) (*exec.Cmd, error) {
	parts, err := splitCommand(l.player)
	if err != nil {
		return nil, &ProcessError{Command: l.player, Err: err}
	}
	args := append(parts[1:len(parts):len(parts)], url)
	return exec.Command(parts[0], args...), nil
}

// Spawn starts the player on the result's watch URL.
func (l *Launcher) Spawn(r SearchResult) error {
	url := r.URL()
	cmd, err := l.Command(url)
	if err != nil {
		return err
	}

	l.announce(url, cmd.Args[0])
	l.log.Debugf("[player] launching: %s", strings.Join(cmd.Args, " "))

	if l.wait {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		return &ProcessError{Command: strings.Join(cmd.Args, " "), Err: err}
	}

	if l.wait {
		l.log.Info("[player] started (attached)")
		if err := cmd.Wait(); err != nil {
			l.log.WithError(err).Warn("[player] exited with error")
			return nil
		}
		l.log.Info("[player] exited")
		return nil
	}

	l.log.Infof("[player] started (pid %d)", cmd.Process.Pid)
	return nil
}
