package internal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

// Config holds everything read from flags and the environment.
type Config struct {
	Search string
	Watch  string
	Info   string
	Limit  int
	Quiet  bool

	Player   string
	Backend  string
	Wait     bool
	LogLevel string
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "search",
			Aliases: []string{"s"},
			Usage:   "Search YouTube for a given query string",
		},
		&cli.StringFlag{
			Name:    "watch",
			Aliases: []string{"w"},
			Usage:   "Play the upload with the given id",
		},
		&cli.StringFlag{
			Name:    "info",
			Aliases: []string{"i"},
			Usage:   "View information about a specific upload",
		},
		&cli.IntFlag{
			Name:    "limit",
			Aliases: []string{"L"},
			Value:   DefaultLimit,
			Usage:   "The amount of videos shown in the search results",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Don't show a spinner while searching",
		},
		&cli.StringFlag{
			Name:    "player",
			Aliases: []string{"p"},
			Value:   DefaultPlayer,
			Usage:   "Player command; the watch URL is appended as the last argument",
			EnvVars: []string{"YTCLI_PLAYER"},
		},
		&cli.StringFlag{
			Name:    "backend",
			Aliases: []string{"b"},
			Value:   DefaultBackend,
			Usage:   "Extraction backend command (youtube-dl or yt-dlp)",
			EnvVars: []string{"YTCLI_BACKEND"},
		},
		&cli.BoolFlag{
			Name:  "wait",
			Usage: "Keep the player attached to the terminal until it exits",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "warn",
			Usage:   "Log level (debug, info, warn, error)",
			EnvVars: []string{"LOG_LEVEL"},
		},
	}
}

func configFromContext(c *cli.Context) Config {
	return Config{
		Search:   c.String("search"),
		Watch:    c.String("watch"),
		Info:     c.String("info"),
		Limit:    c.Int("limit"),
		Quiet:    c.Bool("quiet"),
		Player:   c.String("player"),
		Backend:  c.String("backend"),
		Wait:     c.Bool("wait"),
		LogLevel: c.String("log-level"),
	}
}

// Validate rejects settings that would make every directive fail.
func (c Config) Validate() error {
	if c.Limit < 1 {
		return fmt.Errorf("limit must be at least 1, got %d", c.Limit)
	}
	if strings.TrimSpace(c.Backend) == "" {
		return errors.New("backend command is empty")
	}
	if strings.TrimSpace(c.Player) == "" {
		return errors.New("player command is empty")
	}
	return nil
}

// Directives returns the actions requested on the command line.
func (c Config) Directives() Directives {
	return Directives{Search: c.Search, Watch: c.Watch, Info: c.Info, Limit: c.Limit}
}
