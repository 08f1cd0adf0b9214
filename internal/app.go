package internal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var Version = "dev"

//
// ────────────────────────────────
// DIRECTIVES
// ────────────────────────────────
//

// Directives are the independent actions of one invocation. Empty fields are
// skipped.
type Directives struct {
	Search string
	Watch  string
	Info   string
	Limit  int
}

type resultSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
	SearchID(ctx context.Context, id string) (SearchResult, error)
}

type playerLauncher interface {
	Spawn(r SearchResult) error
}

// App sequences searches, prompts, and player launches.
type App struct {
	searcher  resultSearcher
	presenter *Presenter
	launcher  playerLauncher
	log       *logrus.Logger
}

func NewApp(s resultSearcher, p *Presenter, l playerLauncher, log *logrus.Logger) *App {
	if log == nil {
		log = discardLogger()
	}
	return &App{searcher: s, presenter: p, launcher: l, log: log}
}

// Dispatch runs the requested directives in the order search, watch, info and
// stops at the first error.
func (a *App) Dispatch(ctx context.Context, d Directives) error {
	if d.Search != "" {
		if err := a.searchAndPlay(ctx, d.Search, d.Limit); err != nil {
			return fmt.Errorf("search %q: %w", d.Search, err)
		}
	}
	if d.Watch != "" {
		if err := a.watch(ctx, d.Watch); err != nil {
			return fmt.Errorf("watch %s: %w", d.Watch, err)
		}
	}
	if d.Info != "" {
		if err := a.info(ctx, d.Info); err != nil {
			return fmt.Errorf("info %s: %w", d.Info, err)
		}
	}
	return nil
}

func (a *App) searchAndPlay(ctx context.Context, query string, limit int) error {
	results, err := a.searcher.Search(ctx, query, limit)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		a.presenter.ShowEmpty(query)
		return nil
	}

	a.presenter.ShowResults(results)
	choice, err := a.presenter.Select(len(results))
	if err != nil {
		return err
	}
	a.log.Debugf("selected %d: %s", choice, results[choice].ID)
	return a.launcher.Spawn(results[choice])
}

func (a *App) watch(ctx context.Context, id string) error {
	result, err := a.searcher.SearchID(ctx, id)
	if err != nil {
		return err
	}
	return a.launcher.Spawn(result)
}

func (a *App) info(ctx context.Context, id string) error {
	result, err := a.searcher.SearchID(ctx, id)
	if err != nil {
		return err
	}
	a.presenter.ShowInfo(result)
	return nil
}

//
// ────────────────────────────────
// APP ENTRYPOINT
// ────────────────────────────────
//

func Run(args []string) error {
	return NewCLI(os.Stdin, os.Stdout, os.Stderr).RunContext(context.Background(), args)
}

// NewCLI wires the command line to an App built from the parsed flags.
func NewCLI(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:            "ytcli",
		Usage:           "Command line interface for YouTube",
		Version:         Version,
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags:           flags(),
		Action: func(c *cli.Context) error {
			if c.Args().Present() {
				return fmt.Errorf("unexpected argument %q (use -s to search)", c.Args().First())
			}
			cfg := configFromContext(c)
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := NewLogger(stderr, cfg.LogLevel)
			stderrFile, _ := stderr.(*os.File)

			presenter := NewPresenter(stdin, stdout)
			searcher := NewSearcher(cfg.Backend, ExecRunner{Log: log}, NewReporter(stderrFile, cfg.Quiet), log)
			launcher := NewLauncher(cfg.Player, cfg.Wait, presenter.ShowOpening, log)

			return NewApp(searcher, presenter, launcher, log).Dispatch(c.Context, cfg.Directives())
		},
	}
}
