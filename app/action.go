package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/ledger"
	"github.com/ayoisaiah/pomo/internal/osutil"
	"github.com/ayoisaiah/pomo/internal/pathutil"
	"github.com/ayoisaiah/pomo/internal/ui"
	"github.com/ayoisaiah/pomo/report"
	"github.com/ayoisaiah/pomo/stats"
	"github.com/ayoisaiah/pomo/store"
	"github.com/ayoisaiah/pomo/timer"
)

const (
	envNoColor     = "NO_COLOR"
	envPomoNoColor = "POMO_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// loadConfig reads the config file and applies the command-line overrides.
// The first-run questions are only asked on an interactive terminal.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	path := pathutil.ConfigFilePath()

	var opts []config.Option

	if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		opts = append(opts, config.WithPromptConfig(path))
	}

	opts = append(
		opts,
		config.WithViperConfig(path),
		config.WithCLIConfig(ctx),
	)

	return config.New(opts...)
}

// editConfigAction handles the edit-config command which opens the pomo
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	path := pathutil.ConfigFilePath()

	// writes the defaults if the file does not exist yet
	if _, err := config.New(config.WithViperConfig(path)); err != nil {
		return err
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		osutil.DefaultEditor(),
	)

	cmd := exec.Command(editor, path)

	cmd.Stderr = config.Stderr
	cmd.Stdin = config.Stdin
	cmd.Stdout = config.Stdout

	return cmd.Run()
}

// statsAction computes the stats for the specified time period.
func statsAction(ctx *cli.Context) error {
	filter, err := config.Filter(ctx)
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	periods, err := db.GetPeriods(filter.StartTime, filter.EndTime, filter.Tickets)
	if err != nil {
		return err
	}

	s := stats.New(stats.Opts{
		FilterConfig: *filter,
		Stdout:       config.Stdout,
	})

	s.Compute(periods)

	if ctx.Bool("json") {
		b, err := s.ToJSON()
		if err != nil {
			return err
		}

		fmt.Fprintln(config.Stdout, string(b))

		return nil
	}

	if ctx.Bool("list") {
		s.List()
		return nil
	}

	s.Show()

	return nil
}

// statusAction handles the status command and prints the status of the
// currently running timer.
func statusAction(_ *cli.Context) error {
	return timer.ReportStatus(
		config.Stdout,
		pathutil.DBFilePath(),
		pathutil.StatusFilePath(),
	)
}

// runPlain counts down a single period on stdout until it ends or the
// process is interrupted.
func runPlain(
	ctx *cli.Context,
	cfg *config.Config,
	db store.DB,
	n timer.Notifier,
) ([]ledger.Task, error) {
	runCtx, stop := signal.NotifyContext(ctx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := timer.NewPlain(cfg, config.Stdout, db, n)

	err := p.Run(runCtx)

	if runCtx.Err() != nil {
		report.Stopped()
	}

	return p.Tasks(), err
}

// runInteractive runs the timer screen until the user quits.
func runInteractive(
	cfg *config.Config,
	db store.DB,
	n timer.Notifier,
) ([]ledger.Task, error) {
	statusPath := pathutil.StatusFilePath()

	m := timer.New(
		cfg,
		timer.WithStore(db),
		timer.WithNotifier(n),
		timer.WithStatusFile(statusPath),
	)

	defer func() {
		if err := os.Remove(statusPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			slog.Warn("unable to remove status file", slog.Any("error", err))
		}
	}()

	_, err := tea.NewProgram(m).Run()

	return m.Tasks(), err
}

// defaultAction starts the timer and prints the time spent on each task
// once it exits.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	n := timer.NewDesktopNotifier(cfg)

	slog.InfoContext(
		ctx.Context,
		"starting timer",
		slog.Duration("work", cfg.Work.Duration),
		slog.Duration("break", cfg.Break.Duration),
		slog.Bool("plain", cfg.CLI.Plain),
	)

	var tasks []ledger.Task

	if cfg.CLI.Plain {
		tasks, err = runPlain(ctx, cfg, db, n)
	} else {
		tasks, err = runInteractive(cfg, db, n)
	}

	if err != nil {
		return err
	}

	stats.PrintTasks(config.Stdout, tasks)

	return nil
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/pomo/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if POMO_NO_COLOR is set
	if _, exists := os.LookupEnv(envPomoNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") || !isTerminal(os.Stdout) {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	logger, closer := newLogger(pathutil.LogFilePath(), ctx.Bool("debug"))
	slog.SetDefault(logger)

	logFile = closer

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting pomo")

	if logFile == nil {
		return nil
	}

	return logFile.Close()
}
