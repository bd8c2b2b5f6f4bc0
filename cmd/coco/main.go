package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"coco/internal/config"
	"coco/internal/logging"
	"coco/internal/source"
	"coco/internal/ui"
)

// options holds the command line flags
type options struct {
	configPath  string
	logFile     string
	debug       bool
	query       string
	prompt      string
	maxBuffer   int
	regexEngine string
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(&options{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "coco: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command, binding its flags to opts
func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coco [flags] [file...]",
		Short: "Pick a line interactively",
		Long: `coco reads lines from the given files (or stdin), lets you narrow them
down with a regular expression and prints the chosen line to stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	defaults := config.DefaultConfig()
	flags := cmd.Flags()
	flags.StringVar(&opts.query, "query", "", "Initial query")
	flags.StringVar(&opts.prompt, "prompt", defaults.Prompt, "Prompt shown before the query")
	flags.IntVarP(&opts.maxBuffer, "max-buffer", "b", defaults.MaxBuffer, "Maximum number of lines to read")
	flags.StringVar(&opts.regexEngine, "regex-engine", defaults.RegexEngine, "Regular expression engine (re2 or ecmascript)")
	flags.StringVar(&opts.configPath, "config", "", "Path to config file")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file (default $"+logging.EnvLogFile+")")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	logPath := opts.logFile
	if logPath == "" {
		logPath = os.Getenv(logging.EnvLogFile)
	}
	_, closeLog, err := logging.Setup(logPath, opts.debug)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	ds, err := source.NewLoader(cfg.MaxBuffer, os.Stdin).Load(args)
	if err != nil {
		return err
	}
	slog.Info("input loaded", "lines", ds.Len(), "files", len(args))

	var modelOpts []ui.Option
	if w, h, err := term.GetSize(int(os.Stderr.Fd())); err == nil {
		modelOpts = append(modelOpts, ui.WithSize(w, h))
	}
	model, err := ui.NewModel(cfg, ds, modelOpts...)
	if err != nil {
		return err
	}

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(os.Stderr)}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		programOpts = append(programOpts, tea.WithInputTTY())
	}

	sel, err := ui.Run(cmd.Context(), model, programOpts...)
	if err != nil {
		return err
	}
	slog.Info("session finished", "selected", sel.Selected)

	return printSelection(cmd.OutOrStdout(), sel.Selected, sel.Line)
}

// loadConfig reads the config file and applies the flags that were set
// explicitly on the command line
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.NewConfigServiceAt(opts.configPath).LoadFromPath(opts.configPath)
	} else {
		svc := config.NewConfigService()
		slog.Debug("loading config", "path", svc.Path())
		cfg, err = svc.Load()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("query") {
		cfg.Query = opts.query
	}
	if flags.Changed("prompt") {
		cfg.Prompt = opts.prompt
	}
	if flags.Changed("max-buffer") {
		cfg.MaxBuffer = opts.maxBuffer
	}
	if flags.Changed("regex-engine") {
		cfg.RegexEngine = opts.regexEngine
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printSelection(w io.Writer, selected bool, line string) error {
	if !selected {
		return nil
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("failed to write selection: %w", err)
	}
	return nil
}
