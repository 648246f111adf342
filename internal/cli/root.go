package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mydehq/ryu/internal/api"
	"github.com/mydehq/ryu/internal/config"
	"github.com/mydehq/ryu/internal/types"
	"github.com/mydehq/ryu/internal/ui"
)

var (
	flagVerbose bool
	flagQuiet   bool
	flagConfig  string
	flagEnvFile string

	logger *ui.Logger
	cfg    *config.GlobalConfig
)

var RootCmd = &cobra.Command{
	Use:           "ryu",
	Short:         "Browse anime details and manage local settings",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()
		return loadConfig()
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		if logger != nil {
			logger.Error(err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose output")
	RootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress output except errors")
	RootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to config file")
	RootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Load environment overrides from this file")

	// Default logger setup (before flags parse)
	logger = ui.NewLogger(os.Stdout)

	colorizeHelp(RootCmd)
}

func setupLogger() {
	if flagQuiet {
		logger.SetLevel(log.ErrorLevel)
	} else if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
}

func loadConfig() error {
	if err := config.LoadEnvFile(flagEnvFile); err != nil {
		logger.Warn("Ignoring env file", "error", err)
	}

	loaded, err := config.LoadGlobal(flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded

	if cfg.Source != "" {
		logger.Debug("Loaded config", "path", cfg.Source)
	}
	return nil
}

// apiOptions returns the options shared by every command
func apiOptions() []api.Option {
	return []api.Option{
		api.WithGlobalConfig(cfg),
		api.WithEvents(handleEvent),
		api.WithLogger(logger.Logger),
	}
}

func handleEvent(e types.Event) {
	switch e.Type {
	case types.EventSuccess:
		logger.Success(e.Message)
	case types.EventInfo:
		logger.Info(ui.ColorizeEvent(e.Message))
	case types.EventWarning:
		logger.Warn(e.Message)
	case types.EventError:
		logger.Error(e.Message)
	default:
		logger.Debug(ui.ColorizeEvent(e.Message))
	}
}

// interactive reports whether prompts and the detail screen can be shown
func interactive() bool {
	isTerm := func(fd uintptr) bool {
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	return isTerm(os.Stdin.Fd()) && isTerm(os.Stdout.Fd())
}

// confirm asks before a destructive action. --yes skips the prompt; without
// a terminal the action is refused.
func confirm(yes bool, title, description string) (bool, error) {
	if yes {
		return true, nil
	}
	if !interactive() {
		return false, fmt.Errorf("%s needs confirmation: rerun with --yes", title)
	}
	return ui.Confirm(title, description)
}

func fail(msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
