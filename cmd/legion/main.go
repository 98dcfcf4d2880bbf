package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"legion/internal/app"
	"legion/internal/config"
	"legion/internal/profile"
)

var (
	configPath string
	storeFlag  string
	verbose    bool

	settings config.Config
)

var rootCmd = &cobra.Command{
	Use:   "legion [command]",
	Short: "legion: launch groups of programs with one command",
	Long: `legion keeps named profiles of programs in a small JSON file and starts
every program of a profile at once.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if storeFlag != "" {
			cfg.StorePath = storeFlag
		}
		level := cfg.LogLevel
		if verbose {
			level = slog.LevelDebug
		}
		setupLogging(cmd.ErrOrStderr(), level)
		settings = cfg
		slog.Debug("configuration loaded", "store", cfg.StorePath, "mode", cfg.LaunchMode)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (json, yaml or toml)")
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "Path to the profiles file (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func setupLogging(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// controllerAPI is the slice of app.App the commands depend on.
type controllerAPI interface {
	Create(params app.CreateParams) (app.CreateResult, error)
	Edit(params app.EditParams) (app.EditResult, error)
	List() ([]profile.Profile, error)
	Show(name string) (profile.Profile, error)
	Launch(params app.LaunchParams) (app.LaunchResult, error)
	StorePath() string
}

// controllerFactory is swapped in tests.
var controllerFactory = func() controllerAPI {
	return app.New(app.Options{
		StorePath:  settings.StorePath,
		LaunchMode: settings.LaunchMode,
		Notifier:   app.NewConsoleNotifier(rootCmd.OutOrStdout(), rootCmd.ErrOrStderr()),
		Logger:     slog.Default(),
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "err", err)
		os.Exit(1)
	}
}
