package app

import (
	"log/slog"

	"legion/internal/launcher"
	"legion/internal/profile"
)

// Options configures the top-level controller.
type Options struct {
	// StorePath points to the profiles backing file.
	StorePath string
	// LaunchMode selects how programs are spawned.
	LaunchMode launcher.Mode
	// Notifier receives user-facing messages. Defaults to NopNotifier.
	Notifier Notifier
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

type programLauncher interface {
	Launch(programs []string) []launcher.Result
}

// App exposes high-level operations that the CLI/TUI can reuse.
type App struct {
	store    *profile.Store
	launcher programLauncher
	notify   Notifier
	log      *slog.Logger
}

// New constructs the shared controller facade.
func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	notify := opts.Notifier
	if notify == nil {
		notify = NopNotifier{}
	}
	return &App{
		store:    profile.New(opts.StorePath),
		launcher: launcher.New(launcher.Options{Mode: opts.LaunchMode, Logger: logger}),
		notify:   notify,
		log:      logger,
	}
}

// StorePath returns the configured backing file path.
func (a *App) StorePath() string {
	return a.store.Path()
}

// SetNotifier swaps the message sink, e.g. when the TUI takes over the screen.
func (a *App) SetNotifier(n Notifier) {
	if n == nil {
		n = NopNotifier{}
	}
	a.notify = n
}
