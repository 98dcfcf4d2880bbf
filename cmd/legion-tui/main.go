package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"legion/internal/app"
	"legion/internal/config"
	"legion/internal/tui"
)

func main() {
	configPath := pflag.String("config", "", "Path to a config file (json, yaml or toml)")
	storePath := pflag.String("store", "", "Path to the profiles file (overrides config)")
	logFile := pflag.String("log-file", "", "Write logs to this file instead of discarding them")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load configuration", "err", err)
		os.Exit(1)
	}
	if *storePath != "" {
		cfg.StorePath = *storePath
	}
	handler := slog.DiscardHandler
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			slog.Error("open log file", "err", err)
			os.Exit(1)
		}
		defer f.Close()
		handler = slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel})
	}
	slog.SetDefault(slog.New(handler))

	controller := app.New(app.Options{
		StorePath:  cfg.StorePath,
		LaunchMode: cfg.LaunchMode,
		Logger:     slog.Default(),
	})
	if err := tui.Run(controller); err != nil {
		fmt.Fprintf(os.Stderr, "tui exited with error: %v\n", err)
		os.Exit(1)
	}
}
