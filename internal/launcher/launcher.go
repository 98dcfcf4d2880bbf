// Package launcher starts the programs of a profile as independent OS
// processes. It never waits for them and keeps no handle once they run.
package launcher

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
)

// Mode selects how a program path is handed to the operating system.
type Mode string

const (
	// ModeShell runs the path through the host shell.
	ModeShell Mode = "shell"
	// ModeDirect executes the path itself.
	ModeDirect Mode = "direct"
	// ModeOpen hands the path to the desktop opener (file associations).
	ModeOpen Mode = "open"
)

// ParseMode validates a textual launch mode. Empty means ModeShell.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeShell:
		return ModeShell, nil
	case ModeDirect:
		return ModeDirect, nil
	case ModeOpen:
		return ModeOpen, nil
	default:
		return "", fmt.Errorf("unknown launch mode %q (allowed: shell, direct, open)", s)
	}
}

// Outcome is the per-item launch verdict.
type Outcome int

const (
	Started Outcome = iota + 1
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Started:
		return "started"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result reports what happened to one program. Started only means a process
// handle was obtained; the program may still exit immediately.
type Result struct {
	Path    string
	Outcome Outcome
	PID     int
	Err     error
}

// SpawnError is the failure recorded in a Failed result.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("launch %s: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

var errEmptyPath = errors.New("empty program path")

// Options configures a Launcher.
type Options struct {
	Mode   Mode
	Logger *slog.Logger
}

// Launcher spawns batches of programs.
type Launcher struct {
	mode  Mode
	log   *slog.Logger
	stat  func(string) (fs.FileInfo, error)
	spawn func(Mode, string) (int, error)
}

// New builds a Launcher. Zero options launch through the shell and log to slog.Default.
func New(opts Options) *Launcher {
	mode := opts.Mode
	if mode == "" {
		mode = ModeShell
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		mode:  mode,
		log:   logger,
		stat:  os.Stat,
		spawn: spawn,
	}
}

// Mode returns the configured launch mode.
func (l *Launcher) Mode() Mode {
	return l.mode
}

// Launch attempts every program in order and returns one result per input
// path, in the same order. A failing item never stops the batch.
func (l *Launcher) Launch(programs []string) []Result {
	results := make([]Result, 0, len(programs))
	for _, path := range programs {
		results = append(results, l.launchOne(path))
	}
	return results
}

func (l *Launcher) launchOne(path string) Result {
	res := Result{Path: path}
	fail := func(err error) Result {
		res.Outcome = Failed
		res.Err = &SpawnError{Path: path, Err: err}
		l.log.Warn("launch failed", "path", path, "mode", string(l.mode), "error", err)
		return res
	}

	if strings.TrimSpace(path) == "" {
		return fail(errEmptyPath)
	}
	if _, err := l.stat(path); err != nil {
		return fail(err)
	}
	pid, err := l.spawn(l.mode, path)
	if err != nil {
		return fail(err)
	}

	res.Outcome = Started
	res.PID = pid
	l.log.Info("launched program", "path", path, "pid", pid, "mode", string(l.mode))
	return res
}

func spawn(mode Mode, path string) (int, error) {
	cmd := command(mode, path)
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	// reap in the background so long-lived callers collect no zombies
	go func() { _ = cmd.Wait() }()
	return pid, nil
}

// Count tallies started and failed results.
func Count(results []Result) (started, failed int) {
	for _, r := range results {
		if r.Outcome == Started {
			started++
		} else {
			failed++
		}
	}
	return started, failed
}
