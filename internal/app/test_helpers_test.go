package app

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"legion/internal/launcher"
)

type recordingNotifier struct {
	successes []string
	infos     []string
	errors    []string
}

func (n *recordingNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *recordingNotifier) Info(msg string)    { n.infos = append(n.infos, msg) }
func (n *recordingNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

type fakeLauncher struct {
	calls [][]string
	fail  map[string]error
}

func (f *fakeLauncher) Launch(programs []string) []launcher.Result {
	f.calls = append(f.calls, append([]string(nil), programs...))
	out := make([]launcher.Result, 0, len(programs))
	for i, p := range programs {
		if err := f.fail[p]; err != nil {
			out = append(out, launcher.Result{Path: p, Outcome: launcher.Failed, Err: &launcher.SpawnError{Path: p, Err: err}})
			continue
		}
		out = append(out, launcher.Result{Path: p, Outcome: launcher.Started, PID: 100 + i})
	}
	return out
}

type scriptedProvider struct {
	paths []string
	err   error
}

func (p *scriptedProvider) PickPath() (string, bool, error) {
	if p.err != nil {
		return "", false, p.err
	}
	if len(p.paths) == 0 {
		return "", false, nil
	}
	next := p.paths[0]
	p.paths = p.paths[1:]
	return next, true, nil
}

var errUnset = errors.New("unset")

func newTestApp(t *testing.T) (*App, *recordingNotifier, *fakeLauncher) {
	t.Helper()
	notify := &recordingNotifier{}
	a := New(Options{
		StorePath: filepath.Join(t.TempDir(), "profiles.json"),
		Notifier:  notify,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	fl := &fakeLauncher{}
	a.launcher = fl
	return a, notify, fl
}

func programFiles(t *testing.T, names ...string) []string {
	t.Helper()
	dir := t.TempDir()
	out := make([]string, 0, len(names))
	for _, n := range names {
		p := filepath.Join(dir, n)
		if err := os.WriteFile(p, []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
		out = append(out, p)
	}
	return out
}
