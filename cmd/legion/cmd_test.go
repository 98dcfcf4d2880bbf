package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"legion/internal/app"
	"legion/internal/profile"
)

type stubController struct {
	createFunc func(params app.CreateParams) (app.CreateResult, error)
	editFunc   func(params app.EditParams) (app.EditResult, error)
	listFunc   func() ([]profile.Profile, error)
	showFunc   func(name string) (profile.Profile, error)
	launchFunc func(params app.LaunchParams) (app.LaunchResult, error)

	notifier app.Notifier
}

func (s *stubController) Create(params app.CreateParams) (app.CreateResult, error) {
	if s.createFunc != nil {
		return s.createFunc(params)
	}
	panic("Create not implemented")
}

func (s *stubController) Edit(params app.EditParams) (app.EditResult, error) {
	if s.editFunc != nil {
		return s.editFunc(params)
	}
	panic("Edit not implemented")
}

func (s *stubController) List() ([]profile.Profile, error) {
	if s.listFunc != nil {
		return s.listFunc()
	}
	panic("List not implemented")
}

func (s *stubController) Show(name string) (profile.Profile, error) {
	if s.showFunc != nil {
		return s.showFunc(name)
	}
	panic("Show not implemented")
}

func (s *stubController) Launch(params app.LaunchParams) (app.LaunchResult, error) {
	if s.launchFunc != nil {
		return s.launchFunc(params)
	}
	panic("Launch not implemented")
}

func (s *stubController) StorePath() string { return "/tmp/profiles.json" }

func (s *stubController) SetNotifier(n app.Notifier) { s.notifier = n }

func withController(t *testing.T, stub controllerAPI) {
	t.Helper()
	origFactory := controllerFactory
	controllerFactory = func() controllerAPI {
		return stub
	}
	t.Cleanup(func() {
		controllerFactory = origFactory
	})
}

func withTerminals(t *testing.T, stdin, stdout bool) {
	t.Helper()
	origIn, origOut := stdinIsTerminal, stdoutIsTerminal
	stdinIsTerminal = func() bool { return stdin }
	stdoutIsTerminal = func() bool { return stdout }
	t.Cleanup(func() {
		stdinIsTerminal, stdoutIsTerminal = origIn, origOut
	})
}

func withOutput(t *testing.T, cmd *cobra.Command) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	origOut := cmd.OutOrStdout()
	cmd.SetOut(buf)
	t.Cleanup(func() {
		cmd.SetOut(origOut)
	})
	return buf
}

func writePrograms(t *testing.T, names ...string) []string {
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
