package app

import (
	"errors"
	"reflect"
	"testing"

	"legion/internal/launcher"
	"legion/internal/profile"
)

func TestAppLaunchRequiresName(t *testing.T) {
	a, _, _ := newTestApp(t)
	_, err := a.Launch(LaunchParams{Name: " "})
	if err == nil || err.Error() != "no profile selected" {
		t.Fatalf("expected selection error, got %v", err)
	}
}

func TestAppLaunchMissingProfile(t *testing.T) {
	a, _, fl := newTestApp(t)
	_, err := a.Launch(LaunchParams{Name: "ghost"})
	if !errors.Is(err, profile.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(fl.calls) != 0 {
		t.Fatalf("launcher must not be called: %v", fl.calls)
	}
}

func TestAppLaunchEmptyProfile(t *testing.T) {
	a, notify, fl := newTestApp(t)
	if _, err := a.Create(CreateParams{Name: "empty"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	res, err := a.Launch(LaunchParams{Name: "empty"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Results == nil || len(res.Results) != 0 {
		t.Fatalf("expected empty results, got %+v", res.Results)
	}
	if len(fl.calls) != 0 {
		t.Fatalf("launcher must not be called: %v", fl.calls)
	}
	if len(notify.infos) != 1 || notify.infos[0] != "Profile 'empty' has no programs." {
		t.Fatalf("unexpected info: %+v", notify.infos)
	}
}

func TestAppLaunchPartialFailure(t *testing.T) {
	a, notify, fl := newTestApp(t)
	files := programFiles(t, "ok", "broken")
	if _, err := a.Create(CreateParams{Name: "mixed", Provider: &scriptedProvider{paths: files}}); err != nil {
		t.Fatalf("create: %v", err)
	}
	fl.fail = map[string]error{files[1]: errors.New("permission denied")}

	res, err := a.Launch(LaunchParams{Name: "mixed"})
	if err != nil {
		t.Fatalf("batch must not fail as a whole: %v", err)
	}
	if !reflect.DeepEqual(fl.calls, [][]string{files}) {
		t.Fatalf("unexpected launcher calls: %v", fl.calls)
	}
	if res.Started != 1 || res.Failed != 1 || res.Profile != "mixed" {
		t.Fatalf("unexpected counts: %+v", res)
	}
	if res.Results[0].Outcome != launcher.Started || res.Results[1].Outcome != launcher.Failed {
		t.Fatalf("unexpected outcomes: %+v", res.Results)
	}
	want := "Failed to launch " + files[1] + ": permission denied"
	if len(notify.errors) != 1 || notify.errors[0] != want {
		t.Fatalf("unexpected error notifications: %+v", notify.errors)
	}
}
