package app

import (
	"errors"
	"fmt"
	"strings"

	"legion/internal/launcher"
)

// LaunchParams selects the profile to launch.
type LaunchParams struct {
	Name string
}

// LaunchResult aggregates per-program outcomes in profile order.
type LaunchResult struct {
	Profile string
	Results []launcher.Result
	Started int
	Failed  int
}

// Launch starts every program of the named profile. Individual spawn
// failures are reported in the result and through the notifier; only
// lookup and storage problems fail the call.
func (a *App) Launch(params LaunchParams) (LaunchResult, error) {
	var result LaunchResult

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return result, errors.New("no profile selected")
	}
	p, err := a.Show(name)
	if err != nil {
		return result, err
	}
	result.Profile = p.Name

	if len(p.Programs) == 0 {
		a.notify.Info(fmt.Sprintf("Profile '%s' has no programs.", p.Name))
		result.Results = []launcher.Result{}
		return result, nil
	}

	result.Results = a.launcher.Launch(p.Programs)
	result.Started, result.Failed = launcher.Count(result.Results)
	for _, r := range result.Results {
		if r.Outcome != launcher.Failed {
			continue
		}
		cause := r.Err
		var spawnErr *launcher.SpawnError
		if errors.As(r.Err, &spawnErr) {
			cause = spawnErr.Err
		}
		a.notify.Error(fmt.Sprintf("Failed to launch %s: %v", r.Path, cause))
	}
	a.log.Debug("profile launched", "name", p.Name, "started", result.Started, "failed", result.Failed)
	return result, nil
}
