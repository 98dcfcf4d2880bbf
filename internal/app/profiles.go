package app

import (
	"fmt"
	"sort"

	"legion/internal/picker"
	"legion/internal/profile"
)

// CreateParams configures profile creation. A nil Provider creates an
// empty profile.
type CreateParams struct {
	Name      string
	Provider  picker.PathProvider
	Confirmer picker.Confirmer
}

// CreateResult reports the stored profile.
type CreateResult struct {
	Profile profile.Profile
}

// Create validates the name, gathers programs from the provider and stores
// the new profile. The duplicate check runs before any path is requested.
func (a *App) Create(params CreateParams) (CreateResult, error) {
	var result CreateResult

	name, err := profile.NormalizeName(params.Name)
	if err != nil {
		return result, err
	}
	if _, ok, err := a.store.Get(name); err != nil {
		return result, err
	} else if ok {
		return result, fmt.Errorf("create %q: %w", name, profile.ErrDuplicateName)
	}

	programs := []string{}
	if params.Provider != nil {
		programs, err = picker.Collect(nil, params.Provider, params.Confirmer)
		if err != nil {
			return result, fmt.Errorf("select programs: %w", err)
		}
	}

	if err := a.store.Create(name, programs); err != nil {
		return result, err
	}
	a.log.Debug("profile created", "name", name, "programs", len(programs))
	a.notify.Success(fmt.Sprintf("Profile '%s' saved successfully.", name))

	result.Profile = profile.Profile{Name: name, Programs: programs}
	return result, nil
}

// EditParams configures appending programs to an existing profile.
type EditParams struct {
	Name      string
	Provider  picker.PathProvider
	Confirmer picker.Confirmer
}

// EditResult reports the updated profile and what was added.
type EditResult struct {
	Profile profile.Profile
	Added   []string
}

// Edit appends newly selected programs to an existing profile.
func (a *App) Edit(params EditParams) (EditResult, error) {
	var result EditResult

	name, err := profile.NormalizeName(params.Name)
	if err != nil {
		return result, err
	}
	current, err := a.Show(name)
	if err != nil {
		return result, err
	}
	result.Profile = current

	if params.Provider == nil {
		a.notify.Info(fmt.Sprintf("No programs added to profile '%s'.", name))
		return result, nil
	}
	added, err := picker.Collect(nil, params.Provider, params.Confirmer)
	if err != nil {
		return result, fmt.Errorf("select programs: %w", err)
	}
	if len(added) == 0 {
		a.notify.Info(fmt.Sprintf("No programs added to profile '%s'.", name))
		return result, nil
	}

	if err := a.store.Append(name, added); err != nil {
		return result, err
	}
	a.log.Debug("profile extended", "name", name, "added", len(added))
	a.notify.Success(fmt.Sprintf("Profile '%s' saved successfully.", name))

	result.Added = added
	result.Profile.Programs = append(result.Profile.Programs, added...)
	return result, nil
}

// List returns every profile sorted by name.
func (a *App) List() ([]profile.Profile, error) {
	all, err := a.store.LoadAll()
	if err != nil {
		return nil, err
	}
	out := make([]profile.Profile, 0, len(all))
	for _, p := range all {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if len(out) == 0 {
		a.notify.Info("No profiles found.")
	}
	return out, nil
}

// Show returns one profile or an error wrapping profile.ErrNotFound.
func (a *App) Show(name string) (profile.Profile, error) {
	p, ok, err := a.store.Get(name)
	if err != nil {
		return profile.Profile{}, err
	}
	if !ok {
		return profile.Profile{}, fmt.Errorf("profile %q: %w", name, profile.ErrNotFound)
	}
	return p, nil
}
