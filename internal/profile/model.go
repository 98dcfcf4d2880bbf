package profile

import "slices"

// Profile is a named, ordered list of program paths launched together.
// Values returned by the store are detached copies.
type Profile struct {
	Name     string   `json:"name" yaml:"name"`
	Programs []string `json:"programs" yaml:"programs"`
}

// Clone returns a deep copy of the profile.
func (p Profile) Clone() Profile {
	return Profile{Name: p.Name, Programs: clonePrograms(p.Programs)}
}

func clonePrograms(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return slices.Clone(xs)
}
