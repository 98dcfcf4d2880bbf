// Package picker grows a program list one path at a time from an external
// path provider, such as an interactive file picker or CLI arguments.
package picker

import (
	"os"
	"slices"
	"strings"
)

// AddAnotherQuestion is asked after each accepted path when a Confirmer is set.
const AddAnotherQuestion = "Would you like to add another program to the profile?"

// PathProvider yields one candidate path per call. ok=false means "no more".
type PathProvider interface {
	PickPath() (path string, ok bool, err error)
}

// Confirmer answers yes/no questions.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Collect returns existing extended with the paths the provider yields. The
// loop stops when the provider has no more, returns an empty path, or returns
// a path that is not an existing regular file. With a non-nil confirmer the
// user is asked after every accepted path whether to continue. existing is
// never modified. On error the paths gathered so far are returned with it.
func Collect(existing []string, provider PathProvider, confirm Confirmer) ([]string, error) {
	out := slices.Clone(existing)
	if out == nil {
		out = []string{}
	}
	for {
		path, ok, err := provider.PickPath()
		if err != nil {
			return out, err
		}
		if !ok || !IsProgramFile(path) {
			return out, nil
		}
		out = append(out, path)

		if confirm == nil {
			continue
		}
		more, err := confirm.Confirm(AddAnotherQuestion)
		if err != nil {
			return out, err
		}
		if !more {
			return out, nil
		}
	}
}

// IsProgramFile reports whether path names an existing regular file right now.
func IsProgramFile(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// SliceProvider hands out a fixed list of paths, for headless callers.
type SliceProvider struct {
	paths []string
	next  int
}

// NewSliceProvider returns a provider yielding paths in order.
func NewSliceProvider(paths []string) *SliceProvider {
	return &SliceProvider{paths: slices.Clone(paths)}
}

// PickPath implements PathProvider.
func (p *SliceProvider) PickPath() (string, bool, error) {
	if p.next >= len(p.paths) {
		return "", false, nil
	}
	path := p.paths[p.next]
	p.next++
	return path, true, nil
}

// Consumed reports how many paths have been handed out.
func (p *SliceProvider) Consumed() int {
	return p.next
}
