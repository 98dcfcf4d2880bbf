package profile

import (
	"errors"
	"io/fs"
	"os"
	"sort"
	"sync"
)

// Store owns the backing file that maps profile names to program lists.
// Every read reloads the file and every write rewrites it whole; nothing is
// cached between calls. The mutex only serialises callers inside one process.
type Store struct {
	mu   sync.Mutex
	path string
}

// New returns a store backed by the file at path. The file is created lazily.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// EnsureInitialized writes an empty mapping if the backing file is absent.
// An existing file is left untouched.
func (s *Store) EnsureInitialized() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLocked()
}

func (s *Store) ensureLocked() error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return ioError("init", s.path, err)
	}
	return writeDocument("init", s.path, map[string]Profile{})
}

// LoadAll returns every stored profile keyed by name.
func (s *Store) LoadAll() (map[string]Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() (map[string]Profile, error) {
	if err := s.ensureLocked(); err != nil {
		return nil, err
	}
	return readDocument(s.path)
}

// SaveAll replaces the whole backing file with profiles. Map keys are the
// authoritative names.
func (s *Store) SaveAll(profiles map[string]Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name := range profiles {
		if _, reason := normalizeName(name); reason != "" {
			return invalidName("save", name, reason)
		}
	}
	return writeDocument("save", s.path, profiles)
}

// Get looks up one profile. A missing name reports ok=false with a nil error.
func (s *Store) Get(name string) (Profile, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.loadLocked()
	if err != nil {
		return Profile{}, false, err
	}
	p, ok := all[name]
	if !ok {
		return Profile{}, false, nil
	}
	return p.Clone(), true, nil
}

// Names returns the stored profile names in sorted order.
func (s *Store) Names() ([]string, error) {
	all, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Create adds a new profile. It fails with ErrDuplicateName when the name is
// taken and leaves the stored profile untouched.
func (s *Store) Create(name string, programs []string) error {
	clean, reason := normalizeName(name)
	if reason != "" {
		return invalidName("create", name, reason)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.loadLocked()
	if err != nil {
		return err
	}
	if _, ok := all[clean]; ok {
		return nameError("create", clean, ErrDuplicateName)
	}
	all[clean] = Profile{Name: clean, Programs: clonePrograms(programs)}
	return writeDocument("save", s.path, all)
}

// Update overwrites the program list of an existing profile.
func (s *Store) Update(name string, programs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateLocked("update", name, func([]string) []string {
		return clonePrograms(programs)
	})
}

// Append adds paths to the end of an existing profile, keeping order.
func (s *Store) Append(name string, paths []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateLocked("append", name, func(old []string) []string {
		out := make([]string, 0, len(old)+len(paths))
		out = append(out, old...)
		return append(out, paths...)
	})
}

func (s *Store) updateLocked(op, name string, mutate func([]string) []string) error {
	all, err := s.loadLocked()
	if err != nil {
		return err
	}
	p, ok := all[name]
	if !ok {
		return nameError(op, name, ErrNotFound)
	}
	p.Programs = mutate(p.Programs)
	all[name] = p
	return writeDocument("save", s.path, all)
}
