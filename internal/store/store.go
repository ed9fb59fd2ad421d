// Package store persists profiles and controller assignments.
//
// Profiles live as one TOML document per profile under the XDG data dir;
// the controller-to-profile assignment registry lives in a small SQLite
// database next to them.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"

	"github.com/llehouerou/deckpad/internal/profile"
)

const (
	appName     = "deckpad"
	profileExt  = ".toml"
	profilesDir = "profiles"
)

// ErrNotFound is returned when a named profile does not exist.
var ErrNotFound = errors.New("profile not found")

// Store reads and writes profile documents in a directory.
type Store struct {
	dir string
}

// Open creates a profile store rooted at the default XDG data location.
func Open() (*Store, error) {
	return OpenDir(filepath.Join(xdg.DataHome, appName, profilesDir))
}

// OpenDir creates a profile store rooted at dir, creating it as needed.
func OpenDir(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// path maps a profile name to its file path. Names may contain characters
// that are not filename-safe; they are sanitised for the filename only, the
// name inside the document stays exact.
func (s *Store) path(name string) string {
	return filepath.Join(s.dir, sanitizeFilename(name)+profileExt)
}

func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == ' ', r == '-', r == '_', r == '(', r == ')':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}

// Load reads a profile by name. Returns ErrNotFound when no document with
// that name exists.
func (s *Store) Load(name string) (*profile.Profile, error) {
	data, err := os.ReadFile(s.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("load profile %q: %w", name, err)
	}
	p, err := profile.DecodeTOML(data)
	if err != nil {
		return nil, fmt.Errorf("load profile %q: %w", name, err)
	}
	return p, nil
}

// Save writes the profile document, replacing any previous version.
func (s *Store) Save(p *profile.Profile) error {
	if p.Name == "" {
		return fmt.Errorf("save profile: empty name")
	}
	data, err := p.EncodeTOML()
	if err != nil {
		return fmt.Errorf("save profile %q: %w", p.Name, err)
	}
	if err := os.WriteFile(s.path(p.Name), data, 0o644); err != nil {
		return fmt.Errorf("save profile %q: %w", p.Name, err)
	}
	return nil
}

// Delete removes a profile document. Deleting a missing profile is not an
// error.
func (s *Store) Delete(name string) error {
	err := os.Remove(s.path(name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete profile %q: %w", name, err)
	}
	return nil
}

// Exists reports whether a profile document with this name is on disk.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

// List returns the names of all stored profiles, sorted. Names come from
// inside the documents, not from the sanitised filenames.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != profileExt {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}
		p, err := profile.DecodeTOML(data)
		if err != nil {
			// Unreadable documents are skipped, not fatal: a single
			// hand-edited file must not break the whole list.
			continue
		}
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names, nil
}

// Rename moves a profile to a new name, replacing any existing profile
// with that name.
func (s *Store) Rename(oldName, newName string) error {
	p, err := s.Load(oldName)
	if err != nil {
		return err
	}
	p.Name = newName
	if err := s.Save(p); err != nil {
		return err
	}
	if sanitizeFilename(oldName) != sanitizeFilename(newName) {
		return s.Delete(oldName)
	}
	return nil
}

// CopyAs stores a copy of an existing profile under a new name and returns
// the copy.
func (s *Store) CopyAs(srcName, newName string) (*profile.Profile, error) {
	p, err := s.Load(srcName)
	if err != nil {
		return nil, err
	}
	c := p.Clone()
	c.Name = newName
	if err := s.Save(c); err != nil {
		return nil, err
	}
	return c, nil
}
