package state

import (
	"fmt"

	"github.com/user/tagshot/pkg/ports"
	"gopkg.in/yaml.v3"
)

// Store persists the state between sessions as a YAML file.
type Store struct {
	fs   ports.FileSystem
	path string
}

// NewStore creates a store backed by path.
func NewStore(fs ports.FileSystem, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load returns the saved state laid over the defaults. A missing file
// yields the defaults.
func (s *Store) Load() (AppState, error) {
	st := Defaults()

	ok, err := s.fs.Exists(s.path)
	if err != nil {
		return st, fmt.Errorf("stat state file: %w", err)
	}
	if !ok {
		return st, nil
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		return st, fmt.Errorf("read state file: %w", err)
	}
	if err := yaml.Unmarshal(data, &st); err != nil {
		return Defaults(), fmt.Errorf("parse state file: %w", err)
	}
	return st, nil
}

// Save writes st to the backing file.
func (s *Store) Save(st AppState) error {
	data, err := yaml.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := s.fs.WriteFile(s.path, data); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
