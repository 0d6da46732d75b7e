// Package store persists army rosters as a flat JSON file, one object per
// side keyed by race name.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store saves and loads name to count rosters per side.
type Store interface {
	Save(side string, roster map[string]int) error
	Load(side string) (map[string]int, error)
}

// JSONStore rewrites the whole file on every save. A missing or corrupt
// file reads as empty rather than failing the game.
type JSONStore struct {
	Path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{Path: path}
}

func (s *JSONStore) Save(side string, roster map[string]int) error {
	all, err := s.readAll()
	if err != nil {
		return err
	}
	clean := map[string]int{}
	for name, count := range roster {
		if count > 0 {
			clean[name] = count
		}
	}
	all[side] = clean

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.Path, err)
	}
	return nil
}

func (s *JSONStore) Load(side string) (map[string]int, error) {
	all, err := s.readAll()
	if err != nil {
		return nil, err
	}
	roster := map[string]int{}
	for name, count := range all[side] {
		if count > 0 {
			roster[name] = count
		}
	}
	return roster, nil
}

func (s *JSONStore) readAll() (map[string]map[string]int, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]map[string]int{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	all := map[string]map[string]int{}
	if err := json.Unmarshal(data, &all); err != nil {
		return map[string]map[string]int{}, nil
	}
	return all, nil
}
