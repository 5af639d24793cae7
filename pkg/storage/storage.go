package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/illuminado/illuminado/pkg/transit"
	"github.com/illuminado/illuminado/pkg/util"
)

// Store persists keyed record sets as JSON files under a data directory.
// Saves overwrite the whole file - acceptable at single-user scale, and kept
// behind this narrow load-all/save-all surface so a transactional store
// could replace it without touching the stores built on top.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// NewStoreFromEnvironment roots the store at ILLUMINADO_DATA_DIR, defaulting
// to the working directory.
func NewStoreFromEnvironment() *Store {
	return NewStore(util.GetEnvironmentVariable("ILLUMINADO_DATA_DIR", "."))
}

// Path resolves a record set name to its file path.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// Load reads the named record set into out. A missing file is not an error
// and leaves out untouched; the caller starts empty.
func (s *Store) Load(name string, out any) error {
	data, err := os.ReadFile(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return transit.PersistenceError{Target: name, Err: err}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return transit.PersistenceError{Target: name, Err: err}
	}

	return nil
}

// Save writes the record set, replacing any previous contents in full.
func (s *Store) Save(name string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return transit.PersistenceError{Target: name, Err: err}
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return transit.PersistenceError{Target: name, Err: err}
	}

	if err := os.WriteFile(s.Path(name), data, 0o644); err != nil {
		log.Error().Err(err).Str("file", name).Msg("Failed to write state file")
		return transit.PersistenceError{Target: name, Err: err}
	}

	return nil
}
