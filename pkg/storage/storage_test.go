package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/illuminado/illuminado/pkg/transit"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	in := map[string]int{"seats": 12, "schedule_index": 3}
	if err := store.Save("state.json", in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out := map[string]int{}
	if err := store.Load("state.json", &out); err != nil {
		t.Fatalf("load: %v", err)
	}

	if out["seats"] != 12 || out["schedule_index"] != 3 {
		t.Fatalf("round trip mismatch: %v", out)
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(t.TempDir())

	out := map[string]int{"untouched": 1}
	if err := store.Load("nothing.json", &out); err != nil {
		t.Fatalf("missing file must not be an error, got %v", err)
	}
	if out["untouched"] != 1 {
		t.Fatal("missing file load modified the target")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out map[string]int
	err := store.Load("broken.json", &out)
	if !transit.IsPersistence(err) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewStore(dir)

	if err := store.Save("state.json", map[string]int{}); err != nil {
		t.Fatalf("save into missing directory: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "state.json")); err != nil {
		t.Fatalf("state file not created: %v", err)
	}
}

func TestSaveUnwritablePath(t *testing.T) {
	store := NewStore(filepath.Join(os.DevNull, "data"))

	err := store.Save("state.json", map[string]int{})
	if !transit.IsPersistence(err) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
}
