package inventory

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/illuminado/illuminado/pkg/storage"
	"github.com/illuminado/illuminado/pkg/transit"
)

func TestCommitSaleDecrementsAndAdvances(t *testing.T) {
	store, err := NewStore(testDefinitions(), storage.NewStore(t.TempDir()))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	departure, err := store.CommitSale("Express A")
	if err != nil {
		t.Fatalf("commit sale: %v", err)
	}

	// Express A starts at 05:30; after the advance the next departure is
	// one 30 minute headway later.
	if departure != "06:00" {
		t.Fatalf("expected departure 06:00, got %s", departure)
	}

	state := store.Snapshot()["Express A"]
	if state.SeatsRemaining != FullCapacity-1 {
		t.Fatalf("expected %d seats, got %d", FullCapacity-1, state.SeatsRemaining)
	}
	if state.ScheduleIndex != 1 {
		t.Fatalf("expected schedule index 1, got %d", state.ScheduleIndex)
	}
}

func TestCommitSaleWrapsScheduleIndex(t *testing.T) {
	store, err := NewStore(testDefinitions(), storage.NewStore(t.TempDir()))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	// 8 commits wrap the 8 slot schedule back to index 0.
	for i := 0; i < transit.DefaultTripCount; i++ {
		if _, err := store.CommitSale("Express A"); err != nil {
			t.Fatalf("commit sale %d: %v", i, err)
		}
	}

	state := store.Snapshot()["Express A"]
	if state.ScheduleIndex != 0 {
		t.Fatalf("expected wrapped index 0, got %d", state.ScheduleIndex)
	}
}

func TestCommitSaleExhaustsSeats(t *testing.T) {
	store, err := NewStore(testDefinitions(), storage.NewStore(t.TempDir()))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	for i := 0; i < FullCapacity; i++ {
		if _, err := store.CommitSale("Express A"); err != nil {
			t.Fatalf("commit sale %d should succeed: %v", i+1, err)
		}
	}

	before := store.Snapshot()["Express A"]
	if before.SeatsRemaining != 0 {
		t.Fatalf("expected 0 seats after exhaustion, got %d", before.SeatsRemaining)
	}

	_, err = store.CommitSale("Express A")
	if !transit.IsSoldOut(err) {
		t.Fatalf("expected SoldOutError, got %v", err)
	}

	after := store.Snapshot()["Express A"]
	if after != before {
		t.Fatalf("failed sale mutated state: %+v -> %+v", before, after)
	}
}

func TestCommitSaleUnknownRoute(t *testing.T) {
	store, err := NewStore(testDefinitions(), storage.NewStore(t.TempDir()))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	_, err = store.CommitSale("Express Nowhere")
	if !transit.IsRouteNotFound(err) {
		t.Fatalf("expected RouteNotFoundError, got %v", err)
	}
}

func TestResetAll(t *testing.T) {
	store, err := NewStore(testDefinitions(), storage.NewStore(t.TempDir()))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	for i := 0; i < 7; i++ {
		if _, err := store.CommitSale("Express A"); err != nil {
			t.Fatalf("commit sale: %v", err)
		}
	}
	if _, err := store.CommitSale("Express B"); err != nil {
		t.Fatalf("commit sale: %v", err)
	}

	if err := store.ResetAll(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	for name, state := range store.Snapshot() {
		if state.SeatsRemaining != FullCapacity || state.ScheduleIndex != 0 {
			t.Fatalf("route %s not reset: %+v", name, state)
		}
	}
}

func TestCommitSalePersistsSnapshot(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(testDefinitions(), storage.NewStore(dir))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, err := store.CommitSale("Express B"); err != nil {
		t.Fatalf("commit sale: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, SnapshotFile))
	if err != nil {
		t.Fatalf("read snapshot file: %v", err)
	}

	persisted := map[string]RouteState{}
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatalf("parse snapshot file: %v", err)
	}

	if persisted["Express B"].SeatsRemaining != FullCapacity-1 {
		t.Fatalf("snapshot file stale: %+v", persisted["Express B"])
	}
	if persisted["Express A"].SeatsRemaining != FullCapacity {
		t.Fatalf("untouched route corrupted in snapshot: %+v", persisted["Express A"])
	}
}

func TestCommitSaleReportsPersistenceFailure(t *testing.T) {
	// A data directory that cannot be created makes every save fail.
	files := storage.NewStore(filepath.Join(os.DevNull, "data"))

	store, err := NewStore(testDefinitions(), files)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	departure, err := store.CommitSale("Express A")
	if !transit.IsPersistence(err) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}

	// The sale itself still applied in memory.
	if departure == "" {
		t.Fatal("expected a departure despite persistence failure")
	}
	if store.Snapshot()["Express A"].SeatsRemaining != FullCapacity-1 {
		t.Fatal("in-memory state rolled back on persistence failure")
	}
}

func TestBoard(t *testing.T) {
	store, err := NewStore(testDefinitions(), storage.NewStore(t.TempDir()))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	for i := 0; i < FullCapacity; i++ {
		if _, err := store.CommitSale("Express B"); err != nil {
			t.Fatalf("commit sale: %v", err)
		}
	}

	board := store.Board()
	if len(board) != 2 {
		t.Fatalf("expected 2 board rows, got %d", len(board))
	}
	if board[0].Name != "Express A" || board[0].SoldOut {
		t.Fatalf("unexpected first row: %+v", board[0])
	}
	if !board[1].SoldOut || board[1].SeatsRemaining != 0 {
		t.Fatalf("expected Express B sold out: %+v", board[1])
	}
}
