package inventory

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/illuminado/illuminado/pkg/storage"
	"github.com/illuminado/illuminado/pkg/transit"
)

// Reconcile merges the static catalog with a previously persisted snapshot,
// producing one RouteState per catalog entry:
//
//   - routes present in the snapshot adopt its seats and schedule index
//   - routes absent from the snapshot start at full capacity, index 0
//   - a schedule index outside the freshly generated schedule is forced to 0
//   - snapshot entries for routes no longer in the catalog are dropped
//
// This keeps persisted state forward-compatible with catalog edits without
// corrupting the routes that did not change.
func Reconcile(definitions []transit.RouteDefinition, schedules map[string][]string, snapshot map[string]RouteState) map[string]*RouteState {
	states := map[string]*RouteState{}

	for _, definition := range definitions {
		state := &RouteState{
			SeatsRemaining: FullCapacity,
			ScheduleIndex:  0,
		}

		if previous, ok := snapshot[definition.Name]; ok {
			state.SeatsRemaining = previous.SeatsRemaining
			state.ScheduleIndex = previous.ScheduleIndex
		}

		if state.SeatsRemaining < 0 {
			state.SeatsRemaining = 0
		}
		if state.SeatsRemaining > FullCapacity {
			state.SeatsRemaining = FullCapacity
		}

		if state.ScheduleIndex < 0 || state.ScheduleIndex >= len(schedules[definition.Name]) {
			log.Debug().
				Str("route", definition.Name).
				Int("index", state.ScheduleIndex).
				Msg("Persisted schedule index out of range, resetting to 0")
			state.ScheduleIndex = 0
		}

		states[definition.Name] = state
	}

	return states
}

// loadSnapshot reads the snapshot file record by record so that one
// malformed record cannot prevent the rest from loading. A missing or
// unreadable file yields an empty snapshot.
func loadSnapshot(files *storage.Store) map[string]RouteState {
	raw := map[string]json.RawMessage{}
	if err := files.Load(SnapshotFile, &raw); err != nil {
		log.Warn().Err(err).Msg("Failed to load inventory snapshot, starting fresh")
		return nil
	}

	snapshot := map[string]RouteState{}
	for name, record := range raw {
		var state RouteState
		if err := json.Unmarshal(record, &state); err != nil {
			log.Warn().Err(err).Str("route", name).Msg("Skipping malformed snapshot record")
			continue
		}
		snapshot[name] = state
	}

	return snapshot
}
