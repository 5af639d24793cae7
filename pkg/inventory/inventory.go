package inventory

import (
	"sync"

	"github.com/illuminado/illuminado/pkg/storage"
	"github.com/illuminado/illuminado/pkg/transit"
)

// FullCapacity is the seat count of every route at the start of a day.
const FullCapacity = 20

// SnapshotFile is the persisted route state, keyed by route name.
const SnapshotFile = "transport_state.json"

// RouteState is the mutable side of a route. SeatsRemaining never goes
// negative; ScheduleIndex is always valid for the route's current schedule.
type RouteState struct {
	SeatsRemaining int `json:"seats"`
	ScheduleIndex  int `json:"schedule_index"`
}

// BoardEntry is one row of the departure board.
type BoardEntry struct {
	Name           string                `json:"name" groups:"basic,detail"`
	Destination    string                `json:"destination" groups:"basic,detail"`
	Type           transit.TransportType `json:"type" groups:"basic,detail"`
	BasePrice      int                   `json:"base_price" groups:"basic,detail"`
	NextDeparture  string                `json:"next_departure" groups:"basic,detail"`
	SeatsRemaining int                   `json:"seats_remaining" groups:"basic,detail"`
	SoldOut        bool                  `json:"sold_out" groups:"basic,detail"`
}

// Store owns all RouteState instances, one per catalog entry. Every mutation
// is written back to the snapshot file in full. The mutex makes the
// check-then-decrement of CommitSale atomic under concurrent callers.
type Store struct {
	mutex sync.Mutex

	definitions []transit.RouteDefinition
	schedules   map[string][]string
	states      map[string]*RouteState

	files *storage.Store
}

// NewStore generates each route's schedule, loads the previous snapshot and
// reconciles the two into fresh route state.
func NewStore(definitions []transit.RouteDefinition, files *storage.Store) (*Store, error) {
	schedules := map[string][]string{}
	for _, definition := range definitions {
		schedule, err := transit.RouteSchedule(definition)
		if err != nil {
			return nil, err
		}
		schedules[definition.Name] = schedule
	}

	snapshot := loadSnapshot(files)

	return &Store{
		definitions: definitions,
		schedules:   schedules,
		states:      Reconcile(definitions, schedules, snapshot),
		files:       files,
	}, nil
}

// CommitSale takes one seat on the route and advances its schedule position,
// returning the new next departure time. Fails with SoldOutError when no
// seats remain, leaving state untouched. A PersistenceError return means the
// sale itself was applied in memory but the snapshot write failed.
func (s *Store) CommitSale(routeName string) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	state, ok := s.states[routeName]
	if !ok {
		return "", transit.RouteNotFoundError{Route: routeName}
	}

	if state.SeatsRemaining <= 0 {
		return "", transit.SoldOutError{Route: routeName}
	}

	schedule := s.schedules[routeName]

	state.SeatsRemaining -= 1
	state.ScheduleIndex = (state.ScheduleIndex + 1) % len(schedule)

	departure := schedule[state.ScheduleIndex]

	if err := s.persistLocked(); err != nil {
		return departure, err
	}

	return departure, nil
}

// ResetAll restores every route to full capacity and schedule position 0.
// Administrative action only.
func (s *Store) ResetAll() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, state := range s.states {
		state.SeatsRemaining = FullCapacity
		state.ScheduleIndex = 0
	}

	return s.persistLocked()
}

// Snapshot returns a copy of the current route state map.
func (s *Store) Snapshot() map[string]RouteState {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.snapshotLocked()
}

// Board lists every route in catalog order with its live availability.
func (s *Store) Board() []BoardEntry {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	board := make([]BoardEntry, 0, len(s.definitions))
	for _, definition := range s.definitions {
		state := s.states[definition.Name]
		board = append(board, BoardEntry{
			Name:           definition.Name,
			Destination:    definition.Destination,
			Type:           definition.Type,
			BasePrice:      definition.BasePrice,
			NextDeparture:  s.schedules[definition.Name][state.ScheduleIndex],
			SeatsRemaining: state.SeatsRemaining,
			SoldOut:        state.SeatsRemaining == 0,
		})
	}

	return board
}

// Definition looks up a catalog entry by route name.
func (s *Store) Definition(routeName string) (transit.RouteDefinition, error) {
	for _, definition := range s.definitions {
		if definition.Name == routeName {
			return definition, nil
		}
	}
	return transit.RouteDefinition{}, transit.RouteNotFoundError{Route: routeName}
}

// Departures returns the full generated schedule for the route.
func (s *Store) Departures(routeName string) ([]string, error) {
	schedule, ok := s.schedules[routeName]
	if !ok {
		return nil, transit.RouteNotFoundError{Route: routeName}
	}

	departures := make([]string, len(schedule))
	copy(departures, schedule)
	return departures, nil
}

// SeatsRemaining reports current availability for the route.
func (s *Store) SeatsRemaining(routeName string) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	state, ok := s.states[routeName]
	if !ok {
		return 0, transit.RouteNotFoundError{Route: routeName}
	}

	return state.SeatsRemaining, nil
}

func (s *Store) snapshotLocked() map[string]RouteState {
	snapshot := map[string]RouteState{}
	for name, state := range s.states {
		snapshot[name] = *state
	}
	return snapshot
}

func (s *Store) persistLocked() error {
	return s.files.Save(SnapshotFile, s.snapshotLocked())
}
