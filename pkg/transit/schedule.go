package transit

import (
	"fmt"
	"time"

	iso8601 "github.com/senseyeio/duration"
)

const (
	DefaultTripCount = 8
	DefaultHeadway   = "PT30M"

	ScheduleTimeLayout = "15:04"
)

// GenerateSchedule produces the ordered departure times for one day of a
// route, starting at startTime and spaced headway apart. The sequence is
// never persisted - only the index into it is - so this must stay
// deterministic for identical inputs.
func GenerateSchedule(startTime string, count int, headway string) ([]string, error) {
	if count <= 0 {
		count = DefaultTripCount
	}
	if headway == "" {
		headway = DefaultHeadway
	}

	start, err := time.Parse(ScheduleTimeLayout, startTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q: %w", startTime, err)
	}

	interval, err := iso8601.ParseISO8601(headway)
	if err != nil {
		return nil, fmt.Errorf("invalid headway %q: %w", headway, err)
	}

	schedule := make([]string, 0, count)
	departure := start
	for i := 0; i < count; i++ {
		schedule = append(schedule, departure.Format(ScheduleTimeLayout))
		departure = interval.Shift(departure)
	}

	return schedule, nil
}

// RouteSchedule generates the schedule for a catalog entry using its own
// headway and trip count overrides.
func RouteSchedule(def RouteDefinition) ([]string, error) {
	return GenerateSchedule(def.StartTime, def.TripCount, def.Headway)
}
