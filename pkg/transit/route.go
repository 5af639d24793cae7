package transit

type TransportType string

const (
	TransportTypeStandard TransportType = "standard"
	TransportTypePremium                = "premium"
)

// RouteDefinition is a single entry of the static route catalog. Definitions
// are read-only once the catalog has been loaded; all mutable per-route state
// lives in the inventory store.
type RouteDefinition struct {
	Name        string        `yaml:"name" json:"name" groups:"basic,detail"`
	StartTime   string        `yaml:"start_time" json:"start_time" groups:"detail"`
	BasePrice   int           `yaml:"base_price" json:"base_price" groups:"basic,detail"`
	Type        TransportType `yaml:"type" json:"type" groups:"basic,detail"`
	Destination string        `yaml:"destination" json:"destination" groups:"basic,detail"`

	// Headway is an ISO8601 duration between departures. TripCount is the
	// number of departures generated for one day. Zero values fall back to
	// DefaultHeadway and DefaultTripCount.
	Headway   string `yaml:"headway,omitempty" json:"headway,omitempty" groups:"detail"`
	TripCount int    `yaml:"trip_count,omitempty" json:"trip_count,omitempty" groups:"detail"`
}
