package catalog

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/illuminado/illuminado/pkg/transit"
	"github.com/illuminado/illuminado/pkg/util"
)

// BuiltIn returns the compiled-in route catalog. Prices are RWF.
func BuiltIn() []transit.RouteDefinition {
	return []transit.RouteDefinition{
		{Name: "Illuminado Express", StartTime: "05:00", BasePrice: 3500, Type: transit.TransportTypePremium, Destination: "All Major Cities"},
		{Name: "Express A - Kayonza", StartTime: "05:30", BasePrice: 2500, Type: transit.TransportTypeStandard, Destination: "East"},
		{Name: "Express B - Rwamagana", StartTime: "06:00", BasePrice: 2000, Type: transit.TransportTypeStandard, Destination: "East"},
		{Name: "Express C - Nyagatare", StartTime: "06:30", BasePrice: 3000, Type: transit.TransportTypeStandard, Destination: "East"},
		{Name: "Express D - Kirehe", StartTime: "07:00", BasePrice: 2800, Type: transit.TransportTypeStandard, Destination: "East"},
		{Name: "Express F - Huye", StartTime: "05:45", BasePrice: 2200, Type: transit.TransportTypeStandard, Destination: "South"},
		{Name: "Express G - Muhanga", StartTime: "06:15", BasePrice: 1800, Type: transit.TransportTypeStandard, Destination: "South"},
		{Name: "Express K - Rubavu", StartTime: "05:15", BasePrice: 3200, Type: transit.TransportTypeStandard, Destination: "West"},
		{Name: "Express L - Karongi", StartTime: "05:45", BasePrice: 2900, Type: transit.TransportTypeStandard, Destination: "West"},
		{Name: "Express P - Musanze", StartTime: "05:20", BasePrice: 2800, Type: transit.TransportTypeStandard, Destination: "North"},
		{Name: "Express Z - Kigali CBD Shuttle", StartTime: "04:30", BasePrice: 500, Type: transit.TransportTypeStandard, Destination: "Kigali"},
	}
}

// Load returns the catalog for this process: the built-in routes, overlaid
// with any definitions from the ILLUMINADO_CATALOG YAML file. Overlay
// documents with a name already in the catalog replace that entry; new names
// are appended.
func Load() []transit.RouteDefinition {
	definitions := BuiltIn()

	env := util.GetEnvironmentVariables()
	path := env["ILLUMINADO_CATALOG"]
	if path == "" {
		return definitions
	}

	catalogYaml, err := os.ReadFile(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("Failed to read catalog overlay file")
		return definitions
	}

	decoder := yaml.NewDecoder(bytes.NewReader(catalogYaml))

	for {
		var definition transit.RouteDefinition
		err := decoder.Decode(&definition)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// The decoder cannot resync after a syntax error, so any
			// remaining documents are lost with it.
			log.Warn().Err(err).Str("path", path).Msg("Skipping malformed catalog overlay document")
			break
		}

		if definition.Name == "" {
			log.Warn().Str("path", path).Msg("Skipping catalog overlay document with no name")
			continue
		}

		definitions = Overlay(definitions, definition)
	}

	return definitions
}

// Overlay replaces the entry matching definition.Name, or appends it.
func Overlay(definitions []transit.RouteDefinition, definition transit.RouteDefinition) []transit.RouteDefinition {
	for i, existing := range definitions {
		if existing.Name == definition.Name {
			definitions[i] = definition
			return definitions
		}
	}
	return append(definitions, definition)
}
