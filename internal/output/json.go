package output

import (
	"encoding/json"

	"github.com/housecomp/housing-simulator/internal/domain"
)

// JSONFormatter marshals the complete simulation output, ledgers included.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(out *domain.SimulationOutput) ([]byte, error) {
	return json.MarshalIndent(out, "", "  ")
}
