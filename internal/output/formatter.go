package output

import (
	"fmt"
	"strings"

	"github.com/housecomp/housing-simulator/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic
// formatting).
type Formatter interface {
	Format(out *domain.SimulationOutput) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	JSONFormatter{},
}

// GetFormatterByName fetches a registered formatter by its normalized name.
func GetFormatterByName(name string) (Formatter, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, f := range builtInFormatters {
		if f.Name() == normalized {
			return f, nil
		}
	}
	return nil, fmt.Errorf("unknown output format %q (available: %s)",
		name, strings.Join(FormatterNames(), ", "))
}

// FormatterNames lists the registered formatter names.
func FormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	return names
}
