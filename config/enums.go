package config

import (
	"fmt"
)

// Specification of requested dump output format.
type OutputFmt int

const (
	OutputFmtText OutputFmt = iota
	OutputFmtYaml
	OutputFmtJSON
)

func (o OutputFmt) String() string {
	switch o {
	case OutputFmtYaml:
		return "yaml"
	case OutputFmtJSON:
		return "json"
	default:
		return "text"
	}
}

// ParseOutputFmt converts command line value to OutputFmt.
func ParseOutputFmt(s string) (OutputFmt, error) {
	switch s {
	case "", "text":
		return OutputFmtText, nil
	case "yaml":
		return OutputFmtYaml, nil
	case "json":
		return OutputFmtJSON, nil
	default:
		return OutputFmtText, fmt.Errorf("unsupported output format '%s'", s)
	}
}
