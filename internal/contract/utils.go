package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Marker label constants.
const (
	MarkerYesValue = "yes"
	MarkerNoValue  = "no"
)

// Color variables for console output.
var (
	MarkerYesColor = color.New(color.FgGreen, color.Bold) // repository carries the marker token
	MarkerNoColor  = color.New(color.FgYellow)            // repository does not carry the marker token
)

// GetPlainMarker returns a plain text label for the marker flag. This is
// the core logic used for CSV-style and table printing.
func GetPlainMarker(hasMarker bool) string {
	if hasMarker {
		return MarkerYesValue
	}
	return MarkerNoValue
}

// GetColorMarker returns a colored marker label for console output (table).
func GetColorMarker(hasMarker bool) string {
	if hasMarker {
		return MarkerYesColor.Sprint(MarkerYesValue)
	}
	return MarkerNoColor.Sprint(MarkerNoValue)
}

// RepoNameFromPath derives a repository name from the final segment of a
// filesystem path.
func RepoNameFromPath(path string) string {
	return filepath.Base(filepath.Clean(path))
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
