package model

import "strings"

// Warning describes a non-fatal condition encountered while building a
// report: the render continues, degraded, and the warning is surfaced to
// the caller.
type Warning struct {
	Code    string
	Message string
}

func (w Warning) String() string {
	if w.Code == "" {
		return w.Message
	}
	return w.Code + ": " + w.Message
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// Warning codes used by the composition pipeline.
const (
	WarnImageUndecodable = "image-undecodable"
)
