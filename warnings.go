package proxima

import "strings"

// Warning describes a non-fatal issue encountered during analysis, such as a
// skipped element or a detector that failed and was bypassed.
type Warning struct {
	// Stage names the pipeline stage that produced the warning
	// ("candidates", "clustering", "relations").
	Stage string

	// Message is the human-readable description.
	Message string
}

func (w Warning) String() string {
	if w.Stage == "" {
		return w.Message
	}
	return w.Stage + ": " + w.Message
}

// FormatWarnings joins warnings into a single semicolon-separated string for
// logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
