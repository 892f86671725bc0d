package spec

import "fmt"

// Error is a structural or semantic defect in a spec document.
// Decode collects every defect it finds before rejecting the document,
// so Path points at the offending entity or field.
type Error struct {
	Path   string // e.g. "entities[3].components.collider.shape"
	Reason string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return "spec: " + e.Reason
	}
	return fmt.Sprintf("spec: %s: %s", e.Path, e.Reason)
}

func specErrf(path, format string, args ...any) *Error {
	return &Error{Path: path, Reason: fmt.Sprintf(format, args...)}
}
