package domain

import "fmt"

// ValidationError reports bad or missing user input. Callers are expected to
// prompt for correction and retry, not to treat it as fatal.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// GeometryError reports a non-positive computed area or perimeter.
type GeometryError struct {
	Surface string
	Reason  string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry error on %s: %s", e.Surface, e.Reason)
}

// LookupError indicates a catalog/caller mismatch (unknown treatment key or
// surface). It is a programming or data error, not a user input problem.
type LookupError struct {
	Kind string
	Key  string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.Key)
}

// RemoteSourceError wraps a failure to reach an external catalog source.
// It is always recovered via the built-in fallback catalog.
type RemoteSourceError struct {
	Source string
	Err    error
}

func (e *RemoteSourceError) Error() string {
	return fmt.Sprintf("catalog source %s unavailable: %v", e.Source, e.Err)
}

func (e *RemoteSourceError) Unwrap() error { return e.Err }
