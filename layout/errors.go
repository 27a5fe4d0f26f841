// Package layout: sentinel error set. Operations return these sentinels (or
// pass solver errors through wrapped); tests and callers match via errors.Is.

package layout

import "errors"

var (
	// ErrDuplicateElement is returned by AddElement when the name is taken.
	ErrDuplicateElement = errors.New("layout: element name already registered")

	// ErrUnknownElement is returned when an operation references a name that
	// was never registered with AddElement.
	ErrUnknownElement = errors.New("layout: unknown element")
)
