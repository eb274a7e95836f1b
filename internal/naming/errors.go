package naming

import (
	"errors"
	"fmt"
)

// Engine errors
var (
	// ErrDuplicateName is returned when creating an Element or NameSet whose
	// name is already taken within the Project. No state changes.
	ErrDuplicateName = errors.New("name already exists")

	// ErrInvalidProjectFormat is returned by Migrate when a document is
	// missing the required top-level mappings even after legacy key renames.
	ErrInvalidProjectFormat = errors.New("invalid project format")

	// ErrIndexOutOfRange is returned by Reorder for indices outside the
	// template. Callers are expected to prevent this; it is a contract
	// violation, not a recoverable condition to clamp away.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnknownElement is returned when a template operation references an
	// Element that does not exist in the Project.
	ErrUnknownElement = errors.New("unknown element")

	// ErrUnknownNameSet is returned when an operation references a NameSet
	// that does not exist in the Project.
	ErrUnknownNameSet = errors.New("unknown name set")

	// ErrExportLimitExceeded is returned by the exporter pre-flight check
	// when the cross-product size exceeds the configured row bound.
	ErrExportLimitExceeded = errors.New("export limit exceeded")
)

// EmptyReason explains why an enumeration produced zero names. It is a
// diagnostic, not an error: an empty result is a valid outcome that the UI
// must be able to explain to the user.
type EmptyReason struct {
	// Element names the slot whose vocabulary is empty. Blank when the
	// template itself has no slots.
	Element string
}

func (r EmptyReason) String() string {
	if r.Element == "" {
		return "template has no slots"
	}
	return fmt.Sprintf("element %q has no terms", r.Element)
}
