package catalog

import "errors"

// Sentinel errors returned (wrapped) by the loader and expander.
var (
	// ErrUnresolvedRef is returned when a _REF member has no matching _DEF list.
	ErrUnresolvedRef = errors.New("unresolved reference")
	// ErrNestedRef is returned when a _DEF list itself contains a _REF member.
	ErrNestedRef = errors.New("nested reference")
	// ErrInvalidMember is returned for member tokens that cannot be parsed.
	ErrInvalidMember = errors.New("invalid set member")
	// ErrInvalidMetadata is returned when a property's metadata fails validation.
	ErrInvalidMetadata = errors.New("invalid property metadata")
)
