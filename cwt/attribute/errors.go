package attribute

import "errors"

// Error kinds surfaced by the configuration layer. Every string-keyed
// dispatcher in the module wraps one of these; callers test with
// errors.Is.
var (
	// ErrOutOfRange reports a write that violates an attribute's limits
	// or a derived constraint between attributes.
	ErrOutOfRange = errors.New("attribute value out of range")

	// ErrInvalid reports an argument that is intrinsically invalid,
	// independent of any configured limit.
	ErrInvalid = errors.New("invalid argument")

	// ErrNotFound reports an attribute name unknown to the receiver.
	ErrNotFound = errors.New("unknown attribute")

	// ErrTypeMismatch reports a known attribute name supplied with a
	// value of the wrong kind.
	ErrTypeMismatch = errors.New("attribute value has wrong type")

	// ErrNotImplemented is reserved for configurations without a
	// defined path, such as future wavelet families.
	ErrNotImplemented = errors.New("not implemented")
)
