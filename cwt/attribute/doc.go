// Package attribute provides bounded, change-tracked parameter cells
// used to describe every tunable of the CWT engine.
//
// An [Attr] holds a single ordered value together with inclusive
// limits. Writes are validated against the limits and either accepted
// atomically or rejected with [ErrOutOfRange]; an accepted write marks
// the cell changed and fires the registered watcher unless the write
// was silent. Owners register a watcher that triggers their own
// recomputation, so no cell ever holds a reference back to its owner.
//
// The package also owns the error vocabulary of the configuration
// surface: [ErrOutOfRange], [ErrInvalid], [ErrNotFound],
// [ErrTypeMismatch] and [ErrNotImplemented] are shared by every
// string-keyed attribute dispatcher in the module.
package attribute
