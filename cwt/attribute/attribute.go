package attribute

import (
	"cmp"
	"fmt"
)

// Attr is a bounded, change-tracked cell holding one ordered value.
// Limits are inclusive on both ends. The zero value is not usable;
// construct with [New].
type Attr[T cmp.Ordered] struct {
	value   T
	min     T
	max     T
	changed bool
	watch   func()
}

// New returns a cell initialized to value with the given inclusive
// limits. The initial value is stored as-is; validation applies to
// subsequent writes through Set.
func New[T cmp.Ordered](value, min, max T) *Attr[T] {
	return &Attr[T]{value: value, min: min, max: max}
}

// Float is an attribute holding a real value.
type Float = Attr[float64]

// Int is an attribute holding an integer value.
type Int = Attr[int]

// Set validates and stores value, marks the cell changed, and fires
// the watcher before returning. A value outside the limits is rejected
// with ErrOutOfRange and the previous value is kept.
func (a *Attr[T]) Set(value T) error {
	return a.set(value, false)
}

// SetSilently is Set without the watcher notification.
func (a *Attr[T]) SetSilently(value T) error {
	return a.set(value, true)
}

func (a *Attr[T]) set(value T, silently bool) error {
	if value < a.min || value > a.max {
		return fmt.Errorf("%w: %v not in [%v, %v]", ErrOutOfRange, value, a.min, a.max)
	}
	a.value = value
	a.changed = true
	if !silently && a.watch != nil {
		a.watch()
	}
	return nil
}

// Get returns the current value.
func (a *Attr[T]) Get() T { return a.value }

// Min returns the lower limit.
func (a *Attr[T]) Min() T { return a.min }

// Max returns the upper limit.
func (a *Attr[T]) Max() T { return a.max }

// SetMin replaces the lower limit. The current value is not
// re-validated; limits apply to subsequent writes.
func (a *Attr[T]) SetMin(min T) { a.min = min }

// SetMax replaces the upper limit.
func (a *Attr[T]) SetMax(max T) { a.max = max }

// SetLimits replaces both limits.
func (a *Attr[T]) SetLimits(min, max T) {
	a.min = min
	a.max = max
}

// Watch registers fn to be called after every accepted non-silent
// write. A nil fn removes the watcher.
func (a *Attr[T]) Watch(fn func()) { a.watch = fn }

// Changed reports whether the cell has been written since the last
// ClearChanged.
func (a *Attr[T]) Changed() bool { return a.changed }

// ClearChanged resets the changed mark.
func (a *Attr[T]) ClearChanged() { a.changed = false }

// Clone returns a copy of the cell with the same value and limits.
// The watcher is not copied; the new owner registers its own.
func (a *Attr[T]) Clone() *Attr[T] {
	return &Attr[T]{value: a.value, min: a.min, max: a.max}
}

// Bool is a change-tracked boolean cell. Booleans carry no limits;
// every write is accepted.
type Bool struct {
	value   bool
	changed bool
	watch   func()
}

// NewBool returns a boolean cell initialized to value.
func NewBool(value bool) *Bool {
	return &Bool{value: value}
}

// Set stores value, marks the cell changed, and fires the watcher.
// The error is always nil and exists for symmetry with Attr.Set.
func (b *Bool) Set(value bool) error {
	return b.set(value, false)
}

// SetSilently is Set without the watcher notification.
func (b *Bool) SetSilently(value bool) error {
	return b.set(value, true)
}

func (b *Bool) set(value, silently bool) error {
	b.value = value
	b.changed = true
	if !silently && b.watch != nil {
		b.watch()
	}
	return nil
}

// Get returns the current value.
func (b *Bool) Get() bool { return b.value }

// Watch registers fn to be called after every non-silent write.
func (b *Bool) Watch(fn func()) { b.watch = fn }

// Changed reports whether the cell has been written since the last
// ClearChanged.
func (b *Bool) Changed() bool { return b.changed }

// ClearChanged resets the changed mark.
func (b *Bool) ClearChanged() { b.changed = false }

// Clone returns a copy of the cell without its watcher.
func (b *Bool) Clone() *Bool {
	return &Bool{value: b.value}
}
