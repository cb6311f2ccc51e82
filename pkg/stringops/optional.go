package stringops

// Optional holds either a present value or nothing. It replaces
// nil-or-sentinel returns so that a found empty string is never
// confused with "not found".
type Optional[T any] struct {
	value   T
	present bool
}

// Some wraps v as a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsPresent reports whether o carries a value.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// Get returns the wrapped value and whether it is present. The
// value is the zero value of T when absent.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns the wrapped value, or fallback when absent.
func (o Optional[T]) OrElse(fallback T) T {
	if !o.present {
		return fallback
	}
	return o.value
}
