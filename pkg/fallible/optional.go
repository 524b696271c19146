package fallible

// Optional holds either a value or nothing. The zero Optional is empty.
type Optional[T any] struct {
	value   T
	present bool
}

var _ ValueProvider[int] = Optional[int]{}

func Of[T any](v T) Optional[T] {
	return Optional[T]{
		value:   v,
		present: true,
	}
}

func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

func (o Optional[T]) OrElse(other T) T {
	if o.present {
		return o.value
	}
	return other
}

// OrElseGet calls other only when the Optional is empty.
func (o Optional[T]) OrElseGet(other func() T) T {
	if o.present {
		return o.value
	}
	RequireNonNil(other, "other")
	return other()
}
