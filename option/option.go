// Package option is a simple generic type for representing missing/absent
// values where the zero value of T is itself meaningful (a grid index of
// 0, a net ID of 0) and so cannot double as a sentinel.
package option

// Option is a simple generic type for representing
// missing/null values where the zero value is valid.
type Option[T any] struct {
	Valid bool
	Value T
}

// None returns an empty Option
func None[T any]() Option[T] {
	return Option[T]{
		Valid: false,
	}
}

// Some returns a filled Option
func Some[T any](val T) Option[T] {
	return Option[T]{
		Valid: true,
		Value: val,
	}
}

// Set fills the Option with a value
func (o *Option[T]) Set(val T) {
	o.Valid = true
	o.Value = val
}

// Get returns the contained value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.Value, o.Valid
}
