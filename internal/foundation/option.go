// Package foundation holds small generic building blocks shared by the
// navigation engine.
package foundation

// Option is a value that may be absent. Title hooks answer with None to
// defer to the next title source; sidebar options use it for tri-state flags.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None is the absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPointer maps nil to None and anything else to Some of the pointee.
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool { return o.ok }
func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// ToPointer returns a fresh pointer to a copy of the value, or nil.
// Encoders use it to omit absent fields.
func (o Option[T]) ToPointer() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}
