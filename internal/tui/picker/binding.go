package picker

// Binding connects a picker value to storage owned by the caller.
// The picker reads through Get on every update and writes through Set;
// it keeps no copy of the value.
type Binding[T any] struct {
	get func() T
	set func(T)
}

// NewBinding wraps arbitrary storage.
func NewBinding[T any](get func() T, set func(T)) Binding[T] {
	return Binding[T]{get: get, set: set}
}

// Bind binds a variable.
func Bind[T any](v *T) Binding[T] {
	return Binding[T]{
		get: func() T { return *v },
		set: func(nv T) { *v = nv },
	}
}

// Constant returns a read-only binding. Set is a no-op.
func Constant[T any](v T) Binding[T] {
	return Binding[T]{get: func() T { return v }}
}

// Get returns the bound value, or the zero value for an empty binding.
func (b Binding[T]) Get() T {
	if b.get == nil {
		var zero T
		return zero
	}
	return b.get()
}

// Set writes the bound value.
func (b Binding[T]) Set(v T) {
	if b.set != nil {
		b.set(v)
	}
}
