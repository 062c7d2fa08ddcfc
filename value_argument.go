package argparse

// Handler consumes the tokens belonging to one occurrence of an argument
// from c and converts them to a value. prior holds the values produced by
// earlier occurrences and must not be modified.
type Handler[V any] func(c *Cursor, prior []V) (V, error)

// Registrable is a Handleable that can be leased to a List. It is
// implemented by *ValueArgument.
type Registrable interface {
	Handleable
	lease(l *List) error
	release(l *List)
}

// ValueArgument is a descriptor whose values are produced by a caller
// supplied Handler. It stays owned by the caller: a List only leases it
// between Register and Release, and its values cannot be read during that
// time.
//
// Every occurrence appends a value; use Once to reject repeats.
type ValueArgument[V any] struct {
	id      Identification
	handler Handler[V]
	values  []V
	lessee  *List
}

var _ Registrable = (*ValueArgument[int64])(nil)

// NewValueArgument creates a ValueArgument identified by id whose values
// are produced by h.
func NewValueArgument[V any](id Identification, h Handler[V]) (*ValueArgument[V], error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrNilHandler
	}
	return &ValueArgument[V]{id: id, handler: h}, nil
}

func (a *ValueArgument[V]) Identification() Identification {
	return a.id
}

// Handle runs the handler once and appends its value. Handler errors are
// returned unchanged.
func (a *ValueArgument[V]) Handle(c *Cursor) error {
	v, err := a.handler(c, a.values)
	if err != nil {
		return err
	}
	a.values = append(a.values, v)
	return nil
}

// FirstValue returns the value of the first occurrence, or ErrNoValue if
// the argument was never seen.
func (a *ValueArgument[V]) FirstValue() (V, error) {
	var zero V
	if a.lessee != nil {
		return zero, ErrLeased
	}
	if len(a.values) == 0 {
		return zero, ErrNoValue
	}
	return a.values[0], nil
}

// Values returns a copy of the values of every occurrence, in order.
func (a *ValueArgument[V]) Values() ([]V, error) {
	if a.lessee != nil {
		return nil, ErrLeased
	}
	values := make([]V, len(a.values))
	copy(values, a.values)
	return values, nil
}

// Leased reports whether a List currently holds this argument.
func (a *ValueArgument[V]) Leased() bool {
	return a.lessee != nil
}

func (a *ValueArgument[V]) lease(l *List) error {
	if a.lessee != nil {
		return ErrLeased
	}
	a.lessee = l
	return nil
}

func (a *ValueArgument[V]) release(l *List) {
	if a.lessee == l {
		a.lessee = nil
	}
}
