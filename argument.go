package argparse

import (
	"github.com/pkg/errors"
)

// Handleable is the capability the List dispatches to: name matching plus
// consumption of trailing tokens from the shared cursor.
type Handleable interface {
	Identification() Identification
	Handle(c *Cursor) error
}

// Argument is a descriptor with a fixed Kind whose result is owned by the
// List it is appended to.
type Argument struct {
	id     Identification
	kind   Kind
	result Result
}

var _ Handleable = (*Argument)(nil)

// NewArgument creates an Argument. A zero short or an empty long means that
// name is absent, but at least one of them must be given.
func NewArgument(short rune, long string, kind Kind) (*Argument, error) {
	id := Both(short, long)
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if !kind.valid() {
		return nil, errors.Wrapf(ErrInvalidKind, "kind %d", int(kind))
	}
	return &Argument{id: id, kind: kind}, nil
}

func (a *Argument) Identification() Identification {
	return a.id
}

func (a *Argument) Short() (rune, bool) {
	return a.id.ShortName()
}

func (a *Argument) Long() (string, bool) {
	return a.id.LongName()
}

func (a *Argument) Kind() Kind {
	return a.kind
}

// Result returns the parsed result, or nil if the argument was not seen.
func (a *Argument) Result() Result {
	return a.result
}

// AddValue records one occurrence of the argument, consuming a value token
// from c for the Value and ValueList kinds.
func (a *Argument) AddValue(c *Cursor) error {
	switch a.kind {
	case Flag:
		if a.result != nil {
			return ErrAlreadySet
		}
		a.result = FlagResult{}
	case Value:
		if a.result != nil {
			return ErrAlreadyAssigned
		}
		s, ok := c.Next()
		if !ok {
			return ErrExpectedValue
		}
		a.result = ValueResult(s)
	case ValueList:
		s, ok := c.Next()
		if !ok {
			return ErrExpectedValue
		}
		list, _ := a.result.(ValueListResult)
		a.result = append(list, s)
	default:
		return errors.Wrapf(ErrInvalidKind, "kind %d", int(a.kind))
	}
	return nil
}

// Handle is AddValue.
func (a *Argument) Handle(c *Cursor) error {
	return a.AddValue(c)
}

// GetValue returns the value of a Value argument.
func (a *Argument) GetValue() (string, error) {
	if a.kind != Value {
		return "", errors.Wrapf(ErrWrongKind, "%s is a %s", a.id, a.kind)
	}
	v, ok := a.result.(ValueResult)
	if !ok {
		return "", ErrNoValue
	}
	return string(v), nil
}

// GetValues returns a copy of the values of a ValueList argument in the
// order they were given.
func (a *Argument) GetValues() ([]string, error) {
	if a.kind != ValueList {
		return nil, errors.Wrapf(ErrWrongKind, "%s is a %s", a.id, a.kind)
	}
	list, ok := a.result.(ValueListResult)
	if !ok {
		return nil, ErrNoValue
	}
	return append([]string(nil), list...), nil
}

// GetFlag reports whether a Flag argument was set. An unset flag is false,
// not an error.
func (a *Argument) GetFlag() (bool, error) {
	if a.kind != Flag {
		return false, errors.Wrapf(ErrWrongKind, "%s is a %s", a.id, a.kind)
	}
	return a.result != nil, nil
}
