package argparse

import (
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// List is the registry the token stream is parsed against. It owns the
// appended Arguments and the dangling values, and holds leases on
// registered ValueArguments until Release is called.
//
// When an appended Argument and a registered argument share a name, the
// appended Argument wins and the registered one is never dispatched to.
type List struct {
	dangling   []string
	arguments  []*Argument
	registered []Registrable
	released   bool
}

func NewList() *List {
	return &List{}
}

// Append adds an Argument to the list. The list owns it from then on; read
// its results through the search methods or the pointer kept by the caller.
func (l *List) Append(arg *Argument) *List {
	l.arguments = append(l.arguments, arg)
	return l
}

// Register leases a caller-owned argument to the list. The argument's
// values cannot be read until Release is called.
func (l *List) Register(arg Registrable) error {
	if l.released {
		return ErrReleased
	}
	if err := arg.Identification().Validate(); err != nil {
		return err
	}
	if err := arg.lease(l); err != nil {
		return errors.Wrapf(err, "register %s", arg.Identification())
	}
	l.registered = append(l.registered, arg)
	return nil
}

// Release ends every lease taken by Register and forgets the registered
// arguments. Appended arguments and dangling values stay readable.
func (l *List) Release() {
	for _, arg := range l.registered {
		arg.release(l)
	}
	l.registered = nil
	l.released = true
}

// AppendDangling adds a value to the dangling values.
func (l *List) AppendDangling(value string) {
	l.dangling = append(l.dangling, value)
}

// DanglingValues returns a copy of the tokens that were not options or
// option values, in the order they were given.
func (l *List) DanglingValues() []string {
	return append([]string(nil), l.dangling...)
}

// Arguments returns the appended arguments in order.
func (l *List) Arguments() []*Argument {
	return l.arguments
}

// SearchByShortName returns the appended Argument with the given short name.
func (l *List) SearchByShortName(name rune) (*Argument, error) {
	for _, arg := range l.arguments {
		if arg.id.IsByShort(name) {
			return arg, nil
		}
	}
	return nil, ErrNotFound
}

// SearchByLongName returns the appended Argument with the given long name.
func (l *List) SearchByLongName(name string) (*Argument, error) {
	for _, arg := range l.arguments {
		if arg.id.IsByLong(name) {
			return arg, nil
		}
	}
	return nil, ErrNotFound
}

// ParseOS parses the arguments the process was started with.
func (l *List) ParseOS() error {
	return l.Parse(OSArgs())
}

// Parse walks tokens once, dispatching every option token to the matching
// argument and collecting everything else as dangling values. Parsing stops
// at the first error; arguments handled before it keep their results.
//
// A short option is exactly "-" followed by one letter, a long option is
// "--" followed by a name starting with a letter.
func (l *List) Parse(tokens []string) error {
	c := NewCursor(tokens)
	for {
		seen, err := l.parseOne(c)
		if err != nil {
			return errors.Wrap(err, "error while parsing arguments")
		}
		if !seen {
			return nil
		}
	}
}

func (l *List) parseOne(c *Cursor) (bool, error) {
	s, ok := c.Next()
	if !ok {
		return false, nil
	}

	var arg Handleable
	switch kind, name := classify(s); kind {
	case shortToken:
		r, _ := utf8.DecodeRuneInString(name)
		arg = l.lookupShort(r)
	case longToken:
		arg = l.lookupLong(name)
	default:
		l.AppendDangling(s)
		return true, nil
	}
	if arg == nil {
		return false, &UnknownArgumentError{Token: s}
	}

	if err := arg.Handle(c); err != nil {
		return false, errors.Wrap(err, s)
	}
	return true, nil
}

func (l *List) lookupShort(name rune) Handleable {
	if arg, err := l.SearchByShortName(name); err == nil {
		return arg
	}
	for _, arg := range l.registered {
		if arg.Identification().IsByShort(name) {
			return arg
		}
	}
	return nil
}

func (l *List) lookupLong(name string) Handleable {
	if arg, err := l.SearchByLongName(name); err == nil {
		return arg
	}
	for _, arg := range l.registered {
		if arg.Identification().IsByLong(name) {
			return arg
		}
	}
	return nil
}

type tokenKind int

const (
	danglingToken tokenKind = iota
	shortToken
	longToken
)

// classify returns the kind of s and, for options, the name without dashes.
func classify(s string) (tokenKind, string) {
	n := utf8.RuneCountInString(s)
	switch {
	case n == 2 && s[0] == '-':
		r, _ := utf8.DecodeRuneInString(s[1:])
		if unicode.IsLetter(r) {
			return shortToken, s[1:]
		}
	case n > 2 && s[0] == '-' && s[1] == '-':
		r, _ := utf8.DecodeRuneInString(s[2:])
		if unicode.IsLetter(r) {
			return longToken, s[2:]
		}
	}
	return danglingToken, ""
}

// OSArgs returns a copy of the process arguments without the program name.
func OSArgs() []string {
	if len(os.Args) < 2 {
		return []string{}
	}
	args := make([]string, len(os.Args)-1)
	copy(args, os.Args[1:])
	return args
}
