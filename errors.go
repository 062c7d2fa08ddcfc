package argparse

import (
	"github.com/pkg/errors"
)

var (
	// ErrNoName is returned when a descriptor is built without a short or a
	// long name.
	ErrNoName = errors.New("at least one name of argument must be specified (short or long or both)")

	// ErrInvalidKind is returned when a descriptor is built with an unknown
	// Kind.
	ErrInvalidKind = errors.New("invalid argument kind")

	// ErrNilHandler is returned when a ValueArgument is built without a
	// handler.
	ErrNilHandler = errors.New("handler must not be nil")

	// ErrInvalidTag is returned by Validated for a tag the validator cannot
	// parse.
	ErrInvalidTag = errors.New("invalid validation tag")

	// ErrLeased is returned when a registered ValueArgument is read, or
	// registered again, while a List still holds it.
	ErrLeased = errors.New("argument is leased by a list")

	// ErrReleased is returned when registering into a List that has already
	// been released.
	ErrReleased = errors.New("list has been released")
)

var (
	ErrAlreadySet      = errors.New("flag already set")
	ErrAlreadyAssigned = errors.New("value already assigned")
)

var (
	ErrExpectedValue    = errors.New("expected value")
	ErrNoRemainingInput = errors.New("no remaining input values")
)

var ErrNotANumber = errors.New("input is not a number")

var (
	// ErrNotFound is returned by the List search methods.
	ErrNotFound = errors.New("argument not found")

	// ErrUnknownArgument matches any *UnknownArgumentError with errors.Is.
	ErrUnknownArgument = errors.New("unknown argument")
)

var (
	ErrWrongKind = errors.New("argument is not of the requested kind")
	ErrNoValue   = errors.New("no value assigned to result")
)

// UnknownArgumentError is returned by Parse when an option token matches no
// appended or registered argument.
type UnknownArgumentError struct {
	Token string
}

func (e *UnknownArgumentError) Error() string {
	return "could not find argument identified by " + e.Token
}

func (e *UnknownArgumentError) Is(target error) bool {
	return target == ErrUnknownArgument
}
