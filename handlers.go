package argparse

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Integer returns a handler that consumes one token and parses it as a
// base 10 int64.
func Integer() Handler[int64] {
	return SignedInteger[int64]()
}

// SignedInteger returns a handler that consumes one token and parses it as
// a base 10 integer of type T. The token must consist of digits with an
// optional leading '-'.
func SignedInteger[T constraints.Signed]() Handler[T] {
	return func(c *Cursor, _ []T) (T, error) {
		s, ok := c.Next()
		if !ok {
			return 0, ErrNoRemainingInput
		}
		if !isInteger(s) {
			return 0, errors.Wrapf(ErrNotANumber, "%q", s)
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, err
		}
		v := T(n)
		if int64(v) != n {
			return 0, &strconv.NumError{Func: "ParseInt", Num: s, Err: strconv.ErrRange}
		}
		return v, nil
	}
}

func isInteger(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String returns a handler that consumes one token as is.
func String() Handler[string] {
	return func(c *Cursor, _ []string) (string, error) {
		s, ok := c.Next()
		if !ok {
			return "", ErrNoRemainingInput
		}
		return s, nil
	}
}

// Validated returns a handler that consumes one token and checks it against
// a go-playground/validator tag such as "email" or "oneof=json text". If v
// is nil a default validator is used. A tag the validator cannot parse is
// reported here as ErrInvalidTag.
func Validated(v *validator.Validate, tag string) (Handler[string], error) {
	if v == nil {
		v = validator.New()
	}
	if err := validateVar(v, "", tag); errors.Is(err, ErrInvalidTag) {
		return nil, err
	}
	return func(c *Cursor, _ []string) (string, error) {
		s, ok := c.Next()
		if !ok {
			return "", ErrNoRemainingInput
		}
		if err := validateVar(v, s, tag); err != nil {
			return "", errors.Wrapf(err, "invalid value %q", s)
		}
		return s, nil
	}, nil
}

// validateVar runs v.Var, turning the panics validator raises for malformed
// tags into ErrInvalidTag.
func validateVar(v *validator.Validate, s, tag string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrInvalidTag, "%q: %v", tag, r)
		}
	}()
	return v.Var(s, tag)
}

// Once wraps h so that a second occurrence of the argument fails with
// ErrAlreadyAssigned instead of accumulating another value.
func Once[V any](h Handler[V]) Handler[V] {
	return func(c *Cursor, prior []V) (V, error) {
		if len(prior) > 0 {
			var zero V
			return zero, ErrAlreadyAssigned
		}
		return h(c, prior)
	}
}

// NewInteger is NewValueArgument with the Integer handler.
func NewInteger(id Identification) (*ValueArgument[int64], error) {
	return NewValueArgument(id, Integer())
}

// NewString is NewValueArgument with the String handler.
func NewString(id Identification) (*ValueArgument[string], error) {
	return NewValueArgument(id, String())
}
