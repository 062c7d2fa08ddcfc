package argparse

import (
	"strconv"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValueArgument(t *testing.T) {
	arg, err := NewValueArgument(Short('x'), func(*Cursor, []int64) (int64, error) {
		return 2, nil
	})
	require.NoError(t, err)
	assert.True(t, arg.Identification().IsByShort('x'))
	assert.False(t, arg.Identification().IsByShort('c'))
}

func TestNewValueArgumentErrors(t *testing.T) {
	_, err := NewValueArgument(Long(""), String())
	assert.ErrorIs(t, err, ErrNoName)
	_, err = NewValueArgument[string](Long("path"), nil)
	assert.ErrorIs(t, err, ErrNilHandler)
}

func TestValueArgumentHandleAccumulates(t *testing.T) {
	arg, err := NewInteger(Short('i'))
	require.NoError(t, err)

	c := NewCursor([]string{"123", "333", "-333"})
	for c.Remaining() > 0 {
		require.NoError(t, arg.Handle(c))
	}
	values, err := arg.Values()
	require.NoError(t, err)
	assert.Equal(t, []int64{123, 333, -333}, values)
}

func TestValueArgumentHandlerSeesPriorValues(t *testing.T) {
	var seen [][]string
	arg, err := NewValueArgument(Long("tag"), func(c *Cursor, prior []string) (string, error) {
		seen = append(seen, append([]string(nil), prior...))
		s, _ := c.Next()
		return s, nil
	})
	require.NoError(t, err)

	c := NewCursor([]string{"a", "b"})
	require.NoError(t, arg.Handle(c))
	require.NoError(t, arg.Handle(c))
	assert.Equal(t, [][]string{nil, {"a"}}, seen)
}

func TestValueArgumentHandlerErrorIsVerbatim(t *testing.T) {
	boom := errors.New("boom")
	arg, err := NewValueArgument(Short('b'), func(*Cursor, []int) (int, error) {
		return 0, boom
	})
	require.NoError(t, err)
	assert.Equal(t, boom, arg.Handle(NewCursor(nil)))
	values, err := arg.Values()
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestFirstValue(t *testing.T) {
	arg, err := NewInteger(Short('i'))
	require.NoError(t, err)

	_, err = arg.FirstValue()
	assert.ErrorIs(t, err, ErrNoValue)

	require.NoError(t, arg.Handle(NewCursor([]string{"123"})))
	v, err := arg.FirstValue()
	require.NoError(t, err)
	assert.Equal(t, int64(123), v)
}

func TestValuesReturnsCopy(t *testing.T) {
	arg, err := NewString(Short('s'))
	require.NoError(t, err)
	require.NoError(t, arg.Handle(NewCursor([]string{"a"})))

	values, err := arg.Values()
	require.NoError(t, err)
	values[0] = "changed"

	v, err := arg.FirstValue()
	require.NoError(t, err)
	assert.Equal(t, "a", v)
}

func TestIntegerHandler(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		err  error
	}{
		{"123", 123, nil},
		{"-5", -5, nil},
		{"0", 0, nil},
		{"007", 7, nil},
		{"-", 0, ErrNotANumber},
		{"", 0, ErrNotANumber},
		{"12a", 0, ErrNotANumber},
		{"1.2", 0, ErrNotANumber},
		{"+1", 0, ErrNotANumber},
		{"--1", 0, ErrNotANumber},
		{"١٢", 0, ErrNotANumber},
		{"99999999999999999999", 0, strconv.ErrRange},
	}
	h := Integer()
	for _, c := range cases {
		v, err := h(NewCursor([]string{c.in}), nil)
		if c.err != nil {
			assert.ErrorIs(t, err, c.err, "for %q", c.in)
			continue
		}
		require.NoError(t, err, "for %q", c.in)
		assert.Equal(t, c.want, v, "for %q", c.in)
	}
}

func TestIntegerHandlerStarved(t *testing.T) {
	_, err := Integer()(NewCursor(nil), nil)
	assert.ErrorIs(t, err, ErrNoRemainingInput)
}

func TestSignedIntegerRange(t *testing.T) {
	h := SignedInteger[int8]()

	v, err := h(NewCursor([]string{"-128"}), nil)
	require.NoError(t, err)
	assert.Equal(t, int8(-128), v)

	_, err = h(NewCursor([]string{"128"}), nil)
	assert.ErrorIs(t, err, strconv.ErrRange)
}

func TestStringHandler(t *testing.T) {
	c := NewCursor([]string{"--not-an-option", "x"})
	v, err := String()(c, nil)
	require.NoError(t, err)
	assert.Equal(t, "--not-an-option", v)
	assert.Equal(t, 1, c.Remaining())

	_, err = String()(NewCursor(nil), nil)
	assert.ErrorIs(t, err, ErrNoRemainingInput)
}

func TestValidatedHandler(t *testing.T) {
	h, err := Validated(validator.New(), "oneof=json text")
	require.NoError(t, err)

	v, err := h(NewCursor([]string{"json"}), nil)
	require.NoError(t, err)
	assert.Equal(t, "json", v)

	_, err = h(NewCursor([]string{"yaml"}), nil)
	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))

	email, err := Validated(nil, "email")
	require.NoError(t, err)
	_, err = email(NewCursor([]string{"not-an-email"}), nil)
	assert.Error(t, err)

	_, err = h(NewCursor(nil), nil)
	assert.ErrorIs(t, err, ErrNoRemainingInput)
}

func TestValidatedInvalidTag(t *testing.T) {
	_, err := Validated(nil, "emial")
	assert.ErrorIs(t, err, ErrInvalidTag)

	_, err = Validated(validator.New(), "oneof=a b,bogus_rule")
	assert.ErrorIs(t, err, ErrInvalidTag)
}

func TestValidatedParseNeverPanics(t *testing.T) {
	v := validator.New()
	h, err := Validated(v, "required")
	require.NoError(t, err)
	arg, err := NewValueArgument(Long("email"), h)
	require.NoError(t, err)

	l := NewList()
	require.NoError(t, l.Register(arg))
	assert.NotPanics(t, func() {
		assert.NoError(t, l.Parse([]string{"--email", "a@b.c"}))
	})
	l.Release()

	assert.NotPanics(t, func() {
		err := validateVar(v, "a@b.c", "emial")
		assert.ErrorIs(t, err, ErrInvalidTag)
	})
}

func TestOnce(t *testing.T) {
	arg, err := NewValueArgument(Long("port"), Once(Integer()))
	require.NoError(t, err)

	c := NewCursor([]string{"80", "443"})
	require.NoError(t, arg.Handle(c))
	assert.ErrorIs(t, arg.Handle(c), ErrAlreadyAssigned)

	values, err := arg.Values()
	require.NoError(t, err)
	assert.Equal(t, []int64{80}, values)
}
