package argparse

import (
	"encoding"
	"encoding/base64"
	"fmt"
	"reflect"
	"time"

	"github.com/pkg/errors"
)

// Setter is implemented by field types of a struct passed to
// RegisterStruct that parse their own values. Other field types are parsed
// with the first of these that applies to the type or a pointer to it:
//
//	encoding.TextUnmarshaler
//	encoding.BinaryUnmarshaler
//	time.ParseDuration for time.Duration
//	verbatim for string
//	fmt.Sscanf "%v" for bool, ints, uints and floats
type Setter interface {
	Set(s string) error
}

type setterFunc func(s string) error

func (f setterFunc) Set(s string) error {
	return f(s)
}

// setterFor returns a Setter writing into v, which must be addressable or a
// non-nil pointer, or nil if the type is not supported.
func setterFor(v reflect.Value) Setter {
	candidates := []interface{}{}
	if v.Kind() == reflect.Ptr && !v.IsNil() {
		candidates = append(candidates, v.Interface())
	}
	if v.CanAddr() {
		candidates = append(candidates, v.Addr().Interface())
	}
	for _, i := range candidates {
		if set := tryGetSetter(i); set != nil {
			return set
		}
	}
	return nil
}

func tryGetSetter(i interface{}) Setter {
	switch v := i.(type) {
	case Setter:
		return v
	case encoding.TextUnmarshaler:
		return setterFunc(func(s string) error {
			return v.UnmarshalText([]byte(s))
		})
	case encoding.BinaryUnmarshaler:
		return setterFunc(func(s string) error {
			return v.UnmarshalBinary([]byte(s))
		})
	case *time.Duration:
		return setterFunc(func(s string) error {
			d, err := time.ParseDuration(s)
			if err != nil {
				return err
			}
			*v = d
			return nil
		})
	case *string:
		return setterFunc(func(s string) error {
			*v = s
			return nil
		})
	case
		*bool,
		*int, *int8, *int16, *int32, *int64,
		*uint, *uint8, *uint16, *uint32, *uint64,
		*float32, *float64:
		return scanfSetter{v}
	default:
		return nil
	}
}

type scanfSetter struct {
	v interface{}
}

func (ss scanfSetter) Set(s string) error {
	n, err := fmt.Sscanf(s, "%v", ss.v)
	if err != nil {
		return err
	} else if n == 0 {
		return errors.New("scanf did not scan any items")
	}
	return nil
}

// Base64String is a byte slice that can be set from a standard (RFC 4648)
// base64-encoded string.
type Base64String []byte

func (b *Base64String) UnmarshalText(src []byte) error {
	decoded, err := base64.StdEncoding.DecodeString(string(src))
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}
