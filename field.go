package argparse

import (
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

// RegisterStruct registers one argument per exported field of config, which
// must be a pointer to a struct. Field values are written while parsing,
// so config should only be read after Release.
//
// Each field's long name is its kebab-cased name unless overridden by a
// tag, written like `args:"key1,key2=value"`:
//
//	`-`              skip the field
//	`name=<name>`    long name to use instead of the derived one
//	`short=<r>`      short name, exactly one letter
//	`append`         the field is a slice; each occurrence appends one element
//	`embed`          recurse into a struct field as if it were embedded
//
// Bool and *bool fields, and bool slices with the append tag, take no value
// and are set to true when present. Other fields take one value, parsed according to their type (see Setter).
func (l *List) RegisterStruct(config interface{}) error {
	if l.released {
		return ErrReleased
	}
	fields, err := getFieldsFromConfig(config)
	if err != nil {
		return err
	}
	args := make([]*ValueArgument[string], 0, len(fields))
	for _, f := range fields {
		arg, err := NewValueArgument(f.identification(), f.handler())
		if err != nil {
			return errors.Wrapf(err, "field %s", f.name)
		}
		args = append(args, arg)
	}
	for _, arg := range args {
		if err := l.Register(arg); err != nil {
			return err
		}
	}
	return nil
}

type field struct {
	name   string
	short  rune
	isBool bool
	setter Setter
}

func (f field) identification() Identification {
	return Both(f.short, f.name)
}

func (f field) handler() Handler[string] {
	return func(c *Cursor, _ []string) (string, error) {
		if f.isBool {
			return "true", f.setter.Set("true")
		}
		s, ok := c.Next()
		if !ok {
			return "", ErrExpectedValue
		}
		if err := f.setter.Set(s); err != nil {
			return "", errors.Wrapf(err, "invalid value %q", s)
		}
		return s, nil
	}
}

func getFieldsFromConfig(config interface{}) ([]field, error) {
	v := reflect.ValueOf(config)
	if !v.IsValid() {
		return nil, errors.New("invalid config value")
	}
	if v.Kind() != reflect.Ptr {
		return nil, errors.Errorf("config must be a struct pointer (got %s)", v.Type())
	}
	if v.IsNil() {
		return nil, errors.New("config must not be a nil pointer")
	}
	if v.Elem().Kind() != reflect.Struct {
		return nil, errors.Errorf("config must be a struct pointer (got %s)", v.Type())
	}
	return getFields(v.Elem())
}

// sv must be an addressable struct value.
func getFields(sv reflect.Value) ([]field, error) {
	fields := []field{}
	for i := 0; i < sv.NumField(); i++ {
		sf := sv.Type().Field(i)
		val := sv.Field(i)

		// unexported
		if !val.CanSet() {
			continue
		}

		tags, err := parseFieldTags(sf.Tag)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s.%s", sv.Type(), sf.Name)
		}
		if tags.exclude {
			continue
		}

		if (sf.Anonymous || tags.embed) && val.Kind() == reflect.Struct {
			embedded, err := getFields(val)
			if err != nil {
				return nil, err
			}
			fields = append(fields, embedded...)
			continue
		}

		f, err := getField(sf, val, tags)
		if err != nil {
			return nil, errors.Wrapf(err, "field %s.%s", sv.Type(), sf.Name)
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func getField(sf reflect.StructField, val reflect.Value, tags fieldTags) (field, error) {
	name := tags.name
	if name == "" {
		name = xstrings.ToKebabCase(sf.Name)
	}
	set, err := fieldSetter(val, tags.append)
	if err != nil {
		return field{}, err
	}
	return field{
		name:   name,
		short:  tags.short,
		isBool: isBoolField(val.Type(), tags.append),
		setter: set,
	}, nil
}

// isBoolField reports whether a field of type t takes no value: bool, *bool,
// and their slices when appending.
func isBoolField(t reflect.Type, appendSlice bool) bool {
	if appendSlice && t.Kind() == reflect.Slice {
		t = t.Elem()
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Bool
}

// fieldSetter returns a Setter writing into val. Nil pointers are only
// allocated once a value was set successfully, and append fields get a
// fresh element per call.
func fieldSetter(val reflect.Value, appendSlice bool) (Setter, error) {
	if appendSlice {
		if val.Kind() != reflect.Slice {
			return nil, errors.New("append tag requires a slice field")
		}
		elemType := val.Type().Elem()
		return setterFunc(func(s string) error {
			elem := reflect.New(elemType).Elem()
			set, err := fieldSetter(elem, false)
			if err != nil {
				return err
			}
			if err := set.Set(s); err != nil {
				return err
			}
			val.Set(reflect.Append(val, elem))
			return nil
		}), checkSettable(elemType)
	}

	if val.Kind() == reflect.Ptr && val.IsNil() {
		elemType := val.Type().Elem()
		return setterFunc(func(s string) error {
			placeholder := reflect.New(elemType)
			set := setterFor(placeholder)
			if err := set.Set(s); err != nil {
				return err
			}
			val.Set(placeholder)
			return nil
		}), checkSettable(elemType)
	}

	set := setterFor(val)
	if set == nil {
		return nil, errors.Errorf("no setter for type %s", val.Type())
	}
	return set, nil
}

// checkSettable reports an error if values of type t cannot be set, so that
// unsupported field types fail at registration rather than while parsing.
func checkSettable(t reflect.Type) error {
	v := reflect.New(t).Elem()
	if t.Kind() == reflect.Ptr {
		v = reflect.New(t.Elem())
	}
	if setterFor(v) == nil {
		return errors.Errorf("no setter for type %s", t)
	}
	return nil
}

type fieldTags struct {
	exclude bool
	name    string
	short   rune
	append  bool
	embed   bool
}

func parseFieldTags(tag reflect.StructTag) (fieldTags, error) {
	t := fieldTags{}
	m := parseTag(tag.Get("args"))
	pop := func(key string) (string, bool) {
		val, ok := m[key]
		if ok {
			delete(m, key)
		}
		return val, ok
	}

	if _, ok := pop("-"); ok {
		t.exclude = true
	}
	if name, ok := pop("name"); ok {
		t.name = name
	}
	if short, ok := pop("short"); ok {
		r, _ := utf8.DecodeRuneInString(short)
		if utf8.RuneCountInString(short) != 1 || !unicode.IsLetter(r) {
			return t, errors.Errorf("short name must be 1 letter (got %q)", short)
		}
		t.short = r
	}
	if _, ok := pop("append"); ok {
		t.append = true
	}
	if _, ok := pop("embed"); ok {
		t.embed = true
	}

	if len(m) > 0 {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		return t, errors.Errorf("unknown tags: %s", strings.Join(keys, ", "))
	}
	return t, nil
}
