package argparse

// Identification holds the names an argument is known by. A zero rune or an
// empty string means the corresponding name is absent.
type Identification struct {
	short rune
	long  string
}

// Short identifies an argument by a single character, e.g. 'v' for "-v".
func Short(name rune) Identification {
	return Identification{short: name}
}

// Long identifies an argument by a word, e.g. "verbose" for "--verbose".
func Long(name string) Identification {
	return Identification{long: name}
}

// Both identifies an argument by a short and a long name.
func Both(short rune, long string) Identification {
	return Identification{short: short, long: long}
}

// Validate returns ErrNoName if neither name is present.
func (id Identification) Validate() error {
	if id.short == 0 && id.long == "" {
		return ErrNoName
	}
	return nil
}

// ShortName returns the short name, if any.
func (id Identification) ShortName() (rune, bool) {
	return id.short, id.short != 0
}

// LongName returns the long name, if any.
func (id Identification) LongName() (string, bool) {
	return id.long, id.long != ""
}

// IsByShort reports whether the argument is identified by the given short
// name. Matching is exact and case-sensitive.
func (id Identification) IsByShort(name rune) bool {
	return id.short != 0 && id.short == name
}

// IsByLong reports whether the argument is identified by the given long
// name. Matching is exact and case-sensitive.
func (id Identification) IsByLong(name string) bool {
	return id.long != "" && id.long == name
}

func (id Identification) String() string {
	switch {
	case id.short != 0 && id.long != "":
		return "-" + string(id.short) + "/--" + id.long
	case id.short != 0:
		return "-" + string(id.short)
	case id.long != "":
		return "--" + id.long
	default:
		return "<unnamed>"
	}
}
