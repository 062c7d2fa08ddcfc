package argparse

// Builder accumulates the parts of an Argument for method chaining.
type Builder struct {
	kind  Kind
	short rune
	long  string
}

func NewBuilder(kind Kind) *Builder {
	return &Builder{kind: kind}
}

func (b *Builder) SetShortName(short rune) *Builder {
	b.short = short
	return b
}

func (b *Builder) SetLongName(long string) *Builder {
	b.long = long
	return b
}

func (b *Builder) SetKind(kind Kind) *Builder {
	b.kind = kind
	return b
}

// Build creates the Argument, failing like NewArgument does.
func (b *Builder) Build() (*Argument, error) {
	return NewArgument(b.short, b.long, b.kind)
}
