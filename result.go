package argparse

// Kind selects how many tokens an Argument consumes per occurrence.
type Kind int

const (
	// Flag consumes no tokens and may occur once.
	Flag Kind = iota
	// Value consumes one token and may occur once.
	Value
	// ValueList consumes one token per occurrence and may occur any number
	// of times.
	ValueList
)

func (k Kind) String() string {
	switch k {
	case Flag:
		return "flag"
	case Value:
		return "value"
	case ValueList:
		return "value list"
	default:
		return "invalid"
	}
}

func (k Kind) valid() bool {
	return k >= Flag && k <= ValueList
}

// Result is the parsed data of an Argument. It is one of FlagResult,
// ValueResult or ValueListResult; a nil Result means the argument was not
// seen.
type Result interface {
	result()
}

type FlagResult struct{}

type ValueResult string

type ValueListResult []string

func (FlagResult) result()      {}
func (ValueResult) result()     {}
func (ValueListResult) result() {}
