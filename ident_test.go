package argparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentificationMatches(t *testing.T) {
	cases := []struct {
		id    Identification
		short rune
		long  string
		want  [2]bool
	}{
		{Short('x'), 'x', "x", [2]bool{true, false}},
		{Short('x'), 'X', "", [2]bool{false, false}},
		{Long("path"), 'p', "path", [2]bool{false, true}},
		{Long("path"), 'p', "Path", [2]bool{false, false}},
		{Both('l', "list"), 'l', "list", [2]bool{true, true}},
		{Both('l', "list"), 'i', "lis", [2]bool{false, false}},
		{Short('ß'), 'ß', "", [2]bool{true, false}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want[0], c.id.IsByShort(c.short), "%s short %q", c.id, c.short)
		assert.Equal(t, c.want[1], c.id.IsByLong(c.long), "%s long %q", c.id, c.long)
	}
}

func TestIdentificationAbsentNamesNeverMatch(t *testing.T) {
	id := Long("verbose")
	assert.False(t, id.IsByShort(0))
	id = Short('v')
	assert.False(t, id.IsByLong(""))
}

func TestIdentificationValidate(t *testing.T) {
	assert.NoError(t, Short('a').Validate())
	assert.NoError(t, Long("a").Validate())
	assert.NoError(t, Both('a', "b").Validate())
	assert.ErrorIs(t, Identification{}.Validate(), ErrNoName)
	assert.ErrorIs(t, Long("").Validate(), ErrNoName)
	assert.ErrorIs(t, Both(0, "").Validate(), ErrNoName)
}

func TestIdentificationString(t *testing.T) {
	assert.Equal(t, "-p", Short('p').String())
	assert.Equal(t, "--path", Long("path").String())
	assert.Equal(t, "-p/--path", Both('p', "path").String())
}
