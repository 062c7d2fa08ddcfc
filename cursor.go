package argparse

// Cursor is the shared read position over the token sequence being parsed.
// The List advances it by one token per option or dangling value, and
// arguments advance it further for every value they consume.
type Cursor struct {
	tokens []string
	pos    int
}

// NewCursor returns a Cursor positioned before the first token.
func NewCursor(tokens []string) *Cursor {
	return &Cursor{tokens: tokens}
}

// Next returns the next token and advances the cursor. The second return
// value is false when no tokens remain.
func (c *Cursor) Next() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	s := c.tokens[c.pos]
	c.pos++
	return s, true
}

// Peek returns the next token without advancing.
func (c *Cursor) Peek() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	return c.tokens[c.pos], true
}

// Remaining returns the number of tokens not yet consumed.
func (c *Cursor) Remaining() int {
	return len(c.tokens) - c.pos
}
