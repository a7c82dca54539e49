package charter

// IndexCursor is a bounded index with wraparound. Four unrelated stages
// (location, theme, vessel class, roster) navigate lists of different
// cardinality; the modulo arithmetic lives here once instead of per stage.
// The bound is always derived from a live list length, so out-of-range Set
// is a caller bug, not a handled condition.
type IndexCursor struct {
	pos   int
	bound int // exclusive upper limit; 0 means no list
}

// NewIndexCursor creates a cursor at position pos over bound elements.
func NewIndexCursor(pos, bound int) IndexCursor {
	return IndexCursor{pos: pos, bound: bound}
}

// Current returns the cursor position.
func (c IndexCursor) Current() int {
	return c.pos
}

// Bound returns the exclusive upper limit.
func (c IndexCursor) Bound() int {
	return c.bound
}

// Set moves the cursor to pos.
func (c *IndexCursor) Set(pos int) {
	c.pos = pos
}

// Advance moves the cursor forward one position, wrapping past the end.
// A cursor with no list stays at 0.
func (c *IndexCursor) Advance() {
	if c.bound > 0 {
		c.pos = (c.pos + 1) % c.bound
	}
}

// Retreat moves the cursor back one position, wrapping past the start.
func (c *IndexCursor) Retreat() {
	if c.bound > 0 {
		c.pos = (c.pos + c.bound - 1) % c.bound
	}
}
