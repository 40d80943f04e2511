package patternfmt

// Cursor is a read-only pointer into the template plus the scratch slot
// used by word/char-class reads. It never advances past the end of
// format; running off the end is treated identically to hitting a
// terminator byte.
type Cursor struct {
	format []byte
	pos    int

	// scratch holds the most recently decoded word or character class.
	// Valid only until the next read* call; callers that need the text
	// to survive a subsequent read must copy it out first.
	scratch []byte
}

// NewCursor returns a Cursor over format.
func NewCursor(format []byte) *Cursor {
	return &Cursor{format: format}
}

// atEnd reports whether the cursor has consumed the whole template.
func (c *Cursor) atEnd() bool {
	return c.pos >= len(c.format)
}

// current returns the byte at the cursor, or 0 past the end, the sentinel
// the interpreter treats as end-of-template.
func (c *Cursor) current() byte {
	if c.atEnd() {
		return 0
	}
	return c.format[c.pos]
}

// offset returns the current 1-based template position, for diagnostics.
func (c *Cursor) offset() int {
	return c.pos + 1
}

// consume advances past ch if it is the current byte, reporting whether it
// matched.
func (c *Cursor) consume(ch byte) bool {
	if c.current() != ch {
		return false
	}
	c.pos++
	return true
}

// expect is like consume but raises a syntax error on a miss: "format
// ended while expecting 'X'" at end of input, else "expected 'X' at N".
func (c *Cursor) expect(ch byte) *FormatError {
	if c.consume(ch) {
		return nil
	}
	if c.atEnd() {
		return syntaxErrorf(0, "format ended while expecting '%c'", ch)
	}
	return syntaxErrorf(c.offset(), "expected '%c' at %d", ch, c.offset())
}

// isPunct reports whether b terminates a word: true for any byte that is
// not an ASCII alphanumeric, with a carve-out for bytes above '~' (DEL and
// the high half of the byte range), which are treated as non-punct so they
// can appear in a word. This table gates where readWord stops.
func isPunct(b byte) bool {
	switch {
	case b < '0':
		return true
	case b <= '9':
		return false
	case b < 'A':
		return true
	case b <= 'Z':
		return false
	case b < 'a':
		return true
	case b <= 'z':
		return false
	case b <= '~':
		return true
	default:
		return false
	}
}

// escapeOf maps a backslash-escaped byte to the control byte it denotes;
// any byte not in the table maps to itself.
func escapeOf(b byte) byte {
	switch b {
	case 'a':
		return '\a'
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case 'v':
		return '\v'
	default:
		return b
	}
}

// readWord reads a maximal non-punct run into the scratch slot, decoding
// \X escapes via escapeOf. An empty read is a syntax error.
func (c *Cursor) readWord() *FormatError {
	c.scratch = c.scratch[:0]
	for !c.atEnd() {
		ch := c.format[c.pos]
		if ch == '\\' {
			c.pos++
			if !c.atEnd() {
				c.scratch = append(c.scratch, escapeOf(c.format[c.pos]))
				c.pos++
			}
			continue
		}
		if isPunct(ch) {
			break
		}
		c.scratch = append(c.scratch, ch)
		c.pos++
	}
	if len(c.scratch) == 0 {
		return syntaxErrorf(c.offset(), "expected element name at %d", c.offset())
	}
	return nil
}

// readChars reads until an unescaped '}' or term, decoding \X escapes via
// escapeOf. An empty read is a syntax error.
func (c *Cursor) readChars(term byte) *FormatError {
	c.scratch = c.scratch[:0]
	for !c.atEnd() && c.format[c.pos] != '}' && c.format[c.pos] != term {
		ch := c.format[c.pos]
		if ch == '\\' {
			c.pos++
			if !c.atEnd() {
				c.scratch = append(c.scratch, escapeOf(c.format[c.pos]))
				c.pos++
			}
			continue
		}
		c.scratch = append(c.scratch, ch)
		c.pos++
	}
	if len(c.scratch) == 0 {
		return syntaxErrorf(c.offset(), "expected character data at %d", c.offset())
	}
	return nil
}

// word returns a copy of the scratch slot's current contents as a string.
func (c *Cursor) word() string {
	return string(c.scratch)
}
