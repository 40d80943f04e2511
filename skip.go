package patternfmt

// skipExpr walks to the next unescaped '}' at the current nesting level,
// treating '%{...}' as an opaque nested skip so that braces inside a
// directive body don't terminate the outer skip. It is used for a
// conditional's untaken branch, where no output should be produced but the
// cursor must still end up past the branch.
func skipExpr(c *Cursor) *FormatError {
	for !c.atEnd() && c.current() != '}' {
		switch c.current() {
		case '\\':
			c.pos++
			if !c.atEnd() {
				c.pos++
			}
			continue
		case '%':
			if err := skipPercent(c); err != nil {
				return err
			}
			continue
		}
		c.pos++
	}
	return nil
}

// skipSubexpr skips a '{' expr '}' body without evaluating it.
func skipSubexpr(c *Cursor) *FormatError {
	if err := c.expect('{'); err != nil {
		return err
	}
	if err := skipExpr(c); err != nil {
		return err
	}
	return c.expect('}')
}

// maybeSkipSubexpr skips a trailing '{...}' body if one follows. Used for
// a conditional's optional else branch when the then-branch was taken.
func maybeSkipSubexpr(c *Cursor) *FormatError {
	if c.current() != '{' {
		return nil
	}
	return skipSubexpr(c)
}

// skipPercent mirrors interpretPercent's brace/escape structure without
// evaluating the directive or its converter pipeline: only brace balancing
// and backslash handling are enforced, so a skipped branch's converter
// suffix may be syntactically sloppy beyond that.
func skipPercent(c *Cursor) *FormatError {
	if err := c.expect('%'); err != nil {
		return err
	}

	// skip an optional width specifier
	for !c.atEnd() && (c.current() == '-' || isDigit(c.current())) {
		c.pos++
	}

	if err := c.expect('{'); err != nil {
		return err
	}

	for !c.atEnd() && c.current() != '}' {
		switch c.current() {
		case '\\':
			c.pos++
			if !c.atEnd() {
				c.pos++
			}
			continue
		case '{':
			if err := skipSubexpr(c); err != nil {
				return err
			}
			continue
		}
		c.pos++
	}

	return c.expect('}')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
