package patternfmt

import "strconv"

// interpretSubexpr evaluates a '{' expr '}' body, re-entering the top-level
// interpreter with terminator '}'.
func interpretSubexpr(c *Cursor, pat *Pattern, buf *Buffer) *FormatError {
	if err := c.expect('{'); err != nil {
		return err
	}
	if err := interpretExpr(c, pat, buf, '}'); err != nil {
		return err
	}
	return c.expect('}')
}

// maybeInterpretSubexpr evaluates a trailing '{...}' body if one follows,
// and is a no-op otherwise. Used for a conditional's optional else branch.
func maybeInterpretSubexpr(c *Cursor, pat *Pattern, buf *Buffer) *FormatError {
	if c.current() != '{' {
		return nil
	}
	return interpretSubexpr(c, pat, buf)
}

// readWordList reads a comma-separated list of key names: word (',' word)*.
func readWordList(c *Cursor) ([]string, *FormatError) {
	var words []string
	for {
		if err := c.readWord(); err != nil {
			return nil, err
		}
		words = append(words, c.word())
		if !c.consume(',') {
			return words, nil
		}
	}
}

// interpretFilter implements the '+' directive: filter the pattern down to
// a keyset, evaluate the following subexpression against the filtered
// duplicate, then let it go out of scope.
func interpretFilter(c *Cursor, pat *Pattern, buf *Buffer) *FormatError {
	if err := c.expect('+'); err != nil {
		return err
	}
	keys, err := readWordList(c)
	if err != nil {
		return err
	}
	sub := pat.Filter(keys...)
	return interpretSubexpr(c, sub, buf)
}

// interpretDelete implements the '-' directive: duplicate the pattern,
// remove the listed keys from the duplicate, evaluate the following
// subexpression against it.
func interpretDelete(c *Cursor, pat *Pattern, buf *Buffer) *FormatError {
	if err := c.expect('-'); err != nil {
		return err
	}
	sub := pat.Duplicate()
	for {
		if err := c.readWord(); err != nil {
			return err
		}
		sub.Delete(c.word())
		if !c.consume(',') {
			break
		}
	}
	return interpretSubexpr(c, sub, buf)
}

// interpretCond implements the '?' directive: a logical AND over "present
// XOR negate" tests, then a "then" branch that is evaluated (and the
// optional "else" skipped) if the predicate holds, or vice versa.
func interpretCond(c *Cursor, pat *Pattern, buf *Buffer) *FormatError {
	if err := c.expect('?'); err != nil {
		return err
	}
	pass := true
	for {
		negate := c.consume('!')
		if err := c.readWord(); err != nil {
			return err
		}
		_, present := pat.Lookup(c.word())
		pass = pass && (negate != present)
		if !c.consume(',') {
			break
		}
	}
	if pass {
		if err := interpretSubexpr(c, pat, buf); err != nil {
			return err
		}
		return maybeSkipSubexpr(c)
	}
	if err := skipSubexpr(c); err != nil {
		return err
	}
	return maybeInterpretSubexpr(c, pat, buf)
}

// interpretCount implements the '#' directive: look up a single key and
// append its value-list length in decimal, 0 if absent.
func interpretCount(c *Cursor, pat *Pattern, buf *Buffer) *FormatError {
	if err := c.expect('#'); err != nil {
		return err
	}
	if err := c.readWord(); err != nil {
		return err
	}
	count := pat.CountValues(c.word())
	buf.AppendString(strconv.Itoa(count))
	return nil
}

// interpretSimple implements the default directive: an optional leading
// ':', a key name, and an optional trailing '=', each only contributing
// output (including the prefixes) when the key is present.
func interpretSimple(c *Cursor, pat *Pattern, buf *Buffer) *FormatError {
	addColon := c.consume(':')
	if err := c.readWord(); err != nil {
		return err
	}
	key := c.word()
	addName := c.consume('=')

	vl, present := pat.Lookup(key)
	if !present {
		return nil
	}
	if addColon {
		buf.AppendByte(':')
	}
	if addName {
		buf.AppendString(key)
		buf.AppendByte('=')
	}
	buf.AppendValueList(vl, 0)
	return nil
}
