package patternfmt

// parseWidth greedily reads a signed decimal width specifier ('-'?
// [0-9]*), defaulting to 0 (no alignment) when no digits follow an
// optional sign.
func parseWidth(c *Cursor) int {
	neg := c.consume('-')
	width := 0
	for !c.atEnd() && isDigit(c.current()) {
		width = width*10 + int(c.current()-'0')
		c.pos++
	}
	if neg {
		width = -width
	}
	return width
}

// interpretPercent is the percent dispatcher: parses an optional width,
// opens '{', dispatches to the directive evaluator named by the first
// byte inside, then runs the converter pipeline and width alignment
// before requiring the closing '}'. "%%" is a special case that emits a
// literal '%' and returns immediately.
func interpretPercent(c *Cursor, pat *Pattern, buf *Buffer) *FormatError {
	if err := c.expect('%'); err != nil {
		return err
	}
	if c.consume('%') {
		buf.AppendByte('%')
		return nil
	}

	width := parseWidth(c)

	if err := c.expect('{'); err != nil {
		return err
	}

	start := buf.Len()

	var err *FormatError
	switch c.current() {
	case '{':
		err = interpretSubexpr(c, pat, buf)
	case '+':
		err = interpretFilter(c, pat, buf)
	case '-':
		err = interpretDelete(c, pat, buf)
	case '?':
		err = interpretCond(c, pat, buf)
	case '#':
		err = interpretCount(c, pat, buf)
	default:
		err = interpretSimple(c, pat, buf)
	}
	if err != nil {
		return err
	}

	if err := runConverterPipeline(c, buf, start); err != nil {
		return err
	}
	if !alignToWidth(buf, start, width) {
		return resourceError()
	}
	return c.expect('}')
}

// runConverterPipeline applies zero or more "|name[(args)]" suffixes to
// buf[start:], left to right.
func runConverterPipeline(c *Cursor, buf *Buffer, start int) *FormatError {
	for c.consume('|') {
		if err := c.readWord(); err != nil {
			return err
		}
		name := c.word()

		str := append([]byte(nil), buf.Bytes()[start:]...)
		out, err := convert(c, name, nil, str)
		if err != nil {
			return err
		}
		buf.Truncate(start)
		buf.AppendBytes(out)
	}
	return nil
}

// alignToWidth pads buf[start:] to |width| bytes, left-padding (inserting
// spaces before the content) for width > 0 and right-padding (appending
// spaces) for width < 0, leaving content unchanged when it already meets
// or exceeds the requested width.
func alignToWidth(buf *Buffer, start, width int) bool {
	if buf.Failed() {
		return false
	}
	length := buf.Len() - start
	switch {
	case width == 0:
		// no alignment
	case width < 0:
		for length < -width {
			buf.AppendByte(' ')
			length++
		}
	case length < width:
		buf.InsertSpaces(start, width-length)
	}
	return !buf.Failed()
}
