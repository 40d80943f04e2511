package patternfmt

// interpretExpr is the top-level interpreter walk: it streams literal
// bytes, decodes backslash escapes, and hands '%' off to the percent
// dispatcher, stopping (without consuming) at term or at the end of the
// template.
func interpretExpr(c *Cursor, pat *Pattern, buf *Buffer, term byte) *FormatError {
	for !c.atEnd() && c.current() != term {
		switch c.current() {
		case '\\':
			c.pos++
			if !c.atEnd() {
				buf.AppendByte(escapeOf(c.format[c.pos]))
				c.pos++
			}
			continue
		case '%':
			if err := interpretPercent(c, pat, buf); err != nil {
				return err
			}
			continue
		}
		buf.AppendByte(c.format[c.pos])
		c.pos++
	}
	return nil
}
