package patternfmt

import "strings"

// Format is the primary entry point: given a pattern and a template, it
// renders the template against the pattern and returns the resulting
// string, or an error if the render failed for any reason.
//
// The template is treated as ending at the first NUL byte it contains; Go
// strings have no implicit NUL sentinel, so in practice this only matters
// for embedded NUL bytes, which terminate rendering exactly as running off
// the end of the template does.
func Format(pat *Pattern, template string) (string, error) {
	raw := []byte(template)
	if i := strings.IndexByte(template, 0); i >= 0 {
		raw = raw[:i]
	}

	c := NewCursor(raw)
	buf := NewBuffer()

	if err := interpretExpr(c, pat, buf, 0); err != nil {
		report(err)
		buf.Discard()
		return "", err
	}
	if buf.Failed() {
		err := resourceError()
		report(err)
		buf.Discard()
		return "", err
	}
	return buf.String(), nil
}
