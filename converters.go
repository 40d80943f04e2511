package patternfmt

import (
	"strings"

	"github.com/Goodwine/triemap"
)

// converterKind identifies which transform a converter name names.
type converterKind int

const (
	convDowncase converterKind = iota
	convBasename
	convDirname
	convCescape
	convShescape
	convXMLEscape
	convDelete
	convEscape
	convTranslate
)

// converterTable interns converter names into a trie keyed by rune
// spelling, looked up once per converter per render. A plain
// map[string]converterKind would do the same job; the trie also lets a
// future caller walk by prefix without a rewrite.
var converterTable triemap.RuneSliceMap

func init() {
	register := func(name string, kind converterKind) {
		converterTable.Put([]rune(name), kind)
	}
	register("downcase", convDowncase)
	register("basename", convBasename)
	register("dirname", convDirname)
	register("cescape", convCescape)
	register("shescape", convShescape)
	register("xmlescape", convXMLEscape)
	register("delete", convDelete)
	register("escape", convEscape)
	register("translate", convTranslate)
}

// convert dispatches the converter named by c's just-read word against str,
// appending the transformed text to dst. Parametric converters (delete,
// escape, translate) consume their own "(...)" argument list from c.
func convert(c *Cursor, name string, dst []byte, str []byte) ([]byte, *FormatError) {
	kind, ok := converterTable.Get([]rune(name))
	if !ok {
		return nil, semanticErrorf("unknown converter %q", name)
	}
	switch kind.(converterKind) {
	case convDowncase:
		return append(dst, Downcase(string(str))...), nil
	case convBasename:
		return append(dst, Basename(string(str))...), nil
	case convDirname:
		return append(dst, Dirname(string(str))...), nil
	case convCescape:
		return cescape(dst, str), nil
	case convShescape:
		return shescape(dst, str), nil
	case convXMLEscape:
		return xmlescape(dst, str), nil
	case convDelete:
		return deleteChars(c, dst, str)
	case convEscape:
		return escapeChars(c, dst, str)
	case convTranslate:
		return translateChars(c, dst, str)
	default:
		return nil, semanticErrorf("unknown converter %q", name)
	}
}

// cescape prefixes each '\' and '"' with '\'.
func cescape(dst, str []byte) []byte {
	for _, ch := range str {
		if ch == '\\' || ch == '"' {
			dst = append(dst, '\\')
		}
		dst = append(dst, ch)
	}
	return dst
}

// shescape wraps str in single quotes, turning each embedded ' into
// '\''. The result always starts and ends with ' and never contains an
// unquoted '.
func shescape(dst, str []byte) []byte {
	dst = append(dst, '\'')
	for _, ch := range str {
		if ch == '\'' {
			dst = append(dst, '\'', '\\', '\'', '\'')
		} else {
			dst = append(dst, ch)
		}
	}
	dst = append(dst, '\'')
	return dst
}

// xmlescape replaces &, <, > with their entity forms. It is idempotent on
// any input containing none of those three bytes.
func xmlescape(dst, str []byte) []byte {
	for _, ch := range str {
		switch ch {
		case '&':
			dst = append(dst, "&amp;"...)
		case '<':
			dst = append(dst, "&lt;"...)
		case '>':
			dst = append(dst, "&gt;"...)
		default:
			dst = append(dst, ch)
		}
	}
	return dst
}

// parseParenArg consumes '(' <chars up to term> term=')' and returns the
// decoded argument as an owned copy (the cursor's scratch slot is about to
// be reused by whatever reads next).
func parseParenArg(c *Cursor, term byte) (string, *FormatError) {
	if err := c.expect('('); err != nil {
		return "", err
	}
	if err := c.readChars(term); err != nil {
		return "", err
	}
	arg := c.word()
	if term != ')' {
		return arg, nil
	}
	if err := c.expect(')'); err != nil {
		return "", err
	}
	return arg, nil
}

// deleteChars drops any byte of str appearing in a "(chars)" argument.
// Byte-oriented, not Unicode-aware.
func deleteChars(c *Cursor, dst, str []byte) ([]byte, *FormatError) {
	chars, err := parseParenArg(c, ')')
	if err != nil {
		return nil, err
	}
	for _, ch := range str {
		if strings.IndexByte(chars, ch) < 0 {
			dst = append(dst, ch)
		}
	}
	return dst, nil
}

// escapeChars inserts chars[0] before every byte of str that appears in a
// "(chars)" argument.
func escapeChars(c *Cursor, dst, str []byte) ([]byte, *FormatError) {
	chars, err := parseParenArg(c, ')')
	if err != nil {
		return nil, err
	}
	for _, ch := range str {
		if strings.IndexByte(chars, ch) >= 0 {
			dst = append(dst, chars[0])
		}
		dst = append(dst, ch)
	}
	return dst, nil
}

// translateChars replaces each byte of str found in the "from" argument of
// a "(from,to)" argument list with the byte at the same index of "to"; if
// from is longer than to, the last byte of to is reused for the overflow.
// An empty "from" is rejected as a syntax error.
func translateChars(c *Cursor, dst, str []byte) ([]byte, *FormatError) {
	if err := c.expect('('); err != nil {
		return nil, err
	}
	if err := c.readChars(','); err != nil {
		return nil, err
	}
	// Copy "from" out of the scratch slot before the next read reuses it.
	from := c.word()
	if err := c.expect(','); err != nil {
		return nil, err
	}
	// readChars above already rejected an empty "from" as a syntax error
	// ("expected character data"), so there's no separate check needed here.
	if err := c.readChars(')'); err != nil {
		return nil, err
	}
	to := c.word()
	if err := c.expect(')'); err != nil {
		return nil, err
	}

	repeat := to[len(to)-1]
	for _, ch := range str {
		i := strings.IndexByte(from, ch)
		if i < 0 {
			dst = append(dst, ch)
			continue
		}
		if i < len(to) {
			dst = append(dst, to[i])
		} else {
			dst = append(dst, repeat)
		}
	}
	return dst, nil
}
