// Package patternfmt implements a pattern-format mini-language interpreter:
// given a Pattern (a multimap from string keys to typed value lists) and a
// format template string, it renders a text string.
//
// A tiny example:
//
//	pat := patternfmt.NewPattern()
//	pat.Add("family", patternfmt.StringValue("DejaVu Sans"))
//	pat.Add("size", patternfmt.DoubleValue(10))
//
//	out, err := patternfmt.Format(pat, "%{family} %{size}")
//	if err != nil {
//	    panic(err)
//	}
//	fmt.Println(out) // Output: DejaVu Sans 10
package patternfmt
