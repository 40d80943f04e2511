// Command patternfmt renders a pattern-format template against one or more
// patterns built from the command line.
//
// Usage: patternfmt -f FORMAT [--glob] [--debug-repr] ARG [ARG ...]
//
// Without --glob, each ARG is a "key=value[,value...]" assignment and all
// ARGs together build a single pattern that FORMAT is rendered against
// once.
//
// With --glob, each ARG is a doublestar glob pattern (e.g. "fonts/**/*.ttf")
// expanded against the current directory; FORMAT is rendered once per
// matching file, against a pattern containing that file's path bound to
// the "file" key.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/pborman/getopt"

	"github.com/patternfmt/patternfmt"
)

func main() {
	var format string
	var useGlob bool
	var debugRepr bool

	getopt.StringVarLong(&format, "format", 'f', "the pattern-format template to render", "FORMAT")
	getopt.BoolVarLong(&useGlob, "glob", 0, "treat each ARG as a doublestar glob pattern over files")
	getopt.BoolVarLong(&debugRepr, "debug-repr", 0, "dump the constructed pattern before rendering")
	getopt.SetParameters("ARG [ARG ...]")

	if err := getopt.Getopt(func(getopt.Option) bool { return true }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		os.Exit(2)
	}
	args := getopt.Args()

	if format == "" {
		fmt.Fprintln(os.Stderr, "patternfmt: -f/--format is required")
		getopt.PrintUsage(os.Stderr)
		os.Exit(2)
	}
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "patternfmt: at least one ARG is required")
		getopt.PrintUsage(os.Stderr)
		os.Exit(2)
	}

	var patterns []*patternfmt.Pattern
	if useGlob {
		var err error
		patterns, err = patternsFromGlobs(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, "patternfmt:", err)
			os.Exit(1)
		}
	} else {
		pat, err := patternFromAssignments(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, "patternfmt:", err)
			os.Exit(1)
		}
		patterns = []*patternfmt.Pattern{pat}
	}

	status := 0
	for _, pat := range patterns {
		if debugRepr {
			fmt.Fprintln(os.Stderr, repr.String(pat, repr.Indent("  ")))
		}
		out, err := patternfmt.Format(pat, format)
		if err != nil {
			status = 1
			continue
		}
		fmt.Println(out)
	}
	os.Exit(status)
}

// patternFromAssignments builds one pattern from "key=value[,value...]"
// arguments, adding each comma-separated value as a string value bound to
// key.
func patternFromAssignments(args []string) (*patternfmt.Pattern, error) {
	pat := patternfmt.NewPattern()
	for _, arg := range args {
		key, rest, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("argument %q is not of the form key=value", arg)
		}
		for _, v := range strings.Split(rest, ",") {
			pat.Add(key, patternfmt.StringValue(v))
		}
	}
	return pat, nil
}

// patternsFromGlobs expands each arg as a doublestar glob pattern rooted at
// the current directory and returns one pattern per matching file, each
// binding "file" to that file's path.
func patternsFromGlobs(patterns []string) ([]*patternfmt.Pattern, error) {
	fsys := os.DirFS(".")
	var out []*patternfmt.Pattern
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			pat := patternfmt.NewPattern()
			pat.Add("file", patternfmt.StringValue(m))
			out = append(out, pat)
		}
	}
	return out, nil
}
