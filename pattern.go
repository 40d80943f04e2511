package patternfmt

// ValueList is a non-empty ordered list of typed values bound to one
// pattern key. Rendering (Unparse) joins the values with a separator byte.
type ValueList []Value

// Unparse appends this value list's textual form to dst, joining elements
// with sep. A sep of 0 (NUL) renders as a bare space, the default
// separator between values in one list.
func (vl ValueList) Unparse(dst []byte, sep byte) []byte {
	if sep == 0 {
		sep = ' '
	}
	for i, v := range vl {
		if i > 0 {
			dst = append(dst, sep)
		}
		dst = v.unparse(dst)
	}
	return dst
}

// Pattern is the multimap the interpreter queries: string key to non-empty
// typed value list. It supports exactly the operations the interpreter
// needs (lookup, count, duplicate, delete, filter) rather than a general
// property-bag API.
type Pattern struct {
	keys   []string
	values map[string]ValueList
}

// NewPattern returns an empty pattern.
func NewPattern() *Pattern {
	return &Pattern{values: make(map[string]ValueList)}
}

// Add appends a value to key's list, creating the list if absent. Order of
// keys as first-added is preserved so Duplicate/Filter produce stable
// iteration order for callers that care (e.g. debug dumps).
func (p *Pattern) Add(key string, v Value) {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = append(p.values[key], v)
}

// Lookup returns the value list bound to key, or (nil, false) if absent.
func (p *Pattern) Lookup(key string) (ValueList, bool) {
	vl, ok := p.values[key]
	return vl, ok
}

// CountValues returns len(values) for key, or 0 if key is absent.
func (p *Pattern) CountValues(key string) int {
	return len(p.values[key])
}

// Duplicate returns a deep-enough copy of p: a new Pattern whose key/value
// lists are independent, so Delete on the copy never affects p. This backs
// the interpreter's delete (`-`) directive.
func (p *Pattern) Duplicate() *Pattern {
	dup := &Pattern{
		keys:   append([]string(nil), p.keys...),
		values: make(map[string]ValueList, len(p.values)),
	}
	for k, vl := range p.values {
		dup.values[k] = append(ValueList(nil), vl...)
	}
	return dup
}

// Delete removes key from p in place.
func (p *Pattern) Delete(key string) {
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Filter returns a new pattern containing only the keys named, in the
// source pattern's relative order. This backs the interpreter's filter
// (`+`) directive.
func (p *Pattern) Filter(keys ...string) *Pattern {
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}
	sub := &Pattern{values: make(map[string]ValueList)}
	for _, k := range p.keys {
		if want[k] {
			sub.keys = append(sub.keys, k)
			sub.values[k] = append(ValueList(nil), p.values[k]...)
		}
	}
	return sub
}

// Keys returns the pattern's keys in insertion order.
func (p *Pattern) Keys() []string {
	return append([]string(nil), p.keys...)
}
