package marketplace

import (
	"strings"
)

// Params is the wire-ready request parameter tree. Sections are nested
// Params; leaves are strings or ints.
type Params map[string]any

// Lookup returns the value stored at a dotted path such as
// "Search.Condition.OrderTimeFrom".
func (p Params) Lookup(path string) (any, bool) {
	return lookupPlain(p, path)
}

// Set stores v at a dotted path, creating intermediate sections.
// A non-section value found on the way is replaced by a section.
func (p Params) Set(path string, v any) {
	keys := strings.Split(path, ".")
	cur := p
	for _, k := range keys[:len(keys)-1] {
		next, ok := cur[k].(Params)
		if !ok {
			next = Params{}
			cur[k] = next
		}
		cur = next
	}
	cur[keys[len(keys)-1]] = v
}

// Clone returns a deep copy of the tree.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		if section, ok := v.(Params); ok {
			out[k] = section.Clone()
			continue
		}
		out[k] = v
	}
	return out
}
