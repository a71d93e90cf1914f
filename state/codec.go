package state

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
	"github.com/grovetools/navcoord/errors"
)

// Codec converts route or tab values to and from the names stored in a
// snapshot.
type Codec[V comparable] interface {
	Encode(v V) (string, error)
	Decode(name string) (V, error)
}

// EnumCodec is a Codec over a closed set of values, each with a unique name.
type EnumCodec[V comparable] struct {
	names   map[V]string
	values  map[string]V
	unknown func(errors.Lookup) error
}

// NewRouteCodec builds a codec for the routes of one area. Unknown names decode
// to an ErrCodeUnknownRoute error.
func NewRouteCodec[V comparable](area string, names map[V]string) *EnumCodec[V] {
	return newEnumCodec(names, func(l errors.Lookup) error {
		l.Area = area
		return errors.UnknownRoute(l)
	})
}

// NewTabCodec builds a codec for tab identifiers. Unknown names decode to an
// ErrCodeUnknownTab error.
func NewTabCodec[V comparable](names map[V]string) *EnumCodec[V] {
	return newEnumCodec(names, func(l errors.Lookup) error {
		return errors.UnknownTab(l)
	})
}

func newEnumCodec[V comparable](names map[V]string, unknown func(errors.Lookup) error) *EnumCodec[V] {
	c := &EnumCodec[V]{
		names:   make(map[V]string, len(names)),
		values:  make(map[string]V, len(names)),
		unknown: unknown,
	}
	for v, name := range names {
		if other, dup := c.values[name]; dup {
			panic(fmt.Sprintf("state: name %q used for both %v and %v", name, other, v))
		}
		c.names[v] = name
		c.values[name] = v
	}
	return c
}

// Encode returns the name of v.
func (c *EnumCodec[V]) Encode(v V) (string, error) {
	name, ok := c.names[v]
	if !ok {
		return "", c.unknown(errors.Lookup{Name: fmt.Sprint(v), Known: c.Names()})
	}
	return name, nil
}

// Decode returns the value named name. Near misses are reported with the
// closest known name as a suggestion.
func (c *EnumCodec[V]) Decode(name string) (V, error) {
	v, ok := c.values[name]
	if !ok {
		var zero V
		known := c.Names()
		return zero, c.unknown(errors.Lookup{Name: name, Known: known, Suggestion: Suggest(name, known)})
	}
	return v, nil
}

// Names returns all known names, sorted.
func (c *EnumCodec[V]) Names() []string {
	out := make([]string, 0, len(c.values))
	for name := range c.values {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Suggest returns the candidate closest to name by edit distance, or "" when
// nothing is close enough to be a plausible typo.
func Suggest(name string, candidates []string) string {
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(name, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == "" {
		return ""
	}
	limit := len(best) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist > limit {
		return ""
	}
	return best
}
