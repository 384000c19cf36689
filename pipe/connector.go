package pipe

import (
	"fmt"
	"sort"
	"strings"
)

// Connections returns the two directions joined by a passage.
// Ground reports false because it never connects; Start reports false
// because its shape is not known until inferred.
func (c Connector) Connections() ([2]Direction, bool) {
	if !c.valid() || !connectors[c].pipe {
		return [2]Direction{}, false
	}
	return connectors[c].dirs, true
}

// Connects reports whether c is a passage that joins d.
// It is false for Ground and Start.
func (c Connector) Connects(d Direction) bool {
	dirs, ok := c.Connections()
	return ok && (dirs[0] == d || dirs[1] == d)
}

// IsStart reports whether c is the unresolved start sentinel.
func (c Connector) IsStart() bool { return c == Start }

// IsGround reports whether c is ground.
func (c Connector) IsGround() bool { return c == Ground }

// Symbol returns the rune of c in the default alphabet.
func (c Connector) Symbol() rune {
	if !c.valid() {
		return '?'
	}
	return connectors[c].symbol
}

// Glyph returns the box-drawing rune used when rendering c.
func (c Connector) Glyph() rune {
	if !c.valid() {
		return '?'
	}
	return connectors[c].glyph
}

// String returns the connector name.
func (c Connector) String() string {
	if !c.valid() {
		return fmt.Sprintf("Connector(%d)", uint8(c))
	}
	return connectors[c].name
}

// Clockwise returns the connector obtained by turning c 90° clockwise.
// Ground and Start are unchanged.
func (c Connector) Clockwise() Connector {
	dirs, ok := c.Connections()
	if !ok {
		return c
	}
	turned, _ := FromDirections(dirs[0].Clockwise(), dirs[1].Clockwise())
	return turned
}

func (c Connector) valid() bool { return int(c) < len(connectors) }

// FromDirections returns the unique passage joining a and b, in either order.
// Returns ErrAmbiguousStartShape when a == b.
func FromDirections(a, b Direction) (Connector, error) {
	for _, p := range Passages {
		d := connectors[p].dirs
		if (d[0] == a && d[1] == b) || (d[0] == b && d[1] == a) {
			return p, nil
		}
	}
	return Ground, fmt.Errorf("%w: no passage joins %v and %v", ErrAmbiguousStartShape, a, b)
}

// ByName resolves a connector from its String form.
func ByName(name string) (Connector, error) {
	for i := range connectors {
		if connectors[i].name == strings.ToLower(strings.TrimSpace(name)) {
			return Connector(i), nil
		}
	}
	return Ground, fmt.Errorf("%w: %q", ErrUnknownConnector, name)
}

// Alphabet maps input runes to connectors.
type Alphabet map[rune]Connector

// DefaultAlphabet returns a fresh copy of the standard symbol table:
// | - L J 7 F . S.
func DefaultAlphabet() Alphabet {
	a := make(Alphabet, len(connectors))
	for i := range connectors {
		a[connectors[i].symbol] = Connector(i)
	}
	return a
}

// Parse classifies r, returning ErrInvalidCellSymbol for runes outside a.
func (a Alphabet) Parse(r rune) (Connector, error) {
	c, ok := a[r]
	if !ok {
		return Ground, fmt.Errorf("%w: %q", ErrInvalidCellSymbol, r)
	}
	return c, nil
}

// Symbols returns the runes of a in ascending order.
func (a Alphabet) Symbols() []rune {
	out := make([]rune, 0, len(a))
	for r := range a {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var defaultAlphabet = DefaultAlphabet()

// ParseConnector classifies r using the default alphabet.
func ParseConnector(r rune) (Connector, error) {
	return defaultAlphabet.Parse(r)
}
