// Package pipe defines directions, connectors and sentinel errors
// for the pipe subpackage of github.com/katalvlaran/pipeloop.
package pipe

import (
	"errors"

	"github.com/katalvlaran/pipeloop/grid"
)

// Sentinel errors for connector classification.
var (
	// ErrInvalidCellSymbol indicates a rune outside the connector alphabet.
	ErrInvalidCellSymbol = errors.New("pipe: invalid cell symbol")
	// ErrAmbiguousStartShape indicates the start cell does not resolve to exactly one passage.
	ErrAmbiguousStartShape = errors.New("pipe: ambiguous start shape")
	// ErrUnknownConnector indicates a connector name outside the closed set.
	ErrUnknownConnector = errors.New("pipe: unknown connector name")
)

// Direction is one of the four compass directions.
type Direction uint8

const (
	// North points toward row-1.
	North Direction = iota
	// South points toward row+1.
	South
	// East points toward col+1.
	East
	// West points toward col-1.
	West
)

// Directions lists every Direction in probe order.
var Directions = [4]Direction{North, South, East, West}

var (
	offsets   = [4]grid.Coord{{Row: -1, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: -1}}
	opposites = [4]Direction{South, North, West, East}
	dirNames  = [4]string{"North", "South", "East", "West"}
)

// Offset returns the coordinate delta of one step toward d.
func (d Direction) Offset() grid.Coord { return offsets[d] }

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction { return opposites[d] }

// Clockwise returns d turned 90° clockwise.
func (d Direction) Clockwise() Direction {
	switch d {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default:
		return North
	}
}

// String returns the direction name.
func (d Direction) String() string { return dirNames[d] }

// Connector classifies one grid cell.
type Connector uint8

const (
	// Ground connects nothing. It is the zero value.
	Ground Connector = iota
	// Vertical joins North and South.
	Vertical
	// Horizontal joins East and West.
	Horizontal
	// NorthEast joins North and East.
	NorthEast
	// NorthWest joins North and West.
	NorthWest
	// SouthWest joins South and West.
	SouthWest
	// SouthEast joins South and East.
	SouthEast
	// Start marks the unresolved start cell; its shape is inferred later.
	Start
)

// Passages lists the six connectors with a fixed direction pair.
var Passages = [6]Connector{Vertical, Horizontal, NorthEast, NorthWest, SouthWest, SouthEast}

type connectorInfo struct {
	name   string
	symbol rune
	glyph  rune
	dirs   [2]Direction
	pipe   bool
}

var connectors = [...]connectorInfo{
	Ground:     {name: "ground", symbol: '.', glyph: '.'},
	Vertical:   {name: "vertical", symbol: '|', glyph: '║', dirs: [2]Direction{North, South}, pipe: true},
	Horizontal: {name: "horizontal", symbol: '-', glyph: '═', dirs: [2]Direction{East, West}, pipe: true},
	NorthEast:  {name: "north-east", symbol: 'L', glyph: '╚', dirs: [2]Direction{North, East}, pipe: true},
	NorthWest:  {name: "north-west", symbol: 'J', glyph: '╝', dirs: [2]Direction{North, West}, pipe: true},
	SouthWest:  {name: "south-west", symbol: '7', glyph: '╗', dirs: [2]Direction{South, West}, pipe: true},
	SouthEast:  {name: "south-east", symbol: 'F', glyph: '╔', dirs: [2]Direction{South, East}, pipe: true},
	Start:      {name: "start", symbol: 'S', glyph: 'S'},
}
