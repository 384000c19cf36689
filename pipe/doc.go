// Package pipe classifies grid cells as pipe connectors and describes which
// compass directions each one joins.
//
// What:
//
//   - Direction: North, South, East, West, with grid offsets and opposites.
//   - Connector: a closed set of eight variants.
//
//     |  Vertical    (N,S)      L  NorthEast  (N,E)
//     -  Horizontal  (E,W)      J  NorthWest  (N,W)
//     .  Ground      (none)     7  SouthWest  (S,W)
//     S  Start       (unknown)  F  SouthEast  (S,E)
//
//   - Connections returns the constant direction pair of a passage, and
//     reports false for Ground (never connects) and Start (not yet known).
//   - Alphabet maps input runes to connectors; DefaultAlphabet is the table
//     above and custom alphabets may be built from connector names.
//
// Start is a dedicated sentinel, not a wildcard: code that wants to treat it
// permissively must ask IsStart explicitly.
//
// Errors:
//
//   - ErrInvalidCellSymbol: a rune outside the alphabet.
//   - ErrAmbiguousStartShape: a direction set that no passage matches.
//   - ErrUnknownConnector: a connector name not in the closed set.
package pipe
