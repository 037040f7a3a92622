package board

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// defaultLayout is the shipped cross-pattern board (see layout.yaml).
//
//go:embed layout.yaml
var defaultLayout []byte

// Layout is a parsed board description: slot coordinates and the piece set
// with staging coordinates. A Layout must pass Validate before it can build a
// Registry; the shipped layout always does.
type Layout struct {
	Slots  []SlotDef  `yaml:"slots"`
	Pieces []PieceDef `yaml:"pieces"`
}

// SlotDef is one slot in a layout document. Slots sit on the board plane, so
// only X and Z are given; Y is always 0.
type SlotDef struct {
	ID string  `yaml:"id"`
	X  float32 `yaml:"x"`
	Z  float32 `yaml:"z"`
}

// PieceDef is one piece in a layout document. X and Z are the staging
// coordinate the piece starts at and rolls back to.
type PieceDef struct {
	ID    string  `yaml:"id"`
	Color Color   `yaml:"color"`
	Shape Shape   `yaml:"shape"`
	X     float32 `yaml:"x"`
	Z     float32 `yaml:"z"`
}

// pieceCount and slotCount are fixed by the puzzle: a 13-slot cross and a
// matching 13-piece set.
const (
	pieceCount = 13
	slotCount  = 13
)

// censusColors are the colors that get one piece of every shape. Red is the
// odd one out: a single round piece.
var censusColors = []Color{Orange, Yellow, Green, Blue}

var allShapes = []Shape{Round, Triangular, Square}

// ParseLayout decodes a YAML layout document. The result is not validated;
// call Validate (NewRegistryFromLayout does).
func ParseLayout(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("parsing layout: %w", err)
	}
	return l, nil
}

// DefaultLayout returns the shipped cross-pattern layout.
func DefaultLayout() Layout {
	l, err := ParseLayout(defaultLayout)
	if err != nil {
		// The embedded document is fixed at build time; it cannot fail to parse.
		panic(err)
	}
	return l
}

// Validate checks the fixed structural rules of the puzzle:
//   - exactly 13 slots with unique ids and pairwise distinct coordinates
//   - exactly 13 pieces with unique ids
//   - color census: 3 each of orange/yellow/green/blue, 1 red
//   - each full-census color has exactly one piece of each shape
//   - the red piece is round
func (l Layout) Validate() error {
	if len(l.Slots) != slotCount {
		return fmt.Errorf("layout has %d slots, want %d", len(l.Slots), slotCount)
	}
	if len(l.Pieces) != pieceCount {
		return fmt.Errorf("layout has %d pieces, want %d", len(l.Pieces), pieceCount)
	}

	slotIDs := make(map[string]bool, slotCount)
	positions := make(map[[2]float32]string, slotCount)
	for _, s := range l.Slots {
		if s.ID == "" {
			return fmt.Errorf("slot with empty id")
		}
		if slotIDs[s.ID] {
			return fmt.Errorf("duplicate slot id %q", s.ID)
		}
		slotIDs[s.ID] = true
		key := [2]float32{s.X, s.Z}
		if other, ok := positions[key]; ok {
			return fmt.Errorf("slots %q and %q share position (%v, %v)", other, s.ID, s.X, s.Z)
		}
		positions[key] = s.ID
	}

	pieceIDs := make(map[string]bool, pieceCount)
	byColor := make(map[Color]int)
	byColorShape := make(map[Color]map[Shape]int)
	for _, p := range l.Pieces {
		if p.ID == "" {
			return fmt.Errorf("piece with empty id")
		}
		if pieceIDs[p.ID] {
			return fmt.Errorf("duplicate piece id %q", p.ID)
		}
		pieceIDs[p.ID] = true
		byColor[p.Color]++
		if byColorShape[p.Color] == nil {
			byColorShape[p.Color] = make(map[Shape]int)
		}
		byColorShape[p.Color][p.Shape]++
	}

	for _, c := range censusColors {
		if byColor[c] != 3 {
			return fmt.Errorf("color %s has %d pieces, want 3", c, byColor[c])
		}
		for _, sh := range allShapes {
			if byColorShape[c][sh] != 1 {
				return fmt.Errorf("color %s has %d %s pieces, want 1", c, byColorShape[c][sh], sh)
			}
		}
	}
	if byColor[Red] != 1 {
		return fmt.Errorf("color red has %d pieces, want 1", byColor[Red])
	}
	if byColorShape[Red][Round] != 1 {
		return fmt.Errorf("the red piece must be round")
	}
	return nil
}
