package types

import (
	"fmt"
	"strings"
)

// Arena defaults
const (
	ArenaWidth  = 10
	ArenaHeight = 10
	MoveStep    = 1
)

// Relative square sizes handed to renderers, in cells
const (
	HeadSize    = 0.8
	SegmentSize = 0.65
	FoodSize    = 0.8
)

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// DefaultGrid returns the 10x10 arena
func DefaultGrid() Grid {
	return Grid{Width: ArenaWidth, Height: ArenaHeight}
}

// Contains reports whether p lies inside [0,Width) x [0,Height)
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Area is the number of cells in the grid
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Point is a cell coordinate. Y grows upward.
type Point struct {
	X, Y int
}

func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four headings
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every heading in declaration order
var Directions = [4]Direction{Up, Down, Left, Right}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Delta converts a Direction into a one-step displacement
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: MoveStep}
	case Down:
		return Point{X: 0, Y: -MoveStep}
	case Right:
		return Point{X: MoveStep, Y: 0}
	case Left:
		return Point{X: -MoveStep, Y: 0}
	default:
		return Point{}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection accepts the lower-case names produced by String, in any case
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Up, fmt.Errorf("unknown direction %q", s)
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
