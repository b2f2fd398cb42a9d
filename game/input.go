package game

import "snake-arena/game/types"

// Input is the set of directional controls held during a frame
type Input struct {
	Up, Down, Left, Right bool
}

// Hold returns an Input with only d held
func Hold(d types.Direction) Input {
	var in Input
	switch d {
	case types.Up:
		in.Up = true
	case types.Down:
		in.Down = true
	case types.Left:
		in.Left = true
	case types.Right:
		in.Right = true
	}
	return in
}

// Requested resolves the held controls to a single heading. Up wins over Down,
// Down over Right, Right over Left.
func (in Input) Requested() (types.Direction, bool) {
	switch {
	case in.Up:
		return types.Up, true
	case in.Down:
		return types.Down, true
	case in.Right:
		return types.Right, true
	case in.Left:
		return types.Left, true
	}
	return types.Up, false
}
