package entity

import (
	"snake-arena/game/types"

	"golang.org/x/exp/slices"
)

// CollisionType represents the type of collision. A single move can raise both.
type CollisionType int

const NoCollision CollisionType = 0

const (
	WallCollision CollisionType = 1 << iota
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case WallCollision | SelfCollision:
		return "wall+self"
	default:
		return "unknown"
	}
}

// MoveResult describes one movement tick
type MoveResult struct {
	Head        types.Point
	VacatedTail types.Point
	Collision   CollisionType
}

// Snake holds body segments head first plus the current heading
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

// MinLength is a head plus one segment
const MinLength = 2

// NewSnake lays out length segments starting at head and trailing away from
// heading. Lengths below MinLength are raised to it.
func NewSnake(head types.Point, heading types.Direction, length int) *Snake {
	if length < MinLength {
		length = MinLength
	}
	back := heading.Opposite().Delta()
	body := make([]types.Point, length)
	body[0] = head
	for i := 1; i < length; i++ {
		body[i] = body[i-1].Add(back)
	}
	return &Snake{
		Body:      body,
		Direction: heading,
	}
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

func (s *Snake) Tail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment, head included, sits on p
func (s *Snake) Occupies(p types.Point) bool {
	return slices.Contains(s.Body, p)
}

// Positions returns a copy of the body
func (s *Snake) Positions() []types.Point {
	return slices.Clone(s.Body)
}

// SetDirection applies requested unless it would reverse into the neck.
// Returns whether the heading was accepted.
func (s *Snake) SetDirection(requested types.Direction) bool {
	if requested == s.Direction.Opposite() {
		return false
	}
	s.Direction = requested
	return true
}

// Move advances the head one step and drags every segment into the slot ahead of it.
// Collisions are reported, not acted on; the body is shifted either way.
func (s *Snake) Move(grid types.Grid) MoveResult {
	previous := slices.Clone(s.Body)

	newHead := previous[0].Add(s.Direction.Delta())

	var collision CollisionType
	if !grid.Contains(newHead) {
		collision |= WallCollision
	}
	// previous still holds the old head and the tail that is about to leave
	if slices.Contains(previous, newHead) {
		collision |= SelfCollision
	}

	s.Body[0] = newHead
	for i := 1; i < len(s.Body); i++ {
		s.Body[i] = previous[i-1]
	}

	return MoveResult{
		Head:        newHead,
		VacatedTail: previous[len(previous)-1],
		Collision:   collision,
	}
}

// Grow appends a segment at p
func (s *Snake) Grow(p types.Point) {
	s.Body = append(s.Body, p)
}
