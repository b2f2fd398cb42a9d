package entity

import (
	"testing"

	"snake-arena/game/types"

	"golang.org/x/exp/slices"
)

func TestNewSnakeTrailsBehindHeading(t *testing.T) {
	s := NewSnake(types.Point{X: 3, Y: 3}, types.Up, 2)
	want := []types.Point{{X: 3, Y: 3}, {X: 3, Y: 2}}
	if !slices.Equal(s.Body, want) {
		t.Fatalf("body = %v, want %v", s.Body, want)
	}
	if s.Direction != types.Up {
		t.Errorf("direction = %v, want up", s.Direction)
	}

	short := NewSnake(types.Point{X: 3, Y: 3}, types.Up, 1)
	if !slices.Equal(short.Body, want) {
		t.Errorf("length 1 body = %v, want %v", short.Body, want)
	}

	r := NewSnake(types.Point{X: 5, Y: 5}, types.Right, 3)
	want = []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	if !slices.Equal(r.Body, want) {
		t.Errorf("body = %v, want %v", r.Body, want)
	}
}

func TestSetDirectionBlocksReversal(t *testing.T) {
	tests := []struct {
		requested types.Direction
		accepted  bool
		want      types.Direction
	}{
		{types.Down, false, types.Up},
		{types.Left, true, types.Left},
		{types.Right, true, types.Right},
		{types.Up, true, types.Up},
	}
	for _, tt := range tests {
		s := NewSnake(types.Point{X: 3, Y: 3}, types.Up, 2)
		if got := s.SetDirection(tt.requested); got != tt.accepted {
			t.Errorf("SetDirection(%v) accepted = %v, want %v", tt.requested, got, tt.accepted)
		}
		if s.Direction != tt.want {
			t.Errorf("after SetDirection(%v) heading = %v, want %v", tt.requested, s.Direction, tt.want)
		}
	}
}

func TestMoveSegmentsFollow(t *testing.T) {
	s := &Snake{
		Body:      []types.Point{{X: 3, Y: 3}, {X: 3, Y: 2}, {X: 3, Y: 1}},
		Direction: types.Up,
	}
	res := s.Move(types.DefaultGrid())

	want := []types.Point{{X: 3, Y: 4}, {X: 3, Y: 3}, {X: 3, Y: 2}}
	if !slices.Equal(s.Body, want) {
		t.Fatalf("body = %v, want %v", s.Body, want)
	}
	if res.VacatedTail != (types.Point{X: 3, Y: 1}) {
		t.Errorf("vacated tail = %v, want (3,1)", res.VacatedTail)
	}
	if res.Collision != NoCollision {
		t.Errorf("collision = %v, want none", res.Collision)
	}
	if res.Head != s.Head() {
		t.Errorf("result head %v != snake head %v", res.Head, s.Head())
	}
}

func TestMoveWallCollision(t *testing.T) {
	tests := []struct {
		name    string
		head    types.Point
		heading types.Direction
	}{
		{"right edge", types.Point{X: 9, Y: 5}, types.Right},
		{"left edge", types.Point{X: 0, Y: 5}, types.Left},
		{"top edge", types.Point{X: 4, Y: 9}, types.Up},
		{"bottom edge", types.Point{X: 4, Y: 0}, types.Down},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSnake(tt.head, tt.heading, 2)
			res := s.Move(types.DefaultGrid())
			if res.Collision&WallCollision == 0 {
				t.Errorf("expected wall collision moving %v from %v, got %v", tt.heading, tt.head, res.Collision)
			}
			// follow still happens
			if s.Body[1] != tt.head {
				t.Errorf("segment 1 = %v, want old head %v", s.Body[1], tt.head)
			}
		})
	}
}

func TestMoveSelfCollision(t *testing.T) {
	// head at (2,2) heading Down into (2,1), which is part of the body
	s := &Snake{
		Body: []types.Point{
			{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 1},
		},
		Direction: types.Down,
	}
	res := s.Move(types.DefaultGrid())
	if res.Collision != SelfCollision {
		t.Errorf("collision = %v, want self", res.Collision)
	}
}

func TestMoveIntoVacatingTailCollides(t *testing.T) {
	// a 4-segment loop: the new head lands on the pre-move tail
	s := &Snake{
		Body:      []types.Point{{X: 2, Y: 2}, {X: 3, Y: 2}, {X: 3, Y: 1}, {X: 2, Y: 1}},
		Direction: types.Down,
	}
	res := s.Move(types.DefaultGrid())
	if res.Collision&SelfCollision == 0 {
		t.Errorf("collision = %v, want self", res.Collision)
	}
	if res.VacatedTail != (types.Point{X: 2, Y: 1}) {
		t.Errorf("vacated tail = %v", res.VacatedTail)
	}
}

func TestMoveKeepsBodyInsideArena(t *testing.T) {
	grid := types.DefaultGrid()
	s := NewSnake(types.Point{X: 3, Y: 3}, types.Up, 2)
	path := []types.Direction{types.Up, types.Up, types.Right, types.Right, types.Down, types.Down, types.Down, types.Left}
	for _, d := range path {
		s.SetDirection(d)
		res := s.Move(grid)
		if res.Collision != NoCollision {
			t.Fatalf("unexpected collision %v at %v", res.Collision, res.Head)
		}
		for _, p := range s.Body {
			if !grid.Contains(p) {
				t.Fatalf("segment %v left the arena", p)
			}
		}
	}
}

func TestGrowAppendsAtTail(t *testing.T) {
	s := NewSnake(types.Point{X: 3, Y: 3}, types.Up, 2)
	res := s.Move(types.DefaultGrid())
	s.Grow(res.VacatedTail)
	if s.Len() != 3 {
		t.Fatalf("len = %d, want 3", s.Len())
	}
	if s.Tail() != (types.Point{X: 3, Y: 2}) {
		t.Errorf("tail = %v, want (3,2)", s.Tail())
	}
	if !s.Occupies(types.Point{X: 3, Y: 4}) {
		t.Error("expected snake to occupy its new head")
	}
}

func TestCollisionTypeString(t *testing.T) {
	if got := (WallCollision | SelfCollision).String(); got != "wall+self" {
		t.Errorf("String() = %q", got)
	}
	if got := NoCollision.String(); got != "none" {
		t.Errorf("String() = %q", got)
	}
}
