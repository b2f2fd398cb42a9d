package manager

import (
	"testing"

	"snake-arena/game/types"
)

func TestFreeCells(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 3, Height: 2})
	body := []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}}
	free := cm.FreeCells(body)
	want := []types.Point{{X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	if len(free) != len(want) {
		t.Fatalf("free = %v, want %v", free, want)
	}
	for i := range want {
		if free[i] != want[i] {
			t.Errorf("free[%d] = %v, want %v", i, free[i], want[i])
		}
	}
}

func TestIsDanger(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid())
	body := []types.Point{{X: 3, Y: 3}, {X: 3, Y: 2}}
	tests := []struct {
		p    types.Point
		want bool
	}{
		{types.Point{X: 3, Y: 2}, true},
		{types.Point{X: -1, Y: 4}, true},
		{types.Point{X: 4, Y: 10}, true},
		{types.Point{X: 4, Y: 3}, false},
	}
	for _, tt := range tests {
		if got := cm.IsDanger(tt.p, body); got != tt.want {
			t.Errorf("IsDanger(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
