package manager

import (
	"testing"

	"snake-arena/game/entity"
	"snake-arena/game/types"
)

func TestDrainAppendsAtLastTail(t *testing.T) {
	snake := entity.NewSnake(types.Point{X: 3, Y: 3}, types.Up, 2)
	gl := NewGrowthLedger()

	res := snake.Move(types.DefaultGrid())
	gl.Record(res.VacatedTail)
	gl.Signal()

	added := gl.Drain(snake)
	if len(added) != 1 || added[0] != (types.Point{X: 3, Y: 2}) {
		t.Fatalf("added = %v, want [(3,2)]", added)
	}
	if snake.Len() != 3 {
		t.Errorf("len = %d, want 3", snake.Len())
	}
	if snake.Tail() != (types.Point{X: 3, Y: 2}) {
		t.Errorf("tail = %v", snake.Tail())
	}
	if gl.Pending() != 0 {
		t.Errorf("pending = %d after drain", gl.Pending())
	}
}

func TestDrainOneSegmentPerSignal(t *testing.T) {
	snake := entity.NewSnake(types.Point{X: 5, Y: 5}, types.Up, 2)
	gl := NewGrowthLedger()
	gl.Record(types.Point{X: 5, Y: 3})
	gl.Signal()
	gl.Signal()

	if added := gl.Drain(snake); len(added) != 2 {
		t.Fatalf("added %d segments, want 2", len(added))
	}
	if snake.Len() != 4 {
		t.Errorf("len = %d, want 4", snake.Len())
	}
	if added := gl.Drain(snake); added != nil {
		t.Errorf("second drain added %v", added)
	}
}

func TestDrainWithoutRecordedTail(t *testing.T) {
	snake := entity.NewSnake(types.Point{X: 3, Y: 3}, types.Up, 2)
	gl := NewGrowthLedger()
	if _, ok := gl.LastTail(); ok {
		t.Fatal("fresh ledger reports a tail")
	}
	gl.Signal()
	added := gl.Drain(snake)
	if len(added) != 1 || added[0] != (types.Point{X: 3, Y: 2}) {
		t.Errorf("added = %v, want current tail (3,2)", added)
	}
}

func TestLedgerReset(t *testing.T) {
	gl := NewGrowthLedger()
	gl.Record(types.Point{X: 1, Y: 1})
	gl.Signal()
	gl.Reset()
	if _, ok := gl.LastTail(); ok || gl.Pending() != 0 {
		t.Errorf("reset left state behind: pending=%d", gl.Pending())
	}
}
