package manager

import (
	"snake-arena/game/entity"
	"snake-arena/game/types"
)

// GrowthLedger remembers the cell the tail left on the last move and how many
// segments are owed from eating this cycle.
type GrowthLedger struct {
	lastTail types.Point
	hasTail  bool
	pending  int
}

func NewGrowthLedger() *GrowthLedger {
	return &GrowthLedger{}
}

// Record stores the pre-move tail position
func (gl *GrowthLedger) Record(tail types.Point) {
	gl.lastTail = tail
	gl.hasTail = true
}

func (gl *GrowthLedger) LastTail() (types.Point, bool) {
	return gl.lastTail, gl.hasTail
}

// Signal queues one growth
func (gl *GrowthLedger) Signal() {
	gl.pending++
}

func (gl *GrowthLedger) Pending() int {
	return gl.pending
}

// Drain appends one segment per pending signal and returns the appended cells.
// Without a recorded tail the segment goes on the current tail cell.
func (gl *GrowthLedger) Drain(snake *entity.Snake) []types.Point {
	if gl.pending == 0 {
		return nil
	}
	at := snake.Tail()
	if gl.hasTail {
		at = gl.lastTail
	}
	added := make([]types.Point, 0, gl.pending)
	for ; gl.pending > 0; gl.pending-- {
		snake.Grow(at)
		added = append(added, at)
	}
	return added
}

// Reset forgets both the tail record and any queued growth
func (gl *GrowthLedger) Reset() {
	*gl = GrowthLedger{}
}
