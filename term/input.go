package term

import (
	"snake-arena/game"
	"snake-arena/game/types"

	"github.com/gdamore/tcell/v2"
)

type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionToggleAutopilot
	ActionResize
)

// Controls turns key presses into game Input. Terminals report presses but
// not releases, so each press is held until the next cycle consumes it.
type Controls struct {
	pending types.Direction
	has     bool
}

// HandleEvent records steering keys and reports host actions
func (c *Controls) HandleEvent(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return ActionQuit
		case tcell.KeyUp:
			c.press(types.Up)
		case tcell.KeyDown:
			c.press(types.Down)
		case tcell.KeyLeft:
			c.press(types.Left)
		case tcell.KeyRight:
			c.press(types.Right)
		case tcell.KeyRune:
			return c.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		return ActionResize
	}
	return ActionNone
}

func (c *Controls) handleRune(r rune) Action {
	switch r {
	case 'q':
		return ActionQuit
	case 'p', ' ':
		return ActionPause
	case 't':
		return ActionToggleAutopilot
	case 'w', 'k':
		c.press(types.Up)
	case 's', 'j':
		c.press(types.Down)
	case 'a', 'h':
		c.press(types.Left)
	case 'd', 'l':
		c.press(types.Right)
	}
	return ActionNone
}

func (c *Controls) press(d types.Direction) {
	c.pending = d
	c.has = true
}

// Take returns the pending steer and clears it
func (c *Controls) Take() game.Input {
	if !c.has {
		return game.Input{}
	}
	c.has = false
	return game.Hold(c.pending)
}
