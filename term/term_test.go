package term

import (
	"strings"
	"testing"
	"time"

	"snake-arena/game"
	"snake-arena/game/types"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 20)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestCellOriginFlipsRows(t *testing.T) {
	grid := types.DefaultGrid()
	tests := []struct {
		p        types.Point
		col, row int
	}{
		{types.Point{X: 0, Y: 0}, 1, 11},
		{types.Point{X: 0, Y: 9}, 1, 2},
		{types.Point{X: 9, Y: 9}, 19, 2},
		{types.Point{X: 3, Y: 4}, 7, 7},
	}
	for _, tt := range tests {
		col, row := CellOrigin(tt.p, grid)
		if col != tt.col || row != tt.row {
			t.Errorf("CellOrigin(%v) = (%d,%d), want (%d,%d)", tt.p, col, row, tt.col, tt.row)
		}
	}
}

func TestDrawPlacesEntities(t *testing.T) {
	screen := newScreen(t)
	cfg := game.DefaultConfig()
	cfg.Seed = 1
	g := game.NewGame(cfg)

	NewRenderer(screen).Draw(g.Snapshot(), Status{Autopilot: true})

	headCol, headRow := CellOrigin(types.Point{X: 3, Y: 3}, cfg.Grid)
	if runeAt(screen, headCol, headRow) != '█' || runeAt(screen, headCol+1, headRow) != '█' {
		t.Error("head not drawn two columns wide")
	}
	tailCol, tailRow := CellOrigin(types.Point{X: 3, Y: 2}, cfg.Grid)
	if runeAt(screen, tailCol, tailRow) != '▓' {
		t.Error("segment not drawn below the head")
	}
	if runeAt(screen, 0, hudRows) != '┌' || runeAt(screen, cfg.Grid.Width*cellWidth+1, hudRows+cfg.Grid.Height+1) != '┘' {
		t.Error("border corners missing")
	}

	var hud strings.Builder
	for x := 0; x < 40; x++ {
		hud.WriteRune(runeAt(screen, x, 0))
	}
	if !strings.Contains(hud.String(), "Round 1") || !strings.Contains(hud.String(), "[autopilot]") {
		t.Errorf("hud = %q", hud.String())
	}
}

func TestControlsLatchLastPress(t *testing.T) {
	var c Controls
	if c.Take() != (game.Input{}) {
		t.Fatal("fresh controls should hold nothing")
	}

	c.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	c.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	if got := c.Take(); got != game.Hold(types.Right) {
		t.Errorf("Take = %+v, want right", got)
	}
	if c.Take() != (game.Input{}) {
		t.Error("press consumed twice")
	}
}

func TestControlsActions(t *testing.T) {
	tests := []struct {
		ev   tcell.Event
		want Action
	}{
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), ActionPause},
		{tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone), ActionToggleAutopilot},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), ActionNone},
		{tcell.NewEventResize(80, 24), ActionResize},
	}
	for _, tt := range tests {
		var c Controls
		if got := c.HandleEvent(tt.ev); got != tt.want {
			t.Errorf("HandleEvent(%T) = %v, want %v", tt.ev, got, tt.want)
		}
	}
}

func TestPollEventsStopsWhenHostReturns(t *testing.T) {
	screen := newScreen(t)
	events := make(chan tcell.Event) // nobody reads once the host is gone
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		pollEvents(screen, events, done)
		close(exited)
	}()

	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	close(done)

	select {
	case <-exited:
	case <-time.After(2 * time.Second):
		t.Fatal("event pump still blocked after the host returned")
	}
}
