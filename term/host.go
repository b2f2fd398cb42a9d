package term

import (
	"context"
	"time"

	"snake-arena/session"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// Run drives the session until the player quits or ctx is cancelled
func Run(ctx context.Context, screen tcell.Screen, s *session.Session, frame time.Duration, log *zap.Logger) {
	renderer := NewRenderer(screen)
	var controls Controls

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, eventChan, done)

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	renderer.Draw(s.Snapshot(), status(s))
	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-eventChan:
			switch controls.HandleEvent(ev) {
			case ActionQuit:
				log.Info("quit requested")
				return
			case ActionPause:
				s.TogglePause()
			case ActionToggleAutopilot:
				s.ToggleAutopilot()
			case ActionResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			s.Step(dt, controls.Take())
			renderer.Draw(s.Snapshot(), status(s))
		}
	}
}

// pollEvents forwards screen events until the screen is finalised or done closes
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func status(s *session.Session) Status {
	return Status{Autopilot: s.Autopilot(), Paused: s.Paused()}
}
