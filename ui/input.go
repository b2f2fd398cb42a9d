package ui

import (
	"snake-arena/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PollInput reads the held movement keys. Arrows and WASD both steer.
func PollInput() game.Input {
	return game.Input{
		Up:    rl.IsKeyDown(rl.KeyUp) || rl.IsKeyDown(rl.KeyW),
		Down:  rl.IsKeyDown(rl.KeyDown) || rl.IsKeyDown(rl.KeyS),
		Left:  rl.IsKeyDown(rl.KeyLeft) || rl.IsKeyDown(rl.KeyA),
		Right: rl.IsKeyDown(rl.KeyRight) || rl.IsKeyDown(rl.KeyD),
	}
}
