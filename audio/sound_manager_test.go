package audio

import (
	"math"
	"testing"
	"time"

	"snake-arena/game"

	"github.com/gopxl/beep"
)

func TestToneGeneratorStaysInRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	gen := NewToneGenerator(rate, 440, 0.05)

	samples := make([][2]float64, 512)
	n, ok := gen.Stream(samples)
	if !ok || n != len(samples) {
		t.Fatalf("Stream = (%d, %v)", n, ok)
	}
	for i := 0; i < n; i++ {
		if math.Abs(samples[i][0]) > 0.25 || samples[i][0] != samples[i][1] {
			t.Fatalf("sample %d = %v", i, samples[i])
		}
	}
	if gen.Err() != nil {
		t.Errorf("Err() = %v", gen.Err())
	}
}

func TestToneGeneratorDecays(t *testing.T) {
	rate := beep.SampleRate(1000)
	gen := NewToneGenerator(rate, 250, 0.01)

	samples := make([][2]float64, 200)
	gen.Stream(samples)

	peak := func(from, to int) float64 {
		var m float64
		for _, s := range samples[from:to] {
			m = math.Max(m, math.Abs(s[0]))
		}
		return m
	}
	if early, late := peak(0, 20), peak(180, 200); late >= early {
		t.Errorf("tone did not decay: early %v, late %v", early, late)
	}
}

func TestTakeLimitsCueLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	cue := beep.Take(rate.N(10*time.Millisecond), NewToneGenerator(rate, 440, 0))

	total := 0
	buf := make([][2]float64, 128)
	for {
		n, ok := cue.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != rate.N(10*time.Millisecond) {
		t.Errorf("streamed %d samples", total)
	}
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager()
	// none of these may touch the speaker
	sm.Handle([]game.Event{{Kind: game.EventFoodEaten}, {Kind: game.EventGameOver}})
	sm.PlayEat()
	sm.PlayGameOver()
	sm.Cleanup()
	if sm.mixer.Len() != 0 {
		t.Errorf("mixer holds %d streamers", sm.mixer.Len())
	}
}
