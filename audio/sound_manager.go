package audio

import (
	"math"
	"sync"
	"time"

	"snake-arena/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays short cues for game events. Every method is a no-op
// until Initialize succeeds, so hosts without an audio device keep running.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything queued
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Handle maps the events of one Update onto cues
func (sm *SoundManager) Handle(events []game.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case game.EventFoodEaten:
			sm.PlayEat()
		case game.EventGameOver:
			sm.PlayGameOver()
		}
	}
}

// PlayEat plays a short rising blip
func (sm *SoundManager) PlayEat() {
	sm.play(beep.Seq(
		beep.Take(sampleRate.N(time.Millisecond*40), NewToneGenerator(sampleRate, 660, 0.02)),
		beep.Take(sampleRate.N(time.Millisecond*60), NewToneGenerator(sampleRate, 880, 0.04)),
	))
}

// PlayGameOver plays a falling low tone
func (sm *SoundManager) PlayGameOver() {
	sm.play(beep.Seq(
		beep.Take(sampleRate.N(time.Millisecond*150), NewToneGenerator(sampleRate, 220, 0.1)),
		beep.Take(sampleRate.N(time.Millisecond*300), NewToneGenerator(sampleRate, 110, 0.2)),
	))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// ToneGenerator is a sine tone with an exponential decay
type ToneGenerator struct {
	sr    beep.SampleRate
	freq  float64
	decay float64 // seconds to fall to 1/e
	pos   int
}

func NewToneGenerator(sr beep.SampleRate, freq, decay float64) *ToneGenerator {
	return &ToneGenerator{
		sr:    sr,
		freq:  freq,
		decay: decay,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := 1.0
		if g.decay > 0 {
			envelope = math.Exp(-t / g.decay)
		}
		sample := 0.25 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
