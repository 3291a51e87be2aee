// Package sound synthesizes short audio cues for game events.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/penumbra/game"
)

const sampleRate = beep.SampleRate(48000)

// Manager owns the speaker and mixes cue streamers into it. A disabled
// Manager swallows every call, so call sites never branch on sound config.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewManager creates an uninitialized manager.
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences the mixer. beep has no speaker close, clearing the
// streamers is the best teardown available.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.mixer.Clear()
	m.initialized = false
}

func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.mixer.Add(s)
}

// PlayHit plays a short thud for landed attacks.
func (m *Manager) PlayHit() {
	m.play(beep.Take(sampleRate.N(time.Millisecond*80), newToneGenerator(sampleRate, 140, 0.25)))
}

// PlayMiss plays a faint swish.
func (m *Manager) PlayMiss() {
	m.play(beep.Take(sampleRate.N(time.Millisecond*60), newNoiseGenerator(sampleRate, 0.08)))
}

// PlayKill plays a two-note descending sting.
func (m *Manager) PlayKill() {
	m.play(beep.Seq(
		beep.Take(sampleRate.N(time.Millisecond*90), newToneGenerator(sampleRate, 660, 0.2)),
		beep.Take(sampleRate.N(time.Millisecond*120), newToneGenerator(sampleRate, 440, 0.2)),
	))
}

// PlayPickup plays a bright chirp.
func (m *Manager) PlayPickup() {
	m.play(beep.Take(sampleRate.N(time.Millisecond*70), newToneGenerator(sampleRate, 1320, 0.15)))
}

// PlayLevelUp plays an ascending three-note run.
func (m *Manager) PlayLevelUp() {
	m.play(beep.Seq(
		beep.Take(sampleRate.N(time.Millisecond*80), newToneGenerator(sampleRate, 523.25, 0.2)),
		beep.Take(sampleRate.N(time.Millisecond*80), newToneGenerator(sampleRate, 659.25, 0.2)),
		beep.Take(sampleRate.N(time.Millisecond*140), newToneGenerator(sampleRate, 783.99, 0.2)),
	))
}

// PlayHurt plays a low buzz when the player takes damage.
func (m *Manager) PlayHurt() {
	m.play(beep.Take(sampleRate.N(time.Millisecond*120), newToneGenerator(sampleRate, 90, 0.3)))
}

// PlayDefeat plays a slow falling rumble.
func (m *Manager) PlayDefeat() {
	m.play(beep.Take(sampleRate.N(time.Millisecond*600), newSweepGenerator(sampleRate, 220, 55, time.Millisecond*600)))
}

// PlayVictory plays a rising fanfare sweep.
func (m *Manager) PlayVictory() {
	m.play(beep.Seq(
		beep.Take(sampleRate.N(time.Millisecond*120), newToneGenerator(sampleRate, 523.25, 0.2)),
		beep.Take(sampleRate.N(time.Millisecond*120), newToneGenerator(sampleRate, 783.99, 0.2)),
		beep.Take(sampleRate.N(time.Millisecond*300), newSweepGenerator(sampleRate, 783.99, 1046.50, time.Millisecond*300)),
	))
}

// HandleEvents maps a turn's outcome onto cues. One cue per kind, the first
// occurrence wins, so a crowded turn doesn't stack identical sounds.
func (m *Manager) HandleEvents(events []game.Event) {
	seen := make(map[game.EventKind]bool, len(events))
	for _, ev := range events {
		if seen[ev.Kind] {
			continue
		}
		seen[ev.Kind] = true

		switch ev.Kind {
		case game.EventPlayerAttacked:
			m.PlayHit()
		case game.EventPlayerMissed:
			m.PlayMiss()
		case game.EventEnemyKilled:
			m.PlayKill()
		case game.EventPlayerPickedUp:
			m.PlayPickup()
		case game.EventPlayerLeveledUp:
			m.PlayLevelUp()
		case game.EventEnemyAttacked:
			m.PlayHurt()
		case game.EventRunEnded:
			if ev.Victory {
				m.PlayVictory()
			} else {
				m.PlayDefeat()
			}
		}
	}
}
