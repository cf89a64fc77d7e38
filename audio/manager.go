// Package audio synthesizes short interaction cues through the beep
// speaker. Initialization failure is non-fatal: a failed or disabled
// manager accepts every call as a no-op and the app runs silent.
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Manager owns the speaker and plays one-shot cues into a shared mixer.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
}

// NewManager creates an uninitialized manager.
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker with a 100 ms buffer and starts the mixer.
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

// Cleanup silences the mixer. beep offers no speaker close; clearing the
// streamers is the clean stop.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// ToggleMute flips the mute flag and returns the new state.
func (m *Manager) ToggleMute() bool {
	for {
		old := m.muted.Load()
		if m.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports the mute state for the status bar.
func (m *Manager) Muted() bool {
	return m.muted.Load()
}

// PlayChipChosen plays a bright upward sweep.
func (m *Manager) PlayChipChosen() {
	m.play(NewSweep(sampleRate, 440, 880, 120*time.Millisecond))
}

// PlayTraitToggle plays an upward sweep when selecting, downward when
// deselecting.
func (m *Manager) PlayTraitToggle(selected bool) {
	if selected {
		m.play(NewSweep(sampleRate, 330, 660, 90*time.Millisecond))
	} else {
		m.play(NewSweep(sampleRate, 660, 330, 90*time.Millisecond))
	}
}

// PlayShuffle plays a short noise burst.
func (m *Manager) PlayShuffle() {
	m.play(NewNoiseBurst(sampleRate, 150*time.Millisecond))
}

// PlayZoomReset plays a square tick.
func (m *Manager) PlayZoomReset() {
	m.play(NewTick(sampleRate, 660, 40*time.Millisecond))
}

// PlayEmptyFilter plays a low buzz when a filter intersection comes back
// empty.
func (m *Manager) PlayEmptyFilter() {
	m.play(NewBuzz(sampleRate, 120, 180*time.Millisecond))
}

func (m *Manager) play(s beep.Streamer) {
	if m.muted.Load() {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}
