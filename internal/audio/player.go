// Package audio turns game cues into short synthesized tones.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tri-arcade/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player plays cues through a single speaker mixer.
// A Player whose Initialize failed (or was never called) stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl // Nil while no track plays
	volume      float64
	initialized bool
}

// musicLevel is the background track's volume relative to the cues.
const musicLevel = 0.4

// NewPlayer creates a player with the given master volume in [0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the audio device. Callers treat an error as "no sound".
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the tone for a cue. It never blocks on the device.
func (p *Player) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	switch c {
	case core.CueMusicStart:
		p.startMusic()
		return
	case core.CueMusicStop:
		p.stopMusic()
		return
	}
	s := CueStreamer(c, p.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.music = nil
	p.initialized = false
}

// startMusic adds the background track to the mixer unless it is playing.
// Callers hold p.mu.
func (p *Player) startMusic() {
	if p.music != nil {
		return
	}
	p.music = &beep.Ctrl{Streamer: MusicStreamer(p.volume * musicLevel)}
	speaker.Lock()
	p.mixer.Add(p.music)
	speaker.Unlock()
}

// stopMusic ends the background track; the mixer drops it on its next read.
// Callers hold p.mu.
func (p *Player) stopMusic() {
	if p.music == nil {
		return
	}
	speaker.Lock()
	p.music.Streamer = nil
	speaker.Unlock()
	p.music = nil
}

// note is one tone of a cue.
type note struct {
	freq     float64
	duration time.Duration
	square   bool
}

// cueNotes describes each cue as a short melody.
var cueNotes = map[core.Cue][]note{
	core.CueShoot:  {{freq: 1320, duration: 35 * time.Millisecond, square: true}},
	core.CueKill:   {{freq: 660, duration: 60 * time.Millisecond}, {freq: 990, duration: 70 * time.Millisecond}},
	core.CueAttack: {{freq: 110, duration: 120 * time.Millisecond, square: true}},
	core.CueWin:    {{freq: 523.25, duration: 90 * time.Millisecond}, {freq: 659.25, duration: 90 * time.Millisecond}, {freq: 783.99, duration: 160 * time.Millisecond}},
	core.CueLose:   {{freq: 392, duration: 140 * time.Millisecond}, {freq: 262, duration: 220 * time.Millisecond}},
	core.CueTie:    {{freq: 440, duration: 100 * time.Millisecond}, {freq: 440, duration: 100 * time.Millisecond}},
}

// musicBar is one bar of the background track, a low minor ostinato.
var musicBar = []note{
	{freq: 110, duration: 240 * time.Millisecond},
	{freq: 130.81, duration: 240 * time.Millisecond},
	{freq: 110, duration: 240 * time.Millisecond},
	{freq: 103.83, duration: 240 * time.Millisecond},
	{freq: 98, duration: 480 * time.Millisecond, square: true},
}

// CueStreamer builds a finite streamer for a cue, or nil for CueNone and
// unknown cues. The music cues have no streamer of their own.
func CueStreamer(c core.Cue, volume float64) beep.Streamer {
	notes, ok := cueNotes[c]
	if !ok {
		return nil
	}
	s := melody(notes)
	if s == nil {
		return nil
	}
	return withVolume(s, volume)
}

// MusicStreamer loops the background bar forever.
func MusicStreamer(volume float64) beep.Streamer {
	return withVolume(beep.Iterate(func() beep.Streamer {
		return melody(musicBar)
	}), volume)
}

func melody(notes []note) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := toneFor(n)
		if err != nil {
			return nil
		}
		parts = append(parts, beep.Take(sampleRate.N(n.duration), tone))
	}
	return beep.Seq(parts...)
}

func toneFor(n note) (beep.Streamer, error) {
	if n.square {
		return generators.SquareTone(sampleRate, n.freq)
	}
	return generators.SineTone(sampleRate, n.freq)
}

// withVolume scales a streamer linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

var _ core.CuePlayer = (*Player)(nil)
