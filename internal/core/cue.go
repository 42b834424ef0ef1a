package core

// Cue names a sound effect a game wants played. Games only raise cues;
// how (and whether) they are heard is up to the platform.
type Cue int

const (
	CueNone Cue = iota
	CueShoot
	CueKill
	CueAttack
	CueWin
	CueLose
	CueTie
	CueMusicStart // Start the looping background track
	CueMusicStop
)

// String returns the symbolic name of the cue.
func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueKill:
		return "kill"
	case CueAttack:
		return "attack"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	case CueTie:
		return "tie"
	case CueMusicStart:
		return "music_start"
	case CueMusicStop:
		return "music_stop"
	default:
		return "none"
	}
}

// CuePlayer plays sound cues. Implementations must not block and must
// swallow playback failures.
type CuePlayer interface {
	Play(c Cue)
}

// MuteCues is a CuePlayer that drops every cue.
type MuteCues struct{}

// Play does nothing.
func (MuteCues) Play(Cue) {}
