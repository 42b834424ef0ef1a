package audio

import (
	"testing"
	"time"

	"github.com/vovakirdan/tri-arcade/internal/core"
)

func drain(t *testing.T, c core.Cue) int {
	t.Helper()
	s := CueStreamer(c, 0.5)
	if s == nil {
		t.Fatalf("CueStreamer(%s) = nil", c)
	}
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("%s sample %d out of range: %f", c, total+i, buf[i][0])
			}
		}
		total += n
		if !ok || n == 0 {
			return total
		}
		if total > sampleRate.N(5*time.Second) {
			t.Fatalf("%s streamer does not terminate", c)
		}
	}
}

func TestCueStreamersAreFinite(t *testing.T) {
	cues := []core.Cue{core.CueShoot, core.CueKill, core.CueAttack, core.CueWin, core.CueLose, core.CueTie}
	for _, c := range cues {
		t.Run(c.String(), func(t *testing.T) {
			var want time.Duration
			for _, n := range cueNotes[c] {
				want += n.duration
			}
			if got := drain(t, c); got != sampleRate.N(want) {
				t.Errorf("streamed %d samples, want %d", got, sampleRate.N(want))
			}
		})
	}
}

func TestKillAndAttackDiffer(t *testing.T) {
	kill, attack := cueNotes[core.CueKill], cueNotes[core.CueAttack]
	if len(kill) == len(attack) && kill[0] == attack[0] {
		t.Error("kill and attack cues should sound different")
	}
}

func TestCueNoneIsSilent(t *testing.T) {
	if CueStreamer(core.CueNone, 1) != nil {
		t.Error("CueNone should not produce a streamer")
	}
}

func TestUninitializedPlayerIsNoop(t *testing.T) {
	p := NewPlayer(1)
	p.Play(core.CueShoot)
	p.Close()
}

func TestMusicStreamerLoops(t *testing.T) {
	var bar time.Duration
	for _, n := range musicBar {
		bar += n.duration
	}
	want := 3 * sampleRate.N(bar)

	s := MusicStreamer(musicLevel)
	buf := make([][2]float64, 512)
	total := 0
	for total < want {
		n, ok := s.Stream(buf)
		if !ok || n == 0 {
			t.Fatalf("music ended after %d samples, want it to loop past %d", total, want)
		}
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("music sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
	}
}

func TestMusicCuesHaveNoStreamer(t *testing.T) {
	for _, c := range []core.Cue{core.CueMusicStart, core.CueMusicStop} {
		if CueStreamer(c, 1) != nil {
			t.Errorf("CueStreamer(%s) should be nil; the player handles music itself", c)
		}
	}
}

func TestUninitializedPlayerIgnoresMusic(t *testing.T) {
	p := NewPlayer(1)
	p.Play(core.CueMusicStart)
	if p.music != nil {
		t.Error("music started without an audio device")
	}
	p.Play(core.CueMusicStop)
}
