package rps

import (
	"testing"

	"github.com/vovakirdan/tri-arcade/internal/core"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		player, opponent Move
		want             Outcome
	}{
		{Rock, Scissors, Win},
		{Scissors, Paper, Win},
		{Paper, Rock, Win},
		{Scissors, Rock, Lose},
		{Paper, Scissors, Lose},
		{Rock, Paper, Lose},
		{Rock, Rock, Tie},
		{Paper, Paper, Tie},
		{Scissors, Scissors, Tie},
	}
	for _, tt := range tests {
		t.Run(tt.player.String()+"-"+tt.opponent.String(), func(t *testing.T) {
			if got := Resolve(tt.player, tt.opponent); got != tt.want {
				t.Errorf("Resolve(%s, %s) = %s, want %s", tt.player, tt.opponent, got, tt.want)
			}
		})
	}
}

func TestCounterBeats(t *testing.T) {
	for _, m := range Moves {
		if !Counter(m).Beats(m) {
			t.Errorf("Counter(%s) = %s does not beat it", m, Counter(m))
		}
	}
}

func TestHardCountersLastMove(t *testing.T) {
	rng := core.NewRandom(1)
	want := map[Move]Move{Rock: Paper, Paper: Scissors, Scissors: Rock}
	for last, counter := range want {
		for range 50 {
			if got := OpponentMove(Hard, last, true, rng); got != counter {
				t.Fatalf("hard after %s = %s, want %s", last, got, counter)
			}
		}
	}
}

func TestNoPreviousMoveIsUniform(t *testing.T) {
	for _, d := range []Difficulty{Easy, Normal, Hard} {
		t.Run(d.String(), func(t *testing.T) {
			seen := map[Move]bool{}
			for _, v := range []float64{0.1, 0.5, 0.9} {
				seen[OpponentMove(d, Rock, false, core.NewSequence(v))] = true
			}
			if len(seen) != 3 {
				t.Errorf("first-round moves %v, want all three", seen)
			}
		})
	}
}

func TestNormalStrategy(t *testing.T) {
	// Below one half: uniform pick from the next value.
	if got := OpponentMove(Normal, Rock, true, core.NewSequence(0.2, 0.9)); got != Scissors {
		t.Errorf("normal random branch = %s, want scissors", got)
	}
	// At or above one half: repeat the player's last move.
	if got := OpponentMove(Normal, Paper, true, core.NewSequence(0.7)); got != Paper {
		t.Errorf("normal repeat branch = %s, want paper", got)
	}
}

func TestDifficultyParseAndCycle(t *testing.T) {
	if ParseDifficulty("hard") != Hard || ParseDifficulty("bogus") != Easy {
		t.Error("ParseDifficulty mismatch")
	}
	if Easy.Next() != Normal || Normal.Next() != Hard || Hard.Next() != Easy {
		t.Error("Next should cycle easy -> normal -> hard -> easy")
	}
}
