package rps

import (
	"github.com/vovakirdan/tri-arcade/internal/core"
	"github.com/vovakirdan/tri-arcade/internal/registry"
)

// RecordBestStreak is the records key for the best streak.
const RecordBestStreak = "best_streak"

// Round is the result of one played round.
type Round struct {
	Player   Move
	Opponent Move
	Outcome  Outcome
	NewBest  bool // The round set a new best streak
}

// Session tracks streaks across rounds.
type Session struct {
	Difficulty Difficulty
	Streak     int
	Best       int
	Wins       int
	Losses     int
	Ties       int

	last    Move
	hasLast bool
	rng     core.Random
	store   registry.Persistence
	gameID  string
	saveErr error
}

// NewSession creates a session. store may be nil for an in-memory session.
func NewSession(gameID string, d Difficulty, rng core.Random, store registry.Persistence) *Session {
	s := &Session{Difficulty: d, rng: rng, store: store, gameID: gameID}
	s.loadBest()
	return s
}

// loadBest reads the persisted best streak; a missing or unreadable
// record counts as zero.
func (s *Session) loadBest() {
	if s.store == nil {
		return
	}
	best, ok, err := s.store.Record(s.gameID, RecordBestStreak)
	if err != nil || !ok {
		return
	}
	s.Best = best
}

// Play runs one round with the player's move.
func (s *Session) Play(m Move) Round {
	opp := OpponentMove(s.Difficulty, s.last, s.hasLast, s.rng)
	s.last, s.hasLast = m, true

	r := Round{Player: m, Opponent: opp, Outcome: Resolve(m, opp)}
	switch r.Outcome {
	case Win:
		s.Wins++
		s.Streak++
	case Lose:
		s.Losses++
		s.Streak = 0
	default:
		// A tie neither extends nor breaks the streak.
		s.Ties++
	}

	if s.Streak > s.Best {
		s.Best = s.Streak
		r.NewBest = true
		if s.store != nil {
			s.saveErr = s.store.SetRecord(s.gameID, RecordBestStreak, s.Best)
		}
	}
	return r
}

// LastMove returns the player's previous move, if any.
func (s *Session) LastMove() (Move, bool) {
	return s.last, s.hasLast
}

// SaveErr returns the last persistence failure, if any.
func (s *Session) SaveErr() error {
	return s.saveErr
}
