package quiz

import "github.com/pthm-cable/signwalk/components"

// KindTally is the per-sign-kind score.
type KindTally struct {
	Asked   int
	Correct int
}

// Session tallies one play session's quiz results.
type Session struct {
	Asked      int
	Correct    int
	Wrong      int
	Streak     int // Current run of correct answers
	BestStreak int

	PerKind map[components.SignKind]KindTally
}

// NewSession returns an empty scoreboard.
func NewSession() *Session {
	return &Session{
		PerKind: make(map[components.SignKind]KindTally),
	}
}

// Record books one answered question.
func (s *Session) Record(kind components.SignKind, correct bool) {
	s.Asked++
	tally := s.PerKind[kind]
	tally.Asked++

	if correct {
		s.Correct++
		tally.Correct++
		s.Streak++
		if s.Streak > s.BestStreak {
			s.BestStreak = s.Streak
		}
	} else {
		s.Wrong++
		s.Streak = 0
	}
	s.PerKind[kind] = tally
}

// Accuracy returns the fraction of correct answers, 0 before any question.
func (s *Session) Accuracy() float64 {
	if s.Asked == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Asked)
}
