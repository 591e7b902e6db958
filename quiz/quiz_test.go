package quiz

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/signwalk/components"
)

// TestBankCoversAllKinds verifies every sign kind has at least two questions
// and every entry is well formed.
func TestBankCoversAllKinds(t *testing.T) {
	for kind := components.SignKind(0); kind < components.SignKindCount; kind++ {
		pool := Questions(kind)
		if len(pool) < 2 {
			t.Errorf("kind %q has %d questions, want >= 2", kind, len(pool))
		}
	}

	seen := make(map[string]bool)
	for _, q := range bank {
		if q.ID == "" || seen[q.ID] {
			t.Errorf("question ID %q empty or duplicated", q.ID)
		}
		seen[q.ID] = true
		if len(q.Options) < 2 {
			t.Errorf("%s: %d options", q.ID, len(q.Options))
		}
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			t.Errorf("%s: answer index %d out of range", q.ID, q.Answer)
		}
		if q.Prompt == "" || q.Explain == "" {
			t.Errorf("%s: missing prompt or explanation", q.ID)
		}
	}
}

// TestQuestionCheck verifies answer checking.
func TestQuestionCheck(t *testing.T) {
	q := Question{Options: []string{"a", "b", "c"}, Answer: 1}
	if q.Check(0) || !q.Check(1) || q.Check(2) {
		t.Error("Check does not match the answer index")
	}
}

// TestPickQuestion verifies kind filtering and seeded determinism.
func TestPickQuestion(t *testing.T) {
	for kind := components.SignKind(0); kind < components.SignKindCount; kind++ {
		q, ok := PickQuestion(rand.New(rand.NewSource(1)), kind)
		if !ok {
			t.Fatalf("no question for kind %q", kind)
		}
		if q.Kind != kind {
			t.Errorf("picked kind %q, want %q", q.Kind, kind)
		}
	}

	a, _ := PickQuestion(rand.New(rand.NewSource(9)), components.SignStop)
	b, _ := PickQuestion(rand.New(rand.NewSource(9)), components.SignStop)
	if a.ID != b.ID {
		t.Errorf("same seed picked %q then %q", a.ID, b.ID)
	}

	if _, ok := PickQuestion(rand.New(rand.NewSource(1)), components.SignKindCount); ok {
		t.Error("picked a question for an unknown kind")
	}
}

// TestSessionScoring verifies tallies, streaks, and accuracy.
func TestSessionScoring(t *testing.T) {
	s := NewSession()
	if s.Accuracy() != 0 {
		t.Errorf("fresh session accuracy = %f, want 0", s.Accuracy())
	}

	s.Record(components.SignStop, true)
	s.Record(components.SignStop, true)
	s.Record(components.SignYield, false)
	s.Record(components.SignCrosswalk, true)

	if s.Asked != 4 || s.Correct != 3 || s.Wrong != 1 {
		t.Errorf("tallies = %d/%d/%d, want 4/3/1", s.Asked, s.Correct, s.Wrong)
	}
	if s.Streak != 1 {
		t.Errorf("streak = %d, want 1 after the miss reset it", s.Streak)
	}
	if s.BestStreak != 2 {
		t.Errorf("best streak = %d, want 2", s.BestStreak)
	}
	if s.Accuracy() != 0.75 {
		t.Errorf("accuracy = %f, want 0.75", s.Accuracy())
	}

	stop := s.PerKind[components.SignStop]
	if stop.Asked != 2 || stop.Correct != 2 {
		t.Errorf("stop tally = %+v, want 2/2", stop)
	}
	yield := s.PerKind[components.SignYield]
	if yield.Asked != 1 || yield.Correct != 0 {
		t.Errorf("yield tally = %+v, want 1/0", yield)
	}
}
