package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/signwalk/config"
	"github.com/pthm-cable/signwalk/quiz"
	"github.com/pthm-cable/signwalk/systems"
	"github.com/pthm-cable/signwalk/telemetry"
)

// activeQuiz is the state of the open quiz dialog.
type activeQuiz struct {
	entity      ecs.Entity
	question    quiz.Question
	openedAt    float64 // Simulation seconds when the dialog opened
	wasCaptured bool
	answered    bool
	choice      int
	correct     bool
}

// updateQuizProximity finds the nearest sign in trigger range and rearms
// signs the player has walked away from. Frozen while a dialog is open so
// the offer cannot switch signs mid-question.
func (g *Game) updateQuizProximity(cfg *config.Config) {
	if g.active != nil {
		return
	}

	radius := float32(cfg.Quiz.TriggerRadius)
	radiusSq := radius * radius

	var nearest ecs.Entity
	found := false
	bestSq := radiusSq

	query := g.signFilter.Query()
	for query.Next() {
		pos, sign := query.Get()

		dx := pos.X - g.player.X
		dz := pos.Z - g.player.Z
		dSq := dx*dx + dz*dz

		if dSq > radiusSq {
			// Out of range: a fresh approach offers the quiz again.
			sign.Asked = false
			continue
		}
		if sign.Asked {
			continue
		}
		if dSq <= bestSq {
			bestSq = dSq
			nearest = query.Entity()
			found = true
		}
	}

	if found && (!g.hasNearSign || nearest != g.nearSign) {
		g.collector.RecordEncounter()
	}
	g.nearSign = nearest
	g.hasNearSign = found
}

// openQuiz starts a quiz for the sign in range and releases the cursor so
// the dialog buttons are clickable.
func (g *Game) openQuiz() {
	if g.active != nil || !g.hasNearSign {
		return
	}

	_, sign := g.signMapper.Get(g.nearSign)
	question, ok := quiz.PickQuestion(g.rng, sign.Kind)
	if !ok {
		slog.Warn("no questions for sign kind", "kind", sign.Kind.String())
		sign.Asked = true
		g.hasNearSign = false
		return
	}

	g.active = &activeQuiz{
		entity:      g.nearSign,
		question:    question,
		openedAt:    g.elapsed,
		wasCaptured: g.captured,
	}
	g.setCaptured(false)
}

// answerQuiz books the chosen option. The sign stays spent until the
// player leaves its trigger radius.
func (g *Game) answerQuiz(choice int) {
	if g.active == nil || g.active.answered {
		return
	}

	q := g.active.question
	correct := q.Check(choice)
	answerSec := g.elapsed - g.active.openedAt

	g.active.answered = true
	g.active.choice = choice
	g.active.correct = correct

	g.session.Record(q.Kind, correct)
	g.collector.RecordAnswer(correct, answerSec)

	_, sign := g.signMapper.Get(g.active.entity)
	sign.Asked = true
	g.hasNearSign = false

	rec := telemetry.AnswerRecord{
		Session:    g.sessionID,
		ElapsedSec: g.elapsed,
		Clock:      systems.ClockText(g.clock.Phase),
		Kind:       q.Kind.String(),
		Question:   q.ID,
		Choice:     choice,
		Correct:    correct,
		AnswerSec:  answerSec,
		Streak:     g.session.Streak,
	}
	if err := g.outputManager.WriteAnswer(rec); err != nil {
		slog.Error("failed to write answer record", "error", err)
	}

	slog.Info("quiz answered",
		"question", q.ID,
		"kind", q.Kind.String(),
		"correct", correct,
		"answer_sec", answerSec,
		"streak", g.session.Streak,
	)
}

// closeQuiz dismisses the dialog and restores the cursor grab.
func (g *Game) closeQuiz() {
	if g.active == nil {
		return
	}
	recapture := g.active.wasCaptured
	g.active = nil
	if recapture {
		g.setCaptured(true)
	}
}
