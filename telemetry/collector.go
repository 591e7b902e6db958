// Package telemetry provides session stats collection, perf timing, and
// CSV/YAML output.
package telemetry

// Collector accumulates gameplay events within time windows and produces
// WindowStats. It also keeps the lifetime answer-time samples for the
// end-of-session summary.
type Collector struct {
	windowSec      float64
	windowStartSec float64

	// Event counters for the current window
	encounters int
	asked      int
	correct    int
	wrong      int
	distance   float64
	answerSecs []float64

	// Lifetime samples
	allAnswerSecs []float64
}

// NewCollector creates a collector flushing every windowSec seconds.
func NewCollector(windowSec float64) *Collector {
	if windowSec <= 0 {
		windowSec = 5
	}
	return &Collector{windowSec: windowSec}
}

// RecordEncounter records the player entering a sign's trigger radius.
func (c *Collector) RecordEncounter() {
	c.encounters++
}

// RecordAnswer records one answered quiz question and how long it took.
func (c *Collector) RecordAnswer(correct bool, answerSec float64) {
	c.asked++
	if correct {
		c.correct++
	} else {
		c.wrong++
	}
	c.answerSecs = append(c.answerSecs, answerSec)
	c.allAnswerSecs = append(c.allAnswerSecs, answerSec)
}

// AddDistance accumulates walked distance in world units.
func (c *Collector) AddDistance(d float64) {
	if d > 0 {
		c.distance += d
	}
}

// ShouldFlush returns true once the current window has elapsed.
func (c *Collector) ShouldFlush(nowSec float64) bool {
	return nowSec-c.windowStartSec >= c.windowSec
}

// Flush produces a WindowStats for the closing window and resets the
// counters. clock is the in-game clock text at flush time.
func (c *Collector) Flush(nowSec float64, clock string) WindowStats {
	var accuracy float64
	if c.asked > 0 {
		accuracy = float64(c.correct) / float64(c.asked)
	}
	sum := Summarize(c.answerSecs)

	stats := WindowStats{
		WindowStart: c.windowStartSec,
		WindowEnd:   nowSec,
		Clock:       clock,
		Encounters:  c.encounters,
		Asked:       c.asked,
		Correct:     c.correct,
		Wrong:       c.wrong,
		Accuracy:    accuracy,
		Distance:    c.distance,

		AnswerSecMean: sum.Mean,
		AnswerSecP50:  sum.P50,
		AnswerSecP90:  sum.P90,
	}

	// Reset for next window
	c.windowStartSec = nowSec
	c.encounters = 0
	c.asked = 0
	c.correct = 0
	c.wrong = 0
	c.distance = 0
	c.answerSecs = c.answerSecs[:0]

	return stats
}

// AllAnswerSeconds returns every answer time recorded this session.
func (c *Collector) AllAnswerSeconds() []float64 {
	return c.allAnswerSecs
}
