package game

import (
	"sort"

	"github.com/segmentio/ksuid"

	"github.com/pthm-cable/signwalk/components"
	"github.com/pthm-cable/signwalk/telemetry"
)

// newSessionID returns a sortable unique ID for this play session.
func newSessionID() string {
	return ksuid.New().String()
}

// summaryRows builds the end-of-session summary: one overall row with the
// answer time distribution, then one row per sign kind in kind order.
func (g *Game) summaryRows() []telemetry.SummaryRow {
	all := telemetry.Summarize(g.collector.AllAnswerSeconds())

	rows := []telemetry.SummaryRow{{
		Session:       g.sessionID,
		Kind:          "all",
		Asked:         g.session.Asked,
		Correct:       g.session.Correct,
		Accuracy:      g.session.Accuracy(),
		AnswerSecMean: all.Mean,
		AnswerSecStd:  all.Std,
		AnswerSecP50:  all.P50,
		AnswerSecP90:  all.P90,
	}}

	kinds := make([]components.SignKind, 0, len(g.session.PerKind))
	for kind := range g.session.PerKind {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	for _, kind := range kinds {
		tally := g.session.PerKind[kind]
		accuracy := 0.0
		if tally.Asked > 0 {
			accuracy = float64(tally.Correct) / float64(tally.Asked)
		}
		rows = append(rows, telemetry.SummaryRow{
			Session:  g.sessionID,
			Kind:     kind.String(),
			Asked:    tally.Asked,
			Correct:  tally.Correct,
			Accuracy: accuracy,
		})
	}
	return rows
}
