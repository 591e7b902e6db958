package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats captures gameplay activity over one telemetry window.
type WindowStats struct {
	WindowStart float64 `csv:"window_start"`
	WindowEnd   float64 `csv:"window_end"`
	Clock       string  `csv:"clock"`
	Encounters  int     `csv:"encounters"`
	Asked       int     `csv:"asked"`
	Correct     int     `csv:"correct"`
	Wrong       int     `csv:"wrong"`
	Accuracy    float64 `csv:"accuracy"`
	Distance    float64 `csv:"distance"`

	AnswerSecMean float64 `csv:"answer_sec_mean"`
	AnswerSecP50  float64 `csv:"answer_sec_p50"`
	AnswerSecP90  float64 `csv:"answer_sec_p90"`
}

// LogStats emits the window to the structured logger.
func (ws WindowStats) LogStats() {
	slog.Info("window stats",
		"window_start", ws.WindowStart,
		"window_end", ws.WindowEnd,
		"clock", ws.Clock,
		"encounters", ws.Encounters,
		"asked", ws.Asked,
		"correct", ws.Correct,
		"wrong", ws.Wrong,
		"accuracy", ws.Accuracy,
		"distance", ws.Distance,
		"answer_sec_mean", ws.AnswerSecMean,
		"answer_sec_p50", ws.AnswerSecP50,
		"answer_sec_p90", ws.AnswerSecP90,
	)
}

// Summary describes a sample of answer times.
type Summary struct {
	Count int
	Mean  float64
	Std   float64
	P50   float64
	P90   float64
}

// Summarize computes mean, standard deviation and percentiles over the
// samples. Returns the zero Summary for an empty slice.
func Summarize(samples []float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}
	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	s := Summary{
		Count: len(sorted),
		Mean:  stat.Mean(sorted, nil),
		P50:   stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:   stat.Quantile(0.9, stat.Empirical, sorted, nil),
	}
	// StdDev is NaN for a single sample
	if len(sorted) > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	return s
}
