package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/signwalk/config"
)

// AnswerRecord is one answered quiz question, written to answers.csv.
type AnswerRecord struct {
	Session    string  `csv:"session"`
	ElapsedSec float64 `csv:"elapsed_sec"`
	Clock      string  `csv:"clock"`
	Kind       string  `csv:"sign_kind"`
	Question   string  `csv:"question"`
	Choice     int     `csv:"choice"`
	Correct    bool    `csv:"correct"`
	AnswerSec  float64 `csv:"answer_sec"`
	Streak     int     `csv:"streak"`
}

// SummaryRow is one line of the end-of-session summary. Kind is "all"
// for the overall row, otherwise a sign kind name.
type SummaryRow struct {
	Session       string  `csv:"session"`
	Kind          string  `csv:"kind"`
	Asked         int     `csv:"asked"`
	Correct       int     `csv:"correct"`
	Accuracy      float64 `csv:"accuracy"`
	AnswerSecMean float64 `csv:"answer_sec_mean"`
	AnswerSecStd  float64 `csv:"answer_sec_std"`
	AnswerSecP50  float64 `csv:"answer_sec_p50"`
	AnswerSecP90  float64 `csv:"answer_sec_p90"`
}

// OutputManager handles structured session output with CSV logging.
type OutputManager struct {
	dir         string
	answerFile  *os.File
	windowFile  *os.File
	summaryFile *os.File
	perfFile    *os.File

	// Track if headers have been written
	answerHeaderWritten  bool
	windowHeaderWritten  bool
	summaryHeaderWritten bool
	perfHeaderWritten    bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	// Create output directory
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	// Open answers.csv
	answerPath := filepath.Join(dir, "answers.csv")
	f, err := os.Create(answerPath)
	if err != nil {
		return nil, fmt.Errorf("creating answers.csv: %w", err)
	}
	om.answerFile = f

	// Open windows.csv
	windowPath := filepath.Join(dir, "windows.csv")
	f, err = os.Create(windowPath)
	if err != nil {
		om.answerFile.Close()
		return nil, fmt.Errorf("creating windows.csv: %w", err)
	}
	om.windowFile = f

	// Open summary.csv
	summaryPath := filepath.Join(dir, "summary.csv")
	f, err = os.Create(summaryPath)
	if err != nil {
		om.answerFile.Close()
		om.windowFile.Close()
		return nil, fmt.Errorf("creating summary.csv: %w", err)
	}
	om.summaryFile = f

	// Open perf.csv
	perfPath := filepath.Join(dir, "perf.csv")
	f, err = os.Create(perfPath)
	if err != nil {
		om.answerFile.Close()
		om.windowFile.Close()
		om.summaryFile.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteAnswer writes one answer record to answers.csv.
func (om *OutputManager) WriteAnswer(rec AnswerRecord) error {
	if om == nil {
		return nil
	}

	records := []AnswerRecord{rec}

	if !om.answerHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.answerFile); err != nil {
			return fmt.Errorf("writing answer: %w", err)
		}
		om.answerHeaderWritten = true
	} else {
		// Subsequent writes skip headers
		if err := gocsv.MarshalWithoutHeaders(records, om.answerFile); err != nil {
			return fmt.Errorf("writing answer: %w", err)
		}
	}

	return nil
}

// WriteWindow writes a window stats record to windows.csv.
func (om *OutputManager) WriteWindow(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}

	if !om.windowHeaderWritten {
		if err := gocsv.Marshal(records, om.windowFile); err != nil {
			return fmt.Errorf("writing window: %w", err)
		}
		om.windowHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.windowFile); err != nil {
			return fmt.Errorf("writing window: %w", err)
		}
	}

	return nil
}

// WriteSummary writes the end-of-session summary rows to summary.csv.
func (om *OutputManager) WriteSummary(rows []SummaryRow) error {
	if om == nil || len(rows) == 0 {
		return nil
	}

	if !om.summaryHeaderWritten {
		if err := gocsv.Marshal(rows, om.summaryFile); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
		om.summaryHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(rows, om.summaryFile); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}

	return nil
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, elapsedSec float64) error {
	if om == nil {
		return nil
	}

	csvRecord := stats.ToCSV(elapsedSec)
	records := []PerfStatsCSV{csvRecord}

	if !om.perfHeaderWritten {
		if err := gocsv.Marshal(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
		om.perfHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error

	if om.answerFile != nil {
		if err := om.answerFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if om.windowFile != nil {
		if err := om.windowFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if om.summaryFile != nil {
		if err := om.summaryFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if om.perfFile != nil {
		if err := om.perfFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
