package domain

import (
	"time"
)

// TestResult represents the outcome of validating a single fixture
type TestResult struct {
	Fixture   Fixture
	Succeeded bool          // Validator exited 0
	ExitCode  int           // -1 when the process did not exit normally
	Output    string        // Combined stdout/stderr of the validator
	Error     error         // Launch failure, signal or timeout
	Duration  time.Duration // Time taken to execute
}

// Verdict reports whether the observed outcome matches the fixture's expectation
func (r TestResult) Verdict() bool {
	return r.Succeeded == r.Fixture.Expect.Succeeds()
}

// RunSummary accumulates verdicts over a run
type RunSummary struct {
	Total  int
	Passed int
	Failed int
}

// Add records the verdict of one result
func (s *RunSummary) Add(r TestResult) {
	s.Total++
	if r.Verdict() {
		s.Passed++
	} else {
		s.Failed++
	}
}

// Empty reports whether no fixtures were run
func (s RunSummary) Empty() bool {
	return s.Total == 0
}

// PassedPercent is floor(passed/total*100), 0 for an empty run
func (s RunSummary) PassedPercent() int {
	return percent(s.Passed, s.Total)
}

// FailedPercent is floor(failed/total*100), 0 for an empty run
func (s RunSummary) FailedPercent() int {
	return percent(s.Failed, s.Total)
}

func percent(n, total int) int {
	if total <= 0 {
		return 0
	}
	return n * 100 / total
}

// RunMeta contains metadata about a persisted run
type RunMeta struct {
	Command         []string `json:"command"`
	BaseDir         string   `json:"base_dir"`
	Total           int      `json:"total"`
	Passed          int      `json:"passed"`
	Failed          int      `json:"failed"`
	PassedPercent   int      `json:"passed_percent"`
	FailedPercent   int      `json:"failed_percent"`
	Duration        string   `json:"duration"`
	DurationSeconds float64  `json:"duration_seconds"`
	Timestamp       string   `json:"timestamp"`
}

// ResultRecord is the persisted form of a TestResult
type ResultRecord struct {
	Name     string  `json:"name"`
	Path     string  `json:"path"`
	Expected bool    `json:"expected"`
	Actual   bool    `json:"actual"`
	Verdict  bool    `json:"verdict"`
	ExitCode int     `json:"exit_code"`
	Output   string  `json:"output,omitempty"`
	Error    string  `json:"error,omitempty"`
	Seconds  float64 `json:"duration_seconds"`
	Resolved bool    `json:"resolved,omitempty"` // Marked in the failure viewer
}

// RunRecord is the complete output structure for a persisted run
type RunRecord struct {
	Meta    RunMeta        `json:"meta"`
	Results []ResultRecord `json:"results"`
}

// Mismatches returns the records whose verdict is false, in run order
func (r *RunRecord) Mismatches() []ResultRecord {
	var out []ResultRecord
	for _, rec := range r.Results {
		if !rec.Verdict {
			out = append(out, rec)
		}
	}
	return out
}

// NewRunRecord builds the persisted form of a finished run
func NewRunRecord(command []string, baseDir string, results []TestResult, summary RunSummary, duration time.Duration, now time.Time) *RunRecord {
	record := &RunRecord{
		Meta: RunMeta{
			Command:         command,
			BaseDir:         baseDir,
			Total:           summary.Total,
			Passed:          summary.Passed,
			Failed:          summary.Failed,
			PassedPercent:   summary.PassedPercent(),
			FailedPercent:   summary.FailedPercent(),
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       now.Format(time.RFC3339),
		},
		Results: make([]ResultRecord, 0, len(results)),
	}

	for _, r := range results {
		rec := ResultRecord{
			Name:     r.Fixture.Name,
			Path:     r.Fixture.Path,
			Expected: r.Fixture.Expect.Succeeds(),
			Actual:   r.Succeeded,
			Verdict:  r.Verdict(),
			ExitCode: r.ExitCode,
			Output:   r.Output,
			Seconds:  r.Duration.Seconds(),
		}
		if r.Error != nil {
			rec.Error = r.Error.Error()
		}
		record.Results = append(record.Results, rec)
	}

	return record
}
