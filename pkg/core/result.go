// Package core provides result types for scan operations
package core

import "time"

// ProbeResult represents the outcome of probing a single domain.
// Exactly one is produced per input domain; it is never mutated after creation.
type ProbeResult struct {
	Domain       string `json:"domain"`
	Matched      bool   `json:"matched"`
	Status       string `json:"status"` // "matched", "unmatched", "timeout", "error"
	HTTPCode     int    `json:"http_code,omitempty"`
	Server       string `json:"server,omitempty"` // Server header of the final response
	ResponseTime string `json:"response_time,omitempty"`
	Error        string `json:"error,omitempty"`
}

// ScanResult represents the complete result of a scan run
type ScanResult struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// Matched holds the positively classified domains in completion order
	Matched []string `json:"matched"`

	// Results holds every probe outcome (completion order)
	Results []*ProbeResult `json:"results,omitempty"`

	Summary ScanSummary `json:"summary"`
}

// ScanSummary contains summary statistics
type ScanSummary struct {
	TotalDomains     uint64        `json:"total_domains"`
	CompletedDomains uint64        `json:"completed_domains"`
	MatchedCount     uint64        `json:"matched_count"`
	TimeoutCount     uint64        `json:"timeout_count"`
	ErrorCount       uint64        `json:"error_count"`
	Duration         time.Duration `json:"duration"`
}

// Progress is a point-in-time snapshot of scan progress
type Progress struct {
	Completed    uint64 `json:"completed"`
	Total        uint64 `json:"total"`
	MatchedCount uint64 `json:"matched_count"`
}

// NewScanResult creates a new scan result
func NewScanResult(total int) *ScanResult {
	return &ScanResult{
		StartTime: time.Now(),
		Matched:   make([]string, 0),
		Results:   make([]*ProbeResult, 0, total),
		Summary: ScanSummary{
			TotalDomains: uint64(total),
		},
	}
}

// AddResult records a single probe outcome
func (sr *ScanResult) AddResult(result *ProbeResult) {
	sr.Results = append(sr.Results, result)
	sr.Summary.CompletedDomains++

	if result.Matched {
		sr.Matched = append(sr.Matched, result.Domain)
		sr.Summary.MatchedCount++
	}

	switch result.Status {
	case "timeout":
		sr.Summary.TimeoutCount++
	case "error":
		sr.Summary.ErrorCount++
	}
}

// Finalize stamps the end time and duration
func (sr *ScanResult) Finalize() {
	sr.EndTime = time.Now()
	sr.Summary.Duration = sr.EndTime.Sub(sr.StartTime)
}

// Snapshot returns the current progress counters
func (sr *ScanResult) Snapshot() Progress {
	return Progress{
		Completed:    sr.Summary.CompletedDomains,
		Total:        sr.Summary.TotalDomains,
		MatchedCount: sr.Summary.MatchedCount,
	}
}
