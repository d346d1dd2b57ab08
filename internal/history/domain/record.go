package domain

import (
	"errors"
	"time"
)

// HealthyLabel is the label written for a scan in which the classifier found no disease.
const HealthyLabel = "healthy"

// Record is one classification result for one submitted image. Immutable once written.
type Record struct {
	ID         string
	AccountID  string
	CreatedAt  time.Time
	Label      string
	Confidence float64 // percent, 0..100
}

// Validate validates the record for persistence.
func (r *Record) Validate() error {
	if r.ID == "" {
		return errors.New("id is required")
	}
	if r.AccountID == "" {
		return errors.New("account id is required")
	}
	if r.Label == "" {
		return errors.New("label is required")
	}
	if r.Confidence < 0 || r.Confidence > 100 {
		return errors.New("confidence must be between 0 and 100")
	}
	return nil
}

// IsHealthy reports whether the record marks a scan without disease.
func (r *Record) IsHealthy() bool {
	return r.Label == HealthyLabel
}

// Summary aggregates an account's history for the profile screen.
type Summary struct {
	TotalScans       int
	DiseasedScans    int
	HealthyScans     int
	DistinctDiseases int
	LastScanAt       time.Time // zero when there are no records
}

// Summarize computes a Summary over records.
func Summarize(records []*Record) Summary {
	var s Summary
	diseases := make(map[string]struct{})
	for _, r := range records {
		if r == nil {
			continue
		}
		s.TotalScans++
		if r.IsHealthy() {
			s.HealthyScans++
		} else {
			s.DiseasedScans++
			diseases[r.Label] = struct{}{}
		}
		if r.CreatedAt.After(s.LastScanAt) {
			s.LastScanAt = r.CreatedAt
		}
	}
	s.DistinctDiseases = len(diseases)
	return s
}
