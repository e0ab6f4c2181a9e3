// Package attendance aggregates attendance records into per-subject rates.
package attendance

import (
	"sort"

	"github.com/campuscompass/compass/internal/models"
)

// SubjectSummary is the attendance aggregate for one subject over the
// queried date range.
type SubjectSummary struct {
	Subject  string `json:"subject"`
	Held     int    `json:"held"`
	Attended int    `json:"attended"`
	// Rate is Attended/Held as a percentage. 0 when no classes were held.
	Rate float64 `json:"rate"`
}

// Summarize computes per-subject attendance rates from a set of records.
// Each record counts as one held class; present records also count as
// attended. Results are sorted by subject name for stable output.
func Summarize(records []models.AttendanceRecord) []SubjectSummary {
	bySubject := make(map[string]*SubjectSummary)
	for _, r := range records {
		s, ok := bySubject[r.Subject]
		if !ok {
			s = &SubjectSummary{Subject: r.Subject}
			bySubject[r.Subject] = s
		}
		s.Held++
		if r.Present {
			s.Attended++
		}
	}

	summaries := make([]SubjectSummary, 0, len(bySubject))
	for _, s := range bySubject {
		if s.Held > 0 {
			s.Rate = float64(s.Attended) / float64(s.Held) * 100
		}
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Subject < summaries[j].Subject })
	return summaries
}
