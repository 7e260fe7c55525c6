// Package planner derives the daily study plan and dashboard projections
// from the review record map. It never touches card content; pairing ids
// back to displayable cards is the caller's job.
package planner

import (
	"sort"
	"time"

	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/models"
	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/scheduler"
)

const (
	// NewCardQuota is the fixed number of new cards offered per day.
	NewCardQuota = 10
	// ReviewCardCap bounds session length no matter how many cards are due.
	ReviewCardCap = 50

	dueSoonWindowDays    = 3
	masteredIntervalDays = 21
	learningRepetitions  = 3
)

// Load is the bounded daily study plan.
type Load struct {
	NewCards    int `json:"newCards"`
	ReviewCards int `json:"reviewCards"`
	Total       int `json:"total"`
}

// Insights is a read-only projection of the record map for dashboards.
type Insights struct {
	TotalCards        int     `json:"totalCards"`
	DueToday          int     `json:"dueToday"`
	DueSoon           int     `json:"dueSoon"`  // due within 3 days, not yet due
	Mastered          int     `json:"mastered"` // interval beyond 21 days
	Learning          int     `json:"learning"` // fewer than 3 consecutive passes
	AverageEaseFactor float64 `json:"averageEaseFactor"`
}

// DueCardIDs returns the ids of all due records, sorted for stable output.
func DueCardIDs(records map[string]models.ReviewRecord, now time.Time) []string {
	var ids []string
	for id, rec := range records {
		if scheduler.IsDue(rec, now) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// StudyLoad computes today's plan: a fixed new-card quota plus the due
// count capped at ReviewCardCap.
func StudyLoad(records map[string]models.ReviewRecord, now time.Time) Load {
	reviews := len(DueCardIDs(records, now))
	if reviews > ReviewCardCap {
		reviews = ReviewCardCap
	}
	return Load{
		NewCards:    NewCardQuota,
		ReviewCards: reviews,
		Total:       NewCardQuota + reviews,
	}
}

// AggregateInsights summarizes the record map.
func AggregateInsights(records map[string]models.ReviewRecord, now time.Time) Insights {
	ins := Insights{TotalCards: len(records)}
	if len(records) == 0 {
		return ins
	}

	soonCutoff := now.Add(dueSoonWindowDays * 24 * time.Hour)
	var easeSum float64
	for _, rec := range records {
		switch {
		case scheduler.IsDue(rec, now):
			ins.DueToday++
		case !rec.NextReviewAt.After(soonCutoff):
			ins.DueSoon++
		}
		if rec.IntervalDays > masteredIntervalDays {
			ins.Mastered++
		}
		if rec.Repetitions < learningRepetitions {
			ins.Learning++
		}
		easeSum += rec.EaseFactor
	}
	ins.AverageEaseFactor = easeSum / float64(len(records))
	return ins
}
