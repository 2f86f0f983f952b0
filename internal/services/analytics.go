package services

import (
	"sort"

	"github.com/Anujnegi157/evalease-screens/internal/models"
)

var scoreBuckets = []struct {
	label    string
	min, max float64
}{
	{"1-3", 1, 3},
	{"4-6", 4, 6},
	{"7-8", 7, 8},
	{"9-10", 9, 10},
}

type AnalyticsService interface {
	Compute(records []models.CallRecord) models.Analytics
}

type analyticsService struct{}

func NewAnalyticsService() AnalyticsService {
	return &analyticsService{}
}

// Compute implements AnalyticsService. Placeholder evaluations are not
// counted in the score distribution.
func (a *analyticsService) Compute(records []models.CallRecord) models.Analytics {
	result := models.Analytics{
		Monthly:           []models.MonthlyCalls{},
		ScoreDistribution: make([]models.ScoreBucket, len(scoreBuckets)),
	}
	for i, b := range scoreBuckets {
		result.ScoreDistribution[i] = models.ScoreBucket{Range: b.label}
	}

	candidates := map[string]struct{}{}
	monthly := map[string]int{}
	totalMinutes, timedCalls := 0, 0

	for _, r := range records {
		result.TotalCalls++
		switch r.Status {
		case models.CallCompleted:
			result.Completed++
		case models.CallScheduled:
			result.Scheduled++
		default:
			result.Missed++
		}

		key := r.CandidatePhone
		if key == "" || key == unknownCandidatePhone {
			key = "name:" + r.CandidateName
		}
		candidates[key] = struct{}{}

		if !r.DateTime.IsZero() {
			monthly[r.DateTime.UTC().Format("2006-01")]++
		}

		if r.DurationMinutes != nil {
			totalMinutes += *r.DurationMinutes
			timedCalls++
		}

		if r.Evaluation != nil && !r.Evaluation.IsPlaceholder() {
			if i := bucketIndex(r.Evaluation.Score); i >= 0 {
				result.ScoreDistribution[i].Count++
			}
		}
	}

	result.Candidates = len(candidates)
	if timedCalls > 0 {
		result.AverageDurationMinutes = float64(totalMinutes) / float64(timedCalls)
	}

	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	sort.Strings(months)
	for _, m := range months {
		result.Monthly = append(result.Monthly, models.MonthlyCalls{Month: m, Calls: monthly[m]})
	}

	return result
}

// bucketIndex rounds score to the nearest whole point before bucketing, so
// 8.5 counts as 9.
func bucketIndex(score float64) int {
	rounded := float64(int(score + 0.5))
	for i, b := range scoreBuckets {
		if rounded >= b.min && rounded <= b.max {
			return i
		}
	}
	return -1
}
