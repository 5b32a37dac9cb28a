// Package scoring aggregates per-question grades into interview-level
// metrics. It is pure: no I/O, deterministic for a given input, and it is
// recomputed in full on every completion or replay so the output always
// reflects the evaluations currently stored.
package scoring

import (
	"sort"

	"github.com/fadilmartias/interview-engine/internal/model"
)

// ScoredQuestion pairs a question with the clamped-or-raw grade it received.
// Only answers that actually carry an evaluation participate in aggregation.
type ScoredQuestion struct {
	Question model.Question
	Score    float64
}

type Report struct {
	OverallScore       float64
	SkillBreakdown     []model.SkillScore
	CategoryBreakdown  []model.CategoryScore
	PerformanceMetrics model.PerformanceMetrics
}

// Clamp forces a raw grader score into [0,10].
func Clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

// Aggregate computes the full report. If the grader supplied an explicit
// overall score it wins (clamped); otherwise the overall is the mean of the
// clamped per-question scores. With zero scored questions every field is 0
// and the breakdowns are empty.
func Aggregate(scored []ScoredQuestion, graderOverall *float64) Report {
	scores := make([]float64, len(scored))
	for i, sq := range scored {
		scores[i] = Clamp(sq.Score)
	}

	overall := mean(scores)
	if graderOverall != nil {
		overall = Clamp(*graderOverall)
	}

	return Report{
		OverallScore:       overall,
		SkillBreakdown:     skillBreakdown(scored, scores),
		CategoryBreakdown:  categoryBreakdown(scored, scores),
		PerformanceMetrics: performanceMetrics(scores),
	}
}

func mean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// Groups keep first-seen order from the question list, not alphabetical.
func skillBreakdown(scored []ScoredQuestion, scores []float64) []model.SkillScore {
	var order []string
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i, sq := range scored {
		key := sq.Question.Skill
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] += scores[i]
		counts[key]++
	}

	out := make([]model.SkillScore, 0, len(order))
	for _, key := range order {
		out = append(out, model.SkillScore{
			Skill:         key,
			AverageScore:  sums[key] / float64(counts[key]),
			QuestionCount: counts[key],
		})
	}
	return out
}

func categoryBreakdown(scored []ScoredQuestion, scores []float64) []model.CategoryScore {
	var order []string
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i, sq := range scored {
		key := sq.Question.Category
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] += scores[i]
		counts[key]++
	}

	out := make([]model.CategoryScore, 0, len(order))
	for _, key := range order {
		out = append(out, model.CategoryScore{
			Category:      key,
			AverageScore:  sums[key] / float64(counts[key]),
			QuestionCount: counts[key],
		})
	}
	return out
}

func performanceMetrics(scores []float64) model.PerformanceMetrics {
	if len(scores) == 0 {
		return model.PerformanceMetrics{}
	}

	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Float64s(sorted)

	return model.PerformanceMetrics{
		MinScore:    sorted[0],
		MaxScore:    sorted[len(sorted)-1],
		MedianScore: median(sorted),
	}
}

// median expects an ascending-sorted, non-empty slice. Even length takes the
// mean of the two middle values.
func median(sorted []float64) float64 {
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
