package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gradingPayload = `{
  "evaluations": [
    {"question_index": 0, "score": 8.5, "feedback": "clear and correct", "strengths": ["depth"], "weaknesses": ["pacing"]},
    {"question_index": 1, "score": 4, "feedback": "missed the core idea", "strengths": [], "weaknesses": ["accuracy"]}
  ],
  "overall_score": 6.3,
  "summary": "promising but uneven",
  "recommendations": ["review indexing basics"],
  "interview_strengths": ["communication"],
  "interview_weaknesses": ["databases"]
}`

func TestParseBatchEvaluation(t *testing.T) {
	batch, err := parseBatchEvaluation(gradingPayload)
	require.NoError(t, err)

	require.Len(t, batch.Evaluations, 2)
	assert.Equal(t, 0, batch.Evaluations[0].QuestionIndex)
	assert.InDelta(t, 8.5, batch.Evaluations[0].Score, 1e-9)
	assert.Equal(t, "clear and correct", batch.Evaluations[0].Feedback)
	assert.Equal(t, []string{"depth"}, batch.Evaluations[0].Strengths)
	assert.Equal(t, []string{"pacing"}, batch.Evaluations[0].Weaknesses)

	require.NotNil(t, batch.OverallScore)
	assert.InDelta(t, 6.3, *batch.OverallScore, 1e-9)
	assert.Equal(t, "promising but uneven", batch.Summary)
	assert.Equal(t, []string{"review indexing basics"}, batch.Recommendations)
	assert.Equal(t, []string{"communication"}, batch.Strengths)
	assert.Equal(t, []string{"databases"}, batch.Weaknesses)
}

func TestParseBatchEvaluation_MissingOverallScore(t *testing.T) {
	payload := `{
	  "evaluations": [{"question_index": 0, "score": 7, "feedback": "fine"}],
	  "summary": "ok"
	}`

	batch, err := parseBatchEvaluation(payload)
	require.NoError(t, err)
	assert.Nil(t, batch.OverallScore)
}

func TestParseBatchEvaluation_CodeFences(t *testing.T) {
	batch, err := parseBatchEvaluation("```json\n" + gradingPayload + "\n```")
	require.NoError(t, err)
	assert.Len(t, batch.Evaluations, 2)
}

func TestParseBatchEvaluation_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "I cannot grade this"},
		{"no evaluations", `{"summary": "nothing here"}`},
		{"evaluations not array", `{"evaluations": {"question_index": 0}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseBatchEvaluation(tt.payload)
			assert.Error(t, err)
		})
	}
}
