package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const questionPayload = `{
  "questions": [
    {"skill": "Go", "text": "Explain goroutine scheduling.", "difficulty": "medium", "category": "concurrency", "expected_answer": "M:N scheduler, work stealing"},
    {"skill": "SQL", "text": "How does a B-tree index work?", "difficulty": "medium", "category": "indexing"}
  ]
}`

func TestParseQuestions(t *testing.T) {
	questions, err := parseQuestions(questionPayload)
	require.NoError(t, err)

	require.Len(t, questions, 2)
	assert.Equal(t, "Go", questions[0].Skill)
	assert.Equal(t, "Explain goroutine scheduling.", questions[0].Text)
	assert.Equal(t, "M:N scheduler, work stealing", questions[0].ExpectedAnswer)
	assert.Equal(t, "indexing", questions[1].Category)
	assert.Empty(t, questions[1].ExpectedAnswer)
}

func TestParseQuestions_FiltersIncompleteEntries(t *testing.T) {
	payload := `{
	  "questions": [
	    {"skill": "Go", "text": "Valid question", "difficulty": "easy", "category": "basics"},
	    {"skill": "", "text": "Missing skill", "difficulty": "easy", "category": "basics"},
	    {"skill": "Go", "text": "", "difficulty": "easy", "category": "basics"},
	    {"skill": "Go", "text": "Missing category", "difficulty": "easy", "category": ""}
	  ]
	}`

	questions, err := parseQuestions(payload)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Valid question", questions[0].Text)
}

func TestParseQuestions_CodeFences(t *testing.T) {
	fenced := "```json\n" + questionPayload + "\n```"

	questions, err := parseQuestions(fenced)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestParseQuestions_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "the model refuses to answer"},
		{"wrong shape", `{"items": []}`},
		{"questions not array", `{"questions": "nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseQuestions(tt.payload)
			assert.Error(t, err)
		})
	}
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`{"a":1}`))
}
