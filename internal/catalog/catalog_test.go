package catalog

import (
	"testing"

	"github.com/fadilmartias/interview-engine/internal/apperror"
	"github.com/fadilmartias/interview-engine/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuestions() []model.Question {
	return []model.Question{
		{Skill: "Go", Text: "What is a goroutine?", Difficulty: "easy", Category: "concurrency"},
		{Skill: "SQL", Text: "What is an index?", Difficulty: "easy", Category: "indexing"},
	}
}

func TestCatalog_Len(t *testing.T) {
	assert.Equal(t, 2, New(testQuestions()).Len())
	assert.Equal(t, 0, New(nil).Len())
}

func TestCatalog_ByIndex(t *testing.T) {
	cat := New(testQuestions())

	question, err := cat.ByIndex(0)
	require.NoError(t, err)
	assert.Equal(t, "Go", question.Skill)

	question, err = cat.ByIndex(1)
	require.NoError(t, err)
	assert.Equal(t, "SQL", question.Skill)
}

func TestCatalog_ByIndexOutOfRange(t *testing.T) {
	cat := New(testQuestions())

	for _, i := range []int{-1, 2, 100} {
		_, err := cat.ByIndex(i)
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindOutOfRange))
	}
}

func TestCatalog_QuestionsReturnsCopy(t *testing.T) {
	cat := New(testQuestions())

	qs := cat.Questions()
	qs[0].Text = "mutated"

	original, err := cat.ByIndex(0)
	require.NoError(t, err)
	assert.Equal(t, "What is a goroutine?", original.Text)
}
