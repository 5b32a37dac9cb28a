// Package catalog wraps an interview's fixed question list with bounds-checked
// access. The catalog is built once from the interview and never mutated.
package catalog

import (
	"github.com/fadilmartias/interview-engine/internal/apperror"
	"github.com/fadilmartias/interview-engine/internal/model"
)

type Catalog struct {
	questions []model.Question
}

func New(questions []model.Question) *Catalog {
	return &Catalog{questions: questions}
}

func FromInterview(interview *model.Interview) *Catalog {
	return New(interview.Questions)
}

func (c *Catalog) Len() int {
	return len(c.questions)
}

func (c *Catalog) ByIndex(i int) (model.Question, error) {
	if i < 0 || i >= len(c.questions) {
		return model.Question{}, apperror.OutOfRange("question index %d outside [0,%d)", i, len(c.questions))
	}
	return c.questions[i], nil
}

// Questions returns a copy so callers cannot mutate the catalog's backing
// slice.
func (c *Catalog) Questions() []model.Question {
	out := make([]model.Question, len(c.questions))
	copy(out, c.questions)
	return out
}
