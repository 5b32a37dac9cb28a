package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/fadilmartias/interview-engine/internal/apperror"
	"github.com/fadilmartias/interview-engine/internal/config"
	"github.com/fadilmartias/interview-engine/internal/model"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const graderModel = "openai/gpt-4o-mini"

type QuestionEvaluation struct {
	QuestionIndex int
	Score         float64
	Feedback      string
	Strengths     []string
	Weaknesses    []string
}

// BatchEvaluation is the grader's verdict over a whole session. OverallScore
// is nil when the model omitted it; the engine then computes its own mean.
type BatchEvaluation struct {
	Evaluations     []QuestionEvaluation
	OverallScore    *float64
	Summary         string
	Recommendations []string
	Strengths       []string
	Weaknesses      []string
}

type GraderServiceInterface interface {
	Grade(ctx context.Context, questions []model.Question, answers []model.Answer) (*BatchEvaluation, error)
}

// GraderService scores a full answer batch in a single OpenRouter call.
type GraderService struct {
	APIKey string
	client *resty.Client
}

func NewGraderService() *GraderService {
	return &GraderService{
		APIKey: config.LoadOpenRouterConfig().APIKey,
		client: resty.New(),
	}
}

func (s *GraderService) Grade(ctx context.Context, questions []model.Question, answers []model.Answer) (*BatchEvaluation, error) {
	if len(answers) == 0 {
		return nil, apperror.Grading("no answers to grade", nil)
	}
	if len(questions) != len(answers) {
		log.Printf("Warning: grading %d answers against %d questions", len(answers), len(questions))
	}

	prompt := s.buildPrompt(questions, answers)

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": graderModel,
			"messages": []map[string]string{
				{"role": "system", "content": "You are a rigorous technical interviewer scoring a candidate's spoken answers."},
				{"role": "user", "content": prompt},
			},
		}).
		Post("https://openrouter.ai/api/v1/chat/completions")
	if err != nil {
		return nil, apperror.Grading("grading request failed", err)
	}

	content := gjson.Get(resp.String(), "choices.0.message.content").String()
	if content == "" {
		return nil, apperror.Grading("empty grading response from LLM", nil)
	}

	batch, err := parseBatchEvaluation(content)
	if err != nil {
		return nil, apperror.Grading("unparseable grading response", err)
	}
	return batch, nil
}

func (s *GraderService) buildPrompt(questions []model.Question, answers []model.Answer) string {
	var b strings.Builder

	b.WriteString("Score each answer from 0 to 10 against the question and, where given, the expected answer outline.\n\n")

	b.WriteString("QUESTIONS:\n")
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. [%s / %s] %s\n", i, q.Skill, q.Category, q.Text)
		if q.ExpectedAnswer != "" {
			fmt.Fprintf(&b, "   Expected: %s\n", q.ExpectedAnswer)
		}
	}

	b.WriteString("\nCANDIDATE ANSWERS (transcribed):\n")
	for _, a := range answers {
		fmt.Fprintf(&b, "Question %d: %s\nAnswer: %s\n\n", a.QuestionIndex, a.QuestionText, a.Transcription)
	}

	b.WriteString(`Return your answer STRICTLY in JSON format with this schema:
{
  "evaluations": [
    {
      "question_index": <int, matching the answer being scored>,
      "score": <float 0-10>,
      "feedback": "<specific feedback on this answer>",
      "strengths": ["<strength>"],
      "weaknesses": ["<weakness>"]
    }
  ],
  "overall_score": <float 0-10>,
  "summary": "<overall impression of the candidate>",
  "recommendations": ["<what to study or practice next>"],
  "interview_strengths": ["<strength across the interview>"],
  "interview_weaknesses": ["<weakness across the interview>"]
}
`)

	return b.String()
}

func parseBatchEvaluation(content string) (*BatchEvaluation, error) {
	text := stripCodeFences(content)

	evaluations := gjson.Get(text, "evaluations")
	if !evaluations.Exists() || !evaluations.IsArray() {
		return nil, fmt.Errorf("no evaluations array in grader output")
	}

	batch := &BatchEvaluation{
		Summary:         gjson.Get(text, "summary").String(),
		Recommendations: stringSlice(gjson.Get(text, "recommendations")),
		Strengths:       stringSlice(gjson.Get(text, "interview_strengths")),
		Weaknesses:      stringSlice(gjson.Get(text, "interview_weaknesses")),
	}

	if overall := gjson.Get(text, "overall_score"); overall.Exists() {
		v := overall.Float()
		batch.OverallScore = &v
	}

	evaluations.ForEach(func(_, item gjson.Result) bool {
		batch.Evaluations = append(batch.Evaluations, QuestionEvaluation{
			QuestionIndex: int(item.Get("question_index").Int()),
			Score:         item.Get("score").Float(),
			Feedback:      item.Get("feedback").String(),
			Strengths:     stringSlice(item.Get("strengths")),
			Weaknesses:    stringSlice(item.Get("weaknesses")),
		})
		return true
	})

	return batch, nil
}

func stringSlice(result gjson.Result) []string {
	if !result.IsArray() {
		return nil
	}
	var out []string
	result.ForEach(func(_, item gjson.Result) bool {
		out = append(out, item.String())
		return true
	})
	return out
}
