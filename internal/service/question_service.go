package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/fadilmartias/interview-engine/internal/apperror"
	"github.com/fadilmartias/interview-engine/internal/model"
	"github.com/tidwall/gjson"
)

const questionModel = "gemini-2.5-flash"

type QuestionServiceInterface interface {
	Generate(ctx context.Context, skills []string, perSkill int, difficulty string, interviewContext string, avoid []string) ([]model.Question, error)
}

// QuestionService generates interview question sets via Gemini.
type QuestionService struct {
	gemini GeminiServiceInterface
}

func NewQuestionService(gemini GeminiServiceInterface) *QuestionService {
	return &QuestionService{gemini: gemini}
}

func (s *QuestionService) Generate(ctx context.Context, skills []string, perSkill int, difficulty string, interviewContext string, avoid []string) ([]model.Question, error) {
	prompt := s.buildPrompt(skills, perSkill, difficulty, interviewContext, avoid)

	text, err := s.gemini.GenerateContent(ctx, questionModel, prompt)
	if err != nil {
		return nil, apperror.Generation("question generation failed", err)
	}

	questions, err := parseQuestions(text)
	if err != nil {
		return nil, apperror.Generation("question generation returned malformed output", err)
	}
	if len(questions) == 0 {
		return nil, apperror.Generation("question generation returned no usable questions", nil)
	}

	return questions, nil
}

func (s *QuestionService) buildPrompt(skills []string, perSkill int, difficulty string, interviewContext string, avoid []string) string {
	var b strings.Builder

	b.WriteString("You are a senior technical interviewer preparing an oral interview.\n")
	fmt.Fprintf(&b, "Generate exactly %d questions per skill for these skills: %s.\n", perSkill, strings.Join(skills, ", "))
	fmt.Fprintf(&b, "Difficulty level: %s.\n", difficulty)
	if interviewContext != "" {
		fmt.Fprintf(&b, "Additional context about the role or candidate: %s\n", interviewContext)
	}
	if len(avoid) > 0 {
		b.WriteString("\nDo NOT repeat or closely paraphrase any of these previously asked questions:\n")
		for _, q := range avoid {
			fmt.Fprintf(&b, "- %s\n", q)
		}
	}
	b.WriteString(`
Return your answer STRICTLY in JSON format with this schema:
{
  "questions": [
    {
      "skill": "<skill this question probes>",
      "text": "<the question, phrased for a spoken interview>",
      "difficulty": "<easy|medium|hard>",
      "category": "<topic category, e.g. concurrency, data modeling, system design>",
      "expected_answer": "<short outline of a strong answer>"
    }
  ]
}
`)

	return b.String()
}

// parseQuestions tolerates partially bad batches: entries missing a required
// field are dropped with a log line instead of failing the whole set.
func parseQuestions(text string) ([]model.Question, error) {
	content := stripCodeFences(text)

	parsed := gjson.Get(content, "questions")
	if !parsed.Exists() || !parsed.IsArray() {
		return nil, fmt.Errorf("no questions array in model output")
	}

	var questions []model.Question
	parsed.ForEach(func(_, item gjson.Result) bool {
		q := model.Question{
			Skill:          strings.TrimSpace(item.Get("skill").String()),
			Text:           strings.TrimSpace(item.Get("text").String()),
			Difficulty:     strings.TrimSpace(item.Get("difficulty").String()),
			Category:       strings.TrimSpace(item.Get("category").String()),
			ExpectedAnswer: strings.TrimSpace(item.Get("expected_answer").String()),
		}
		if q.Skill == "" || q.Text == "" || q.Difficulty == "" || q.Category == "" {
			log.Printf("Dropping generated question with missing fields: %s", item.Raw)
			return true
		}
		questions = append(questions, q)
		return true
	})

	return questions, nil
}

// stripCodeFences unwraps ```json blocks the model sometimes insists on.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
