package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/fadilmartias/interview-engine/internal/apperror"
	"github.com/fadilmartias/interview-engine/internal/model"
	"github.com/fadilmartias/interview-engine/internal/service"
	"github.com/pgvector/pgvector-go"
)

const avoidTopK = 10

type InterviewUsecase struct {
	interviews InterviewStore
	bank       QuestionBank
	gemini     service.GeminiServiceInterface
	questions  service.QuestionServiceInterface
}

func NewInterviewUsecase(interviews InterviewStore, bank QuestionBank, gemini service.GeminiServiceInterface, questions service.QuestionServiceInterface) *InterviewUsecase {
	return &InterviewUsecase{
		interviews: interviews,
		bank:       bank,
		gemini:     gemini,
		questions:  questions,
	}
}

// Create generates a fresh question set and persists the interview. The
// question list is immutable from here on; sessions only ever read it.
func (uc *InterviewUsecase) Create(ctx context.Context, ownerID string, skills []string, perSkill int, difficulty string, interviewContext string) (*model.Interview, error) {
	if len(skills) == 0 {
		return nil, apperror.Validation("at least one skill is required")
	}
	for _, skill := range skills {
		if strings.TrimSpace(skill) == "" {
			return nil, apperror.Validation("skills must not be blank")
		}
	}
	if perSkill < 1 {
		return nil, apperror.Validation("questions_per_skill must be at least 1")
	}
	if difficulty == "" {
		difficulty = "medium"
	}

	avoid := uc.previousQuestions(ctx, ownerID, skills, interviewContext)

	questions, err := uc.questions.Generate(ctx, skills, perSkill, difficulty, interviewContext, avoid)
	if err != nil {
		return nil, err
	}

	interview := &model.Interview{
		OwnerID:           ownerID,
		Skills:            skills,
		Difficulty:        difficulty,
		QuestionsPerSkill: perSkill,
		Context:           interviewContext,
		Questions:         questions,
		TotalQuestions:    len(questions),
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	if err := uc.interviews.Create(interview); err != nil {
		return nil, err
	}

	go uc.archiveQuestions(ownerID, questions)

	return interview, nil
}

func (uc *InterviewUsecase) Get(ownerID string, id string) (*model.Interview, error) {
	return uc.interviews.FindByID(id, ownerID)
}

func (uc *InterviewUsecase) List(ownerID string, page int, pageSize int) ([]model.Interview, int64, error) {
	return uc.interviews.FindByOwner(ownerID, page, pageSize)
}

// previousQuestions looks up the owner's nearest archived questions so the
// generator can be told what not to repeat. Bank trouble never blocks
// generation.
func (uc *InterviewUsecase) previousQuestions(ctx context.Context, ownerID string, skills []string, interviewContext string) []string {
	query := strings.Join(skills, ", ")
	if interviewContext != "" {
		query += "\n" + interviewContext
	}

	embedding, err := uc.gemini.GenerateEmbedding(ctx, query)
	if err != nil {
		log.Printf("Question bank lookup skipped, embedding failed: %v", err)
		return nil
	}

	records, err := uc.bank.SearchSimilar(ownerID, pgvector.NewVector(embedding), avoidTopK)
	if err != nil {
		log.Printf("Question bank lookup skipped, search failed: %v", err)
		return nil
	}

	texts := make([]string, 0, len(records))
	for _, record := range records {
		texts = append(texts, record.Text)
	}
	return texts
}

// archiveQuestions embeds and stores each generated question, best effort.
func (uc *InterviewUsecase) archiveQuestions(ownerID string, questions []model.Question) {
	ctx := context.Background()

	records := make([]model.QuestionRecord, 0, len(questions))
	for _, question := range questions {
		embedding, err := uc.gemini.GenerateEmbedding(ctx, question.Text)
		if err != nil {
			log.Printf("Skipping archive of question, embedding failed: %v", err)
			continue
		}
		records = append(records, model.QuestionRecord{
			OwnerID:   ownerID,
			Skill:     question.Skill,
			Text:      question.Text,
			Embedding: pgvector.NewVector(embedding),
			CreatedAt: time.Now(),
		})
	}

	if err := uc.bank.Add(records); err != nil {
		log.Printf("Question bank archive failed: %v", err)
	}
}
