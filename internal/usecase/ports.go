package usecase

import (
	"github.com/fadilmartias/interview-engine/internal/model"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// Persistence ports. The gorm repositories satisfy these; tests substitute
// in-memory fakes.

type InterviewReader interface {
	FindByID(id string, ownerID string) (*model.Interview, error)
}

type InterviewStore interface {
	InterviewReader
	Create(interview *model.Interview) error
	FindByOwner(ownerID string, page int, pageSize int) ([]model.Interview, int64, error)
}

type SessionStore interface {
	Create(session *model.Session) error
	FindByID(id string) (*model.Session, error)
	FindByOwner(ownerID string, page int, pageSize int) ([]model.Session, int64, error)
	Update(session *model.Session) error
	// CompleteWithAnswers must persist the session and its graded answers
	// atomically.
	CompleteWithAnswers(session *model.Session, answers []model.Answer) error
}

type AnswerLedger interface {
	Upsert(sessionID uuid.UUID, questionIndex int, questionText string, transcription string) (*model.Answer, error)
	ListBySession(sessionID uuid.UUID) ([]model.Answer, error)
}

type QuestionBank interface {
	Add(records []model.QuestionRecord) error
	SearchSimilar(ownerID string, embedding pgvector.Vector, topK int) ([]model.QuestionRecord, error)
}
