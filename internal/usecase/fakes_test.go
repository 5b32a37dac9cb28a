package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fadilmartias/interview-engine/internal/apperror"
	"github.com/fadilmartias/interview-engine/internal/model"
	"github.com/fadilmartias/interview-engine/internal/service"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// In-memory fakes mirroring the gorm repositories' semantics.

type fakeInterviewStore struct {
	mu         sync.Mutex
	interviews map[string]model.Interview
}

func newFakeInterviewStore() *fakeInterviewStore {
	return &fakeInterviewStore{interviews: make(map[string]model.Interview)}
}

func (f *fakeInterviewStore) Create(interview *model.Interview) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if interview.ID == uuid.Nil {
		interview.ID = uuid.New()
	}
	f.interviews[interview.ID.String()] = *interview
	return nil
}

func (f *fakeInterviewStore) FindByID(id string, ownerID string) (*model.Interview, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	interview, ok := f.interviews[id]
	if !ok || interview.OwnerID != ownerID {
		return nil, apperror.NotFound("interview not found")
	}
	cp := interview
	return &cp, nil
}

func (f *fakeInterviewStore) FindByOwner(ownerID string, page int, pageSize int) ([]model.Interview, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Interview
	for _, interview := range f.interviews {
		if interview.OwnerID == ownerID {
			out = append(out, interview)
		}
	}
	return out, int64(len(out)), nil
}

type fakeSessionStore struct {
	mu          sync.Mutex
	sessions    map[string]model.Session
	ledger      *fakeAnswerLedger
	completeErr error
}

func newFakeSessionStore(ledger *fakeAnswerLedger) *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]model.Session), ledger: ledger}
}

func (f *fakeSessionStore) Create(session *model.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	f.sessions[session.ID.String()] = *session
	return nil
}

func (f *fakeSessionStore) FindByID(id string) (*model.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[id]
	if !ok {
		return nil, apperror.NotFound("session not found")
	}
	cp := session
	return &cp, nil
}

func (f *fakeSessionStore) FindByOwner(ownerID string, page int, pageSize int) ([]model.Session, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Session
	for _, session := range f.sessions {
		if session.OwnerID == ownerID {
			out = append(out, session)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeSessionStore) Update(session *model.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.ID.String()] = *session
	return nil
}

func (f *fakeSessionStore) CompleteWithAnswers(session *model.Session, answers []model.Answer) error {
	if f.completeErr != nil {
		return f.completeErr
	}
	f.mu.Lock()
	f.sessions[session.ID.String()] = *session
	f.mu.Unlock()
	for i := range answers {
		f.ledger.put(answers[i])
	}
	return nil
}

func (f *fakeSessionStore) stored(id uuid.UUID) model.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sessions[id.String()]
}

type fakeAnswerLedger struct {
	mu      sync.Mutex
	answers map[string]map[int]model.Answer
}

func newFakeAnswerLedger() *fakeAnswerLedger {
	return &fakeAnswerLedger{answers: make(map[string]map[int]model.Answer)}
}

func (f *fakeAnswerLedger) Upsert(sessionID uuid.UUID, questionIndex int, questionText string, transcription string) (*model.Answer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	byIndex, ok := f.answers[sessionID.String()]
	if !ok {
		byIndex = make(map[int]model.Answer)
		f.answers[sessionID.String()] = byIndex
	}

	answer, exists := byIndex[questionIndex]
	if exists {
		answer.Transcription = transcription
		answer.AnsweredAt = time.Now()
	} else {
		answer = model.Answer{
			ID:            uuid.New(),
			SessionID:     sessionID,
			QuestionIndex: questionIndex,
			QuestionText:  questionText,
			Transcription: transcription,
			AnsweredAt:    time.Now(),
		}
	}
	byIndex[questionIndex] = answer
	cp := answer
	return &cp, nil
}

func (f *fakeAnswerLedger) ListBySession(sessionID uuid.UUID) ([]model.Answer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	byIndex := f.answers[sessionID.String()]
	out := make([]model.Answer, 0, len(byIndex))
	for _, answer := range byIndex {
		out = append(out, answer)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionIndex < out[j].QuestionIndex })
	return out, nil
}

func (f *fakeAnswerLedger) put(answer model.Answer) {
	f.mu.Lock()
	defer f.mu.Unlock()
	byIndex, ok := f.answers[answer.SessionID.String()]
	if !ok {
		byIndex = make(map[int]model.Answer)
		f.answers[answer.SessionID.String()] = byIndex
	}
	byIndex[answer.QuestionIndex] = answer
}

func (f *fakeAnswerLedger) count(sessionID uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.answers[sessionID.String()])
}

type fakeGrader struct {
	mu    sync.Mutex
	calls int
	batch *service.BatchEvaluation
	err   error
}

func (f *fakeGrader) Grade(ctx context.Context, questions []model.Question, answers []model.Answer) (*service.BatchEvaluation, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.batch, nil
}

func (f *fakeGrader) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeGemini struct {
	content    string
	contentErr error
	embedding  []float32
	embedErr   error
}

func (f *fakeGemini) GenerateContent(ctx context.Context, model string, prompt string) (string, error) {
	return f.content, f.contentErr
}

func (f *fakeGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	return f.embedding, f.embedErr
}

type fakeQuestionService struct {
	questions []model.Question
	err       error
	gotAvoid  []string
}

func (f *fakeQuestionService) Generate(ctx context.Context, skills []string, perSkill int, difficulty string, interviewContext string, avoid []string) ([]model.Question, error) {
	f.gotAvoid = avoid
	if f.err != nil {
		return nil, f.err
	}
	return f.questions, nil
}

type fakeQuestionBank struct {
	mu            sync.Mutex
	records       []model.QuestionRecord
	searchResults []model.QuestionRecord
	searchErr     error
	added         chan struct{}
}

func newFakeQuestionBank() *fakeQuestionBank {
	return &fakeQuestionBank{added: make(chan struct{}, 1)}
}

func (f *fakeQuestionBank) Add(records []model.QuestionRecord) error {
	f.mu.Lock()
	f.records = append(f.records, records...)
	f.mu.Unlock()
	select {
	case f.added <- struct{}{}:
	default:
	}
	return nil
}

func (f *fakeQuestionBank) SearchSimilar(ownerID string, embedding pgvector.Vector, topK int) ([]model.QuestionRecord, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searchResults, nil
}

func (f *fakeQuestionBank) stored() []model.QuestionRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.QuestionRecord, len(f.records))
	copy(out, f.records)
	return out
}
