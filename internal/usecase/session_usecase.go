package usecase

import (
	"context"
	"log"
	"time"

	"github.com/fadilmartias/interview-engine/internal/apperror"
	"github.com/fadilmartias/interview-engine/internal/catalog"
	"github.com/fadilmartias/interview-engine/internal/model"
	"github.com/fadilmartias/interview-engine/internal/scoring"
	"github.com/fadilmartias/interview-engine/internal/service"
)

// SessionUsecase is the session state machine. Lifecycle is
// not_started -> in_progress -> completed, completed is terminal. Mutating
// operations on the same session are serialized by a per-session lock.
type SessionUsecase struct {
	interviews InterviewReader
	sessions   SessionStore
	answers    AnswerLedger
	grader     service.GraderServiceInterface
	locks      keyedMutex
}

func NewSessionUsecase(interviews InterviewReader, sessions SessionStore, answers AnswerLedger, grader service.GraderServiceInterface) *SessionUsecase {
	return &SessionUsecase{
		interviews: interviews,
		sessions:   sessions,
		answers:    answers,
		grader:     grader,
	}
}

// resolve loads a session and applies the uniform ownership check: a missing
// session and a session owned by someone else both come back as not found.
func (uc *SessionUsecase) resolve(sessionID string, ownerID string) (*model.Session, error) {
	session, err := uc.sessions.FindByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session.OwnerID != ownerID {
		return nil, apperror.NotFound("session not found")
	}
	return session, nil
}

func (uc *SessionUsecase) interviewFor(session *model.Session) (*model.Interview, error) {
	return uc.interviews.FindByID(session.InterviewID.String(), session.OwnerID)
}

// Start opens a session against an interview the caller owns. The cursor
// begins at 0 and the first question is returned alongside the session.
func (uc *SessionUsecase) Start(ownerID string, interviewID string) (*model.Session, *model.Question, error) {
	interview, err := uc.interviews.FindByID(interviewID, ownerID)
	if err != nil {
		return nil, nil, err
	}
	if interview.TotalQuestions == 0 {
		return nil, nil, apperror.InvalidState("interview has no questions")
	}

	now := time.Now()
	session := &model.Session{
		InterviewID:          interview.ID,
		OwnerID:              ownerID,
		CurrentQuestionIndex: 0,
		Status:               model.SessionStatusInProgress,
		StartedAt:            &now,
	}
	if err := uc.sessions.Create(session); err != nil {
		return nil, nil, err
	}

	first, err := catalog.FromInterview(interview).ByIndex(0)
	if err != nil {
		return nil, nil, err
	}
	return session, &first, nil
}

func (uc *SessionUsecase) Get(sessionID string, ownerID string) (*model.Session, error) {
	return uc.resolve(sessionID, ownerID)
}

func (uc *SessionUsecase) List(ownerID string, page int, pageSize int) ([]model.Session, int64, error) {
	return uc.sessions.FindByOwner(ownerID, page, pageSize)
}

// ListAnswers returns the session's ledger ordered by question index.
func (uc *SessionUsecase) ListAnswers(sessionID string, ownerID string) ([]model.Answer, error) {
	session, err := uc.resolve(sessionID, ownerID)
	if err != nil {
		return nil, err
	}
	return uc.answers.ListBySession(session.ID)
}

// CurrentQuestion returns the question under the cursor, or nil once the
// cursor has moved past the last index.
func (uc *SessionUsecase) CurrentQuestion(sessionID string, ownerID string) (*model.Question, error) {
	session, err := uc.resolve(sessionID, ownerID)
	if err != nil {
		return nil, err
	}
	interview, err := uc.interviewFor(session)
	if err != nil {
		return nil, err
	}

	cat := catalog.FromInterview(interview)
	if session.CurrentQuestionIndex >= cat.Len() {
		return nil, nil
	}
	question, err := cat.ByIndex(session.CurrentQuestionIndex)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// SubmitAnswer records (or re-records) a transcription for a question index.
// It never moves the cursor; a caller may re-answer the current question any
// number of times before advancing.
func (uc *SessionUsecase) SubmitAnswer(sessionID string, ownerID string, questionIndex int, transcription string) (*model.Answer, error) {
	unlock := uc.locks.lock(sessionID)
	defer unlock()

	session, err := uc.resolve(sessionID, ownerID)
	if err != nil {
		return nil, err
	}
	if session.Completed() {
		return nil, apperror.InvalidState("session already completed")
	}

	interview, err := uc.interviewFor(session)
	if err != nil {
		return nil, err
	}
	question, err := catalog.FromInterview(interview).ByIndex(questionIndex)
	if err != nil {
		return nil, err
	}

	return uc.answers.Upsert(session.ID, questionIndex, question.Text, transcription)
}

// Advance moves the cursor one question forward and returns the new current
// question, or nil once the question set is exhausted. The cursor never
// leaves [0, totalQuestions].
func (uc *SessionUsecase) Advance(sessionID string, ownerID string) (*model.Session, *model.Question, error) {
	unlock := uc.locks.lock(sessionID)
	defer unlock()

	session, err := uc.resolve(sessionID, ownerID)
	if err != nil {
		return nil, nil, err
	}
	if session.Completed() {
		return nil, nil, apperror.InvalidState("session already completed")
	}

	interview, err := uc.interviewFor(session)
	if err != nil {
		return nil, nil, err
	}
	cat := catalog.FromInterview(interview)

	if session.CurrentQuestionIndex < cat.Len() {
		session.CurrentQuestionIndex++
		if err := uc.sessions.Update(session); err != nil {
			return nil, nil, err
		}
	}

	if session.CurrentQuestionIndex >= cat.Len() {
		return session, nil, nil
	}
	question, err := cat.ByIndex(session.CurrentQuestionIndex)
	if err != nil {
		return nil, nil, err
	}
	return session, &question, nil
}

// Complete runs the one-shot grading pass and finalizes the session. Calling
// it on an already-completed session replays the stored evaluations without
// touching the grader, so at most one grading call ever succeeds per session.
// A grader failure leaves the session in progress and retriable.
func (uc *SessionUsecase) Complete(ctx context.Context, sessionID string, ownerID string) (*model.Session, []model.Answer, error) {
	unlock := uc.locks.lock(sessionID)
	defer unlock()

	session, err := uc.resolve(sessionID, ownerID)
	if err != nil {
		return nil, nil, err
	}

	answers, err := uc.answers.ListBySession(session.ID)
	if err != nil {
		return nil, nil, err
	}

	interview, err := uc.interviewFor(session)
	if err != nil {
		return nil, nil, err
	}
	cat := catalog.FromInterview(interview)

	if session.Completed() {
		uc.applyAggregates(session, cat, answers, nil)
		return session, answers, nil
	}

	if len(answers) == 0 {
		return nil, nil, apperror.InvalidState("no answers submitted")
	}
	if len(answers) != cat.Len() {
		log.Printf("Completing session %s with %d answers for %d questions", session.ID, len(answers), cat.Len())
	}

	batch, err := uc.grader.Grade(ctx, cat.Questions(), answers)
	if err != nil {
		return nil, nil, err
	}

	uc.attachEvaluations(answers, batch.Evaluations)

	now := time.Now()
	session.Status = model.SessionStatusCompleted
	session.CompletedAt = &now
	session.Summary = batch.Summary
	session.Recommendations = batch.Recommendations
	uc.applyAggregates(session, cat, answers, batch.OverallScore)

	if err := uc.sessions.CompleteWithAnswers(session, answers); err != nil {
		return nil, nil, err
	}
	return session, answers, nil
}

// attachEvaluations matches grader verdicts to answers by question index.
// Verdicts for indices nobody answered are dropped; the grader occasionally
// invents entries.
func (uc *SessionUsecase) attachEvaluations(answers []model.Answer, evaluations []service.QuestionEvaluation) {
	byIndex := make(map[int]int, len(answers))
	for i := range answers {
		byIndex[answers[i].QuestionIndex] = i
	}

	for _, eval := range evaluations {
		i, ok := byIndex[eval.QuestionIndex]
		if !ok {
			log.Printf("Dropping evaluation for unanswered question index %d", eval.QuestionIndex)
			continue
		}
		answers[i].Evaluation = &model.Evaluation{
			Score:      scoring.Clamp(eval.Score),
			Feedback:   eval.Feedback,
			Strengths:  eval.Strengths,
			Weaknesses: eval.Weaknesses,
		}
	}
}

// applyAggregates recomputes every interview-level metric from the answers'
// stored evaluations. It runs on the completion path and on every replay, so
// the metrics always agree with whatever evaluations are persisted.
func (uc *SessionUsecase) applyAggregates(session *model.Session, cat *catalog.Catalog, answers []model.Answer, graderOverall *float64) {
	var scored []scoring.ScoredQuestion
	for i := range answers {
		if !answers[i].Scored() {
			continue
		}
		question, err := cat.ByIndex(answers[i].QuestionIndex)
		if err != nil {
			log.Printf("Skipping answer with stale question index %d: %v", answers[i].QuestionIndex, err)
			continue
		}
		scored = append(scored, scoring.ScoredQuestion{
			Question: question,
			Score:    answers[i].Evaluation.Score,
		})
	}

	report := scoring.Aggregate(scored, graderOverall)
	session.OverallScore = report.OverallScore
	session.SkillBreakdown = report.SkillBreakdown
	session.CategoryBreakdown = report.CategoryBreakdown
	session.PerformanceMetrics = &report.PerformanceMetrics
}
