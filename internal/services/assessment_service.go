package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/uniwell/mindcare/internal/models"
)

// AttemptStore abstracts the state the assessment engine needs.
type AttemptStore interface {
	PutAttempt(a *models.Attempt) error
	GetAttempt(id string) (*models.Attempt, error)
	DeleteAttempt(id string) error
	DeleteAttemptsForUser(userID, assessmentID string) error
	AddResult(r *models.Result) error
	BumpEngagement(feature string)
}

// AssessmentService owns the catalog and the attempt lifecycle: select,
// answer, navigate, submit. Results are derived on submission, never
// stored on the attempt.
type AssessmentService struct {
	store   AttemptStore
	catalog map[string]models.Assessment
	order   []string
	now     func() time.Time
	idGen   func() string
}

func NewAssessmentService(store AttemptStore) *AssessmentService {
	svc := &AssessmentService{
		store:   store,
		catalog: map[string]models.Assessment{},
		now:     func() time.Time { return time.Now().UTC() },
		idGen:   func() string { return shortID(8) },
	}
	for _, a := range AssessmentCatalog() {
		if !ValidateRubric(a.Rubric, a.MaxScore()) {
			panic("assessment catalog: rubric for " + a.ID + " does not cover [0," + itoa(a.MaxScore()) + "]")
		}
		svc.catalog[a.ID] = a
		svc.order = append(svc.order, a.ID)
	}
	return svc
}

// Catalog lists assessments in their fixed order.
func (s *AssessmentService) Catalog() []models.Assessment {
	out := make([]models.Assessment, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.catalog[id])
	}
	return out
}

func (s *AssessmentService) Get(id string) (models.Assessment, bool) {
	a, ok := s.catalog[id]
	return a, ok
}

// Start begins a fresh attempt, discarding any prior in-progress attempt
// the user has for the same assessment.
func (s *AssessmentService) Start(userID, assessmentID string) (*models.Attempt, error) {
	if _, ok := s.catalog[assessmentID]; !ok {
		return nil, NewNotFoundError("assessment not found")
	}
	if err := s.store.DeleteAttemptsForUser(userID, assessmentID); err != nil {
		return nil, err
	}
	attempt := &models.Attempt{
		ID:           s.idGen(),
		UserID:       userID,
		AssessmentID: assessmentID,
		Answers:      map[string]int{},
		StartedAt:    s.now(),
	}
	if err := s.store.PutAttempt(attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// Answer records or overwrites the value for one question. The value
// must be one of the option values defined for that question.
func (s *AssessmentService) Answer(attemptID, questionID string, value int) (*models.Attempt, error) {
	attempt, assessment, err := s.load(attemptID)
	if err != nil {
		return nil, err
	}
	q, ok := findQuestion(assessment, questionID)
	if !ok {
		return nil, NewNotFoundError("question not found")
	}
	if !validOption(q, value) {
		return nil, NewInvalidError("value is not an option for this question")
	}
	attempt.Answers[questionID] = value
	if err := s.store.PutAttempt(attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// Advance moves to the next question; a no-op on the last one.
func (s *AssessmentService) Advance(attemptID string) (*models.Attempt, error) {
	return s.move(attemptID, 1)
}

// Retreat moves to the previous question; a no-op on the first one.
func (s *AssessmentService) Retreat(attemptID string) (*models.Attempt, error) {
	return s.move(attemptID, -1)
}

func (s *AssessmentService) move(attemptID string, delta int) (*models.Attempt, error) {
	attempt, assessment, err := s.load(attemptID)
	if err != nil {
		return nil, err
	}
	idx := attempt.Index + delta
	if idx < 0 {
		idx = 0
	}
	if last := len(assessment.Questions) - 1; idx > last {
		idx = last
	}
	attempt.Index = idx
	if err := s.store.PutAttempt(attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// Submit scores a completed attempt. Every question must be answered;
// an incomplete attempt is rejected rather than under-counted.
func (s *AssessmentService) Submit(attemptID string) (*models.Result, error) {
	attempt, assessment, err := s.load(attemptID)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, q := range assessment.Questions {
		v, ok := attempt.Answers[q.ID]
		if !ok {
			return nil, NewInvalidError(MsgIncompleteAnswers)
		}
		total += v
	}
	band := EvaluateRubric(assessment.Rubric, total)
	result := &models.Result{
		ID:              s.idGen(),
		UserID:          attempt.UserID,
		AssessmentID:    assessment.ID,
		Answers:         attempt.Answers,
		Score:           total,
		Severity:        band.Severity,
		Message:         band.Message,
		Recommendations: append([]string(nil), band.Recommendations...),
		TakenAt:         s.now(),
	}
	if err := s.store.AddResult(result); err != nil {
		return nil, err
	}
	if err := s.store.DeleteAttempt(attempt.ID); err != nil {
		return nil, err
	}
	s.store.BumpEngagement("assessments")
	return result, nil
}

// Abandon clears the attempt and returns the user to the catalog.
func (s *AssessmentService) Abandon(attemptID string) error {
	return s.store.DeleteAttempt(attemptID)
}

func (s *AssessmentService) load(attemptID string) (*models.Attempt, models.Assessment, error) {
	attempt, err := s.store.GetAttempt(attemptID)
	if err != nil {
		return nil, models.Assessment{}, err
	}
	if attempt == nil {
		return nil, models.Assessment{}, NewNotFoundError("attempt not found")
	}
	assessment, ok := s.catalog[attempt.AssessmentID]
	if !ok {
		return nil, models.Assessment{}, NewNotFoundError("assessment not found")
	}
	return attempt, assessment, nil
}

func findQuestion(a models.Assessment, id string) (models.Question, bool) {
	for _, q := range a.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return models.Question{}, false
}

func validOption(q models.Question, value int) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

func shortID(n int) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
}
