package services

import (
	"testing"
	"time"

	"github.com/uniwell/mindcare/internal/models"
)

type attemptStubStore struct {
	attempts   map[string]*models.Attempt
	results    []*models.Result
	engagement map[string]int
}

func newAttemptStubStore() *attemptStubStore {
	return &attemptStubStore{attempts: map[string]*models.Attempt{}, engagement: map[string]int{}}
}

func (s *attemptStubStore) PutAttempt(a *models.Attempt) error {
	cp := *a
	cp.Answers = map[string]int{}
	for k, v := range a.Answers {
		cp.Answers[k] = v
	}
	s.attempts[a.ID] = &cp
	return nil
}

func (s *attemptStubStore) GetAttempt(id string) (*models.Attempt, error) {
	a, ok := s.attempts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	cp.Answers = map[string]int{}
	for k, v := range a.Answers {
		cp.Answers[k] = v
	}
	return &cp, nil
}

func (s *attemptStubStore) DeleteAttempt(id string) error {
	delete(s.attempts, id)
	return nil
}

func (s *attemptStubStore) DeleteAttemptsForUser(userID, assessmentID string) error {
	for id, a := range s.attempts {
		if a.UserID == userID && a.AssessmentID == assessmentID {
			delete(s.attempts, id)
		}
	}
	return nil
}

func (s *attemptStubStore) AddResult(r *models.Result) error {
	cp := *r
	s.results = append(s.results, &cp)
	return nil
}

func (s *attemptStubStore) BumpEngagement(feature string) { s.engagement[feature]++ }

func newTestAssessmentService(store AttemptStore) *AssessmentService {
	svc := NewAssessmentService(store)
	svc.now = func() time.Time { return time.Unix(0, 0).UTC() }
	n := 0
	svc.idGen = func() string { n++; return "at" + itoa(n) }
	return svc
}

func TestAssessmentFullFlow(t *testing.T) {
	store := newAttemptStubStore()
	svc := newTestAssessmentService(store)

	attempt, err := svc.Start("u1", "phq9")
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if attempt.Index != 0 || len(attempt.Answers) != 0 {
		t.Fatalf("fresh attempt should be empty: %+v", attempt)
	}

	// total of 12 lands in the moderate band
	values := []int{2, 1, 2, 1, 2, 1, 1, 1, 1}
	for i, v := range values {
		if _, err := svc.Answer(attempt.ID, "q"+itoa(i+1), v); err != nil {
			t.Fatalf("Answer q%d returned error: %v", i+1, err)
		}
		if _, err := svc.Advance(attempt.ID); err != nil {
			t.Fatalf("Advance returned error: %v", err)
		}
	}

	result, err := svc.Submit(attempt.ID)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if result.Score != 12 {
		t.Fatalf("expected score 12, got %d", result.Score)
	}
	if result.Severity != models.SeverityModerate {
		t.Fatalf("expected moderate, got %s", result.Severity)
	}
	if len(result.Recommendations) == 0 || result.Message == "" {
		t.Fatalf("expected guidance on result: %+v", result)
	}
	if _, ok := store.attempts[attempt.ID]; ok {
		t.Fatalf("attempt should be deleted after submission")
	}
	if store.engagement["assessments"] != 1 {
		t.Fatalf("expected engagement bump, got %d", store.engagement["assessments"])
	}
}

func TestAssessmentSubmitIncomplete(t *testing.T) {
	store := newAttemptStubStore()
	svc := newTestAssessmentService(store)

	attempt, err := svc.Start("u1", "gad7")
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if _, err := svc.Answer(attempt.ID, "q1", 3); err != nil {
		t.Fatalf("Answer returned error: %v", err)
	}
	_, err = svc.Submit(attempt.ID)
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorInvalid || se.Message != MsgIncompleteAnswers {
		t.Fatalf("expected incomplete-answers error, got %v", err)
	}
	if _, stillThere := store.attempts[attempt.ID]; !stillThere {
		t.Fatalf("rejected submission must not consume the attempt")
	}
}

func TestAssessmentAnswerValidation(t *testing.T) {
	store := newAttemptStubStore()
	svc := newTestAssessmentService(store)

	attempt, err := svc.Start("u1", "phq9")
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if _, err := svc.Answer(attempt.ID, "q1", 7); err == nil {
		t.Fatalf("expected rejection of out-of-range value")
	}
	if _, err := svc.Answer(attempt.ID, "q99", 1); err == nil {
		t.Fatalf("expected rejection of unknown question")
	}
	if _, err := svc.Answer("missing", "q1", 1); err == nil {
		t.Fatalf("expected rejection of unknown attempt")
	}
	// overwriting an answer is allowed
	if _, err := svc.Answer(attempt.ID, "q1", 1); err != nil {
		t.Fatalf("first answer rejected: %v", err)
	}
	changed, err := svc.Answer(attempt.ID, "q1", 3)
	if err != nil {
		t.Fatalf("overwrite rejected: %v", err)
	}
	if changed.Answers["q1"] != 3 {
		t.Fatalf("expected overwritten value 3, got %d", changed.Answers["q1"])
	}
}

func TestAssessmentNavigationClamps(t *testing.T) {
	store := newAttemptStubStore()
	svc := newTestAssessmentService(store)

	attempt, _ := svc.Start("u1", "stress")
	back, err := svc.Retreat(attempt.ID)
	if err != nil {
		t.Fatalf("Retreat returned error: %v", err)
	}
	if back.Index != 0 {
		t.Fatalf("retreat on the first question should stay at 0, got %d", back.Index)
	}
	var last *models.Attempt
	for i := 0; i < 20; i++ {
		var err error
		if last, err = svc.Advance(attempt.ID); err != nil {
			t.Fatalf("Advance returned error: %v", err)
		}
	}
	if last.Index != 4 {
		t.Fatalf("advance past the end should clamp to 4, got %d", last.Index)
	}
}

func TestAssessmentRestartDiscardsAttempt(t *testing.T) {
	store := newAttemptStubStore()
	svc := newTestAssessmentService(store)

	first, _ := svc.Start("u1", "phq9")
	if _, err := svc.Answer(first.ID, "q1", 2); err != nil {
		t.Fatalf("Answer returned error: %v", err)
	}
	second, err := svc.Start("u1", "phq9")
	if err != nil {
		t.Fatalf("second Start returned error: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("restart should mint a new attempt")
	}
	if _, ok := store.attempts[first.ID]; ok {
		t.Fatalf("restart should discard the previous attempt")
	}
	if len(second.Answers) != 0 {
		t.Fatalf("restarted attempt should be blank")
	}
}

func TestAssessmentStartUnknownID(t *testing.T) {
	svc := newTestAssessmentService(newAttemptStubStore())
	if _, err := svc.Start("u1", "mmpi"); err == nil {
		t.Fatalf("expected not-found error for unknown assessment")
	}
}
