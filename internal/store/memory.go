package store

import (
	"sort"
	"strings"
	"sync"

	"github.com/uniwell/mindcare/internal/models"
)

// Memory is the single in-memory store behind every service. All platform
// state lives here for the lifetime of the process; a restart resets it.
// Reads hand out copies so callers never alias store-owned slices.
type Memory struct {
	mu           sync.RWMutex
	usersByEmail map[string]*models.User
	attempts     map[string]*models.Attempt
	results      []*models.Result
	counselors   []*models.Counselor
	appointments []*models.Appointment
	entries      map[string][]*models.JournalEntry // by user ID
	habits       map[string][]*models.Habit        // by user ID
	posts        []*models.Post
	events       []*models.Event
	resources    []*models.Resource
	engagement   map[string]int
}

func NewMemory() *Memory {
	return &Memory{
		usersByEmail: map[string]*models.User{},
		attempts:     map[string]*models.Attempt{},
		results:      []*models.Result{},
		counselors:   []*models.Counselor{},
		appointments: []*models.Appointment{},
		entries:      map[string][]*models.JournalEntry{},
		habits:       map[string][]*models.Habit{},
		posts:        []*models.Post{},
		events:       []*models.Event{},
		resources:    []*models.Resource{},
		engagement:   map[string]int{},
	}
}

// --- users ---

func (s *Memory) UpsertUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.usersByEmail[strings.ToLower(u.Email)] = &cp
	return nil
}

func (s *Memory) FindUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.usersByEmail[strings.ToLower(email)]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

// --- assessment attempts and results ---

func (s *Memory) PutAttempt(a *models.Attempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *a
	cp.Answers = make(map[string]int, len(a.Answers))
	for k, v := range a.Answers {
		cp.Answers[k] = v
	}
	s.attempts[a.ID] = &cp
	return nil
}

func (s *Memory) GetAttempt(id string) (*models.Attempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.attempts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	cp.Answers = make(map[string]int, len(a.Answers))
	for k, v := range a.Answers {
		cp.Answers[k] = v
	}
	return &cp, nil
}

func (s *Memory) DeleteAttempt(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.attempts, id)
	return nil
}

// DeleteAttemptsForUser clears any in-progress attempts the user has for
// the given assessment. Starting over always begins from a blank sheet.
func (s *Memory) DeleteAttemptsForUser(userID, assessmentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, a := range s.attempts {
		if a.UserID == userID && a.AssessmentID == assessmentID {
			delete(s.attempts, id)
		}
	}
	return nil
}

func (s *Memory) AddResult(r *models.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	cp.Recommendations = append([]string(nil), r.Recommendations...)
	cp.Answers = make(map[string]int, len(r.Answers))
	for k, v := range r.Answers {
		cp.Answers[k] = v
	}
	s.results = append(s.results, &cp)
	return nil
}

func (s *Memory) ListResults(assessmentID string) ([]*models.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Result, 0, len(s.results))
	for _, r := range s.results {
		if assessmentID == "" || r.AssessmentID == assessmentID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

// --- counselors and appointments ---

func (s *Memory) AddCounselor(c *models.Counselor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counselors = append(s.counselors, copyCounselor(c))
	return nil
}

func (s *Memory) GetCounselor(id string) (*models.Counselor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.counselors {
		if c.ID == id {
			return copyCounselor(c), nil
		}
	}
	return nil, nil
}

// ListCounselors returns counselors in stored order, optionally filtered
// by a case-insensitive substring of the area.
func (s *Memory) ListCounselors(areaFilter string) ([]*models.Counselor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(strings.TrimSpace(areaFilter))
	out := []*models.Counselor{}
	for _, c := range s.counselors {
		if needle == "" || strings.Contains(strings.ToLower(c.Area), needle) {
			out = append(out, copyCounselor(c))
		}
	}
	return out, nil
}

// MergeAvailability unions slot labels into the counselor's entry for the
// date, creating the entry if absent. The stored slot list is deduplicated
// and sorted so merges are commutative.
func (s *Memory) MergeAvailability(counselorID, date string, slots []string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.counselors {
		if c.ID != counselorID {
			continue
		}
		for i := range c.Availability {
			if c.Availability[i].Date == date {
				c.Availability[i].Slots = unionSlots(c.Availability[i].Slots, slots)
				return true, nil
			}
		}
		c.Availability = append(c.Availability, models.Availability{Date: date, Slots: unionSlots(nil, slots)})
		return true, nil
	}
	return false, nil
}

func (s *Memory) AddAppointment(a *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *a
	s.appointments = append(s.appointments, &cp)
	return nil
}

func (s *Memory) GetAppointment(id string) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.appointments {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Memory) SetAppointmentStatus(id string, status models.AppointmentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.appointments {
		if a.ID == id {
			a.Status = status
			return nil
		}
	}
	return nil
}

func (s *Memory) ListAppointments(userName string) ([]*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*models.Appointment{}
	for _, a := range s.appointments {
		if userName == "" || a.UserName == userName {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *Memory) ListAppointmentsForCounselor(counselorID string) ([]*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*models.Appointment{}
	for _, a := range s.appointments {
		if a.CounselorID == counselorID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

// HasActiveAppointment reports whether any pending or confirmed
// appointment already holds (counselor, date, slot).
func (s *Memory) HasActiveAppointment(counselorID, date, slot string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.appointments {
		if a.CounselorID == counselorID && a.Date == date && a.Slot == slot && a.Status.Active() {
			return true, nil
		}
	}
	return false, nil
}

// --- journal ---

func (s *Memory) AddEntry(e *models.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *e
	cp.Tags = append([]string(nil), e.Tags...)
	s.entries[e.UserID] = append([]*models.JournalEntry{&cp}, s.entries[e.UserID]...)
	return nil
}

func (s *Memory) ListEntries(userID string) ([]*models.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.JournalEntry, 0, len(s.entries[userID]))
	for _, e := range s.entries[userID] {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

// --- habits ---

func (s *Memory) AddHabit(h *models.Habit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *h
	s.habits[h.UserID] = append(s.habits[h.UserID], &cp)
	return nil
}

func (s *Memory) UpdateHabit(h *models.Habit) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.habits[h.UserID] {
		if existing.ID == h.ID {
			cp := *h
			s.habits[h.UserID][i] = &cp
			return true, nil
		}
	}
	return false, nil
}

func (s *Memory) DeleteHabit(userID, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.habits[userID]
	for i, h := range list {
		if h.ID == id {
			s.habits[userID] = append(list[:i], list[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *Memory) ListHabits(userID string) ([]*models.Habit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Habit, 0, len(s.habits[userID]))
	for _, h := range s.habits[userID] {
		cp := *h
		out = append(out, &cp)
	}
	return out, nil
}

func (s *Memory) GetHabit(userID, id string) (*models.Habit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, h := range s.habits[userID] {
		if h.ID == id {
			cp := *h
			return &cp, nil
		}
	}
	return nil, nil
}

// --- community ---

func (s *Memory) AddPost(p *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]*models.Post{copyPost(p)}, s.posts...)
	return nil
}

func (s *Memory) ListPosts() ([]*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, copyPost(p))
	}
	return out, nil
}

func (s *Memory) LikePost(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.ID == id {
			p.Likes++
			return true, nil
		}
	}
	return false, nil
}

func (s *Memory) AddComment(postID string, c *models.Comment) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.ID == postID {
			cp := *c
			p.Comments = append(p.Comments, cp)
			return true, nil
		}
	}
	return false, nil
}

func (s *Memory) AddEvent(e *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *e
	s.events = append(s.events, &cp)
	return nil
}

func (s *Memory) ListEvents() ([]*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Event, 0, len(s.events))
	for _, e := range s.events {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (s *Memory) ToggleEventRegistration(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if e.ID == id {
			e.Registered = !e.Registered
			return true, nil
		}
	}
	return false, nil
}

// --- resources ---

func (s *Memory) AddResource(r *models.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	s.resources = append(s.resources, &cp)
	return nil
}

func (s *Memory) ListResources() ([]*models.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Resource, 0, len(s.resources))
	for _, r := range s.resources {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

// --- engagement counters ---

func (s *Memory) BumpEngagement(feature string) {
	s.mu.Lock()
	s.engagement[feature]++
	s.mu.Unlock()
}

func (s *Memory) EngagementCounts() (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int, len(s.engagement))
	for k, v := range s.engagement {
		out[k] = v
	}
	return out, nil
}

// --- helpers ---

func copyCounselor(c *models.Counselor) *models.Counselor {
	cp := *c
	cp.Specializations = append([]string(nil), c.Specializations...)
	cp.Availability = make([]models.Availability, len(c.Availability))
	for i, av := range c.Availability {
		cp.Availability[i] = models.Availability{Date: av.Date, Slots: append([]string(nil), av.Slots...)}
	}
	return &cp
}

func copyPost(p *models.Post) *models.Post {
	cp := *p
	cp.Tags = append([]string(nil), p.Tags...)
	cp.Comments = append([]models.Comment(nil), p.Comments...)
	return &cp
}

func unionSlots(existing, incoming []string) []string {
	set := map[string]struct{}{}
	for _, s := range existing {
		set[s] = struct{}{}
	}
	for _, s := range incoming {
		s = strings.TrimSpace(s)
		if s != "" {
			set[s] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
