package services

import (
	"strings"
	"time"

	"github.com/uniwell/mindcare/internal/models"
)

type JournalStore interface {
	AddEntry(e *models.JournalEntry) error
	ListEntries(userID string) ([]*models.JournalEntry, error)
	BumpEngagement(feature string)
}

var moodRank = map[models.Mood]int{
	models.MoodHappy:   5,
	models.MoodCalm:    4,
	models.MoodNeutral: 3,
	models.MoodSad:     2,
	models.MoodAnxious: 1,
}

// JournalService records dated reflections with a mood tag.
type JournalService struct {
	store JournalStore
	now   func() time.Time
	idGen func() string
}

func NewJournalService(store JournalStore) *JournalService {
	return &JournalService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		idGen: func() string { return "j" + shortID(7) },
	}
}

// Create validates and stores a new entry. Date defaults to today.
func (s *JournalService) Create(userID, date, title, content string, mood models.Mood, tags []string) (*models.JournalEntry, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, NewInvalidError("title and content required")
	}
	if _, ok := moodRank[mood]; !ok {
		return nil, NewInvalidError("unknown mood")
	}
	if date == "" {
		date = s.now().Format("2006-01-02")
	}
	entry := &models.JournalEntry{
		ID:        s.idGen(),
		UserID:    userID,
		Date:      date,
		Title:     strings.TrimSpace(title),
		Content:   content,
		Mood:      mood,
		Tags:      normalizeTags(tags),
		CreatedAt: s.now(),
	}
	if err := s.store.AddEntry(entry); err != nil {
		return nil, err
	}
	s.store.BumpEngagement("journal")
	return entry, nil
}

// List returns the user's entries, newest first.
func (s *JournalService) List(userID string) ([]*models.JournalEntry, error) {
	return s.store.ListEntries(userID)
}

// ForDate returns entries written on one calendar date.
func (s *JournalService) ForDate(userID, date string) ([]*models.JournalEntry, error) {
	all, err := s.store.ListEntries(userID)
	if err != nil {
		return nil, err
	}
	out := []*models.JournalEntry{}
	for _, e := range all {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

// MoodPoint is one day on the mood trend chart.
type MoodPoint struct {
	Date  string
	Value float64
}

// MoodTrend averages mood ordinals per date over the latest n entries,
// oldest date first. Happy ranks highest, anxious lowest.
func (s *JournalService) MoodTrend(userID string, n int) ([]MoodPoint, error) {
	entries, err := s.store.ListEntries(userID)
	if err != nil {
		return nil, err
	}
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	sums := map[string]int{}
	counts := map[string]int{}
	dates := []string{}
	for _, e := range entries {
		if counts[e.Date] == 0 {
			dates = append(dates, e.Date)
		}
		sums[e.Date] += moodRank[e.Mood]
		counts[e.Date]++
	}
	// entries arrive newest first; the chart reads left to right
	points := make([]MoodPoint, 0, len(dates))
	for i := len(dates) - 1; i >= 0; i-- {
		d := dates[i]
		points = append(points, MoodPoint{Date: d, Value: float64(sums[d]) / float64(counts[d])})
	}
	return points, nil
}

func normalizeTags(tags []string) []string {
	out := []string{}
	seen := map[string]struct{}{}
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
