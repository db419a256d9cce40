package services

import (
	"testing"
	"time"

	"github.com/uniwell/mindcare/internal/models"
	"github.com/uniwell/mindcare/internal/store"
)

func newTestJournal() *JournalService {
	mem := store.NewMemory()
	svc := NewJournalService(mem)
	svc.now = func() time.Time { return time.Date(2024, 11, 10, 12, 0, 0, 0, time.UTC) }
	n := 0
	svc.idGen = func() string { n++; return "e" + itoa(n) }
	return svc
}

func TestJournalCreateAndList(t *testing.T) {
	svc := newTestJournal()

	entry, err := svc.Create("u1", "", "Rough day", "Exams are piling up.", models.MoodAnxious, []string{"exams", "exams", " ", "sleep"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if entry.Date != "2024-11-10" {
		t.Fatalf("empty date should default to today, got %s", entry.Date)
	}
	if len(entry.Tags) != 2 {
		t.Fatalf("tags should be trimmed and deduplicated, got %v", entry.Tags)
	}

	if _, err := svc.Create("u1", "", "", "body", models.MoodCalm, nil); err == nil {
		t.Fatalf("expected validation error for empty title")
	}
	if _, err := svc.Create("u1", "", "title", "", models.MoodCalm, nil); err == nil {
		t.Fatalf("expected validation error for empty content")
	}
	if _, err := svc.Create("u1", "", "title", "body", models.Mood("ecstatic"), nil); err == nil {
		t.Fatalf("expected validation error for unknown mood")
	}

	second, err := svc.Create("u1", "2024-11-11", "Better", "Slept well.", models.MoodCalm, nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	entries, err := svc.List("u1")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 2 || entries[0].ID != second.ID {
		t.Fatalf("expected newest first, got %+v", entries)
	}

	other, _ := svc.List("u2")
	if len(other) != 0 {
		t.Fatalf("entries must be scoped per user")
	}
}

func TestJournalForDate(t *testing.T) {
	svc := newTestJournal()
	if _, err := svc.Create("u1", "2024-11-10", "a", "x", models.MoodHappy, nil); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Create("u1", "2024-11-11", "b", "y", models.MoodSad, nil); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	day, err := svc.ForDate("u1", "2024-11-10")
	if err != nil {
		t.Fatalf("ForDate returned error: %v", err)
	}
	if len(day) != 1 || day[0].Title != "a" {
		t.Fatalf("unexpected entries for date: %+v", day)
	}
}

func TestMoodTrend(t *testing.T) {
	svc := newTestJournal()
	// two entries on the 10th (happy=5, anxious=1 -> avg 3), one on the 11th (calm=4)
	if _, err := svc.Create("u1", "2024-11-10", "am", "x", models.MoodHappy, nil); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Create("u1", "2024-11-10", "pm", "y", models.MoodAnxious, nil); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := svc.Create("u1", "2024-11-11", "next", "z", models.MoodCalm, nil); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	points, err := svc.MoodTrend("u1", 30)
	if err != nil {
		t.Fatalf("MoodTrend returned error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 chart points, got %d", len(points))
	}
	if points[0].Date != "2024-11-10" || points[1].Date != "2024-11-11" {
		t.Fatalf("chart should read oldest to newest, got %+v", points)
	}
	if points[0].Value != 3 {
		t.Fatalf("expected averaged mood 3 on the 10th, got %f", points[0].Value)
	}
	if points[1].Value != 4 {
		t.Fatalf("expected calm=4 on the 11th, got %f", points[1].Value)
	}

	capped, err := svc.MoodTrend("u1", 1)
	if err != nil {
		t.Fatalf("MoodTrend returned error: %v", err)
	}
	if len(capped) != 1 || capped[0].Date != "2024-11-11" {
		t.Fatalf("cap should keep only the newest entries, got %+v", capped)
	}
}
