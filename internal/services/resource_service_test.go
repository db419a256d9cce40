package services

import (
	"testing"
	"time"

	"github.com/uniwell/mindcare/internal/store"
)

func newTestResources() (*ResourceService, *store.Memory) {
	mem := store.NewMemory()
	store.Seed(mem)
	return NewResourceService(mem), mem
}

func TestResourceListAndFilter(t *testing.T) {
	svc, _ := newTestResources()

	all, err := svc.List("", "")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(all) != 15 {
		t.Fatalf("expected 15 seeded resources, got %d", len(all))
	}
	// "all" behaves like no filter
	again, _ := svc.List("all", "")
	if len(again) != len(all) {
		t.Fatalf("category \"all\" should match everything")
	}

	meditation, _ := svc.List("meditation", "")
	for _, r := range meditation {
		if r.Category != "meditation" {
			t.Fatalf("category filter leaked %q", r.Category)
		}
	}
	if len(meditation) == 0 {
		t.Fatalf("expected meditation resources in the seed")
	}

	search, _ := svc.List("", "SLEEP")
	if len(search) == 0 {
		t.Fatalf("expected case-insensitive search hits for sleep")
	}

	both, _ := svc.List("meditation", "morning")
	for _, r := range both {
		if r.Category != "meditation" {
			t.Fatalf("combined filter leaked %q", r.Category)
		}
	}
}

func TestResourceCategories(t *testing.T) {
	svc, _ := newTestResources()
	cats, err := svc.Categories()
	if err != nil {
		t.Fatalf("Categories returned error: %v", err)
	}
	if len(cats) == 0 {
		t.Fatalf("expected categories from seed")
	}
	seen := map[string]bool{}
	for _, c := range cats {
		if seen[c] {
			t.Fatalf("duplicate category %q", c)
		}
		seen[c] = true
	}
}

func TestResourceGetCountsEngagement(t *testing.T) {
	svc, mem := newTestResources()
	r, err := svc.Get("r1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if r.Content == "" {
		t.Fatalf("expected full content when opening a resource")
	}
	if _, err := svc.Get("r999"); err == nil {
		t.Fatalf("expected not-found for unknown resource")
	}
	counts, _ := mem.EngagementCounts()
	if counts["resources"] != 1 {
		t.Fatalf("expected one resource view counted, got %d", counts["resources"])
	}
}

func TestQuoteOfRotation(t *testing.T) {
	day := time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC)
	q1 := QuoteOf(day)
	q2 := QuoteOf(day.Add(5 * time.Hour))
	if q1 != q2 {
		t.Fatalf("same day must give the same quote")
	}
	next := QuoteOf(day.AddDate(0, 0, 1))
	if next == q1 {
		t.Fatalf("consecutive days should rotate the quote")
	}
	// full cycle returns to the start
	cycle := QuoteOf(day.AddDate(0, 0, len(dailyQuotes)))
	if cycle != q1 {
		t.Fatalf("rotation should cycle every %d days", len(dailyQuotes))
	}
}
