package store

import (
	"testing"

	"github.com/uniwell/mindcare/internal/models"
)

func TestSeedContent(t *testing.T) {
	s := NewMemory()
	Seed(s)

	counselors, err := s.ListCounselors("")
	if err != nil {
		t.Fatalf("ListCounselors returned error: %v", err)
	}
	if len(counselors) != 3 {
		t.Fatalf("expected 3 counselors, got %d", len(counselors))
	}
	resources, err := s.ListResources()
	if err != nil {
		t.Fatalf("ListResources returned error: %v", err)
	}
	if len(resources) != 15 {
		t.Fatalf("expected 15 resources, got %d", len(resources))
	}
	events, err := s.ListEvents()
	if err != nil {
		t.Fatalf("ListEvents returned error: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
}

func TestReadsReturnCopies(t *testing.T) {
	s := NewMemory()
	Seed(s)

	first, _ := s.ListCounselors("")
	first[0].Availability[0].Slots[0] = "mutated"
	first[0].Specializations[0] = "mutated"

	second, _ := s.ListCounselors("")
	if second[0].Availability[0].Slots[0] == "mutated" {
		t.Fatalf("caller mutation leaked into the store")
	}
	if second[0].Specializations[0] == "mutated" {
		t.Fatalf("caller mutation leaked into the store")
	}
}

func TestMergeAvailabilityDedupAndSort(t *testing.T) {
	s := NewMemory()
	Seed(s)

	ok, err := s.MergeAvailability("c1", "2024-12-01", []string{"2:00 PM", "9:00 AM", "9:00 AM", "  "})
	if err != nil || !ok {
		t.Fatalf("MergeAvailability failed: ok=%v err=%v", ok, err)
	}
	ok, err = s.MergeAvailability("c1", "2024-12-01", []string{"1:00 PM", "2:00 PM"})
	if err != nil || !ok {
		t.Fatalf("second MergeAvailability failed: ok=%v err=%v", ok, err)
	}

	c, _ := s.GetCounselor("c1")
	var slots []string
	for _, av := range c.Availability {
		if av.Date == "2024-12-01" {
			slots = av.Slots
		}
	}
	if len(slots) != 3 {
		t.Fatalf("expected 3 deduplicated slots, got %v", slots)
	}
	for i := 1; i < len(slots); i++ {
		if slots[i-1] >= slots[i] {
			t.Fatalf("slots should be sorted, got %v", slots)
		}
	}

	ok, err = s.MergeAvailability("ghost", "2024-12-01", []string{"9:00 AM"})
	if err != nil {
		t.Fatalf("MergeAvailability returned error: %v", err)
	}
	if ok {
		t.Fatalf("expected no-op for unknown counselor")
	}
}

func TestHasActiveAppointment(t *testing.T) {
	s := NewMemory()
	appt := &models.Appointment{ID: "a1", CounselorID: "c1", Date: "2024-11-10", Slot: "9:00 AM", Status: models.StatusPending}
	if err := s.AddAppointment(appt); err != nil {
		t.Fatalf("AddAppointment returned error: %v", err)
	}

	held, _ := s.HasActiveAppointment("c1", "2024-11-10", "9:00 AM")
	if !held {
		t.Fatalf("pending appointment should hold the slot")
	}
	if err := s.SetAppointmentStatus("a1", models.StatusConfirmed); err != nil {
		t.Fatalf("SetAppointmentStatus returned error: %v", err)
	}
	held, _ = s.HasActiveAppointment("c1", "2024-11-10", "9:00 AM")
	if !held {
		t.Fatalf("confirmed appointment should hold the slot")
	}
	if err := s.SetAppointmentStatus("a1", models.StatusCancelled); err != nil {
		t.Fatalf("SetAppointmentStatus returned error: %v", err)
	}
	held, _ = s.HasActiveAppointment("c1", "2024-11-10", "9:00 AM")
	if held {
		t.Fatalf("cancelled appointment must release the slot")
	}
}

func TestUserUpsertByEmail(t *testing.T) {
	s := NewMemory()
	if err := s.UpsertUser(&models.User{ID: "u1", Email: "Asha@Uni.edu", Name: "Asha"}); err != nil {
		t.Fatalf("UpsertUser returned error: %v", err)
	}
	u, err := s.FindUserByEmail("asha@uni.EDU")
	if err != nil {
		t.Fatalf("FindUserByEmail returned error: %v", err)
	}
	if u == nil || u.ID != "u1" {
		t.Fatalf("email lookup should be case-insensitive, got %+v", u)
	}
	missing, _ := s.FindUserByEmail("nobody@uni.edu")
	if missing != nil {
		t.Fatalf("expected nil for unknown email")
	}
}
