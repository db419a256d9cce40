package services

import (
	"strings"
	"time"

	"github.com/uniwell/mindcare/internal/models"
)

type HabitStore interface {
	AddHabit(h *models.Habit) error
	UpdateHabit(h *models.Habit) (bool, error)
	DeleteHabit(userID, id string) (bool, error)
	ListHabits(userID string) ([]*models.Habit, error)
	GetHabit(userID, id string) (*models.Habit, error)
	BumpEngagement(feature string)
}

// HabitService tracks recurring wellness routines. Progress is clamped to
// [0, Target]; reaching the target bumps the streak once per completion.
type HabitService struct {
	store HabitStore
	now   func() time.Time
	idGen func() string
}

func NewHabitService(store HabitStore) *HabitService {
	return &HabitService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		idGen: func() string { return "h" + shortID(7) },
	}
}

func (s *HabitService) Create(userID, name, icon, unit, frequency, color string, target int) (*models.Habit, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewInvalidError("name required")
	}
	if target <= 0 {
		return nil, NewInvalidError("target must be positive")
	}
	if frequency != "daily" && frequency != "weekly" {
		return nil, NewInvalidError("frequency must be daily or weekly")
	}
	h := &models.Habit{
		ID:        s.idGen(),
		UserID:    userID,
		Name:      strings.TrimSpace(name),
		Icon:      icon,
		Target:    target,
		Unit:      unit,
		Frequency: frequency,
		Color:     color,
		CreatedAt: s.now(),
	}
	if err := s.store.AddHabit(h); err != nil {
		return nil, err
	}
	s.store.BumpEngagement("habits")
	return h, nil
}

// Progress adjusts the current count by delta. Crossing the target from
// below increments the streak and stamps the completion time; dropping
// back below does not undo it.
func (s *HabitService) Progress(userID, id string, delta int) (*models.Habit, error) {
	h, err := s.store.GetHabit(userID, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, NewNotFoundError("habit not found")
	}
	wasComplete := h.Current >= h.Target
	h.Current += delta
	if h.Current < 0 {
		h.Current = 0
	}
	if h.Current > h.Target {
		h.Current = h.Target
	}
	if !wasComplete && h.Current >= h.Target {
		h.Streak++
		h.LastCompleted = s.now()
	}
	if _, err := s.store.UpdateHabit(h); err != nil {
		return nil, err
	}
	return h, nil
}

// Rename updates mutable fields; target changes re-clamp progress.
func (s *HabitService) Update(userID, id, name string, target int) (*models.Habit, error) {
	h, err := s.store.GetHabit(userID, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, NewNotFoundError("habit not found")
	}
	if strings.TrimSpace(name) != "" {
		h.Name = strings.TrimSpace(name)
	}
	if target > 0 {
		h.Target = target
		if h.Current > h.Target {
			h.Current = h.Target
		}
	}
	if _, err := s.store.UpdateHabit(h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *HabitService) Delete(userID, id string) error {
	ok, err := s.store.DeleteHabit(userID, id)
	if err != nil {
		return err
	}
	if !ok {
		return NewNotFoundError("habit not found")
	}
	return nil
}

func (s *HabitService) List(userID string) ([]*models.Habit, error) {
	return s.store.ListHabits(userID)
}

// Summary aggregates today's completion for the dashboard card.
type HabitSummary struct {
	Total      int
	Completed  int
	BestStreak int
}

func (s *HabitService) Summary(userID string) (HabitSummary, error) {
	habits, err := s.store.ListHabits(userID)
	if err != nil {
		return HabitSummary{}, err
	}
	sum := HabitSummary{Total: len(habits)}
	for _, h := range habits {
		if h.Current >= h.Target {
			sum.Completed++
		}
		if h.Streak > sum.BestStreak {
			sum.BestStreak = h.Streak
		}
	}
	return sum, nil
}
