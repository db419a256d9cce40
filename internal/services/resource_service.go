package services

import (
	"strings"

	"github.com/uniwell/mindcare/internal/models"
)

type ResourceStore interface {
	ListResources() ([]*models.Resource, error)
	BumpEngagement(feature string)
}

// ResourceService serves the read-only self-help library.
type ResourceService struct {
	store ResourceStore
}

func NewResourceService(store ResourceStore) *ResourceService {
	return &ResourceService{store: store}
}

// List filters by category and a case-insensitive substring of the
// title or description. Empty arguments match everything.
func (s *ResourceService) List(category, query string) ([]*models.Resource, error) {
	all, err := s.store.ListResources()
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	out := []*models.Resource{}
	for _, r := range all {
		if category != "" && category != "all" && r.Category != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(r.Title), needle) &&
			!strings.Contains(strings.ToLower(r.Description), needle) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Categories returns the distinct categories in library order.
func (s *ResourceService) Categories() ([]string, error) {
	all, err := s.store.ListResources()
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	out := []string{}
	for _, r := range all {
		if _, ok := seen[r.Category]; ok {
			continue
		}
		seen[r.Category] = struct{}{}
		out = append(out, r.Category)
	}
	return out, nil
}

// Get opens one item for reading and counts the view.
func (s *ResourceService) Get(id string) (*models.Resource, error) {
	all, err := s.store.ListResources()
	if err != nil {
		return nil, err
	}
	for _, r := range all {
		if r.ID == id {
			s.store.BumpEngagement("resources")
			return r, nil
		}
	}
	return nil, NewNotFoundError("resource not found")
}
