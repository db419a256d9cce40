package services

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/uniwell/mindcare/internal/models"
)

type CommunityStore interface {
	AddPost(p *models.Post) error
	ListPosts() ([]*models.Post, error)
	LikePost(id string) (bool, error)
	AddComment(postID string, c *models.Comment) (bool, error)
	ListEvents() ([]*models.Event, error)
	ToggleEventRegistration(id string) (bool, error)
	BumpEngagement(feature string)
}

// CommunityService is the peer-support feed plus events. Posts are
// append-only; moderation is out of scope.
type CommunityService struct {
	store CommunityStore
	now   func() time.Time
	idGen func() string
}

func NewCommunityService(store CommunityStore) *CommunityService {
	return &CommunityService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		idGen: func() string { return "p" + shortID(7) },
	}
}

func (s *CommunityService) CreatePost(author, content string, tags []string) (*models.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, NewInvalidError("content required")
	}
	author = strings.TrimSpace(author)
	if author == "" {
		author = "Anonymous"
	}
	post := &models.Post{
		ID:             s.idGen(),
		Author:         author,
		AuthorInitials: initials(author),
		Content:        content,
		Tags:           normalizeTags(tags),
		CreatedAt:      s.now(),
	}
	if err := s.store.AddPost(post); err != nil {
		return nil, err
	}
	s.store.BumpEngagement("community")
	return post, nil
}

// ListPosts returns the feed, newest first, optionally filtered by a
// case-insensitive substring of content, author or tags.
func (s *CommunityService) ListPosts(query string) ([]*models.Post, error) {
	posts, err := s.store.ListPosts()
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return posts, nil
	}
	out := []*models.Post{}
	for _, p := range posts {
		if postMatches(p, needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *CommunityService) Like(postID string) error {
	ok, err := s.store.LikePost(postID)
	if err != nil {
		return err
	}
	if !ok {
		return NewNotFoundError("post not found")
	}
	return nil
}

func (s *CommunityService) AddComment(postID, author, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, NewInvalidError("content required")
	}
	c := &models.Comment{
		ID:        "c" + shortID(7),
		Author:    strings.TrimSpace(author),
		Content:   content,
		CreatedAt: s.now(),
	}
	ok, err := s.store.AddComment(postID, c)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewNotFoundError("post not found")
	}
	return c, nil
}

// ListEvents returns upcoming events, optionally filtered by kind
// (webinar or workshop).
func (s *CommunityService) ListEvents(kind string) ([]*models.Event, error) {
	events, err := s.store.ListEvents()
	if err != nil {
		return nil, err
	}
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" || kind == "all" {
		return events, nil
	}
	out := []*models.Event{}
	for _, e := range events {
		if strings.EqualFold(e.Kind, kind) {
			out = append(out, e)
		}
	}
	return out, nil
}

// ToggleRegistration flips the registration state and returns the new one.
func (s *CommunityService) ToggleRegistration(eventID string) (bool, error) {
	ok, err := s.store.ToggleEventRegistration(eventID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, NewNotFoundError("event not found")
	}
	events, err := s.store.ListEvents()
	if err != nil {
		return false, err
	}
	for _, e := range events {
		if e.ID == eventID {
			return e.Registered, nil
		}
	}
	return false, nil
}

func postMatches(p *models.Post, needle string) bool {
	if strings.Contains(strings.ToLower(p.Content), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Author), needle) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}

func initials(name string) string {
	parts := strings.Fields(name)
	out := ""
	for i, p := range parts {
		if i >= 2 {
			break
		}
		r, _ := utf8.DecodeRuneInString(p)
		out += strings.ToUpper(string(r))
	}
	if out == "" {
		out = "A"
	}
	return out
}
