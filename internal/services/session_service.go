package services

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/uniwell/mindcare/internal/models"
)

type SessionStore interface {
	FindUserByEmail(email string) (*models.User, error)
	UpsertUser(u *models.User) error
}

type TokenSigner func(uid, name string, role models.Role, ttl time.Duration) (string, error)

// SessionService handles sign-in and the per-user UI session: current
// page, theme and language. Sign-in is demo mode: any well-formed
// credentials are accepted and a profile is created on first use.
type SessionService struct {
	store     SessionStore
	now       func() time.Time
	idGen     func(prefix string, n int) string
	signToken TokenSigner
	tokenTTL  time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

// Session is the per-user application state that the SPA keeps in memory.
type Session struct {
	UserID      string
	Name        string
	Role        models.Role
	Token       string
	CurrentPage string
	Theme       string
	Language    string
}

// SignInInput carries the login form. Institution, Branch, Age and Area
// are optional profile details captured on first sign-in.
type SignInInput struct {
	Name        string
	Email       string
	Password    string
	Role        models.Role
	Institution string
	Branch      string
	Age         int
	Area        string
}

type SignInResult struct {
	Token  string
	UserID string
	Role   models.Role
}

func NewSessionService(store SessionStore, signer TokenSigner) *SessionService {
	return &SessionService{
		store:     store,
		now:       func() time.Time { return time.Now().UTC() },
		idGen:     func(prefix string, n int) string { return prefix + shortID(n) },
		signToken: signer,
		tokenTTL:  30 * 24 * time.Hour,
		sessions:  map[string]*Session{},
	}
}

// SignIn accepts any credentials, creating the profile on first use. The
// offered password is still hashed so a later strict mode needs no
// data migration.
func (s *SessionService) SignIn(in SignInInput) (*SignInResult, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if email == "" || strings.TrimSpace(in.Password) == "" {
		return nil, NewInvalidError("email/password required")
	}
	if !in.Role.Valid() {
		return nil, NewInvalidError("unknown role")
	}
	u, err := s.store.FindUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		if name == "" {
			name = displayNameFromEmail(email)
		}
		u = &models.User{
			ID:          s.idGen("u", 7),
			Name:        name,
			Email:       email,
			Role:        in.Role,
			Institution: strings.TrimSpace(in.Institution),
			Branch:      strings.TrimSpace(in.Branch),
			Age:         in.Age,
			Area:        strings.TrimSpace(in.Area),
			PassHash:    hash,
			CreatedAt:   s.now(),
		}
		if err := s.store.UpsertUser(u); err != nil {
			return nil, err
		}
	} else {
		u.Role = in.Role
		if name != "" {
			u.Name = name
		}
		if v := strings.TrimSpace(in.Institution); v != "" {
			u.Institution = v
		}
		if v := strings.TrimSpace(in.Area); v != "" {
			u.Area = v
		}
		if err := s.store.UpsertUser(u); err != nil {
			return nil, err
		}
	}
	if s.signToken == nil {
		return nil, NewInvalidError("token signer not configured")
	}
	token, err := s.signToken(u.ID, u.Name, u.Role, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.sessions[u.ID] = &Session{
		UserID:      u.ID,
		Name:        u.Name,
		Role:        u.Role,
		Token:       token,
		CurrentPage: homePage(u.Role),
		Theme:       "light",
		Language:    "en",
	}
	s.mu.Unlock()
	return &SignInResult{Token: token, UserID: u.ID, Role: u.Role}, nil
}

// Current returns a copy of the live session, or nil after sign-out.
func (s *SessionService) Current(userID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return nil
	}
	cp := *sess
	return &cp
}

// Navigate records the page the user moved to.
func (s *SessionService) Navigate(userID, page string) error {
	return s.update(userID, func(sess *Session) { sess.CurrentPage = page })
}

func (s *SessionService) SetTheme(userID, theme string) error {
	if theme != "light" && theme != "dark" {
		return NewInvalidError("unknown theme")
	}
	return s.update(userID, func(sess *Session) { sess.Theme = theme })
}

func (s *SessionService) SetLanguage(userID, lang string) error {
	if strings.TrimSpace(lang) == "" {
		return NewInvalidError("language required")
	}
	return s.update(userID, func(sess *Session) { sess.Language = lang })
}

// SignOut drops the session. It is safe to call twice.
func (s *SessionService) SignOut(userID string) {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
}

func (s *SessionService) TokenTTL() time.Duration {
	return s.tokenTTL
}

func (s *SessionService) update(userID string, fn func(*Session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return NewUnauthorizedError("no active session")
	}
	fn(sess)
	return nil
}

func homePage(role models.Role) string {
	switch role {
	case models.RoleCounselor:
		return "counselor-dashboard"
	case models.RoleAdmin:
		return "admin-dashboard"
	default:
		return "dashboard"
	}
}

func displayNameFromEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return email
	}
	return email[:at]
}
