package models

import "time"

// Role identifies what a signed-in user may do. Login is open (any
// credentials are accepted), so the role is self-declared at sign-in.
type Role string

const (
	RoleStudent   Role = "student"
	RoleCounselor Role = "counselor"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleCounselor || r == RoleAdmin
}

// User is an in-memory profile created on first login.
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	Institution string    `json:"institution,omitempty"`
	Branch      string    `json:"branch,omitempty"`
	Age         int       `json:"age,omitempty"`
	Area        string    `json:"area,omitempty"`
	PassHash    []byte    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

// Severity is the ordered classification derived from a total score.
type Severity string

const (
	SeverityMinimal  Severity = "minimal"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Option is one selectable answer for a question.
type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Question belongs to an assessment. Immutable, defined at startup.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Band maps a contiguous score range to a severity and its guidance.
type Band struct {
	Lower           int      `json:"lower"`
	Upper           int      `json:"upper"`
	Severity        Severity `json:"severity"`
	Message         string   `json:"message"`
	Recommendations []string `json:"recommendations"`
}

// Assessment is an immutable catalog entry. Its rubric is a list of
// score bands covering [0, MaxScore] with no gaps or overlaps.
type Assessment struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	Rubric      []Band     `json:"rubric"`
}

// MaxScore is the highest total this assessment can produce.
func (a Assessment) MaxScore() int {
	total := 0
	for _, q := range a.Questions {
		max := 0
		for _, o := range q.Options {
			if o.Value > max {
				max = o.Value
			}
		}
		total += max
	}
	return total
}

// Attempt is one in-progress run of an assessment. Answers maps question
// ID to the selected option value.
type Attempt struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id"`
	AssessmentID string         `json:"assessment_id"`
	Answers      map[string]int `json:"answers"`
	Index        int            `json:"index"`
	StartedAt    time.Time      `json:"started_at"`
}

// Result is derived on submission and retained for analytics. Answers
// keeps the per-question values so reliability can be computed later.
type Result struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id"`
	AssessmentID    string         `json:"assessment_id"`
	Answers         map[string]int `json:"-"`
	Score           int            `json:"score"`
	Severity        Severity       `json:"severity"`
	Message         string         `json:"message"`
	Recommendations []string       `json:"recommendations"`
	TakenAt         time.Time      `json:"taken_at"`
}

// Availability declares a counselor's bookable slot labels for one
// calendar date. Dates are YYYY-MM-DD strings; slots are labels like
// "9:00 AM" with no timezone or duration semantics.
type Availability struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// Counselor is a bookable member of the counseling staff.
type Counselor struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Specializations []string       `json:"specializations"`
	Bio             string         `json:"bio"`
	Area            string         `json:"area"`
	Availability    []Availability `json:"availability"`
}

// AppointmentStatus transitions: pending -> confirmed|cancelled,
// confirmed -> completed|cancelled. Cancelled and completed are terminal.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Terminal reports whether no further transition is allowed.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Active reports whether the appointment still holds its slot.
func (s AppointmentStatus) Active() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Modality is how the session is held.
type Modality string

const (
	ModalityVideo    Modality = "video"
	ModalityInPerson Modality = "in-person"
)

// Appointment is created on booking and mutated only via status
// transitions; cancellation is a status change, never a deletion.
type Appointment struct {
	ID            string            `json:"id"`
	CounselorID   string            `json:"counselor_id"`
	CounselorName string            `json:"counselor_name"`
	UserName      string            `json:"user_name"`
	Date          string            `json:"date"`
	Slot          string            `json:"slot"`
	Reason        string            `json:"reason"`
	Modality      Modality          `json:"modality"`
	Status        AppointmentStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}

// Mood is the self-reported state attached to a journal entry.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodCalm    Mood = "calm"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
	MoodAnxious Mood = "anxious"
)

// JournalEntry documents one dated reflection.
type JournalEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      Mood      `json:"mood"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// Habit tracks a recurring wellness routine. Current is clamped to
// [0, Target]; crossing Target bumps Streak once.
type Habit struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Icon          string    `json:"icon,omitempty"`
	Target        int       `json:"target"`
	Current       int       `json:"current"`
	Unit          string    `json:"unit,omitempty"`
	Frequency     string    `json:"frequency"` // daily | weekly
	Streak        int       `json:"streak"`
	LastCompleted time.Time `json:"last_completed"`
	Color         string    `json:"color,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Comment is a reply on a community post.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Post is a community forum entry.
type Post struct {
	ID             string    `json:"id"`
	Author         string    `json:"author"`
	AuthorInitials string    `json:"author_initials"`
	Content        string    `json:"content"`
	Tags           []string  `json:"tags"`
	Likes          int       `json:"likes"`
	Comments       []Comment `json:"comments"`
	CreatedAt      time.Time `json:"created_at"`
}

// Event is a webinar or workshop students can register for.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Presenter   string `json:"presenter"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Kind        string `json:"kind"` // webinar | workshop
	Description string `json:"description"`
	Registered  bool   `json:"registered"`
}

// Resource is an immutable library item.
type Resource struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Duration    string `json:"duration"`
	Content     string `json:"content"`
}

// Quote is shown once per day on the dashboard.
type Quote struct {
	Text   string `json:"text"`
	Source string `json:"source"`
}
