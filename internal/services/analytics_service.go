package services

import (
	"sort"

	"github.com/uniwell/mindcare/internal/models"
)

type AnalyticsStore interface {
	ListResults(assessmentID string) ([]*models.Result, error)
	ListAppointments(userName string) ([]*models.Appointment, error)
	EngagementCounts() (map[string]int, error)
}

// AnalyticsService aggregates anonymized platform numbers for the admin
// dashboard. It never exposes individual results.
type AnalyticsService struct {
	store   AnalyticsStore
	catalog []models.Assessment
}

type SeveritySlice struct {
	Severity models.Severity `json:"severity"`
	Count    int             `json:"count"`
}

type AssessmentStats struct {
	AssessmentID string  `json:"assessment_id"`
	Name         string  `json:"name"`
	Submissions  int     `json:"submissions"`
	MeanScore    float64 `json:"mean_score"`
	Alpha        float64 `json:"alpha"`
	N            int     `json:"n"`
}

type Timeseries struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type AppointmentFunnel struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

type AnalyticsSummary struct {
	TotalSubmissions  int               `json:"total_submissions"`
	SeverityBreakdown []SeveritySlice   `json:"severity_breakdown"`
	Assessments       []AssessmentStats `json:"assessments"`
	Timeseries        []Timeseries      `json:"timeseries"`
	Appointments      AppointmentFunnel `json:"appointments"`
	Engagement        map[string]int    `json:"engagement"`
}

func NewAnalyticsService(store AnalyticsStore, catalog []models.Assessment) *AnalyticsService {
	return &AnalyticsService{store: store, catalog: catalog}
}

func (s *AnalyticsService) Summary() (*AnalyticsSummary, error) {
	results, err := s.store.ListResults("")
	if err != nil {
		return nil, err
	}
	appts, err := s.store.ListAppointments("")
	if err != nil {
		return nil, err
	}
	engagement, err := s.store.EngagementCounts()
	if err != nil {
		return nil, err
	}
	summary := &AnalyticsSummary{
		TotalSubmissions:  len(results),
		SeverityBreakdown: severityBreakdown(results),
		Timeseries:        buildTimeseries(results),
		Appointments:      appointmentFunnel(appts),
		Engagement:        engagement,
	}
	for _, a := range s.catalog {
		stats, err := s.assessmentStats(a)
		if err != nil {
			return nil, err
		}
		summary.Assessments = append(summary.Assessments, stats)
	}
	return summary, nil
}

// Alpha computes Cronbach's alpha for one assessment from submissions
// that answered every question.
func (s *AnalyticsService) Alpha(assessmentID string) (float64, int, error) {
	var assessment *models.Assessment
	for i := range s.catalog {
		if s.catalog[i].ID == assessmentID {
			assessment = &s.catalog[i]
			break
		}
	}
	if assessment == nil {
		return 0, 0, NewNotFoundError("assessment not found")
	}
	results, err := s.store.ListResults(assessmentID)
	if err != nil {
		return 0, 0, err
	}
	matrix, n := buildAlphaMatrix(*assessment, results)
	return CronbachAlpha(matrix), n, nil
}

func (s *AnalyticsService) assessmentStats(a models.Assessment) (AssessmentStats, error) {
	results, err := s.store.ListResults(a.ID)
	if err != nil {
		return AssessmentStats{}, err
	}
	stats := AssessmentStats{AssessmentID: a.ID, Name: a.Name, Submissions: len(results)}
	if len(results) > 0 {
		sum := 0
		for _, r := range results {
			sum += r.Score
		}
		stats.MeanScore = float64(sum) / float64(len(results))
	}
	matrix, n := buildAlphaMatrix(a, results)
	stats.Alpha = CronbachAlpha(matrix)
	stats.N = n
	return stats, nil
}

// ResultRows flattens anonymized submissions for the long-format CSV.
func (s *AnalyticsService) ResultRows() ([]LongRow, error) {
	results, err := s.store.ListResults("")
	if err != nil {
		return nil, err
	}
	rows := make([]LongRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, LongRow{
			UserID:       r.UserID,
			AssessmentID: r.AssessmentID,
			Score:        r.Score,
			Severity:     string(r.Severity),
			TakenAt:      r.TakenAt.UTC().Format("2006-01-02T15:04:05Z"),
		})
	}
	return rows, nil
}

// AppointmentLedger returns every appointment ever created, for export.
func (s *AnalyticsService) AppointmentLedger() ([]models.Appointment, error) {
	appts, err := s.store.ListAppointments("")
	if err != nil {
		return nil, err
	}
	out := make([]models.Appointment, 0, len(appts))
	for _, a := range appts {
		out = append(out, *a)
	}
	return out, nil
}

func severityBreakdown(results []*models.Result) []SeveritySlice {
	counts := map[models.Severity]int{}
	for _, r := range results {
		counts[r.Severity]++
	}
	order := []models.Severity{
		models.SeverityMinimal,
		models.SeverityMild,
		models.SeverityModerate,
		models.SeveritySevere,
	}
	out := make([]SeveritySlice, 0, len(order))
	for _, sev := range order {
		out = append(out, SeveritySlice{Severity: sev, Count: counts[sev]})
	}
	return out
}

func appointmentFunnel(appts []*models.Appointment) AppointmentFunnel {
	var f AppointmentFunnel
	for _, a := range appts {
		switch a.Status {
		case models.StatusPending:
			f.Pending++
		case models.StatusConfirmed:
			f.Confirmed++
		case models.StatusCompleted:
			f.Completed++
		case models.StatusCancelled:
			f.Cancelled++
		}
	}
	return f
}

func buildAlphaMatrix(a models.Assessment, results []*models.Result) ([][]float64, int) {
	ids := make([]string, 0, len(a.Questions))
	for _, q := range a.Questions {
		ids = append(ids, q.ID)
	}
	sort.Strings(ids)
	matrix := make([][]float64, 0, len(results))
	for _, r := range results {
		row := make([]float64, 0, len(ids))
		complete := true
		for _, id := range ids {
			v, ok := r.Answers[id]
			if !ok {
				complete = false
				break
			}
			row = append(row, float64(v))
		}
		if complete {
			matrix = append(matrix, row)
		}
	}
	return matrix, len(matrix)
}

func buildTimeseries(results []*models.Result) []Timeseries {
	counts := map[string]int{}
	for _, r := range results {
		counts[r.TakenAt.UTC().Format("2006-01-02")]++
	}
	days := make([]string, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Strings(days)
	out := make([]Timeseries, 0, len(days))
	for _, d := range days {
		out = append(out, Timeseries{Date: d, Count: counts[d]})
	}
	return out
}
