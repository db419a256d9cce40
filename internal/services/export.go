package services

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/uniwell/mindcare/internal/models"
)

type LongRow struct {
	UserID       string
	AssessmentID string
	Score        int
	Severity     string
	TakenAt      string // ISO8601 suggested; string for CSV simplicity
}

// ExportResultsCSV renders screening results into a long-format CSV,
// one row per submission.
func ExportResultsCSV(rows []LongRow) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"user_id", "assessment_id", "score", "severity", "taken_at"})
	for _, r := range rows {
		rec := []string{
			r.UserID,
			r.AssessmentID,
			itoa(r.Score),
			r.Severity,
			r.TakenAt,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportAppointmentsCSV renders the booking ledger for admin review.
func ExportAppointmentsCSV(appts []models.Appointment) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"appointment_id", "counselor", "student", "date", "slot", "modality", "status"})
	for _, a := range appts {
		rec := []string{
			a.ID,
			a.CounselorName,
			a.UserName,
			a.Date,
			a.Slot,
			string(a.Modality),
			string(a.Status),
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ExportSeverityCSV renders a severity distribution with stable ordering.
func ExportSeverityCSV(counts map[models.Severity]int) ([]byte, error) {
	sevs := make([]string, 0, len(counts))
	for s := range counts {
		sevs = append(sevs, string(s))
	}
	sort.Strings(sevs)

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"severity", "count"})
	for _, s := range sevs {
		if err := w.Write([]string{s, itoa(counts[models.Severity(s)])}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func itoa(i int) string {
	// local small int->string to avoid importing strconv everywhere
	// handles small ints typical for Likert scores
	if i == 0 {
		return "0"
	}
	neg := false
	if i < 0 {
		neg = true
		i = -i
	}
	var b [20]byte
	bp := len(b)
	for i > 0 {
		bp--
		b[bp] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		bp--
		b[bp] = '-'
	}
	return string(b[bp:])
}
