package services

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// WellbeingReport is the admin snapshot rendered to PDF and XLSX.
type WellbeingReport struct {
	GeneratedAt string
	Summary     *AnalyticsSummary
}

// RenderReportPDF renders the snapshot as a one-page PDF.
func RenderReportPDF(r WellbeingReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Student Wellbeing Report")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(40, 10, fmt.Sprintf("Generated: %s", r.GeneratedAt))
	pdf.Ln(12)
	pdf.Cell(40, 10, fmt.Sprintf("Total screenings: %d", r.Summary.TotalSubmissions))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Severity distribution")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	for _, s := range r.Summary.SeverityBreakdown {
		pdf.Cell(40, 8, fmt.Sprintf("%s: %d", s.Severity, s.Count))
		pdf.Ln(8)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Assessments")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	for _, a := range r.Summary.Assessments {
		pdf.Cell(40, 8, fmt.Sprintf("%s: %d submissions, mean %.1f, alpha %.2f (n=%d)",
			a.Name, a.Submissions, a.MeanScore, a.Alpha, a.N))
		pdf.Ln(8)
	}
	pdf.Ln(4)

	f := r.Summary.Appointments
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Appointments")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(40, 8, fmt.Sprintf("pending %d, confirmed %d, completed %d, cancelled %d",
		f.Pending, f.Confirmed, f.Completed, f.Cancelled))
	pdf.Ln(8)

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("error generating report PDF: %w", err)
	}
	return buf.Bytes(), nil
}
