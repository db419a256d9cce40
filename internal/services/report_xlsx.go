package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// RenderReportXLSX renders the snapshot as a workbook with one sheet per
// section, suitable for further analysis.
func RenderReportXLSX(r WellbeingReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Severity"
	f.SetSheetName("Sheet1", sheet)
	_ = f.SetSheetRow(sheet, "A1", &[]interface{}{"severity", "count"})
	for i, s := range r.Summary.SeverityBreakdown {
		cell := fmt.Sprintf("A%d", i+2)
		_ = f.SetSheetRow(sheet, cell, &[]interface{}{string(s.Severity), s.Count})
	}

	sheet = "Assessments"
	_, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	_ = f.SetSheetRow(sheet, "A1", &[]interface{}{"assessment", "submissions", "mean_score", "alpha", "n"})
	for i, a := range r.Summary.Assessments {
		cell := fmt.Sprintf("A%d", i+2)
		_ = f.SetSheetRow(sheet, cell, &[]interface{}{a.Name, a.Submissions, a.MeanScore, a.Alpha, a.N})
	}

	sheet = "Appointments"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}
	fn := r.Summary.Appointments
	_ = f.SetSheetRow(sheet, "A1", &[]interface{}{"pending", "confirmed", "completed", "cancelled"})
	_ = f.SetSheetRow(sheet, "A2", &[]interface{}{fn.Pending, fn.Confirmed, fn.Completed, fn.Cancelled})

	sheet = "Timeseries"
	if _, err := f.NewSheet(sheet); err != nil {
		return nil, err
	}
	_ = f.SetSheetRow(sheet, "A1", &[]interface{}{"date", "submissions"})
	for i, t := range r.Summary.Timeseries {
		cell := fmt.Sprintf("A%d", i+2)
		_ = f.SetSheetRow(sheet, cell, &[]interface{}{t.Date, t.Count})
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("error generating report workbook: %w", err)
	}
	return buf.Bytes(), nil
}
