package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uniwell/mindcare/internal/models"
	"github.com/uniwell/mindcare/internal/services"
)

func (hb *HandlerBundle) AnalyticsSummaryHandler(c *gin.Context) {
	summary, err := hb.Analytics.Summary()
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (hb *HandlerBundle) AlphaHandler(c *gin.Context) {
	alpha, n, err := hb.Analytics.Alpha(c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"alpha": alpha, "n": n})
}

// ExportResultsHandler streams every submission as long-format CSV.
func (hb *HandlerBundle) ExportResultsHandler(c *gin.Context) {
	rows, err := hb.Analytics.ResultRows()
	if err != nil {
		respondErr(c, err)
		return
	}
	data, err := services.ExportResultsCSV(rows)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="results.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// ExportAppointmentsHandler streams the booking ledger as CSV.
func (hb *HandlerBundle) ExportAppointmentsHandler(c *gin.Context) {
	appts, err := hb.Analytics.AppointmentLedger()
	if err != nil {
		respondErr(c, err)
		return
	}
	data, err := services.ExportAppointmentsCSV(appts)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="appointments.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// ReportHandler renders the wellbeing snapshot as pdf, xlsx or csv.
func (hb *HandlerBundle) ReportHandler(c *gin.Context) {
	summary, err := hb.Analytics.Summary()
	if err != nil {
		respondErr(c, err)
		return
	}
	report := services.WellbeingReport{
		GeneratedAt: time.Now().UTC().Format("2006-01-02 15:04 UTC"),
		Summary:     summary,
	}
	switch c.Query("format") {
	case "xlsx":
		data, err := services.RenderReportXLSX(report)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="wellbeing_report.xlsx"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	case "csv":
		counts := map[models.Severity]int{}
		for _, s := range summary.SeverityBreakdown {
			counts[s.Severity] = s.Count
		}
		data, err := services.ExportSeverityCSV(counts)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="severity.csv"`)
		c.Data(http.StatusOK, "text/csv", data)
	default:
		data, err := services.RenderReportPDF(report)
		if err != nil {
			respondErr(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="wellbeing_report.pdf"`)
		c.Data(http.StatusOK, "application/pdf", data)
	}
}
