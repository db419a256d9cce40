package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uniwell/mindcare/internal/middleware"
	"github.com/uniwell/mindcare/internal/models"
	"github.com/uniwell/mindcare/internal/services"
)

func (hb *HandlerBundle) ListCounselorsHandler(c *gin.Context) {
	counselors, err := hb.Scheduler.ListCounselors(c.Query("area"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"counselors": counselors})
}

func (hb *HandlerBundle) AvailableSlotsHandler(c *gin.Context) {
	slots, err := hb.Scheduler.AvailableSlots(c.Param("id"), c.Query("date"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

func (hb *HandlerBundle) BookHandler(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	var input struct {
		CounselorID string `json:"counselor_id" binding:"required"`
		Date        string `json:"date"`
		Slot        string `json:"slot"`
		Reason      string `json:"reason"`
		Modality    string `json:"modality"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	modality := models.Modality(input.Modality)
	if input.Modality == "" {
		modality = models.ModalityVideo
	}
	appt, err := hb.Scheduler.Book(c.Request.Context(), services.BookingRequest{
		CounselorID: input.CounselorID,
		UserName:    claims.Name,
		Date:        input.Date,
		Slot:        input.Slot,
		Reason:      input.Reason,
		Modality:    modality,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

func (hb *HandlerBundle) ListAppointmentsHandler(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	appts, err := hb.Scheduler.ListAppointments(claims.Name)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (hb *HandlerBundle) CancelAppointmentHandler(c *gin.Context) {
	appt, err := hb.Scheduler.Cancel(c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

func (hb *HandlerBundle) ConfirmAppointmentHandler(c *gin.Context) {
	appt, err := hb.Scheduler.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

func (hb *HandlerBundle) CompleteAppointmentHandler(c *gin.Context) {
	appt, err := hb.Scheduler.Complete(c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// CounselorScheduleHandler returns everything on one counselor's book.
func (hb *HandlerBundle) CounselorScheduleHandler(c *gin.Context) {
	appts, err := hb.Scheduler.ListForCounselor(c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

func (hb *HandlerBundle) AddAvailabilityHandler(c *gin.Context) {
	var input struct {
		Date  string   `json:"date"`
		Slots []string `json:"slots"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := hb.Scheduler.AddAvailability(c.Param("id"), input.Date, input.Slots); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "availability updated"})
}
