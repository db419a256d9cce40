package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/uniwell/mindcare/internal/middleware"
	"github.com/uniwell/mindcare/internal/models"
)

func (hb *HandlerBundle) CreateEntryHandler(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	var input struct {
		Date    string   `json:"date"`
		Title   string   `json:"title"`
		Content string   `json:"content"`
		Mood    string   `json:"mood"`
		Tags    []string `json:"tags"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	entry, err := hb.Journal.Create(claims.UID, input.Date, input.Title, input.Content, models.Mood(input.Mood), input.Tags)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

func (hb *HandlerBundle) ListEntriesHandler(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	var (
		entries []*models.JournalEntry
		err     error
	)
	if date := c.Query("date"); date != "" {
		entries, err = hb.Journal.ForDate(claims.UID, date)
	} else {
		entries, err = hb.Journal.List(claims.UID)
	}
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// MoodTrendHandler feeds the mood chart. "days" caps how many recent
// entries are considered.
func (hb *HandlerBundle) MoodTrendHandler(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	n := 30
	if raw := c.Query("days"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			n = v
		}
	}
	points, err := hb.Journal.MoodTrend(claims.UID, n)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trend": points})
}

func (hb *HandlerBundle) CreateHabitHandler(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	var input struct {
		Name      string `json:"name"`
		Icon      string `json:"icon"`
		Target    int    `json:"target"`
		Unit      string `json:"unit"`
		Frequency string `json:"frequency"`
		Color     string `json:"color"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	habit, err := hb.Habits.Create(claims.UID, input.Name, input.Icon, input.Unit, input.Frequency, input.Color, input.Target)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"habit": habit})
}

func (hb *HandlerBundle) ListHabitsHandler(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	habits, err := hb.Habits.List(claims.UID)
	if err != nil {
		respondErr(c, err)
		return
	}
	summary, err := hb.Habits.Summary(claims.UID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"habits": habits, "summary": summary})
}

func (hb *HandlerBundle) HabitProgressHandler(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	var input struct {
		Delta int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Delta == 0 {
		input.Delta = 1
	}
	habit, err := hb.Habits.Progress(claims.UID, c.Param("id"), input.Delta)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"habit": habit})
}

func (hb *HandlerBundle) UpdateHabitHandler(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	var input struct {
		Name   string `json:"name"`
		Target int    `json:"target"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	habit, err := hb.Habits.Update(claims.UID, c.Param("id"), input.Name, input.Target)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"habit": habit})
}

func (hb *HandlerBundle) DeleteHabitHandler(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	if err := hb.Habits.Delete(claims.UID, c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
