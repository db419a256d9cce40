package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uniwell/mindcare/internal/middleware"
)

func (hb *HandlerBundle) ListAssessmentsHandler(c *gin.Context) {
	catalog := hb.Assessments.Catalog()
	out := make([]gin.H, 0, len(catalog))
	for _, a := range catalog {
		out = append(out, gin.H{
			"id":          a.ID,
			"name":        a.Name,
			"description": a.Description,
			"questions":   len(a.Questions),
		})
	}
	c.JSON(http.StatusOK, gin.H{"assessments": out})
}

func (hb *HandlerBundle) StartAssessmentHandler(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	attempt, err := hb.Assessments.Start(claims.UID, c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	assessment, _ := hb.Assessments.Get(attempt.AssessmentID)
	c.JSON(http.StatusOK, gin.H{
		"attempt_id": attempt.ID,
		"index":      attempt.Index,
		"questions":  assessment.Questions,
	})
}

func (hb *HandlerBundle) AnswerHandler(c *gin.Context) {
	var input struct {
		QuestionID string `json:"question_id" binding:"required"`
		Value      *int   `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	attempt, err := hb.Assessments.Answer(c.Param("id"), input.QuestionID, *input.Value)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempt_id": attempt.ID, "answers": attempt.Answers})
}

func (hb *HandlerBundle) AdvanceHandler(c *gin.Context) {
	attempt, err := hb.Assessments.Advance(c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempt_id": attempt.ID, "index": attempt.Index})
}

func (hb *HandlerBundle) RetreatHandler(c *gin.Context) {
	attempt, err := hb.Assessments.Retreat(c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempt_id": attempt.ID, "index": attempt.Index})
}

func (hb *HandlerBundle) SubmitHandler(c *gin.Context) {
	result, err := hb.Assessments.Submit(c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"score":           result.Score,
		"severity":        result.Severity,
		"message":         result.Message,
		"recommendations": result.Recommendations,
	})
}

func (hb *HandlerBundle) AbandonHandler(c *gin.Context) {
	if err := hb.Assessments.Abandon(c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "abandoned"})
}
