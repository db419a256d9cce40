package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uniwell/mindcare/internal/middleware"
	"github.com/uniwell/mindcare/internal/models"
	"github.com/uniwell/mindcare/internal/services"
)

// SignInHandler opens a session. Any credentials are accepted; the role
// is self-declared.
func (hb *HandlerBundle) SignInHandler(c *gin.Context) {
	var input struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		Role        string `json:"role"`
		Institution string `json:"institution"`
		Branch      string `json:"branch"`
		Age         int    `json:"age"`
		Area        string `json:"area"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	role := models.Role(input.Role)
	if input.Role == "" {
		role = models.RoleStudent
	}
	res, err := hb.Sessions.SignIn(services.SignInInput{
		Name:        input.Name,
		Email:       input.Email,
		Password:    input.Password,
		Role:        role,
		Institution: input.Institution,
		Branch:      input.Branch,
		Age:         input.Age,
		Area:        input.Area,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":   res.Token,
		"user_id": res.UserID,
		"role":    res.Role,
	})
}

func (hb *HandlerBundle) SignOutHandler(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	hb.Sessions.SignOut(claims.UID)
	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}

// SessionHandler returns the live UI session plus the quote of the day.
func (hb *HandlerBundle) SessionHandler(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	sess := hb.Sessions.Current(claims.UID)
	if sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return
	}
	quote := services.QuoteOf(time.Now())
	c.JSON(http.StatusOK, gin.H{
		"user_id":      sess.UserID,
		"name":         sess.Name,
		"role":         sess.Role,
		"current_page": sess.CurrentPage,
		"theme":        sess.Theme,
		"language":     sess.Language,
		"quote":        gin.H{"text": quote.Text, "source": quote.Source},
	})
}

func (hb *HandlerBundle) NavigateHandler(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	var input struct {
		Page string `json:"page" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := hb.Sessions.Navigate(claims.UID, input.Page); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"current_page": input.Page})
}

// PreferencesHandler updates theme and language in one call.
func (hb *HandlerBundle) PreferencesHandler(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	var input struct {
		Theme    string `json:"theme"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Theme != "" {
		if err := hb.Sessions.SetTheme(claims.UID, input.Theme); err != nil {
			respondErr(c, err)
			return
		}
	}
	if input.Language != "" {
		if err := hb.Sessions.SetLanguage(claims.UID, input.Language); err != nil {
			respondErr(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
