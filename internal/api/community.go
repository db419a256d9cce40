package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uniwell/mindcare/internal/middleware"
)

func (hb *HandlerBundle) ListPostsHandler(c *gin.Context) {
	posts, err := hb.Community.ListPosts(c.Query("q"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (hb *HandlerBundle) CreatePostHandler(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	var input struct {
		Content   string   `json:"content"`
		Tags      []string `json:"tags"`
		Anonymous bool     `json:"anonymous"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	author := claims.Name
	if input.Anonymous {
		author = "Anonymous"
	}
	post, err := hb.Community.CreatePost(author, input.Content, input.Tags)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

func (hb *HandlerBundle) LikePostHandler(c *gin.Context) {
	if err := hb.Community.Like(c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "liked"})
}

func (hb *HandlerBundle) AddCommentHandler(c *gin.Context) {
	claims, _ := middleware.ClaimsFrom(c)
	var input struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	comment, err := hb.Community.AddComment(c.Param("id"), claims.Name, input.Content)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

func (hb *HandlerBundle) ListEventsHandler(c *gin.Context) {
	events, err := hb.Community.ListEvents(c.Query("kind"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (hb *HandlerBundle) ToggleRegistrationHandler(c *gin.Context) {
	registered, err := hb.Community.ToggleRegistration(c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"registered": registered})
}
