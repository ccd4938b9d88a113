package server

import (
	"net/http"
	"strings"

	"github.com/alkime/pillars/internal/content"
	"github.com/alkime/pillars/internal/pillars"
	"github.com/gin-gonic/gin"
)

// generateRequest is the body for both generation endpoints. Day is optional
// (empty means today); IdeaTitle is only used by the briefs endpoint.
type generateRequest struct {
	Day       string `json:"day"`
	Context   string `json:"context"`
	IdeaTitle string `json:"idea_title"`
}

// handleSchedule returns the full weekly pillar schedule, including the
// Friday alternative when one is configured.
func (s *Server) handleSchedule(c *gin.Context) {
	schedule := make(map[string]pillars.Pillar, len(pillars.Days()))
	for _, day := range pillars.Days() {
		schedule[day] = s.schedule.ForDay(day)
	}

	response := gin.H{"pillars": schedule}
	if alternative, ok := s.schedule.FridayAlternative(); ok {
		response["friday_alternative"] = alternative
	}

	c.JSON(http.StatusOK, response)
}

// handlePillar returns the pillar for one weekday. An unknown day returns the
// zero pillar rather than 404, matching the soft-fallback lookup contract.
func (s *Server) handlePillar(c *gin.Context) {
	day := c.Param("day")

	c.JSON(http.StatusOK, gin.H{
		"day":    strings.ToLower(day),
		"pillar": s.schedule.ForDay(day),
	})
}

// handleIdeas runs the idea-generation action for the request's day.
func (s *Server) handleIdeas(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gc := content.GenerationContext{Day: req.Day, Context: req.Context}

	ideas, err := s.generator.GenerateIdeas(c.Request.Context(), gc)
	if err != nil {
		s.logger.Error("Idea generation failed", "day", req.Day, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

		return
	}

	// An empty batch is a valid outcome; degenerate model output is not an
	// error at this boundary.
	if ideas == nil {
		ideas = []content.Idea{}
	}

	c.JSON(http.StatusOK, gin.H{
		"pillar": s.generator.Pillar(gc),
		"ideas":  ideas,
	})
}

// handleBriefs runs the brief-post action for a selected idea title.
func (s *Server) handleBriefs(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.IdeaTitle) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "idea_title is required"})
		return
	}

	gc := content.GenerationContext{Day: req.Day, Context: req.Context}
	idea := content.Idea{Title: req.IdeaTitle}

	posts, err := s.generator.GenerateBriefPosts(c.Request.Context(), idea, gc)
	if err != nil {
		s.logger.Error("Brief post generation failed", "day", req.Day, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})

		return
	}

	if posts == nil {
		posts = []string{}
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
