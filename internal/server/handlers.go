package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ernestocullari/audience-pathways/internal/model"
)

// resolveRequest is the body accepted by the resolve and tool endpoints.
type resolveRequest struct {
	Query string `json:"query"`
	Sheet string `json:"sheet"`
}

// handleResolve fetches the taxonomy fresh and resolves the query against it.
// Structural dataset problems and no-match outcomes come back as 200 with
// success=false; only transport failures are HTTP errors.
func (s *Server) handleResolve(c *gin.Context) {
	result, ok := s.resolve(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleToolSearch serves the hosted agent's tool callback. The result is
// wrapped in a tool content payload: flattened text for the model plus the
// structured result.
func (s *Server) handleToolSearch(c *gin.Context) {
	result, ok := s.resolve(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"content": []gin.H{
			{"type": "text", "text": result.Summary()},
		},
		"structured": result,
		"is_error":   false,
	})
}

// handleChat proxies a user message to the hosted agent framework.
func (s *Server) handleChat(c *gin.Context) {
	if s.agent == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "agent proxy is not configured"})
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, err := s.agent.Send(c.Request.Context(), req.Message)
	if err != nil {
		s.logger.Error("agent proxy failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// resolve handles the shared fetch-and-resolve path. It writes the HTTP error
// response itself and reports ok=false when the caller should stop.
func (s *Server) resolve(c *gin.Context) (model.ResolutionResult, bool) {
	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return model.ResolutionResult{}, false
	}

	sheet := req.Sheet
	if sheet == "" {
		sheet = s.cfg.SheetName
	}

	dataset, err := s.fetcher.Fetch(c.Request.Context(), sheet)
	if err != nil {
		s.logger.Error("dataset fetch failed", "sheet", sheet, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return model.ResolutionResult{}, false
	}

	result := s.resolver.Resolve(req.Query, dataset)
	s.record(c, req.Query, &result)
	return result, true
}

// record logs the resolution to the history store when one is configured.
// History failures never affect the response.
func (s *Server) record(c *gin.Context, query string, result *model.ResolutionResult) {
	if s.history == nil {
		return
	}

	entry := model.HistoryEntry{
		Query:         query,
		Outcome:       result.Outcome,
		MatchedColumn: result.MatchedColumn,
		Confidence:    result.Confidence,
	}
	if top := result.Top(); top != nil {
		entry.TopPathway = top.Pathway.String()
		entry.TopScore = top.Score
	}

	if err := s.history.RecordResolution(c.Request.Context(), entry); err != nil {
		s.logger.Warn("failed to record resolution history", "error", err)
	}
}
