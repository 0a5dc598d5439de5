// Package api exposes the analysis core over HTTP for the dashboard
// collaborator.
package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mahmoudomarus/RAGI/internal/agent"
	"github.com/mahmoudomarus/RAGI/internal/collector"
	"github.com/mahmoudomarus/RAGI/internal/model"
	"github.com/mahmoudomarus/RAGI/internal/recorder"
)

// Server wires HTTP endpoints around the agent and collector.
type Server struct {
	Router       *gin.Engine
	Agent        *agent.Agent
	Collector    *collector.Collector
	Recorder     recorder.Recorder
	DefaultRange string
}

// NewServer builds the router with all routes registered.
func NewServer(ag *agent.Agent, col *collector.Collector, rec recorder.Recorder, defaultRange string) *Server {
	r := gin.New()
	r.Use(gin.Recovery())

	s := &Server{
		Router:       r,
		Agent:        ag,
		Collector:    col,
		Recorder:     rec,
		DefaultRange: defaultRange,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.GET("/health", s.health)

	api := s.Router.Group("/api/v1")
	{
		api.GET("/indicators", s.getIndicators)
		api.GET("/signal", s.getSignal)
		api.GET("/insights", s.getInsights)
		api.GET("/summary", s.getSummary)
		api.GET("/snapshot", s.getSnapshot)
		api.POST("/knowledge", s.addKnowledge)
		api.GET("/query", s.query)
	}
}

// Run starts the HTTP server on the given address.
func (s *Server) Run(addr string) error {
	log.Printf("[INFO] http server listening on %s", addr)
	return s.Router.Run(addr)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"symbol":    s.Collector.Symbol,
		"documents": s.Agent.KnowledgeSize(),
	})
}

func (s *Server) seriesRange(c *gin.Context) string {
	if rng := c.Query("range"); rng != "" {
		return rng
	}
	return s.DefaultRange
}

func (s *Server) collect(c *gin.Context) (*model.PriceSeries, bool) {
	series, err := s.Collector.Collect(s.seriesRange(c))
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, model.ErrInvalidArgument) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return nil, false
	}
	return series, true
}

func (s *Server) getIndicators(c *gin.Context) {
	series, ok := s.collect(c)
	if !ok {
		return
	}
	set, err := s.Agent.FetchIndicators(series)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"symbol":     series.Symbol,
		"bars":       series.Len(),
		"indicators": set,
	})
}

func (s *Server) getSignal(c *gin.Context) {
	series, ok := s.collect(c)
	if !ok {
		return
	}
	sig, err := s.Agent.GenerateTradingSignals(series)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.Recorder.RecordSignal(sig); err != nil {
		log.Printf("[WARN] record signal failed: %v", err)
	}
	c.JSON(http.StatusOK, sig)
}

func (s *Server) getInsights(c *gin.Context) {
	series, ok := s.collect(c)
	if !ok {
		return
	}
	insights, err := s.Agent.Analyze(series)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.Recorder.RecordInsights(series.Symbol, insights); err != nil {
		log.Printf("[WARN] record insights failed: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"symbol": series.Symbol, "insights": insights})
}

func (s *Server) getSummary(c *gin.Context) {
	series, ok := s.collect(c)
	if !ok {
		return
	}
	stats, err := s.Agent.Summarize(series)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) getSnapshot(c *gin.Context) {
	snap, err := s.Collector.Snapshot()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

type addKnowledgeRequest struct {
	Texts []string `json:"texts" binding:"required"`
}

func (s *Server) addKnowledge(c *gin.Context) {
	var req addKnowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.Agent.AddKnowledge(c.Request.Context(), req.Texts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": len(req.Texts), "documents": s.Agent.KnowledgeSize()})
}

func (s *Server) query(c *gin.Context) {
	question := c.Query("q")
	if question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	k := 3
	if raw := c.Query("k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "k must be an integer"})
			return
		}
		k = parsed
	}

	results, err := s.Agent.Query(c.Request.Context(), question, k)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, model.ErrInvalidArgument) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	if err := s.Recorder.RecordQuery(question, results); err != nil {
		log.Printf("[WARN] record query failed: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"question": question, "results": results})
}
