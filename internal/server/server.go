// Package server exposes the read-only HTTP surface consumed by the
// dashboard front-end.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"stock-sentiment-api/internal/analysis"
	"stock-sentiment-api/internal/store"
	"stock-sentiment-api/internal/types"
)

// Server holds the handlers' dependencies.
type Server struct {
	svc     *analysis.Service
	timeout time.Duration
}

// New creates the HTTP server facade.
func New(cfg *store.Config, svc *analysis.Service) *Server {
	return &Server{
		svc:     svc,
		timeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), CORS())

	r.GET("/", s.handleRoot)
	r.GET("/analyze/:ticker", s.handleAnalyze)
	r.GET("/earnings/:ticker", s.handleEarnings)
	r.GET("/calendar", s.handleCalendar)

	return r
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok", "message": "Stock Sentiment API is running"})
}

// handleAnalyze returns the general sentiment verdict. The zero-article
// case is a Neutral 200 payload by default; ?strict=true turns it into
// a 404 for clients that want the older not-found behavior.
func (s *Server) handleAnalyze(c *gin.Context) {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	ticker := c.Param("ticker")
	verdict := s.svc.Analyze(ctx, ticker)

	if c.Query("strict") == "true" && verdict.TotalArticles == 0 && verdict.FinalSentiment == types.VerdictNeutral {
		c.JSON(404, gin.H{"error": fmt.Sprintf("No news found for %s", verdict.Ticker)})
		return
	}

	c.JSON(200, verdict)
}

func (s *Server) handleEarnings(c *gin.Context) {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	c.JSON(200, s.svc.Earnings(ctx, c.Param("ticker")))
}

func (s *Server) handleCalendar(c *gin.Context) {
	ctx, cancel := s.requestContext(c)
	defer cancel()

	c.JSON(200, s.svc.Calendar(ctx))
}

func (s *Server) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), s.timeout)
}
