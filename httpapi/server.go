// Package httpapi exposes the planning core over HTTP.
//
// Endpoints:
//
//	POST /api/plan          – plan A→B→C→A from a planning document
//	POST /api/spec/validate – per-transition cost breakdowns and warnings
//	GET  /health            – liveness probe
//	GET  /api/status        – version, run ID, last plan/validate summary
//	GET  /api/spec/last     – last submitted document (size-capped)
//	GET  /api/logs/tail     – trailing event-log lines
//	GET  /api/logs/download – the current event-log file
//
// Every request is tagged with a UUID echoed in X-Request-Id (plus the
// process-wide X-Run-Id) and logged as an http_request/http_response event
// pair. The server keeps a small in-memory cache of the last submitted
// document and results for UI convenience; nothing is persisted.
package httpapi

import (
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Idyll-Intelligent-Systems/QuantumTimeTravel/eventlog"
	"github.com/Idyll-Intelligent-Systems/QuantumTimeTravel/planner"
	"github.com/Idyll-Intelligent-Systems/QuantumTimeTravel/spec"
)

// Version is the API version reported by /api/status.
const Version = "0.1.0"

// maxCachedSpecBytes caps the serialized size of the document returned by
// /api/spec/last.
const maxCachedSpecBytes = 1_000_000

// Server holds the handlers and the last-result cache.
type Server struct {
	log   *eventlog.Logger
	runID string

	mu           sync.Mutex
	lastSpec     *spec.Document
	lastPlan     *PlanResponse
	lastValidate *ValidateResponse
}

// New creates a Server. The run ID comes from QTT_RUN_ID when set, so
// restarts under an orchestrator keep a stable identity; otherwise a fresh
// UUID is generated.
func New(log *eventlog.Logger) *Server {
	runID := os.Getenv("QTT_RUN_ID")
	if runID == "" {
		runID = uuid.NewString()
	}

	return &Server{log: log, runID: runID}
}

// Router builds the gin engine with logging middleware and all routes
// registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog())

	r.GET("/health", s.handleHealth)
	api := r.Group("/api")
	{
		api.POST("/plan", s.handlePlan)
		api.POST("/spec/validate", s.handleValidate)
		api.GET("/spec/last", s.handleSpecLast)
		api.GET("/status", s.handleStatus)
		api.GET("/logs/tail", s.handleLogsTail)
		api.GET("/logs/download", s.handleLogsDownload)
	}

	return r
}

// requestLog tags each request with a UUID, sets the identity headers, and
// emits the http_request/http_response event pair.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-Id", requestID)
		c.Header("X-Run-Id", s.runID)

		bodyLen := c.Request.ContentLength
		if bodyLen < 0 {
			bodyLen = 0
		}
		s.log.Event("http_request", map[string]any{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"body_len":   bodyLen,
			"request_id": requestID,
			"run_id":     s.runID,
		})

		c.Next()

		s.log.Event("http_response", map[string]any{
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"request_id": requestID,
			"run_id":     s.runID,
		})
	}
}

// planDocument runs the document→plan pipeline: build the weighted machine
// under the document policy, then plan the cycle with negative edges
// forbidden exactly when the policy disallows them.
func planDocument(doc *spec.Document) (planner.Result, error) {
	f, abc, pol, err := spec.Build(doc)
	if err != nil {
		return planner.Result{}, err
	}

	return planner.PlanCycle(f, abc[0], abc[1], abc[2], !pol.AllowNegativeEdges), nil
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
