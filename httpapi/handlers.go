package httpapi

import (
	"encoding/json"
	"math"
	"net/http"
	"os"
	"runtime"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Idyll-Intelligent-Systems/QuantumTimeTravel/cost"
	"github.com/Idyll-Intelligent-Systems/QuantumTimeTravel/spec"
)

// PlanResponse is the wire form of a planning result. Cost is null when the
// plan failed or the total is not finite, so clients never receive an
// infinity sentinel.
type PlanResponse struct {
	OK     bool     `json:"ok"`
	Reason string   `json:"reason"`
	Path   []string `json:"path"`
	Cost   *float64 `json:"cost"`
}

// ValidatedEdge is one transition with its aggregated weight and full
// diagnostic breakdown.
type ValidatedEdge struct {
	Src          string          `json:"src"`
	Dst          string          `json:"dst"`
	Weight       float64         `json:"weight"`
	Breakdown    *cost.Breakdown `json:"breakdown"`
	WarningCount int             `json:"warning_count"`
}

// ValidateSummary aggregates the warning statistics of one validation run.
type ValidateSummary struct {
	TotalWarnings     int `json:"total_warnings"`
	EdgesWithWarnings int `json:"edges_with_warnings"`
	EdgeCount         int `json:"edge_count"`
}

// ValidatePolicy echoes the policy switches relevant to interpreting the
// validated weights.
type ValidatePolicy struct {
	AllowNegativeEdges bool `json:"allow_negative_edges"`
}

// ValidateResponse is the wire form of /api/spec/validate.
type ValidateResponse struct {
	Edges   []ValidatedEdge `json:"edges"`
	Policy  ValidatePolicy  `json:"policy"`
	Summary ValidateSummary `json:"summary"`
}

// handlePlan plans a cycle from the posted planning document.
func (s *Server) handlePlan(c *gin.Context) {
	var doc spec.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}
	if err := doc.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	res, err := planDocument(&doc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	resp := PlanResponse{OK: res.OK, Reason: res.Reason, Path: res.Path}
	if resp.Path == nil {
		resp.Path = []string{}
	}
	if res.OK && !math.IsInf(res.Cost, 0) && !math.IsNaN(res.Cost) {
		total := res.Cost
		resp.Cost = &total
	}

	s.log.Event("api_plan", map[string]any{
		"ok":     resp.OK,
		"path":   resp.Path,
		"cost":   resp.Cost, // nil when failed or non-finite
		"reason": resp.Reason,
	})

	s.mu.Lock()
	s.lastSpec = &doc
	s.lastPlan = &resp
	s.mu.Unlock()

	c.JSON(http.StatusOK, resp)
}

// handleValidate aggregates every transition of the posted document and
// returns per-edge breakdowns with a warning summary. With warned_only set,
// only edges carrying at least one warning are returned.
func (s *Server) handleValidate(c *gin.Context) {
	var doc spec.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	pol := doc.Policy.Policy()
	edges := make([]ValidatedEdge, 0, len(doc.Transitions))
	for _, t := range doc.Transitions {
		w, br, err := cost.Aggregate(cost.Attributes(t.Attributes), pol)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

			return
		}
		if doc.WarnedOnly && len(br.Warnings) == 0 {
			continue
		}
		edges = append(edges, ValidatedEdge{
			Src:          t.Src,
			Dst:          t.Dst,
			Weight:       w,
			Breakdown:    br,
			WarningCount: len(br.Warnings),
		})
	}

	resp := ValidateResponse{
		Edges:  edges,
		Policy: ValidatePolicy{AllowNegativeEdges: pol.AllowNegativeEdges},
	}
	for _, e := range edges {
		resp.Summary.TotalWarnings += e.WarningCount
		if e.WarningCount > 0 {
			resp.Summary.EdgesWithWarnings++
		}
	}
	resp.Summary.EdgeCount = len(edges)

	s.log.Event("api_spec_validate", map[string]any{
		"edges":          len(edges),
		"total_warnings": resp.Summary.TotalWarnings,
	})

	s.mu.Lock()
	s.lastSpec = &doc
	s.lastValidate = &resp
	s.mu.Unlock()

	c.JSON(http.StatusOK, resp)
}

// handleStatus reports version, run identity, and summaries of the most
// recent plan and validation.
func (s *Server) handleStatus(c *gin.Context) {
	info := gin.H{
		"status":  "ok",
		"version": Version,
		"run_id":  s.runID,
		"go":      runtime.Version(),
	}

	s.mu.Lock()
	if s.lastPlan != nil {
		info["last_plan"] = s.lastPlan
	}
	if s.lastValidate != nil {
		info["last_validate"] = s.lastValidate.Summary
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, info)
}

// handleSpecLast returns the last submitted document, unless its serialized
// form exceeds the size cap.
func (s *Server) handleSpecLast(c *gin.Context) {
	s.mu.Lock()
	last := s.lastSpec
	s.mu.Unlock()

	if last == nil {
		c.JSON(http.StatusOK, gin.H{"spec": nil})

		return
	}
	if data, err := json.Marshal(last); err != nil || len(data) > maxCachedSpecBytes {
		c.JSON(http.StatusOK, gin.H{"spec": nil, "note": "last spec too large to return"})

		return
	}

	c.JSON(http.StatusOK, gin.H{"spec": last})
}

// handleLogsTail returns the trailing event-log lines; limit defaults to
// 200 and is clamped to [1,1000].
func (s *Server) handleLogsTail(c *gin.Context) {
	limit := 200
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 1000 {
		limit = 1000
	}

	lines, err := s.log.Tail(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, gin.H{"lines": lines})
}

// handleLogsDownload streams the current event-log file.
func (s *Server) handleLogsDownload(c *gin.Context) {
	path := s.log.Path()
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no log file"})

		return
	}

	c.FileAttachment(path, "events.log")
}
