package ui

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"drawcast/adapters/stats/engine"
	"drawcast/domain/core"
)

// drawRequest mirrors the original form fields: a date plus the two
// comma-separated value groups.
type drawRequest struct {
	Date    string `json:"date" binding:"required"`
	Numbers string `json:"numbers" binding:"required"`
	Stars   string `json:"stars" binding:"required"`
}

type predictRequest struct {
	Date  string   `json:"date"`
	Dates []string `json:"dates"`
}

// handleIndex lists all stored predictions with their scores.
func (s *Server) handleIndex(c *gin.Context) {
	preds, err := s.service.ListPredictions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list predictions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"predictions": preds})
}

// handleAddDraw stores one confirmed historical draw.
func (s *Server) handleAddDraw(c *gin.Context) {
	var req drawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	d, err := s.service.AddHistorical(c.Request.Context(), date, req.Numbers, req.Stars)
	if err != nil {
		if core.IsRecordError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save draw"})
		return
	}
	c.JSON(http.StatusCreated, d)
}

// handlePredict generates and stores a prediction for one date, or a
// batch when "dates" is supplied.
func (s *Server) handlePredict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Dates) > 0 {
		dates := make([]time.Time, 0, len(req.Dates))
		for _, ds := range req.Dates {
			date, err := time.Parse("2006-01-02", ds)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "dates must be YYYY-MM-DD"})
				return
			}
			dates = append(dates, date)
		}
		preds, err := s.service.GenerateBatch(c.Request.Context(), dates)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "batch prediction failed"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"predictions": preds})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	p, err := s.service.GeneratePrediction(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed"})
		return
	}
	c.JSON(http.StatusCreated, p)
}

// handleRecordResult stores the actual outcome for a predicted date and
// returns the scored prediction.
func (s *Server) handleRecordResult(c *gin.Context) {
	var req drawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	p, err := s.service.RecordResult(c.Request.Context(), date, req.Numbers, req.Stars)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no prediction for that date"})
			return
		}
		if core.IsRecordError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record result"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// handleStats exposes aggregation diagnostics: both frequency summaries
// and the strongest co-occurring pairs.
func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.service.BuildStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"numbers":      engine.SummarizeFrequency(stats.NumberFreq),
		"stars":        engine.SummarizeFrequency(stats.StarFreq),
		"top_pairs":    engine.TopPairs(stats.CoOccurrence, 10),
		"skipped_sets": stats.SkippedSets,
	})
}
