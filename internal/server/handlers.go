package server

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/llehouerou/folio/internal/content"
	"github.com/llehouerou/folio/internal/tracker"
)

type pageData struct {
	*content.Portfolio
	Skills []content.SkillGroup
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageData{
		Portfolio: s.portfolio,
		Skills:    s.portfolio.SkillGroups(),
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handlePortfolio(c *gin.Context) {
	c.JSON(http.StatusOK, s.portfolio)
}

// handleTrack runs the nearest-to-center selection over item centers given
// as a comma separated list and the container center:
//
//	GET /api/track?centers=100,500,900&container=480  ->  {"index":1}
//
// With no centers the selection is unchanged and index is the optional
// current parameter (default 0). current must be a valid index into
// centers, or 0 when there are none; non-finite numbers are rejected.
func (s *Server) handleTrack(c *gin.Context) {
	container, err := parseFinite(c.Query("container"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "container: expected a finite number"})
		return
	}
	centers, err := parseCenters(c.Query("centers"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "centers: " + err.Error()})
		return
	}
	current, err := strconv.Atoi(c.DefaultQuery("current", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current: expected an integer"})
		return
	}
	if current < 0 || current >= max(len(centers), 1) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "current: out of range"})
		return
	}

	samples := make([]tracker.Sample, len(centers))
	for i, center := range centers {
		samples[i] = tracker.Sample{
			Index:    i,
			Distance: tracker.Distance(tracker.Rect{X: container}, tracker.Rect{X: center}, tracker.Horizontal),
		}
	}
	if idx, ok := tracker.Nearest(samples); ok {
		current = idx
	}
	c.JSON(http.StatusOK, gin.H{"index": current})
}

func parseCenters(raw string) ([]float64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	centers := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := parseFinite(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		centers = append(centers, v)
	}
	return centers, nil
}

var errNotFinite = errors.New("not a finite number")

func parseFinite(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}
