package server

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tosurajitc/Kraft-Henz-Poc/internal/aggregate"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/domain"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/importer"
	"github.com/tosurajitc/Kraft-Henz-Poc/internal/intelligence"
)

const noDatasetMsg = "no dataset loaded; upload a tracker file first"

func (s *Server) handleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing multipart field 'file'"})
		return
	}
	if fileHeader.Size > s.cfg.Upload.MaxBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("file exceeds the %d byte upload limit", s.cfg.Upload.MaxBytes),
		})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("opening upload: %v", err)})
		return
	}
	defer f.Close()

	var rows []importer.RawRow
	switch strings.ToLower(filepath.Ext(fileHeader.Filename)) {
	case ".xlsx", ".xlsm":
		rows, err = importer.ReadXLSX(f)
	case ".csv":
		rows, err = importer.ReadCSV(f)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type (want .xlsx, .xlsm or .csv)"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	records, issues := importer.Normalize(rows)
	ds := domain.NewDataset(fileHeader.Filename, records)
	s.replace(ds, issues)

	c.JSON(http.StatusOK, gin.H{
		"dataset_id":   ds.ID,
		"source":       ds.Source,
		"record_count": len(ds.Records),
		"issue_count":  len(issues),
		"issues":       issues,
	})
}

func (s *Server) handleOverview(c *gin.Context) {
	ds, _ := s.snapshot()
	if ds == nil {
		c.JSON(http.StatusConflict, gin.H{"error": noDatasetMsg})
		return
	}
	c.JSON(http.StatusOK, aggregate.BuildOverview(ds.Records))
}

func (s *Server) handleGantt(c *gin.Context) {
	ds, _ := s.snapshot()
	if ds == nil {
		c.JSON(http.StatusConflict, gin.H{"error": noDatasetMsg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"intervals": aggregate.GanttIntervals(ds.Records)})
}

func (s *Server) handleCounts(c *gin.Context) {
	ds, _ := s.snapshot()
	if ds == nil {
		c.JSON(http.StatusConflict, gin.H{"error": noDatasetMsg})
		return
	}

	dim, err := aggregate.ParseDimension(c.Param("dimension"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	counts, err := aggregate.CountBy(ds.Records, dim)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dimension": dim, "counts": counts})
}

func (s *Server) handleIssues(c *gin.Context) {
	ds, issues := s.snapshot()
	if ds == nil {
		c.JSON(http.StatusConflict, gin.H{"error": noDatasetMsg})
		return
	}
	if issues == nil {
		issues = []importer.Issue{}
	}
	c.JSON(http.StatusOK, gin.H{"dataset_id": ds.ID, "issues": issues})
}

type askRequest struct {
	Question string `json:"question"`
}

func (s *Server) handleAsk(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ds, _ := s.snapshot()
	ans, err := s.answer.Ask(c.Request.Context(), req.Question, ds)
	if err != nil {
		if errors.Is(err, intelligence.ErrNoDataset) {
			c.JSON(http.StatusConflict, gin.H{"error": noDatasetMsg})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ans)
}
