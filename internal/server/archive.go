package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hotaeshwar/crm-sub000/internal/archive"
)

type archiveRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// ArchivePeriod exports the selected period and deletes its invoices.
// The workbook is returned in the response so nothing is lost.
func (s *Server) ArchivePeriod(c *gin.Context) {
	var req archiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	result, err := s.archiveSvc.ArchivePeriod(c.Request.Context(), archive.Request{
		Year:  req.Year,
		Month: time.Month(req.Month),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("X-Archived-Invoices", strconv.FormatInt(result.Deleted, 10))
	writeFile(c, result.File)
}
