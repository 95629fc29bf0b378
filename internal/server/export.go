package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	exportservice "github.com/hotaeshwar/crm-sub000/internal/export/service"
)

func writeFile(c *gin.Context, file exportservice.File) {
	headers := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", file.Name),
	}
	c.DataFromReader(http.StatusOK, -1, file.ContentType, file.Content, headers)
}

func (s *Server) ExportInvoicePDF(c *gin.Context) {
	file, err := s.exportSvc.InvoicePDF(c.Request.Context(), exportservice.InvoicePDFRequest{
		InvoiceID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	writeFile(c, file)
}

func (s *Server) ExportInvoicesSpreadsheet(c *gin.Context) {
	from, err := parseOptionalTime(c.Query("from"), false)
	if err != nil {
		AbortWithError(c, newValidationError("from", "invalid_from", "invalid from"))
		return
	}

	to, err := parseOptionalTime(c.Query("to"), true)
	if err != nil {
		AbortWithError(c, newValidationError("to", "invalid_to", "invalid to"))
		return
	}

	req := exportservice.SpreadsheetRequest{}
	if from != nil {
		req.From = *from
	}
	if to != nil {
		req.To = *to
	}

	file, err := s.exportSvc.InvoicesSpreadsheet(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	writeFile(c, file)
}
