package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	perioddomain "github.com/hotaeshwar/crm-sub000/internal/period/domain"
)

func (s *Server) ListYears(c *gin.Context) {
	years, err := s.periodSvc.Years(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"years": years}})
}

func (s *Server) YearSummary(c *gin.Context) {
	year, err := parseYearParam(c.Param("year"))
	if err != nil {
		AbortWithError(c, newValidationError("year", "invalid_year", "invalid year"))
		return
	}

	resp, err := s.periodSvc.Year(c.Request.Context(), perioddomain.YearRequest{Year: year})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) MonthSummary(c *gin.Context) {
	year, err := parseYearParam(c.Param("year"))
	if err != nil {
		AbortWithError(c, newValidationError("year", "invalid_year", "invalid year"))
		return
	}

	month, err := parseMonthParam(c.Param("month"))
	if err != nil {
		AbortWithError(c, newValidationError("month", "invalid_month", "invalid month"))
		return
	}

	resp, err := s.periodSvc.Month(c.Request.Context(), perioddomain.MonthRequest{
		Year:  year,
		Month: month,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DayInvoices(c *gin.Context) {
	date, err := parseDateOnly(c.Param("date"))
	if err != nil {
		AbortWithError(c, newValidationError("date", "invalid_date", "invalid date"))
		return
	}

	resp, err := s.periodSvc.Day(c.Request.Context(), perioddomain.DayRequest{
		Date:   date,
		Status: strings.TrimSpace(c.Query("status")),
		Query:  strings.TrimSpace(c.Query("q")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"invoices": resp}})
}
