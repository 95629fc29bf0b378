package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListOverdue(c *gin.Context) {
	resp, err := s.reminderSvc.Overdue(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) MarkAlertFired(c *gin.Context) {
	state, err := s.reminderSvc.MarkAlertFired(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"alert_state": state}})
}

func (s *Server) MuteAlert(c *gin.Context) {
	state, err := s.reminderSvc.MuteAlert(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"alert_state": state}})
}

func (s *Server) ReplayAlert(c *gin.Context) {
	state, err := s.reminderSvc.ReplayAlert(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"alert_state": state}})
}
