package app

import (
	"errors"
	"net/http"

	"example/cosmic-api/app/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// loadOwnedReport applies the shared checks for owner-only report actions:
// 401 without a user id, 404 for an unknown report, 403 for someone else's.
func (s *Server) loadOwnedReport(c *gin.Context) (models.Report, bool) {
	reportID, ok := parseReportID(c)
	if !ok {
		return models.Report{}, false
	}
	var req models.OwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.UserID.Valid() {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User ID is required."})
		return models.Report{}, false
	}

	rep, err := s.store.GetReport(c.Request.Context(), reportID)
	if err != nil {
		if errors.Is(err, ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Report not found."})
			return models.Report{}, false
		}
		s.log(c).Error("load report failed", zap.Int64("report_id", reportID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load report."})
		return models.Report{}, false
	}
	if rep.UserID != req.UserID.Int64() {
		c.JSON(http.StatusForbidden, gin.H{"message": "You do not have permission to modify this report."})
		return models.Report{}, false
	}
	return rep, true
}

// ShareReport issues a fresh public share token for the report.
func (s *Server) ShareReport(c *gin.Context) {
	rep, ok := s.loadOwnedReport(c)
	if !ok {
		return
	}

	token, err := s.store.ShareReport(c.Request.Context(), rep.ID)
	if err != nil {
		if errors.Is(err, ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Report not found."})
			return
		}
		s.log(c).Error("share report failed", zap.Int64("report_id", rep.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to share report."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Report shared successfully.",
		"shareLink":  "/share/report/" + token,
		"shareToken": token,
	})
}

// StopSharing revokes the report's public token.
func (s *Server) StopSharing(c *gin.Context) {
	rep, ok := s.loadOwnedReport(c)
	if !ok {
		return
	}

	if err := s.store.StopSharing(c.Request.Context(), rep.ID); err != nil {
		if errors.Is(err, ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Report not found."})
			return
		}
		s.log(c).Error("stop sharing failed", zap.Int64("report_id", rep.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to stop sharing report."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Report sharing stopped."})
}

// SharedReport is the public, unauthenticated view of a shared report.
// Unknown and revoked tokens get the same 404.
func (s *Server) SharedReport(c *gin.Context) {
	token := c.Param("share_token")
	if len(token) != 2*shareTokenBytes {
		c.JSON(http.StatusNotFound, gin.H{"message": "Shared report not found."})
		return
	}

	rep, err := s.store.GetSharedReport(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Shared report not found."})
			return
		}
		s.log(c).Error("load shared report failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load shared report."})
		return
	}

	c.JSON(http.StatusOK, models.SharedReportResponse{
		ReportTitle: rep.Title,
		Slides:      rep.Slides[:],
	})
}
