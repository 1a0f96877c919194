package app

import (
	"errors"
	"net/http"
	"strings"

	"example/cosmic-api/app/mailer"
	"example/cosmic-api/app/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EmailReport sends a stored report to the owner or to a given address.
// Someone else's report is reported as not found.
func (s *Server) EmailReport(c *gin.Context) {
	reportID, ok := parseReportID(c)
	if !ok {
		return
	}
	var req models.EmailReportRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.UserID.Valid() {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User ID is required."})
		return
	}

	ctx := c.Request.Context()
	logger := s.log(c).With(zap.Int64("report_id", reportID), zap.Int64("user_id", req.UserID.Int64()))

	rep, err := s.store.GetReport(ctx, reportID)
	if err != nil && !errors.Is(err, ErrReportNotFound) {
		logger.Error("load report failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load report."})
		return
	}
	if err != nil || rep.UserID != req.UserID.Int64() {
		c.JSON(http.StatusNotFound, gin.H{"message": "Report not found."})
		return
	}

	recipient := strings.TrimSpace(req.RecipientEmail)
	if recipient != "" {
		if recipient, err = mailer.ValidateAddress(recipient); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Recipient email is invalid."})
			return
		}
	} else {
		owner, err := s.store.GetUserByID(ctx, req.UserID.Int64())
		if err != nil {
			logger.Error("load report owner failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send email."})
			return
		}
		recipient = owner.Email
	}

	msg, err := mailer.RenderReport(rep)
	if err != nil {
		logger.Error("render report email failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send email."})
		return
	}
	msg.To = recipient

	if err := s.mailer.Send(ctx, msg); err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			emailsSent.WithLabelValues("not_configured").Inc()
			logger.Warn("email provider not configured")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Email service is not configured."})
			return
		}
		emailsSent.WithLabelValues("error").Inc()
		logger.Error("send report email failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send email."})
		return
	}

	emailsSent.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Report sent to " + recipient + "."})
}
