package app

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"example/cosmic-api/app/models"
	"example/cosmic-api/app/report"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenerateReport spends one credit on a new natal chart report.
// Users without credits are rejected before the completion call. The
// decrement and the insert share one transaction.
func (s *Server) GenerateReport(c *gin.Context) {
	var req models.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}
	in := models.BirthInput{
		Name:       strings.TrimSpace(req.Name),
		BirthDate:  strings.TrimSpace(req.BirthDate),
		BirthTime:  strings.TrimSpace(req.BirthTime),
		BirthPlace: strings.TrimSpace(req.BirthPlace),
	}
	if !req.UserID.Valid() || in.Name == "" || in.BirthDate == "" || in.BirthTime == "" || in.BirthPlace == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields (userId, name, birthDate, birthTime, birthPlace) are required for report generation."})
		return
	}

	ctx := c.Request.Context()
	logger := s.log(c).With(zap.Int64("user_id", req.UserID.Int64()))

	credits, err := s.store.Credits(ctx, req.UserID.Int64())
	if err != nil {
		logger.Error("load credits failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to check report credits."})
		return
	}
	if credits <= 0 {
		reportsGenerated.WithLabelValues("no_credits").Inc()
		c.JSON(http.StatusPaymentRequired, gin.H{"message": "Insufficient report credits. Please purchase more to generate a report."})
		return
	}

	text, err := s.complete(ctx, report.BuildPrompt(in))
	if err != nil {
		reportsGenerated.WithLabelValues("llm_error").Inc()
		logger.Error("completion failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate report. Please try again later."})
		return
	}

	rep := models.Report{
		UserID: req.UserID.Int64(),
		Title:  report.Title(in.Name),
		Input:  in,
		Slides: s.extractor.Extract(text),
	}
	if sign, err := report.SunSign(in.BirthDate); err == nil {
		rep.SunSign = sign
	} else {
		logger.Debug("sun sign not derived", zap.String("birth_date", in.BirthDate))
	}

	remaining, err := s.store.SaveReportWithCredit(ctx, &rep)
	if err != nil {
		if errors.Is(err, ErrInsufficientCredits) {
			reportsGenerated.WithLabelValues("no_credits").Inc()
			c.JSON(http.StatusPaymentRequired, gin.H{"message": "Insufficient report credits. Please purchase more to generate a report."})
			return
		}
		reportsGenerated.WithLabelValues("save_error").Inc()
		logger.Error("save report failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Report generated but failed to save. No credit was used. Please contact support.",
			"saved":   false,
			"report": models.SharedReportResponse{
				ReportTitle: rep.Title,
				Slides:      rep.Slides[:],
			},
		})
		return
	}

	reportsGenerated.WithLabelValues("ok").Inc()
	logger.Info("report generated", zap.Int64("report_id", rep.ID), zap.Int("credits_remaining", remaining))
	c.JSON(http.StatusOK, models.GenerateReportResponse{
		ReportID:         rep.ID,
		ReportTitle:      rep.Title,
		SunSign:          rep.SunSign,
		Slides:           rep.Slides[:],
		CreditsRemaining: remaining,
	})
}

func (s *Server) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.llmTimeout())
	defer cancel()

	start := time.Now()
	defer func() { llmLatency.Observe(time.Since(start).Seconds()) }()
	return s.completer.Complete(ctx, report.SystemInstruction, prompt)
}

// MyReports lists the user's reports, newest first.
func (s *Server) MyReports(c *gin.Context) {
	userID, err := models.ParseUserID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A valid user ID is required."})
		return
	}

	reports, err := s.store.ListReports(c.Request.Context(), userID.Int64())
	if err != nil {
		s.log(c).Error("list reports failed", zap.Int64("user_id", userID.Int64()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch reports."})
		return
	}
	if len(reports) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No reports found for this user."})
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetReport returns one full report to its owner.
func (s *Server) GetReport(c *gin.Context) {
	reportID, ok := parseReportID(c)
	if !ok {
		return
	}
	userID, err := models.ParseUserID(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "User ID is required."})
		return
	}

	rep, err := s.store.GetReport(c.Request.Context(), reportID)
	if err != nil {
		if errors.Is(err, ErrReportNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Report not found."})
			return
		}
		s.log(c).Error("load report failed", zap.Int64("report_id", reportID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch report."})
		return
	}
	if rep.UserID != userID.Int64() {
		c.JSON(http.StatusForbidden, gin.H{"message": "You do not have access to this report."})
		return
	}

	c.JSON(http.StatusOK, models.ReportResponse{
		ID:         rep.ID,
		Title:      rep.Title,
		Input:      rep.Input,
		SunSign:    rep.SunSign,
		Slides:     rep.Slides[:],
		IsShared:   rep.IsShared,
		ShareToken: rep.ShareToken,
		CreatedAt:  rep.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// UserCredits returns the user's current balance.
func (s *Server) UserCredits(c *gin.Context) {
	userID, err := models.ParseUserID(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A valid user ID is required."})
		return
	}

	credits, err := s.store.Credits(c.Request.Context(), userID.Int64())
	if err != nil {
		s.log(c).Error("load credits failed", zap.Int64("user_id", userID.Int64()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch credits."})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"userId":            userID.Int64(),
		"credits_available": credits,
	})
}

// parseReportID writes a 400 and returns false when :reportId is not a positive integer.
func parseReportID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("reportId"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid report ID."})
		return 0, false
	}
	return id, true
}

// ZodiacSigns returns the sign catalogue, or one sign when ?sign= is given.
func ZodiacSigns(c *gin.Context) {
	key := c.Query("sign")
	if key == "" {
		c.JSON(http.StatusOK, report.Signs)
		return
	}
	sign, ok := report.LookupSign(key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Zodiac sign not found."})
		return
	}
	c.JSON(http.StatusOK, sign)
}
