package app

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"example/cosmic-api/app/models"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
	"go.uber.org/zap"
)

// CreateCheckoutSession starts a Stripe Checkout Session for a credit pack.
// Prices come from the server-side catalogue only.
func (s *Server) CreateCheckoutSession(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}
	item, ok := models.LookupPriceItem(strings.TrimSpace(req.ItemID))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid item selected."})
		return
	}
	if !req.UserID.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID is required."})
		return
	}

	ctx := c.Request.Context()
	logger := s.log(c).With(zap.Int64("user_id", req.UserID.Int64()), zap.String("item_id", item.ID))

	user, err := s.store.GetUserByID(ctx, req.UserID.Int64())
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
			return
		}
		logger.Error("load user failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to prepare checkout."})
		return
	}

	frontendURL := strings.TrimRight(s.cfg.Stripe.FrontendURL, "/")
	sess, err := s.checkout.CreateCheckoutSession(ctx, CheckoutInput{
		Item:          item,
		UserID:        user.ID,
		CustomerID:    user.StripeCustomerID,
		CustomerEmail: user.Email,
		SuccessURL:    frontendURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     frontendURL + "/payment-cancel",
	})
	if err != nil {
		logger.Error("stripe checkout session failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create checkout session."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": sess.ID, "url": sess.URL})
}

// StripeWebhook verifies Stripe deliveries and grants credits for paid
// checkout sessions. Each event id is applied at most once.
func (s *Server) StripeWebhook(c *gin.Context) {
	const maxBodyBytes = int64(65536)
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		s.log(c).Warn("stripe webhook read failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload."})
		return
	}

	endpointSecret := s.cfg.Stripe.WebhookSecret
	if endpointSecret == "" {
		s.log(c).Error("stripe webhook secret missing")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Webhook not configured."})
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		body,
		c.GetHeader("Stripe-Signature"),
		endpointSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		},
	)
	if err != nil {
		webhookEvents.WithLabelValues("unknown", "bad_signature").Inc()
		s.log(c).Warn("stripe webhook signature failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Webhook signature verification failed."})
		return
	}

	eventType := string(event.Type)
	logger := s.log(c).With(zap.String("event_id", event.ID), zap.String("event_type", eventType))

	switch event.Type {
	case "checkout.session.completed", "checkout.session.async_payment_succeeded":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			webhookEvents.WithLabelValues(eventType, "bad_payload").Inc()
			logger.Warn("stripe session unmarshal failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid session payload."})
			return
		}
		if sess.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
			webhookEvents.WithLabelValues(eventType, "unpaid").Inc()
			logger.Info("checkout session not paid yet", zap.String("payment_status", string(sess.PaymentStatus)))
			break
		}

		grant, err := grantFromSession(event.ID, eventType, &sess)
		if err != nil {
			webhookEvents.WithLabelValues(eventType, "bad_metadata").Inc()
			logger.Warn("stripe session metadata invalid", zap.Error(err), zap.Any("metadata", sess.Metadata))
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing or invalid session metadata."})
			return
		}

		balance, err := s.store.GrantCredits(c.Request.Context(), grant)
		switch {
		case errors.Is(err, ErrDuplicateEvent):
			webhookEvents.WithLabelValues(eventType, "duplicate").Inc()
			logger.Info("stripe event already processed")
			c.JSON(http.StatusOK, gin.H{"status": "ok", "duplicate": true})
			return
		case errors.Is(err, ErrUserNotFound):
			webhookEvents.WithLabelValues(eventType, "unknown_user").Inc()
			logger.Error("stripe grant for unknown user", zap.Int64("user_id", grant.UserID))
			c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown user."})
			return
		case err != nil:
			webhookEvents.WithLabelValues(eventType, "error").Inc()
			logger.Error("stripe grant failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update credits."})
			return
		}

		webhookEvents.WithLabelValues(eventType, "granted").Inc()
		creditsGranted.Add(float64(grant.Credits))
		logger.Info("report credits granted",
			zap.Int64("user_id", grant.UserID),
			zap.Int("credits", grant.Credits),
			zap.Int("balance", balance),
		)
	default:
		webhookEvents.WithLabelValues(eventType, "ignored").Inc()
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func grantFromSession(eventID, eventType string, sess *stripe.CheckoutSession) (CreditGrant, error) {
	userID, err := strconv.ParseInt(sess.Metadata[metaUserID], 10, 64)
	if err != nil || userID <= 0 {
		return CreditGrant{}, errors.New("metadata userId missing or invalid")
	}
	credits, err := strconv.Atoi(sess.Metadata[metaCredits])
	if err != nil || credits <= 0 {
		return CreditGrant{}, errors.New("metadata reportCreditsToGrant missing or invalid")
	}

	grant := CreditGrant{
		EventID:   eventID,
		EventType: eventType,
		UserID:    userID,
		Credits:   credits,
	}
	if sess.Customer != nil {
		grant.CustomerID = sess.Customer.ID
	}
	return grant, nil
}
