package app

import (
	"context"
	"errors"
	"strconv"

	"example/cosmic-api/app/models"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

var ErrBillingNotConfigured = errors.New("stripe not configured")

// Checkout metadata keys, read back by the webhook.
const (
	metaUserID       = "userId"
	metaPurchaseType = "purchaseType"
	metaCredits      = "reportCreditsToGrant"
	metaItemID       = "itemId"
)

type CheckoutInput struct {
	Item          models.PriceItem
	UserID        int64
	CustomerID    string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
}

// CheckoutGateway creates hosted checkout sessions.
type CheckoutGateway interface {
	CreateCheckoutSession(ctx context.Context, in CheckoutInput) (*stripe.CheckoutSession, error)
}

type stripeGateway struct {
	sc *client.API
}

// NewStripeGateway wires the Stripe API key. An empty key gives a gateway
// that fails every call with ErrBillingNotConfigured.
func NewStripeGateway(secretKey string) CheckoutGateway {
	if secretKey == "" {
		return unconfiguredGateway{}
	}
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &stripeGateway{sc: sc}
}

func (g *stripeGateway) CreateCheckoutSession(ctx context.Context, in CheckoutInput) (*stripe.CheckoutSession, error) {
	return g.sc.CheckoutSessions.New(checkoutParams(ctx, in))
}

func checkoutParams(ctx context.Context, in CheckoutInput) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(in.Item.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(in.Item.Name),
						Description: stripe.String(in.Item.Description),
					},
					UnitAmount: stripe.Int64(in.Item.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(in.SuccessURL),
		CancelURL:         stripe.String(in.CancelURL),
		ClientReferenceID: stripe.String(strconv.FormatInt(in.UserID, 10)),
		Metadata: map[string]string{
			metaUserID:       strconv.FormatInt(in.UserID, 10),
			metaPurchaseType: models.PurchaseTypeReportCredits,
			metaCredits:      strconv.Itoa(in.Item.CreditsGrant),
			metaItemID:       in.Item.ID,
		},
	}
	if in.CustomerID != "" {
		params.Customer = stripe.String(in.CustomerID)
	} else {
		params.CustomerCreation = stripe.String(string(stripe.CheckoutSessionCustomerCreationAlways))
		if in.CustomerEmail != "" {
			params.CustomerEmail = stripe.String(in.CustomerEmail)
		}
	}
	params.Context = ctx
	return params
}

type unconfiguredGateway struct{}

func (unconfiguredGateway) CreateCheckoutSession(context.Context, CheckoutInput) (*stripe.CheckoutSession, error) {
	return nil, ErrBillingNotConfigured
}
