package stripeapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"go.uber.org/zap"
)

// CheckoutParams carries everything needed to open a subscription checkout.
type CheckoutParams struct {
	PriceID    string
	UserID     string
	UserEmail  string
	SuccessURL string
	CancelURL  string
	TrialDays  int
}

// Client wraps the Stripe API surface the billing service needs. Kept as an
// interface so handler tests can stub it.
type Client interface {
	CreateCheckoutSession(ctx context.Context, p *CheckoutParams) (*stripe.CheckoutSession, error)
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (*stripe.BillingPortalSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error)
}

type stripeClient struct {
	api *client.API
	log *zap.SugaredLogger
}

func NewClient(secretKey string, log *zap.SugaredLogger) Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &stripeClient{api: api, log: log}
}

func (c *stripeClient) CreateCheckoutSession(ctx context.Context, p *CheckoutParams) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Price:    stripe.String(p.PriceID),
			Quantity: stripe.Int64(1),
		}},
		SuccessURL:          stripe.String(p.SuccessURL),
		CancelURL:           stripe.String(p.CancelURL),
		ClientReferenceID:   stripe.String(p.UserID),
		CustomerEmail:       stripe.String(p.UserEmail),
		AllowPromotionCodes: stripe.Bool(true),
	}
	if p.TrialDays > 0 {
		params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{
			TrialPeriodDays: stripe.Int64(int64(p.TrialDays)),
		}
	}
	params.Context = ctx

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		c.logAPIError("CreateCheckoutSession", err)
		return nil, fmt.Errorf("stripe: failed to create checkout session: %w", err)
	}

	c.log.Infow("checkout session created", "session_id", sess.ID, "user_id", p.UserID)
	return sess, nil
}

func (c *stripeClient) CreatePortalSession(ctx context.Context, customerID, returnURL string) (*stripe.BillingPortalSession, error) {
	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	}
	params.Context = ctx

	sess, err := c.api.BillingPortalSessions.New(params)
	if err != nil {
		c.logAPIError("CreatePortalSession", err)
		return nil, fmt.Errorf("stripe: failed to create portal session: %w", err)
	}
	return sess, nil
}

func (c *stripeClient) GetCheckoutSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("subscription")
	params.AddExpand("customer")

	sess, err := c.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		c.logAPIError("GetCheckoutSession", err)
		return nil, fmt.Errorf("stripe: failed to get checkout session: %w", err)
	}
	return sess, nil
}

func (c *stripeClient) logAPIError(operation string, err error) {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		c.log.Errorw("stripe api error",
			"operation", operation,
			"type", string(stripeErr.Type),
			"code", string(stripeErr.Code),
			"message", stripeErr.Msg,
			"request_id", stripeErr.RequestID,
		)
		return
	}
	c.log.Errorw("stripe call failed", "operation", operation, "error", err)
}
