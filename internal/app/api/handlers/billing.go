package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/billing"
)

// The billing endpoints keep the payment processor's client contract: raw
// JSON bodies, plain {error} failures, no response envelope.

type createCheckoutRequest struct {
	PriceID   string `json:"priceId"`
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
}

type createPortalRequest struct {
	CustomerID string `json:"customerId"`
}

type getSubscriptionRequest struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"`
}

func billingError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// @Summary      Create checkout session
// @Description  Opens a subscription checkout with a trial period.
// @Tags         Billing
// @Accept       json
// @Produce      json
// @Param        request body handlers.createCheckoutRequest true "Checkout data"
// @Success      200  {object}  billing.CheckoutResult
// @Router       /api/create-checkout [post]
func ApiCreateCheckout(svc BillingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createCheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			billingError(c, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.PriceID == "" || req.UserID == "" || req.UserEmail == "" {
			billingError(c, http.StatusBadRequest, "priceId, userId and userEmail are required")
			return
		}

		res, err := svc.CreateCheckout(c.Request.Context(), req.PriceID, req.UserID, req.UserEmail)
		if err != nil {
			if errors.Is(err, billing.ErrUnknownPrice) {
				billingError(c, http.StatusBadRequest, "unknown price id")
				return
			}
			billingError(c, http.StatusInternalServerError, "failed to create checkout session")
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// @Summary      Create portal session
// @Tags         Billing
// @Accept       json
// @Produce      json
// @Param        request body handlers.createPortalRequest true "Portal data"
// @Success      200  {object}  map[string]string
// @Router       /api/create-portal [post]
func ApiCreatePortal(svc BillingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createPortalRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.CustomerID == "" {
			billingError(c, http.StatusBadRequest, "customerId is required")
			return
		}

		url, err := svc.CreatePortal(c.Request.Context(), req.CustomerID)
		if err != nil {
			billingError(c, http.StatusInternalServerError, "failed to create portal session")
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
	}
}

// @Summary      Confirm checkout
// @Description  Mirrors the subscription of a completed checkout session into the local row.
// @Tags         Billing
// @Accept       json
// @Produce      json
// @Param        request body handlers.getSubscriptionRequest true "Session reference"
// @Success      200  {object}  map[string]bool
// @Router       /api/get-subscription [post]
func ApiGetSubscription(svc BillingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req getSubscriptionRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.SessionID == "" || req.UserID == "" {
			billingError(c, http.StatusBadRequest, "sessionId and userId are required")
			return
		}

		if err := svc.ConfirmCheckout(c.Request.Context(), req.SessionID, req.UserID); err != nil {
			billingError(c, http.StatusInternalServerError, "failed to confirm checkout")
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// @Summary      Stripe webhook
// @Description  Receives signed subscription lifecycle events.
// @Tags         Billing
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /api/stripe-webhook [post]
func ApiStripeWebhook(svc BillingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			billingError(c, http.StatusBadRequest, "failed to read body")
			return
		}

		err = svc.ProcessWebhook(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
		if err != nil {
			if errors.Is(err, billing.ErrBadSignature) {
				billingError(c, http.StatusBadRequest, "invalid signature")
				return
			}
			billingError(c, http.StatusInternalServerError, "failed to process event")
			return
		}
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

func RegisterBillingRoutes(r gin.IRouter, svc BillingService) {
	r.POST("/create-checkout", ApiCreateCheckout(svc))
	r.POST("/create-portal", ApiCreatePortal(svc))
	r.POST("/get-subscription", ApiGetSubscription(svc))
	r.POST("/stripe-webhook", ApiStripeWebhook(svc))
}
