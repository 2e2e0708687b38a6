package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/billing"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/models"
)

type stubBilling struct {
	checkoutErr error
	webhookErr  error
}

func (s *stubBilling) CreateCheckout(_ context.Context, _, _, _ string) (*billing.CheckoutResult, error) {
	if s.checkoutErr != nil {
		return nil, s.checkoutErr
	}
	return &billing.CheckoutResult{URL: "https://checkout.stripe.com/c/pay_123", SessionID: "cs_123"}, nil
}

func (s *stubBilling) CreatePortal(_ context.Context, _ string) (string, error) {
	return "https://billing.stripe.com/p/session_123", nil
}

func (s *stubBilling) ConfirmCheckout(_ context.Context, _, _ string) error { return nil }

func (s *stubBilling) GetLocalSubscription(_ context.Context, _ string) (*models.Subscription, error) {
	panic("not used")
}

func (s *stubBilling) ProcessWebhook(_ context.Context, _ []byte, _ string) error {
	return s.webhookErr
}

func billingRouter(svc BillingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterBillingRoutes(r.Group("/api"), svc)
	return r
}

func TestApiCreateCheckout_RawContract(t *testing.T) {
	r := billingRouter(&stubBilling{})

	body, _ := json.Marshal(map[string]string{
		"priceId": "price_pro", "userId": "u1", "userEmail": "owner@agency.com",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/create-checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "cs_123", got["sessionId"])
	require.NotEmpty(t, got["url"])
	// No envelope on billing endpoints.
	require.NotContains(t, w.Body.String(), `"code"`)
}

func TestApiCreateCheckout_MissingFields(t *testing.T) {
	r := billingRouter(&stubBilling{})

	req := httptest.NewRequest(http.MethodPost, "/api/create-checkout", bytes.NewReader([]byte(`{"priceId":"price_pro"}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "error")
}

func TestApiCreateCheckout_UnknownPrice(t *testing.T) {
	r := billingRouter(&stubBilling{checkoutErr: billing.ErrUnknownPrice})

	body, _ := json.Marshal(map[string]string{
		"priceId": "price_mystery", "userId": "u1", "userEmail": "owner@agency.com",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/create-checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApiStripeWebhook_BadSignature(t *testing.T) {
	r := billingRouter(&stubBilling{webhookErr: billing.ErrBadSignature})

	req := httptest.NewRequest(http.MethodPost, "/api/stripe-webhook", bytes.NewReader([]byte(`{}`)))
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "invalid signature")
}

func TestApiStripeWebhook_Acknowledges(t *testing.T) {
	r := billingRouter(&stubBilling{})

	req := httptest.NewRequest(http.MethodPost, "/api/stripe-webhook", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Stripe-Signature", "t=1,v1=sig")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "received")
}
