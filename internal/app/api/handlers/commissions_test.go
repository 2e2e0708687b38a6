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

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/commission"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/models"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

type stubCommissions struct {
	plan      commission.GenerationPlan
	statusErr error
}

func (s *stubCommissions) GenerateForMonth(_ context.Context, _, _ string) (commission.GenerationPlan, error) {
	return s.plan, nil
}

func (s *stubCommissions) List(_ context.Context, _, _ string) ([]*models.SellerCommissionRecord, error) {
	return []*models.SellerCommissionRecord{}, nil
}

func (s *stubCommissions) Scan(_ context.Context, _ string, _ *commission.ScanRequest) (*commission.ScanResponse, error) {
	panic("not used")
}

func (s *stubCommissions) UpdateStatus(_ context.Context, _, id string, status types.CommissionPaymentStatus) (*models.SellerCommissionRecord, error) {
	if s.statusErr != nil {
		return nil, s.statusErr
	}
	return &models.SellerCommissionRecord{ID: id, PaymentStatus: status}, nil
}

func commissionRouter(svc CommissionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterCommissionRoutes(r.Group("/api/v1"), svc)
	return r
}

func TestApiGenerateCommissions_ReportsPlanSize(t *testing.T) {
	svc := &stubCommissions{plan: commission.GenerationPlan{
		ToInsert: []*models.SellerCommissionRecord{{ID: "c1-2026-09"}},
	}}
	r := commissionRouter(svc)

	body, _ := json.Marshal(map[string]string{"month": "2026-09"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/commissions/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"inserted":1`)
	require.Contains(t, w.Body.String(), `"code":0`)
}

func TestApiGenerateCommissions_RejectsBadMonth(t *testing.T) {
	r := commissionRouter(&stubCommissions{})

	body, _ := json.Marshal(map[string]string{"month": "09/2026"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/commissions/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"code":40000`)
}

func TestApiUpdateCommissionStatus_NotFound(t *testing.T) {
	r := commissionRouter(&stubCommissions{statusErr: commission.ErrRecordNotFound})

	body, _ := json.Marshal(map[string]string{"status": "paid"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/commissions/c1-2026-09/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"code":40400`)
}

func TestApiUpdateCommissionStatus_RejectsUnknownStatus(t *testing.T) {
	r := commissionRouter(&stubCommissions{})

	body, _ := json.Marshal(map[string]string{"status": "overdue"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/commissions/c1-2026-09/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"code":40000`)
}
