package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

type stubSummary struct {
	gotFilter string
}

func (s *stubSummary) GetSummary(_ context.Context, _, monthFilter string) (*types.FinancialSummary, error) {
	s.gotFilter = monthFilter
	return &types.FinancialSummary{TotalRevenue: 500, NetProfit: 500}, nil
}

func (s *stubSummary) GetForecast(_ context.Context, _ string) (*types.MonthForecast, error) {
	return &types.MonthForecast{TotalExpected: 2000, PaidThisMonth: 1000, ToReceive: 1000}, nil
}

func summaryRouter(svc SummaryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterSummaryRoutes(r.Group("/api/v1"), svc)
	return r
}

func TestApiGetSummary_DefaultsToTotal(t *testing.T) {
	svc := &stubSummary{}
	r := summaryRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "total", svc.gotFilter)
	require.Contains(t, w.Body.String(), `"total_revenue":500`)
}

func TestApiGetSummary_MonthFilter(t *testing.T) {
	svc := &stubSummary{}
	r := summaryRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary?month=2026-09", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "2026-09", svc.gotFilter)
}

func TestApiGetSummary_RejectsBadMonth(t *testing.T) {
	r := summaryRouter(&stubSummary{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary?month=september", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"code":40000`)
}

func TestApiGetForecast(t *testing.T) {
	r := summaryRouter(&stubSummary{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/summary/forecast", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"to_receive":1000`)
}
