package summary

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/models"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

// GetSummary loads the user's collections and computes the financial summary.
// monthFilter is "", "total", or a "YYYY-MM" month key.
func (s *Service) GetSummary(ctx context.Context, userID string, monthFilter string) (*types.FinancialSummary, error) {
	clients, expenses, commissions, err := s.loadCollections(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := Summarize(clients, expenses, commissions, monthFilter)
	return &out, nil
}

// GetForecast computes the receivables projection for the current month.
func (s *Service) GetForecast(ctx context.Context, userID string) (*types.MonthForecast, error) {
	var clients []*models.Client
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}
	out := Forecast(clients, types.MonthKeyOf(time.Now()))
	return &out, nil
}

func (s *Service) loadCollections(ctx context.Context, userID string) ([]*models.Client, []*models.AgencyExpense, []*models.SellerCommissionRecord, error) {
	var clients []*models.Client
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&clients).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load clients: %w", err)
	}
	var expenses []*models.AgencyExpense
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&expenses).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load agency expenses: %w", err)
	}
	var commissions []*models.SellerCommissionRecord
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&commissions).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load commissions: %w", err)
	}
	return clients, expenses, commissions, nil
}
