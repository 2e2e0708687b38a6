package commission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/models"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/logctx"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/tool"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

var ErrRecordNotFound = errors.New("commission record not found")

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

// GenerateForMonth creates missing commission records for the user's paid
// clients and refreshes stale ones, in a single transaction. Idempotent:
// a second run with unchanged client data applies nothing.
func (s *Service) GenerateForMonth(ctx context.Context, userID, month string) (GenerationPlan, error) {
	var plan GenerationPlan

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var clients []*models.Client
		if err := tx.Where("user_id = ?", userID).Find(&clients).Error; err != nil {
			return fmt.Errorf("failed to load clients: %w", err)
		}
		var existing []*models.SellerCommissionRecord
		if err := tx.Where("user_id = ? AND month = ?", userID, month).Find(&existing).Error; err != nil {
			return fmt.Errorf("failed to load commissions: %w", err)
		}

		plan = PlanForMonth(month, clients, existing)
		return s.applyPlan(tx, plan)
	})
	if err != nil {
		return GenerationPlan{}, fmt.Errorf("failed to generate commissions for %s: %w", month, err)
	}

	if !plan.Empty() {
		logctx.FromCtx(ctx, s.log).Infow("commissions generated",
			"user_id", userID, "month", month,
			"inserted", len(plan.ToInsert), "updated", len(plan.ToUpdate))
	}
	return plan, nil
}

func (s *Service) applyPlan(tx *gorm.DB, plan GenerationPlan) error {
	if len(plan.ToInsert) > 0 {
		if err := tx.Create(plan.ToInsert).Error; err != nil {
			return fmt.Errorf("failed to insert commissions: %w", err)
		}
	}
	for _, r := range plan.ToUpdate {
		err := tx.Model(&models.SellerCommissionRecord{}).
			Where("id = ? AND user_id = ?", r.ID, r.UserID).
			Updates(map[string]any{
				"client_name":      r.ClientName,
				"seller_name":      r.SellerName,
				"commission_value": r.CommissionValue,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to update commission %s: %w", r.ID, err)
		}
	}
	return nil
}

// SyncClient reconciles the commission record of one client for one month
// inside the caller's transaction: upsert while the client is paid, delete
// otherwise. Invoked from client mutations so that client row and commission
// row change atomically.
func (s *Service) SyncClient(tx *gorm.DB, client *models.Client, month string) error {
	record := PlanForClient(client, month)
	if record == nil {
		err := tx.Where("client_id = ? AND month = ? AND user_id = ?", client.ID, month, client.UserID).
			Delete(&models.SellerCommissionRecord{}).Error
		if err != nil {
			return fmt.Errorf("failed to delete commission %s: %w", tool.CommissionRecordID(client.ID, month), err)
		}
		return nil
	}

	// Existing records keep their payment status and paid date; only the
	// value and name snapshots refresh.
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"client_name", "seller_name", "commission_value",
		}),
	}).Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to upsert commission %s: %w", record.ID, err)
	}
	return nil
}

// DeleteForClient removes every commission record of a client, inside the
// caller's transaction. Used by the client-delete cascade.
func (s *Service) DeleteForClient(tx *gorm.DB, userID, clientID string) error {
	err := tx.Where("client_id = ? AND user_id = ?", clientID, userID).
		Delete(&models.SellerCommissionRecord{}).Error
	if err != nil {
		return fmt.Errorf("failed to cascade-delete commissions for client %s: %w", clientID, err)
	}
	return nil
}

// UpdateStatus flips a commission between pending and paid. Marking paid
// stamps PaidDate; marking pending clears it. Both states are reversible.
func (s *Service) UpdateStatus(ctx context.Context, userID, id string, status types.CommissionPaymentStatus) (*models.SellerCommissionRecord, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid commission status %q", status)
	}

	var paidDate *time.Time
	if status == types.CommissionStatusPaid {
		paidDate = lo.ToPtr(time.Now())
	}

	res := s.db.WithContext(ctx).Model(&models.SellerCommissionRecord{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{"payment_status": status, "paid_date": paidDate})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update commission status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}

	var record models.SellerCommissionRecord
	if err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to reload commission: %w", err)
	}
	return &record, nil
}

// List returns the user's commission records, optionally restricted to one
// month.
func (s *Service) List(ctx context.Context, userID, month string) ([]*models.SellerCommissionRecord, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if month != "" {
		q = q.Where("month = ?", month)
	}
	var records []*models.SellerCommissionRecord
	if err := q.Order("month desc, client_name asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list commissions: %w", err)
	}
	return records, nil
}

// Scan request/response for the filterable list endpoint.
type ScanRequest struct {
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

type ScanResponse struct {
	Items []*models.SellerCommissionRecord `json:"items"`
	Total int64                            `json:"total"`
}

// filtersAnd combines multiple CommonFilter into a single clause.Expression.
type filtersAnd struct{ filters []*types.CommonFilter }

func (w filtersAnd) Build(builder clause.Builder) {
	if len(w.filters) == 0 {
		builder.WriteString("1=1")
		return
	}
	exprs := make([]clause.Expression, 0, len(w.filters))
	for _, f := range w.filters {
		exprs = append(exprs, f)
	}
	clause.And(exprs...).Build(builder)
}

// Scan lists commission records with generic filters, pagination and sorting.
func (s *Service) Scan(ctx context.Context, userID string, req *ScanRequest) (*ScanResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}
	if req.Size <= 0 || req.Size > 500 {
		req.Size = 100
	}
	if req.From < 0 {
		req.From = 0
	}

	tx := s.db.WithContext(ctx).Model(&models.SellerCommissionRecord{}).
		Where("user_id = ?", userID)
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{filtersAnd{filters: req.Filters}}})
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count commissions: %w", err)
	}

	q := tx.Limit(req.Size)
	if req.From > 0 {
		q = q.Offset(req.From)
	}
	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = "month"
	}
	q = q.Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: sortBy}, Desc: req.SortOrder != "asc"}}})

	var items []*models.SellerCommissionRecord
	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to scan commissions: %w", err)
	}
	return &ScanResponse{Items: items, Total: total}, nil
}
