package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/commission"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/models"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/logctx"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/tool"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

var (
	ErrNotFound     = errors.New("client not found")
	ErrInvalidInput = errors.New("invalid client input")
)

type Service struct {
	db          *gorm.DB
	commissions *commission.Service
	log         *zap.SugaredLogger
}

func NewService(db *gorm.DB, commissions *commission.Service, log *zap.SugaredLogger) *Service {
	return &Service{db: db, commissions: commissions, log: log}
}

// Input carries the client fields settable through the API.
type Input struct {
	Name              string               `json:"name"`
	MonthlyValue      float64              `json:"monthly_value"`
	PaymentDate       int                  `json:"payment_date"`
	PaymentStatus     types.PaymentStatus  `json:"payment_status"`
	SellerName        string               `json:"seller_name"`
	SellerCommission  float64              `json:"seller_commission"`
	ExtraExpenses     []types.ExtraExpense `json:"extra_expenses"`
	ContractStartDate *string              `json:"contract_start_date"`
	FirstPaymentMonth *string              `json:"first_payment_month"`
}

func (in *Input) validate() error {
	switch {
	case in.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	case in.MonthlyValue < 0:
		return fmt.Errorf("%w: monthly_value must not be negative", ErrInvalidInput)
	case in.PaymentDate < 1 || in.PaymentDate > 31:
		return fmt.Errorf("%w: payment_date must be between 1 and 31", ErrInvalidInput)
	case !in.PaymentStatus.Valid():
		return fmt.Errorf("%w: unknown payment_status %q", ErrInvalidInput, in.PaymentStatus)
	case in.SellerCommission < 0 || in.SellerCommission > 100:
		return fmt.Errorf("%w: seller_commission must be between 0 and 100", ErrInvalidInput)
	}
	if in.FirstPaymentMonth != nil && *in.FirstPaymentMonth != "" && !types.ValidMonthKey(*in.FirstPaymentMonth) {
		return fmt.Errorf("%w: first_payment_month must be YYYY-MM", ErrInvalidInput)
	}
	return nil
}

func (in *Input) apply(c *models.Client) {
	c.Name = in.Name
	c.MonthlyValue = in.MonthlyValue
	c.PaymentDate = in.PaymentDate
	c.PaymentStatus = in.PaymentStatus
	c.SellerName = in.SellerName
	c.SellerCommission = in.SellerCommission
	c.ExtraExpenses = datatypes.NewJSONType(in.ExtraExpenses)
	c.ContractStartDate = in.ContractStartDate
	c.FirstPaymentMonth = in.FirstPaymentMonth
}

// List returns all clients of the user, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]*models.Client, error) {
	var clients []*models.Client
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&clients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// Get returns one client owned by the user.
func (s *Service) Get(ctx context.Context, userID, id string) (*models.Client, error) {
	var c models.Client
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load client: %w", err)
	}
	return &c, nil
}

// Create inserts a client and, when it arrives already marked paid, its
// commission record for the current month, atomically.
func (s *Service) Create(ctx context.Context, userID string, in *Input) (*models.Client, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	c := &models.Client{ID: tool.GenerateUUIDV7(), UserID: userID}
	in.apply(c)

	month := types.MonthKeyOf(time.Now())
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}
		return s.commissions.SyncClient(tx, c, month)
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("client created", "client_id", c.ID, "user_id", userID)
	return c, nil
}

// Update rewrites a client's fields and reconciles its current-month
// commission record in the same transaction. A transition away from paid
// deletes the record; a change in value or names refreshes the snapshot.
func (s *Service) Update(ctx context.Context, userID, id string, in *Input) (*models.Client, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	month := types.MonthKeyOf(time.Now())
	var c *models.Client
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Client
		err := tx.Where("id = ? AND user_id = ?", id, userID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load client: %w", err)
		}

		in.apply(&existing)
		if err := tx.Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to update client: %w", err)
		}
		c = &existing
		return s.commissions.SyncClient(tx, c, month)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a client and all of its commission records atomically.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Client{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete client: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return s.commissions.DeleteForClient(tx, userID, id)
	})
	if err != nil {
		return err
	}

	logctx.FromCtx(ctx, s.log).Infow("client deleted", "client_id", id, "user_id", userID)
	return nil
}

// MarkPaid records a payment for the current month: last_payment_month is set
// to the current month key, payment_status flips to paid, and the commission
// record for the month is created in the same transaction.
func (s *Service) MarkPaid(ctx context.Context, userID, id string) (*models.Client, error) {
	month := types.MonthKeyOf(time.Now())

	var c *models.Client
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Client
		err := tx.Where("id = ? AND user_id = ?", id, userID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to load client: %w", err)
		}

		existing.LastPaymentMonth = &month
		existing.PaymentStatus = types.PaymentStatusPaid
		if err := tx.Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to mark client paid: %w", err)
		}
		c = &existing
		return s.commissions.SyncClient(tx, c, month)
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("client marked paid",
		"client_id", id, "user_id", userID, "month", month)
	return c, nil
}
