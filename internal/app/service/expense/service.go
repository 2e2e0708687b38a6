package expense

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/models"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/tool"
)

var (
	ErrNotFound     = errors.New("expense not found")
	ErrInvalidInput = errors.New("invalid expense input")
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

type Input struct {
	Description string  `json:"description"`
	Value       float64 `json:"value"`
	Category    string  `json:"category"`
}

func (in *Input) validate() error {
	if in.Description == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if in.Value < 0 {
		return fmt.Errorf("%w: value must not be negative", ErrInvalidInput)
	}
	return nil
}

func (in *Input) category() string {
	if in.Category == "" {
		return models.DefaultExpenseCategory
	}
	return in.Category
}

func (s *Service) List(ctx context.Context, userID string) ([]*models.AgencyExpense, error) {
	var expenses []*models.AgencyExpense
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func (s *Service) Create(ctx context.Context, userID string, in *Input) (*models.AgencyExpense, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	e := &models.AgencyExpense{
		ID:          tool.GenerateUUIDV7(),
		UserID:      userID,
		Description: in.Description,
		Value:       in.Value,
		Category:    in.category(),
	}
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, in *Input) (*models.AgencyExpense, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var e models.AgencyExpense
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load expense: %w", err)
	}

	e.Description = in.Description
	e.Value = in.Value
	e.Category = in.category()
	if err := s.db.WithContext(ctx).Save(&e).Error; err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return &e, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	res := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.AgencyExpense{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
