package handlers

import (
	"context"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/access"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/auth"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/billing"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/client"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/commission"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/expense"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/models"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

// Consumer-side service interfaces. Handlers depend on these so tests can
// substitute stubs; the concrete services satisfy them.

type AuthService interface {
	Register(ctx context.Context, in *auth.RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	IssueToken(userID, email string) (string, error)
}

type AccessService interface {
	Check(ctx context.Context, userID string) (*access.State, error)
}

type ClientService interface {
	List(ctx context.Context, userID string) ([]*models.Client, error)
	Create(ctx context.Context, userID string, in *client.Input) (*models.Client, error)
	Update(ctx context.Context, userID, id string, in *client.Input) (*models.Client, error)
	Delete(ctx context.Context, userID, id string) error
	MarkPaid(ctx context.Context, userID, id string) (*models.Client, error)
	BillingOverview(ctx context.Context, userID string) (*client.BillingOverview, error)
}

type ExpenseService interface {
	List(ctx context.Context, userID string) ([]*models.AgencyExpense, error)
	Create(ctx context.Context, userID string, in *expense.Input) (*models.AgencyExpense, error)
	Update(ctx context.Context, userID, id string, in *expense.Input) (*models.AgencyExpense, error)
	Delete(ctx context.Context, userID, id string) error
}

type CommissionService interface {
	GenerateForMonth(ctx context.Context, userID, month string) (commission.GenerationPlan, error)
	List(ctx context.Context, userID, month string) ([]*models.SellerCommissionRecord, error)
	Scan(ctx context.Context, userID string, req *commission.ScanRequest) (*commission.ScanResponse, error)
	UpdateStatus(ctx context.Context, userID, id string, status types.CommissionPaymentStatus) (*models.SellerCommissionRecord, error)
}

type SummaryService interface {
	GetSummary(ctx context.Context, userID, monthFilter string) (*types.FinancialSummary, error)
	GetForecast(ctx context.Context, userID string) (*types.MonthForecast, error)
}

type BillingService interface {
	CreateCheckout(ctx context.Context, priceID, userID, userEmail string) (*billing.CheckoutResult, error)
	CreatePortal(ctx context.Context, customerID string) (string, error)
	ConfirmCheckout(ctx context.Context, sessionID, userID string) error
	GetLocalSubscription(ctx context.Context, userID string) (*models.Subscription, error)
	ProcessWebhook(ctx context.Context, payload []byte, signature string) error
}
