package client

import (
	"context"
	"sort"
	"time"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/models"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

// BillingEntry is one client's derived billing view for today.
type BillingEntry struct {
	Client        *models.Client      `json:"client"`
	DerivedStatus types.PaymentStatus `json:"derived_status"`
}

// BillingOverview is the billing-status list with per-status counts.
type BillingOverview struct {
	Entries []BillingEntry `json:"entries"`
	Paid    int            `json:"paid"`
	Pending int            `json:"pending"`
	Overdue int            `json:"overdue"`
}

// DeriveBilling computes the overview from an in-memory client list. Clients
// whose billing has not started yet derive nil and are excluded. Overdue
// entries sort first, then by payment day ascending.
func DeriveBilling(clients []*models.Client, today time.Time) *BillingOverview {
	overview := &BillingOverview{Entries: []BillingEntry{}}

	for _, c := range clients {
		status := c.DeriveStatus(today)
		if status == nil {
			continue
		}
		overview.Entries = append(overview.Entries, BillingEntry{Client: c, DerivedStatus: *status})
		switch *status {
		case types.PaymentStatusPaid:
			overview.Paid++
		case types.PaymentStatusPending:
			overview.Pending++
		case types.PaymentStatusOverdue:
			overview.Overdue++
		}
	}

	sort.SliceStable(overview.Entries, func(i, j int) bool {
		a, b := overview.Entries[i], overview.Entries[j]
		aOver := a.DerivedStatus == types.PaymentStatusOverdue
		bOver := b.DerivedStatus == types.PaymentStatusOverdue
		if aOver != bOver {
			return aOver
		}
		return a.Client.PaymentDate < b.Client.PaymentDate
	})

	return overview
}

// BillingOverview loads the user's clients and derives their billing view.
func (s *Service) BillingOverview(ctx context.Context, userID string) (*BillingOverview, error) {
	clients, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return DeriveBilling(clients, time.Now()), nil
}
