package commission

import (
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/models"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/tool"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

// GenerationPlan is the pure output of PlanForMonth: records to create and
// records whose value/name snapshots need refreshing.
type GenerationPlan struct {
	ToInsert []*models.SellerCommissionRecord
	ToUpdate []*models.SellerCommissionRecord
}

func (p *GenerationPlan) Empty() bool {
	return len(p.ToInsert) == 0 && len(p.ToUpdate) == 0
}

// PlanForClient reconciles one client's record for one month: the record to
// upsert while the client is marked paid, or nil when the record must be
// removed. Because the key is deterministic, marking a client paid and then
// back to pending leaves no record for that month.
func PlanForClient(c *models.Client, month string) *models.SellerCommissionRecord {
	if c.PaymentStatus != types.PaymentStatusPaid {
		return nil
	}
	return &models.SellerCommissionRecord{
		ID:              tool.CommissionRecordID(c.ID, month),
		UserID:          c.UserID,
		ClientID:        c.ID,
		ClientName:      c.Name,
		SellerName:      c.SellerNameOrDefault(),
		CommissionValue: c.CommissionValue(),
		PaymentStatus:   types.CommissionStatusPending,
		Month:           month,
	}
}

// PlanForMonth derives commission records for every client marked paid.
// One record per (client, month), keyed deterministically, so re-planning
// with unchanged inputs yields an empty plan.
//
// Updates refresh commission value and the denormalized client/seller name
// snapshots only; payment status and paid date are never touched here.
func PlanForMonth(month string, clients []*models.Client, existing []*models.SellerCommissionRecord) GenerationPlan {
	byID := make(map[string]*models.SellerCommissionRecord, len(existing))
	for _, r := range existing {
		if r.Month == month {
			byID[r.ID] = r
		}
	}

	var plan GenerationPlan
	for _, c := range clients {
		if c.PaymentStatus != types.PaymentStatusPaid {
			continue
		}

		id := tool.CommissionRecordID(c.ID, month)
		record, ok := byID[id]
		if !ok {
			plan.ToInsert = append(plan.ToInsert, PlanForClient(c, month))
			continue
		}

		value := c.CommissionValue()
		sellerName := c.SellerNameOrDefault()
		if record.CommissionValue == value && record.ClientName == c.Name && record.SellerName == sellerName {
			continue
		}
		updated := *record
		updated.CommissionValue = value
		updated.ClientName = c.Name
		updated.SellerName = sellerName
		plan.ToUpdate = append(plan.ToUpdate, &updated)
	}

	return plan
}
