package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/models"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/types"
)

func TestDeriveBilling_OrderAndCounts(t *testing.T) {
	today := time.Date(2026, 9, 20, 12, 0, 0, 0, time.UTC)
	current := "2026-09"

	clients := []*models.Client{
		{ID: "paid", PaymentDate: 5, LastPaymentMonth: &current},
		{ID: "overdue-late", PaymentDate: 15},
		{ID: "overdue-early", PaymentDate: 3},
		{ID: "pending", PaymentDate: 25},
	}

	got := DeriveBilling(clients, today)

	require.Len(t, got.Entries, 4)
	assert.Equal(t, 1, got.Paid)
	assert.Equal(t, 1, got.Pending)
	assert.Equal(t, 2, got.Overdue)

	// Overdue first, earliest payment day first.
	assert.Equal(t, "overdue-early", got.Entries[0].Client.ID)
	assert.Equal(t, "overdue-late", got.Entries[1].Client.ID)
	assert.Equal(t, "paid", got.Entries[2].Client.ID)
	assert.Equal(t, "pending", got.Entries[3].Client.ID)
}

func TestDeriveBilling_ExcludesNotYetBillable(t *testing.T) {
	today := time.Date(2026, 9, 20, 12, 0, 0, 0, time.UTC)
	future := "2026-11"

	clients := []*models.Client{
		{ID: "future", PaymentDate: 10, FirstPaymentMonth: &future},
		{ID: "due", PaymentDate: 10},
	}

	got := DeriveBilling(clients, today)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "due", got.Entries[0].Client.ID)
	assert.Equal(t, types.PaymentStatusOverdue, got.Entries[0].DerivedStatus)
}

func TestDeriveBilling_Empty(t *testing.T) {
	got := DeriveBilling(nil, time.Now())
	assert.Empty(t, got.Entries)
	assert.Zero(t, got.Paid+got.Pending+got.Overdue)
}

func TestInputValidate(t *testing.T) {
	valid := Input{
		Name:             "Acme",
		MonthlyValue:     1000,
		PaymentDate:      10,
		PaymentStatus:    types.PaymentStatusPending,
		SellerCommission: 10,
	}

	tests := []struct {
		name    string
		mutate  func(*Input)
		wantErr bool
	}{
		{"valid", func(*Input) {}, false},
		{"missing name", func(in *Input) { in.Name = "" }, true},
		{"negative value", func(in *Input) { in.MonthlyValue = -1 }, true},
		{"payment date zero", func(in *Input) { in.PaymentDate = 0 }, true},
		{"payment date 32", func(in *Input) { in.PaymentDate = 32 }, true},
		{"bad status", func(in *Input) { in.PaymentStatus = "unknown" }, true},
		{"commission over 100", func(in *Input) { in.SellerCommission = 101 }, true},
		{"bad first payment month", func(in *Input) {
			m := "set/2026"
			in.FirstPaymentMonth = &m
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := in.validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
