package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBillCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    BillStatus
		to      BillStatus
		allowed bool
	}{
		{BillStatusPending, BillStatusConfirmed, true},
		{BillStatusPending, BillStatusCancelled, true},
		{BillStatusPending, BillStatusShipping, false},
		{BillStatusPending, BillStatusDelivered, false},
		{BillStatusConfirmed, BillStatusShipping, true},
		{BillStatusConfirmed, BillStatusCancelled, true},
		{BillStatusConfirmed, BillStatusDelivered, false},
		{BillStatusShipping, BillStatusDelivered, true},
		{BillStatusShipping, BillStatusCancelled, false},
		{BillStatusDelivered, BillStatusShipping, false},
		{BillStatusCancelled, BillStatusConfirmed, false},
	}

	for _, tc := range cases {
		bill := &Bill{Status: tc.from}
		assert.Equal(t, tc.allowed, bill.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
