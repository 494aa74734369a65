package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/litmart/litmart-backend/internal/domain"
)

func action(actionType domain.ActionType, value string) *domain.EventAction {
	return &domain.EventAction{ID: 1, EventID: 10, ActionType: actionType, ActionValue: value}
}

func TestApplyEventAction_NilAction(t *testing.T) {
	base := decimal.NewFromInt(10000)
	assert.True(t, base.Equal(ApplyEventAction(nil, base)))
}

func TestApplyEventAction_DiscountPercent(t *testing.T) {
	base := decimal.NewFromInt(100000)

	t.Run("50 percent halves the price", func(t *testing.T) {
		got := ApplyEventAction(action(domain.ActionDiscountPercent, "50"), base)
		assert.True(t, decimal.NewFromInt(50000).Equal(got), "got %s", got)
	})

	t.Run("0 percent leaves the price unchanged", func(t *testing.T) {
		got := ApplyEventAction(action(domain.ActionDiscountPercent, "0"), base)
		assert.True(t, base.Equal(got))
	})

	t.Run("100 percent makes the price zero", func(t *testing.T) {
		got := ApplyEventAction(action(domain.ActionDiscountPercent, "100"), base)
		assert.True(t, got.IsZero())
	})

	t.Run("percent above 100 is ignored", func(t *testing.T) {
		got := ApplyEventAction(action(domain.ActionDiscountPercent, "150"), base)
		assert.True(t, base.Equal(got))
	})

	t.Run("negative percent is ignored", func(t *testing.T) {
		got := ApplyEventAction(action(domain.ActionDiscountPercent, "-10"), base)
		assert.True(t, base.Equal(got))
	})

	t.Run("non-numeric value is ignored", func(t *testing.T) {
		got := ApplyEventAction(action(domain.ActionDiscountPercent, "half off"), base)
		assert.True(t, base.Equal(got))
	})

	t.Run("fractional percent", func(t *testing.T) {
		got := ApplyEventAction(action(domain.ActionDiscountPercent, "12.5"), base)
		assert.True(t, decimal.NewFromInt(87500).Equal(got), "got %s", got)
	})
}

func TestApplyEventAction_DiscountAmount(t *testing.T) {
	base := decimal.NewFromInt(10000)

	t.Run("amount is subtracted", func(t *testing.T) {
		got := ApplyEventAction(action(domain.ActionDiscountAmount, "3000"), base)
		assert.True(t, decimal.NewFromInt(7000).Equal(got), "got %s", got)
	})

	t.Run("amount larger than price clamps to zero", func(t *testing.T) {
		got := ApplyEventAction(action(domain.ActionDiscountAmount, "15000"), base)
		assert.True(t, got.IsZero(), "got %s", got)
	})

	t.Run("non-numeric value is ignored", func(t *testing.T) {
		got := ApplyEventAction(action(domain.ActionDiscountAmount, ""), base)
		assert.True(t, base.Equal(got))
	})
}

func TestApplyEventAction_DiscountFixedPrice(t *testing.T) {
	base := decimal.NewFromInt(10000)

	t.Run("cheaper fixed price replaces the base", func(t *testing.T) {
		got := ApplyEventAction(action(domain.ActionDiscountFixedPrice, "8000"), base)
		assert.True(t, decimal.NewFromInt(8000).Equal(got), "got %s", got)
	})

	t.Run("fixed price above base has no effect", func(t *testing.T) {
		got := ApplyEventAction(action(domain.ActionDiscountFixedPrice, "12000"), base)
		assert.True(t, base.Equal(got))
	})

	t.Run("fixed price equal to base has no effect", func(t *testing.T) {
		got := ApplyEventAction(action(domain.ActionDiscountFixedPrice, "10000"), base)
		assert.True(t, base.Equal(got))
	})

	t.Run("non-numeric value is ignored", func(t *testing.T) {
		got := ApplyEventAction(action(domain.ActionDiscountFixedPrice, "cheap"), base)
		assert.True(t, base.Equal(got))
	})
}

func TestApplyEventAction_UnpricedTypes(t *testing.T) {
	base := decimal.NewFromInt(10000)

	for _, at := range []domain.ActionType{
		domain.ActionFreeShipping,
		domain.ActionBonusPoints,
		domain.ActionBuyXGetY,
		domain.ActionEarlyAccess,
		domain.ActionType("SOMETHING_NEW"),
	} {
		got := ApplyEventAction(action(at, "42"), base)
		assert.True(t, base.Equal(got), "action type %s must not change the price", at)
	}
}
