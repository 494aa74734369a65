package service

import (
	"github.com/litmart/litmart-backend/internal/domain"
	"github.com/litmart/litmart-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

var (
	decimalZero    = decimal.Zero
	decimalHundred = decimal.NewFromInt(100)
)

// ApplyEventAction computes the discounted price for a base price under an
// event action. Malformed configuration (non-numeric or out-of-range values,
// unpriced action types) never surfaces as an error: it degrades to the base
// price so a badly configured event can never break checkout. Degradations
// are logged for operability since the caller never sees them.
func ApplyEventAction(action *domain.EventAction, basePrice decimal.Decimal) decimal.Decimal {
	if action == nil {
		return basePrice
	}

	switch action.ActionType {
	case domain.ActionDiscountPercent:
		percent, err := decimal.NewFromString(action.ActionValue)
		if err != nil {
			logBadActionValue(action, err)
			return basePrice
		}
		if percent.LessThan(decimalZero) || percent.GreaterThan(decimalHundred) {
			logger.Warn("event action %d: percent %s outside [0,100], ignoring", action.ID, percent)
			return basePrice
		}
		discount := basePrice.Mul(percent).Div(decimalHundred)
		return basePrice.Sub(discount)

	case domain.ActionDiscountAmount:
		amount, err := decimal.NewFromString(action.ActionValue)
		if err != nil {
			logBadActionValue(action, err)
			return basePrice
		}
		result := basePrice.Sub(amount)
		if result.LessThan(decimalZero) {
			return decimalZero
		}
		return result

	case domain.ActionDiscountFixedPrice:
		fixed, err := decimal.NewFromString(action.ActionValue)
		if err != nil {
			logBadActionValue(action, err)
			return basePrice
		}
		// A "fixed price" that isn't actually cheaper has no effect
		if fixed.LessThan(basePrice) {
			return fixed
		}
		return basePrice

	default:
		// Unpriced action types fail closed: no discount
		return basePrice
	}
}

func logBadActionValue(action *domain.EventAction, err error) {
	logger.GetLogger().Warn().
		Int64("action_id", action.ID).
		Int64("event_id", action.EventID).
		Str("action_type", string(action.ActionType)).
		Str("action_value", action.ActionValue).
		Err(err).
		Msg("malformed event action value, no discount applied")
}
