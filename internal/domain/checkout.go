package domain

import "github.com/shopspring/decimal"

// CheckoutLine is one requested line in a preview/checkout call
type CheckoutLine struct {
	BookID   int64 `json:"book_id" binding:"required"`
	Quantity int   `json:"quantity" binding:"required,min=1"`
}

// CheckoutPreviewRequest is the request body for pricing a cart
type CheckoutPreviewRequest struct {
	Lines            []CheckoutLine `json:"lines" binding:"required,min=1,dive"`
	ShippingMethodID int64          `json:"shipping_method_id" binding:"required"`
}

// CheckoutRequest creates a bill from the same inputs as a preview
type CheckoutRequest struct {
	Lines            []CheckoutLine `json:"lines" binding:"required,min=1,dive"`
	ShippingMethodID int64          `json:"shipping_method_id" binding:"required"`
	ShippingAddress  string         `json:"shipping_address" binding:"required"`
}

// PreviewLine is one priced line in a checkout preview
type PreviewLine struct {
	BookID           int64           `json:"book_id"`
	Title            string          `json:"title"`
	Quantity         int             `json:"quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	FinalUnitPrice   decimal.Decimal `json:"final_unit_price"`
	LineTotal        decimal.Decimal `json:"line_total"`
	HasEventDiscount bool            `json:"has_event_discount"`
}

// CheckoutPreviewResponse is the full price breakdown for a cart.
// It is always complete: a preview either prices every line or fails whole.
type CheckoutPreviewResponse struct {
	Lines              []PreviewLine     `json:"lines"`
	OriginalSubtotal   decimal.Decimal   `json:"original_subtotal"`
	DiscountedSubtotal decimal.Decimal   `json:"discounted_subtotal"`
	ShippingFee        decimal.Decimal   `json:"shipping_fee"`
	GrandTotal         decimal.Decimal   `json:"grand_total"`
	TotalSaved         decimal.Decimal   `json:"total_saved"`
	AppliedEvent       *AppliedEventInfo `json:"applied_event,omitempty"`
}
