package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus is the order lifecycle state
type BillStatus string

const (
	BillStatusPending   BillStatus = "PENDING"
	BillStatusConfirmed BillStatus = "CONFIRMED"
	BillStatusShipping  BillStatus = "SHIPPING"
	BillStatusDelivered BillStatus = "DELIVERED"
	BillStatusCancelled BillStatus = "CANCELLED"
)

// Bill represents an order created from a checkout
// Table: bills
type Bill struct {
	ID                 int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Code               string          `gorm:"column:code;type:varchar(36);uniqueIndex" json:"code"`
	MemberID           int64           `gorm:"column:member_id;index" json:"member_id"`
	Status             BillStatus      `gorm:"column:status;type:varchar(20);index" json:"status"`
	ShippingMethodID   int64           `gorm:"column:shipping_method_id" json:"shipping_method_id"`
	ShippingFee        decimal.Decimal `gorm:"column:shipping_fee;type:decimal(15,2)" json:"shipping_fee"`
	OriginalSubtotal   decimal.Decimal `gorm:"column:original_subtotal;type:decimal(15,2)" json:"original_subtotal"`
	DiscountedSubtotal decimal.Decimal `gorm:"column:discounted_subtotal;type:decimal(15,2)" json:"discounted_subtotal"`
	GrandTotal         decimal.Decimal `gorm:"column:grand_total;type:decimal(15,2)" json:"grand_total"`
	EventID            *int64          `gorm:"column:event_id;index" json:"event_id,omitempty"`
	ShippingAddress    string          `gorm:"column:shipping_address;type:varchar(500)" json:"shipping_address"`
	CreatedAt          time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Items []BillItem `gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE" json:"items"`
}

func (Bill) TableName() string { return "bills" }

// CanTransitionTo reports whether a status change is allowed
func (b *Bill) CanTransitionTo(next BillStatus) bool {
	switch b.Status {
	case BillStatusPending:
		return next == BillStatusConfirmed || next == BillStatusCancelled
	case BillStatusConfirmed:
		return next == BillStatusShipping || next == BillStatusCancelled
	case BillStatusShipping:
		return next == BillStatusDelivered
	default:
		return false
	}
}

// BillItem snapshots a priced line at checkout time
type BillItem struct {
	ID               int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BillID           int64           `gorm:"column:bill_id;index" json:"bill_id"`
	BookID           int64           `gorm:"column:book_id;index" json:"book_id"`
	Title            string          `gorm:"column:title;type:varchar(255)" json:"title"`
	Quantity         int             `gorm:"column:quantity" json:"quantity"`
	UnitPrice        decimal.Decimal `gorm:"column:unit_price;type:decimal(15,2)" json:"unit_price"`
	FinalUnitPrice   decimal.Decimal `gorm:"column:final_unit_price;type:decimal(15,2)" json:"final_unit_price"`
	HasEventDiscount bool            `gorm:"column:has_event_discount" json:"has_event_discount"`
}

func (BillItem) TableName() string { return "bill_items" }

// ShippingMethod is a flat-fee delivery option
type ShippingMethod struct {
	ID       int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name     string          `gorm:"column:name;type:varchar(100)" json:"name"`
	Price    decimal.Decimal `gorm:"column:price;type:decimal(15,2)" json:"price"`
	IsActive bool            `gorm:"column:is_active;default:true" json:"is_active"`
}

func (ShippingMethod) TableName() string { return "shipping_methods" }

// UpdateBillStatusRequest is the request body for a status change
type UpdateBillStatusRequest struct {
	Status BillStatus `json:"status" binding:"required"`
}

// BillResponse is the API response format for a bill
type BillResponse struct {
	ID                 int64           `json:"id"`
	Code               string          `json:"code"`
	Status             BillStatus      `json:"status"`
	Items              []BillItem      `json:"items"`
	ShippingFee        decimal.Decimal `json:"shipping_fee"`
	OriginalSubtotal   decimal.Decimal `json:"original_subtotal"`
	DiscountedSubtotal decimal.Decimal `json:"discounted_subtotal"`
	GrandTotal         decimal.Decimal `json:"grand_total"`
	EventID            *int64          `json:"event_id,omitempty"`
	ShippingAddress    string          `json:"shipping_address"`
	CreatedAt          time.Time       `json:"created_at"`
}

// ToResponse converts Bill to BillResponse
func (b *Bill) ToResponse() BillResponse {
	return BillResponse{
		ID:                 b.ID,
		Code:               b.Code,
		Status:             b.Status,
		Items:              b.Items,
		ShippingFee:        b.ShippingFee,
		OriginalSubtotal:   b.OriginalSubtotal,
		DiscountedSubtotal: b.DiscountedSubtotal,
		GrandTotal:         b.GrandTotal,
		EventID:            b.EventID,
		ShippingAddress:    b.ShippingAddress,
		CreatedAt:          b.CreatedAt,
	}
}

// BillListResponse is the response for bill list endpoints
type BillListResponse struct {
	Bills []BillResponse `json:"bills"`
	Total int64          `json:"total"`
}
