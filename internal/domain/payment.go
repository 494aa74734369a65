package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the settlement state of a payment
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusFailed   PaymentStatus = "FAILED"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// Payment methods accepted at checkout. Gateway integration is external;
// this record only tracks settlement state per bill.
const (
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "bank_transfer"
	PaymentMethodCOD      = "cash_on_delivery"
)

// Payment represents a payment attempt for a bill
// Table: payments
type Payment struct {
	ID             int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BillID         int64           `gorm:"column:bill_id;index" json:"bill_id"`
	MemberID       int64           `gorm:"column:member_id;index" json:"member_id"`
	Method         string          `gorm:"column:method;type:varchar(30)" json:"method"`
	Amount         decimal.Decimal `gorm:"column:amount;type:decimal(15,2)" json:"amount"`
	Status         PaymentStatus   `gorm:"column:status;type:varchar(20);index" json:"status"`
	TransactionRef string          `gorm:"column:transaction_ref;type:varchar(100)" json:"transaction_ref,omitempty"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }

// CreatePaymentRequest is the request body for initiating a payment
type CreatePaymentRequest struct {
	BillID int64  `json:"bill_id" binding:"required"`
	Method string `json:"method" binding:"required"`
}

// PaymentResponse is the API response format for a payment
type PaymentResponse struct {
	ID             int64           `json:"id"`
	BillID         int64           `json:"bill_id"`
	Method         string          `json:"method"`
	Amount         decimal.Decimal `json:"amount"`
	Status         PaymentStatus   `json:"status"`
	TransactionRef string          `json:"transaction_ref,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ToResponse converts Payment to PaymentResponse
func (p *Payment) ToResponse() PaymentResponse {
	return PaymentResponse{
		ID:             p.ID,
		BillID:         p.BillID,
		Method:         p.Method,
		Amount:         p.Amount,
		Status:         p.Status,
		TransactionRef: p.TransactionRef,
		CreatedAt:      p.CreatedAt,
	}
}
