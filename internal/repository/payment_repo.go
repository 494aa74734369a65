package repository

import (
	"errors"

	"github.com/litmart/litmart-backend/internal/domain"
	"gorm.io/gorm"
)

// PaymentRepository handles payment data operations
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// FindByID returns a payment by ID
func (r *PaymentRepository) FindByID(id int64) (*domain.Payment, error) {
	var payment domain.Payment
	err := r.db.Where("id = ?", id).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

// FindByBill returns the latest payment for a bill
func (r *PaymentRepository) FindByBill(billID int64) (*domain.Payment, error) {
	var payment domain.Payment
	err := r.db.Where("bill_id = ?", billID).
		Order("created_at DESC").
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

// Create inserts a new payment
func (r *PaymentRepository) Create(payment *domain.Payment) error {
	return r.db.Create(payment).Error
}

// UpdateStatus changes a payment's status and transaction reference
func (r *PaymentRepository) UpdateStatus(id int64, status domain.PaymentStatus, transactionRef string) error {
	return r.db.Model(&domain.Payment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":          status,
			"transaction_ref": transactionRef,
		}).Error
}
