package repository

import (
	"errors"
	"fmt"

	"github.com/litmart/litmart-backend/internal/common"
	"github.com/litmart/litmart-backend/internal/domain"
	"gorm.io/gorm"
)

// BillRepository defines the interface for order data access
type BillRepository interface {
	// CreateWithLogs creates the bill (with items), decrements stock with a
	// guarded update, and writes event application logs — all in a single
	// transaction so a bill and its discount attribution are never observed
	// inconsistently.
	CreateWithLogs(bill *domain.Bill, logs []domain.EventLog) error

	FindByID(id int64) (*domain.Bill, error)
	FindByCode(code string) (*domain.Bill, error)
	ListByMember(memberID int64, offset, limit int) ([]*domain.Bill, int64, error)
	UpdateStatus(id int64, status domain.BillStatus) error
}

// billRepository implements BillRepository with GORM
type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new BillRepository
func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepository{db: db}
}

// CreateWithLogs creates a bill atomically with stock decrement and event logs
func (r *billRepository) CreateWithLogs(bill *domain.Bill, logs []domain.EventLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(bill).Error; err != nil {
			return err
		}

		for _, item := range bill.Items {
			// Guarded decrement: fails if concurrent checkouts drained stock
			// between preview and commit
			result := tx.Model(&domain.Book{}).
				Where("id = ? AND stock >= ?", item.BookID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("book %d: %w", item.BookID, common.ErrOutOfStock)
			}
		}

		for i := range logs {
			logs[i].BillID = bill.ID
			if err := tx.Create(&logs[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// FindByID finds a bill with its items
func (r *billRepository) FindByID(id int64) (*domain.Bill, error) {
	var bill domain.Bill

	err := r.db.
		Preload("Items").
		Where("id = ?", id).
		First(&bill).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &bill, nil
}

// FindByCode finds a bill by its public code
func (r *billRepository) FindByCode(code string) (*domain.Bill, error) {
	var bill domain.Bill

	err := r.db.
		Preload("Items").
		Where("code = ?", code).
		First(&bill).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &bill, nil
}

// ListByMember returns a page of a member's bills, newest first
func (r *billRepository) ListByMember(memberID int64, offset, limit int) ([]*domain.Bill, int64, error) {
	var bills []*domain.Bill
	var total int64

	if err := r.db.Model(&domain.Bill{}).
		Where("member_id = ?", memberID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Preload("Items").
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&bills).Error

	if err != nil {
		return nil, 0, err
	}

	return bills, total, nil
}

// UpdateStatus changes a bill's status
func (r *billRepository) UpdateStatus(id int64, status domain.BillStatus) error {
	return r.db.Model(&domain.Bill{}).
		Where("id = ?", id).
		Update("status", status).Error
}
