package repository

import (
	"errors"

	"github.com/litmart/litmart-backend/internal/domain"
	"gorm.io/gorm"
)

// ShippingRepository defines the interface for shipping method lookup
type ShippingRepository interface {
	FindByID(id int64) (*domain.ShippingMethod, error)
	ListActive() ([]domain.ShippingMethod, error)
}

// shippingRepository implements ShippingRepository with GORM
type shippingRepository struct {
	db *gorm.DB
}

// NewShippingRepository creates a new ShippingRepository
func NewShippingRepository(db *gorm.DB) ShippingRepository {
	return &shippingRepository{db: db}
}

// FindByID finds an active shipping method by ID
func (r *shippingRepository) FindByID(id int64) (*domain.ShippingMethod, error) {
	var method domain.ShippingMethod

	err := r.db.
		Where("id = ? AND is_active = ?", id, true).
		First(&method).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &method, nil
}

// ListActive returns all active shipping methods
func (r *shippingRepository) ListActive() ([]domain.ShippingMethod, error) {
	var methods []domain.ShippingMethod

	err := r.db.
		Where("is_active = ?", true).
		Order("price ASC").
		Find(&methods).Error

	if err != nil {
		return nil, err
	}

	return methods, nil
}
