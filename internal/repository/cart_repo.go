package repository

import (
	"errors"

	"github.com/litmart/litmart-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository defines the interface for cart data access
type CartRepository interface {
	ListByMember(memberID int64) ([]*domain.CartItem, error)
	FindItem(memberID, bookID int64) (*domain.CartItem, error)
	Upsert(item *domain.CartItem) error
	UpdateQuantity(id int64, quantity int) error
	Delete(memberID, itemID int64) error
	ClearForMember(memberID int64) error
}

// cartRepository implements CartRepository with GORM
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new CartRepository
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// ListByMember returns a member's cart lines with books loaded
func (r *cartRepository) ListByMember(memberID int64) ([]*domain.CartItem, error) {
	var items []*domain.CartItem

	err := r.db.
		Preload("Book").
		Preload("Book.Categories").
		Where("member_id = ?", memberID).
		Order("created_at ASC").
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

// FindItem finds a member's cart line for a book
func (r *cartRepository) FindItem(memberID, bookID int64) (*domain.CartItem, error) {
	var item domain.CartItem

	err := r.db.
		Where("member_id = ? AND book_id = ?", memberID, bookID).
		First(&item).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &item, nil
}

// Upsert inserts a cart line or adds to the quantity of an existing one
func (r *cartRepository) Upsert(item *domain.CartItem) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "member_id"}, {Name: "book_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"quantity": gorm.Expr("quantity + ?", item.Quantity)}),
	}).Create(item).Error
}

// UpdateQuantity sets the quantity of a cart line
func (r *cartRepository) UpdateQuantity(id int64, quantity int) error {
	return r.db.Model(&domain.CartItem{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

// Delete removes a cart line (scoped by member for safety)
func (r *cartRepository) Delete(memberID, itemID int64) error {
	return r.db.
		Where("id = ? AND member_id = ?", itemID, memberID).
		Delete(&domain.CartItem{}).Error
}

// ClearForMember empties a member's cart
func (r *cartRepository) ClearForMember(memberID int64) error {
	return r.db.
		Where("member_id = ?", memberID).
		Delete(&domain.CartItem{}).Error
}
