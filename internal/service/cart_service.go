package service

import (
	"github.com/litmart/litmart-backend/internal/common"
	"github.com/litmart/litmart-backend/internal/domain"
	"github.com/litmart/litmart-backend/internal/repository"
	"github.com/shopspring/decimal"
)

// Cart quantity bounds per line
const maxCartQuantity = 99

// CartService defines the business logic for carts
type CartService interface {
	GetCart(memberID int64) (*domain.CartResponse, error)
	AddItem(memberID int64, req *domain.AddCartItemRequest) (*domain.CartResponse, error)
	UpdateItem(memberID, itemID int64, req *domain.UpdateCartItemRequest) (*domain.CartResponse, error)
	RemoveItem(memberID, itemID int64) error
	Clear(memberID int64) error
}

type cartService struct {
	repo  repository.CartRepository
	books repository.BookRepository
}

// NewCartService creates a new CartService
func NewCartService(repo repository.CartRepository, books repository.BookRepository) CartService {
	return &cartService{repo: repo, books: books}
}

// GetCart returns the member's cart with line totals
func (s *cartService) GetCart(memberID int64) (*domain.CartResponse, error) {
	items, err := s.repo.ListByMember(memberID)
	if err != nil {
		return nil, err
	}

	resp := &domain.CartResponse{
		Items:    make([]domain.CartItemResponse, len(items)),
		Subtotal: decimal.Zero,
	}
	for i, item := range items {
		resp.Items[i] = item.ToResponse()
		resp.Subtotal = resp.Subtotal.Add(resp.Items[i].LineTotal)
	}

	return resp, nil
}

// AddItem adds a book to the cart (merging with an existing line)
func (s *cartService) AddItem(memberID int64, req *domain.AddCartItemRequest) (*domain.CartResponse, error) {
	if req.Quantity < 1 || req.Quantity > maxCartQuantity {
		return nil, common.ErrInvalidQuantity
	}

	book, err := s.books.FindByID(req.BookID)
	if err != nil {
		return nil, err
	}
	if book == nil || !book.IsActive {
		return nil, common.ErrBookNotFound
	}

	item := &domain.CartItem{
		MemberID: memberID,
		BookID:   req.BookID,
		Quantity: req.Quantity,
	}
	if err := s.repo.Upsert(item); err != nil {
		return nil, err
	}

	return s.GetCart(memberID)
}

// UpdateItem changes a cart line quantity after ownership check
func (s *cartService) UpdateItem(memberID, itemID int64, req *domain.UpdateCartItemRequest) (*domain.CartResponse, error) {
	if req.Quantity < 1 || req.Quantity > maxCartQuantity {
		return nil, common.ErrInvalidQuantity
	}

	items, err := s.repo.ListByMember(memberID)
	if err != nil {
		return nil, err
	}

	var owned bool
	for _, item := range items {
		if item.ID == itemID {
			owned = true
			break
		}
	}
	if !owned {
		return nil, common.ErrNotFound
	}

	if err := s.repo.UpdateQuantity(itemID, req.Quantity); err != nil {
		return nil, err
	}

	return s.GetCart(memberID)
}

// RemoveItem deletes a cart line
func (s *cartService) RemoveItem(memberID, itemID int64) error {
	return s.repo.Delete(memberID, itemID)
}

// Clear empties the member's cart
func (s *cartService) Clear(memberID int64) error {
	return s.repo.ClearForMember(memberID)
}
