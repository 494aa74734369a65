package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem represents one line in a member's cart
// Table: cart_items
type CartItem struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	MemberID  int64     `gorm:"column:member_id;index:idx_cart_member_book,unique" json:"member_id"`
	BookID    int64     `gorm:"column:book_id;index:idx_cart_member_book,unique" json:"book_id"`
	Quantity  int       `gorm:"column:quantity;default:1" json:"quantity"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Book *Book `gorm:"foreignKey:BookID" json:"book,omitempty"`
}

func (CartItem) TableName() string { return "cart_items" }

// AddCartItemRequest is the request body for adding a book to the cart
type AddCartItemRequest struct {
	BookID   int64 `json:"book_id" binding:"required"`
	Quantity int   `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest is the request body for changing a cart line quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartItemResponse is the API response format for a cart line
type CartItemResponse struct {
	ID        int64           `json:"id"`
	BookID    int64           `json:"book_id"`
	Title     string          `json:"title"`
	CoverURL  string          `json:"cover_url,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
	InStock   bool            `json:"in_stock"`
}

// ToResponse converts CartItem to CartItemResponse (requires Book loaded)
func (ci *CartItem) ToResponse() CartItemResponse {
	resp := CartItemResponse{
		ID:       ci.ID,
		BookID:   ci.BookID,
		Quantity: ci.Quantity,
	}
	if ci.Book != nil {
		resp.Title = ci.Book.Title
		resp.CoverURL = ci.Book.CoverURL
		resp.UnitPrice = ci.Book.FinalPrice()
		resp.LineTotal = resp.UnitPrice.Mul(decimal.NewFromInt(int64(ci.Quantity)))
		resp.InStock = ci.Book.Stock >= ci.Quantity
	}
	return resp
}

// CartResponse is the response for the cart view
type CartResponse struct {
	Items    []CartItemResponse `json:"items"`
	Subtotal decimal.Decimal    `json:"subtotal"`
}
