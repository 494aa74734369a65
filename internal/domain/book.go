package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Book represents a catalog item
// Table: books
type Book struct {
	ID          int64            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string           `gorm:"column:title;type:varchar(255);index" json:"title"`
	ISBN        string           `gorm:"column:isbn;type:varchar(20);uniqueIndex" json:"isbn"`
	Description string           `gorm:"column:description;type:text" json:"description,omitempty"`
	Price       decimal.Decimal  `gorm:"column:price;type:decimal(15,2)" json:"price"`
	SalePrice   *decimal.Decimal `gorm:"column:sale_price;type:decimal(15,2)" json:"sale_price,omitempty"`
	Stock       int              `gorm:"column:stock;default:0" json:"stock"`
	CoverURL    string           `gorm:"column:cover_url;type:varchar(500)" json:"cover_url,omitempty"`
	PageCount   int              `gorm:"column:page_count" json:"page_count,omitempty"`
	AuthorID    int64            `gorm:"column:author_id;index" json:"author_id"`
	PublisherID int64            `gorm:"column:publisher_id;index" json:"publisher_id"`
	SeriesID    *int64           `gorm:"column:series_id;index" json:"series_id,omitempty"`
	IsActive    bool             `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt   time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Author     *Author    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Publisher  *Publisher `gorm:"foreignKey:PublisherID" json:"publisher,omitempty"`
	Series     *Series    `gorm:"foreignKey:SeriesID" json:"series,omitempty"`
	Categories []Category `gorm:"many2many:book_categories" json:"categories,omitempty"`
}

func (Book) TableName() string { return "books" }

// FinalPrice is the catalog price net of any catalog-level sale.
// Promotional event discounts are applied on top of this, never instead of it.
func (b *Book) FinalPrice() decimal.Decimal {
	if b.SalePrice != nil && b.SalePrice.LessThan(b.Price) {
		return *b.SalePrice
	}
	return b.Price
}

// CategoryIDs returns the ids of the book's categories
func (b *Book) CategoryIDs() []int64 {
	ids := make([]int64, len(b.Categories))
	for i, c := range b.Categories {
		ids[i] = c.ID
	}
	return ids
}

// InCategory reports whether the book belongs to the given category
func (b *Book) InCategory(categoryID int64) bool {
	for _, c := range b.Categories {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}

// Category represents a catalog category
type Category struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"column:name;type:varchar(100)" json:"name"`
	ParentID *int64 `gorm:"column:parent_id;index" json:"parent_id,omitempty"`
}

func (Category) TableName() string { return "categories" }

// Author represents a book author
type Author struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(100)" json:"name"`
	Bio  string `gorm:"column:bio;type:text" json:"bio,omitempty"`
}

func (Author) TableName() string { return "authors" }

// Publisher represents a publisher
type Publisher struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(100)" json:"name"`
}

func (Publisher) TableName() string { return "publishers" }

// Series represents a book series
type Series struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;type:varchar(100)" json:"name"`
}

func (Series) TableName() string { return "series" }

// ---- requests / responses ----

// CreateBookRequest is the request body for creating a book
type CreateBookRequest struct {
	Title       string           `json:"title" binding:"required"`
	ISBN        string           `json:"isbn" binding:"required"`
	Description string           `json:"description"`
	Price       decimal.Decimal  `json:"price" binding:"required"`
	SalePrice   *decimal.Decimal `json:"sale_price"`
	Stock       int              `json:"stock"`
	CoverURL    string           `json:"cover_url"`
	PageCount   int              `json:"page_count"`
	AuthorID    int64            `json:"author_id" binding:"required"`
	PublisherID int64            `json:"publisher_id" binding:"required"`
	SeriesID    *int64           `json:"series_id"`
	CategoryIDs []int64          `json:"category_ids"`
}

// UpdateBookRequest is the request body for updating a book
type UpdateBookRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	SalePrice   *decimal.Decimal `json:"sale_price"`
	Stock       *int             `json:"stock"`
	CoverURL    string           `json:"cover_url"`
	IsActive    *bool            `json:"is_active"`
	CategoryIDs []int64          `json:"category_ids"`
}

// BookResponse is the API response format for a book
type BookResponse struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	ISBN        string           `json:"isbn"`
	Description string           `json:"description,omitempty"`
	Price       decimal.Decimal  `json:"price"`
	SalePrice   *decimal.Decimal `json:"sale_price,omitempty"`
	FinalPrice  decimal.Decimal  `json:"final_price"`
	Stock       int              `json:"stock"`
	CoverURL    string           `json:"cover_url,omitempty"`
	AuthorName  string           `json:"author_name,omitempty"`
	Publisher   string           `json:"publisher,omitempty"`
	Categories  []Category       `json:"categories,omitempty"`
	IsActive    bool             `json:"is_active"`
	CreatedAt   time.Time        `json:"created_at"`
}

// ToResponse converts Book to BookResponse
func (b *Book) ToResponse() BookResponse {
	resp := BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		ISBN:        b.ISBN,
		Description: b.Description,
		Price:       b.Price,
		SalePrice:   b.SalePrice,
		FinalPrice:  b.FinalPrice(),
		Stock:       b.Stock,
		CoverURL:    b.CoverURL,
		Categories:  b.Categories,
		IsActive:    b.IsActive,
		CreatedAt:   b.CreatedAt,
	}
	if b.Author != nil {
		resp.AuthorName = b.Author.Name
	}
	if b.Publisher != nil {
		resp.Publisher = b.Publisher.Name
	}
	return resp
}

// BookListResponse is the response for book list endpoints
type BookListResponse struct {
	Books []BookResponse `json:"books"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
