package repository

import (
	"errors"

	"github.com/litmart/litmart-backend/internal/domain"
	"gorm.io/gorm"
)

// BookRepository defines the interface for catalog data access
type BookRepository interface {
	// FindByID loads a book with author/publisher/series/categories, which
	// the event targeting resolver needs in full
	FindByID(id int64) (*domain.Book, error)
	List(search string, categoryID int64, offset, limit int) ([]*domain.Book, int64, error)
	Create(book *domain.Book) error
	Update(book *domain.Book) error
	ReplaceCategories(book *domain.Book, categories []domain.Category) error
	Delete(id int64) error
}

// bookRepository implements BookRepository with GORM
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates a new BookRepository
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

// FindByID finds a book with its relations loaded
func (r *bookRepository) FindByID(id int64) (*domain.Book, error) {
	var book domain.Book

	err := r.db.
		Preload("Author").
		Preload("Publisher").
		Preload("Series").
		Preload("Categories").
		Where("id = ?", id).
		First(&book).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &book, nil
}

// List retrieves a page of active books, optionally filtered by title search
// and category
func (r *bookRepository) List(search string, categoryID int64, offset, limit int) ([]*domain.Book, int64, error) {
	var books []*domain.Book
	var total int64

	query := r.db.Model(&domain.Book{}).Where("is_active = ?", true)
	if search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}
	if categoryID > 0 {
		query = query.
			Joins("JOIN book_categories bc ON bc.book_id = books.id").
			Where("bc.category_id = ?", categoryID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Author").
		Preload("Publisher").
		Preload("Categories").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&books).Error

	if err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

// Create inserts a new book
func (r *bookRepository) Create(book *domain.Book) error {
	return r.db.Create(book).Error
}

// Update saves book fields (not category associations)
func (r *bookRepository) Update(book *domain.Book) error {
	return r.db.Omit("Categories", "Author", "Publisher", "Series").Save(book).Error
}

// ReplaceCategories replaces the book/category associations
func (r *bookRepository) ReplaceCategories(book *domain.Book, categories []domain.Category) error {
	return r.db.Model(book).Association("Categories").Replace(categories)
}

// Delete soft-disables a book (bills keep referencing it by snapshot)
func (r *bookRepository) Delete(id int64) error {
	return r.db.Model(&domain.Book{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
