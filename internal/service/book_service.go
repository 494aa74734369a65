package service

import (
	"context"
	"encoding/json"

	"github.com/litmart/litmart-backend/internal/common"
	"github.com/litmart/litmart-backend/internal/domain"
	"github.com/litmart/litmart-backend/internal/repository"
	"github.com/litmart/litmart-backend/pkg/cache"
	"github.com/litmart/litmart-backend/pkg/logger"
)

// BookService defines the business logic for the catalog
type BookService interface {
	List(search string, categoryID int64, page, limit int) (*domain.BookListResponse, error)
	GetByID(id int64) (*domain.BookResponse, error)
	Create(req *domain.CreateBookRequest) (*domain.BookResponse, error)
	Update(id int64, req *domain.UpdateBookRequest) (*domain.BookResponse, error)
	Delete(id int64) error
}

type bookService struct {
	repo  repository.BookRepository
	cache cache.Service
}

// NewBookService creates a new BookService
func NewBookService(repo repository.BookRepository, cacheService cache.Service) BookService {
	return &bookService{repo: repo, cache: cacheService}
}

// List retrieves a page of books
func (s *bookService) List(search string, categoryID int64, page, limit int) (*domain.BookListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	books, total, err := s.repo.List(search, categoryID, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.BookResponse, len(books))
	for i, book := range books {
		responses[i] = book.ToResponse()
	}

	return &domain.BookListResponse{
		Books: responses,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// GetByID retrieves a book, serving from cache when possible
func (s *bookService) GetByID(id int64) (*domain.BookResponse, error) {
	ctx := context.Background()

	if s.cache != nil && s.cache.IsAvailable() {
		if data, err := s.cache.GetBook(ctx, id); err == nil {
			var resp domain.BookResponse
			if err := json.Unmarshal(data, &resp); err == nil {
				return &resp, nil
			}
		}
	}

	book, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, common.ErrBookNotFound
	}

	resp := book.ToResponse()

	if s.cache != nil {
		if err := s.cache.SetBook(ctx, id, resp); err != nil {
			logger.Warn("failed to cache book %d: %v", id, err)
		}
	}

	return &resp, nil
}

// Create creates a new book with its category associations
func (s *bookService) Create(req *domain.CreateBookRequest) (*domain.BookResponse, error) {
	book := &domain.Book{
		Title:       req.Title,
		ISBN:        req.ISBN,
		Description: req.Description,
		Price:       req.Price,
		SalePrice:   req.SalePrice,
		Stock:       req.Stock,
		CoverURL:    req.CoverURL,
		PageCount:   req.PageCount,
		AuthorID:    req.AuthorID,
		PublisherID: req.PublisherID,
		SeriesID:    req.SeriesID,
		IsActive:    true,
		Categories:  categoryRefs(req.CategoryIDs),
	}

	if err := s.repo.Create(book); err != nil {
		return nil, err
	}

	s.invalidateLists()

	resp := book.ToResponse()
	return &resp, nil
}

// Update applies partial changes to a book
func (s *bookService) Update(id int64, req *domain.UpdateBookRequest) (*domain.BookResponse, error) {
	book, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, common.ErrBookNotFound
	}

	if req.Title != "" {
		book.Title = req.Title
	}
	if req.Description != "" {
		book.Description = req.Description
	}
	if req.Price != nil {
		book.Price = *req.Price
	}
	if req.SalePrice != nil {
		book.SalePrice = req.SalePrice
	}
	if req.Stock != nil {
		book.Stock = *req.Stock
	}
	if req.CoverURL != "" {
		book.CoverURL = req.CoverURL
	}
	if req.IsActive != nil {
		book.IsActive = *req.IsActive
	}

	if err := s.repo.Update(book); err != nil {
		return nil, err
	}

	if req.CategoryIDs != nil {
		if err := s.repo.ReplaceCategories(book, categoryRefs(req.CategoryIDs)); err != nil {
			return nil, err
		}
	}

	s.invalidateBook(id)

	updated, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	resp := updated.ToResponse()
	return &resp, nil
}

// Delete disables a book
func (s *bookService) Delete(id int64) error {
	book, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if book == nil {
		return common.ErrBookNotFound
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.invalidateBook(id)
	return nil
}

func (s *bookService) invalidateBook(id int64) {
	if s.cache == nil {
		return
	}
	ctx := context.Background()
	if err := s.cache.InvalidateBook(ctx, id); err != nil {
		logger.Warn("failed to invalidate book cache %d: %v", id, err)
	}
	s.invalidateLists()
}

func (s *bookService) invalidateLists() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateBookLists(context.Background()); err != nil {
		logger.Warn("failed to invalidate book list cache: %v", err)
	}
}

func categoryRefs(ids []int64) []domain.Category {
	categories := make([]domain.Category, len(ids))
	for i, id := range ids {
		categories[i] = domain.Category{ID: id}
	}
	return categories
}
