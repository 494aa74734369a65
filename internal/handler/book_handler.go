package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litmart/litmart-backend/internal/common"
	"github.com/litmart/litmart-backend/internal/domain"
	"github.com/litmart/litmart-backend/internal/service"
)

// BookHandler handles HTTP requests for the book catalog
type BookHandler struct {
	service service.BookService
}

// NewBookHandler creates a new BookHandler
func NewBookHandler(service service.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// ListBooks godoc
// @Summary      List books
// @Description  Returns a page of active books, optionally filtered by search keyword or category
// @Tags         books
// @Produce      json
// @Param        page      query  int     false  "Page number"
// @Param        limit     query  int     false  "Page size"
// @Param        search    query  string  false  "Title keyword"
// @Param        category  query  int     false  "Category ID"
// @Success      200  {object}  common.APIResponse{data=[]domain.BookResponse}
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)
	search := c.Query("search")
	categoryID := int64(queryInt(c, "category", 0))

	data, err := h.service.List(search, categoryID, page, limit)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch books", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// GetBook godoc
// @Summary      Book detail
// @Tags         books
// @Produce      json
// @Param        id  path  int  true  "Book ID"
// @Success      200  {object}  common.APIResponse{data=domain.BookResponse}
// @Failure      404  {object}  common.APIResponse
// @Router       /books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := paramInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid book ID", err)
		return
	}

	data, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, common.ErrBookNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Book not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch book", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// CreateBook godoc
// @Summary      Create book
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        request  body  domain.CreateBookRequest  true  "Book"
// @Success      200  {object}  common.APIResponse{data=domain.BookResponse}
// @Failure      400  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /admin/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req domain.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.service.Create(&req)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create book", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// UpdateBook godoc
// @Summary      Update book
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path  int                       true  "Book ID"
// @Param        request  body  domain.UpdateBookRequest  true  "Book"
// @Success      200  {object}  common.APIResponse{data=domain.BookResponse}
// @Failure      404  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /admin/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, err := paramInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid book ID", err)
		return
	}

	var req domain.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.service.Update(id, &req)
	if err != nil {
		if errors.Is(err, common.ErrBookNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Book not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update book", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// DeleteBook godoc
// @Summary      Delete book
// @Description  Deactivates a book; it stops appearing in listings
// @Tags         books
// @Produce      json
// @Param        id  path  int  true  "Book ID"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /admin/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := paramInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid book ID", err)
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, common.ErrBookNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Book not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete book", err)
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}
