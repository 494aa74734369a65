package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/litmart/litmart-backend/internal/common"
	"github.com/litmart/litmart-backend/internal/domain"
	"github.com/litmart/litmart-backend/internal/middleware"
	"github.com/litmart/litmart-backend/internal/service"
)

// CartHandler handles HTTP requests for the shopping cart
type CartHandler struct {
	service service.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(service service.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// GetCart godoc
// @Summary      Get cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=domain.CartResponse}
// @Security     BearerAuth
// @Router       /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	data, err := h.service.GetCart(middleware.GetMemberID(c))
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch cart", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// AddItem godoc
// @Summary      Add item to cart
// @Description  Adds a book to the cart; quantities accumulate for the same book
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        request  body  domain.AddCartItemRequest  true  "Book and quantity"
// @Success      200  {object}  common.APIResponse{data=domain.CartResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req domain.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.service.AddItem(middleware.GetMemberID(c), &req)
	if err != nil {
		writeCartError(c, err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// UpdateItem godoc
// @Summary      Update cart item quantity
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id       path  int                           true  "Cart item ID"
// @Param        request  body  domain.UpdateCartItemRequest  true  "New quantity"
// @Success      200  {object}  common.APIResponse{data=domain.CartResponse}
// @Failure      404  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /cart/items/{id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	itemID, err := paramInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid cart item ID", err)
		return
	}

	var req domain.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.service.UpdateItem(middleware.GetMemberID(c), itemID, &req)
	if err != nil {
		writeCartError(c, err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// RemoveItem godoc
// @Summary      Remove cart item
// @Tags         cart
// @Produce      json
// @Param        id  path  int  true  "Cart item ID"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	itemID, err := paramInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid cart item ID", err)
		return
	}

	if err := h.service.RemoveItem(middleware.GetMemberID(c), itemID); err != nil {
		writeCartError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"removed": true}, nil)
}

// ClearCart godoc
// @Summary      Empty the cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.service.Clear(middleware.GetMemberID(c)); err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to clear cart", err)
		return
	}

	common.SuccessResponse(c, gin.H{"cleared": true}, nil)
}

func writeCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrBookNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "Book not found", err)
	case errors.Is(err, common.ErrNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "Cart item not found", err)
	case errors.Is(err, common.ErrInvalidQuantity):
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid quantity", err)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, "Cart operation failed", err)
	}
}
