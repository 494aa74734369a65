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

// CheckoutHandler handles checkout preview and order placement
type CheckoutHandler struct {
	service service.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(service service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// Preview godoc
// @Summary      Checkout preview
// @Description  Prices the given lines with the current promotional event applied, without creating an order
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body  domain.CheckoutPreviewRequest  true  "Lines and shipping method"
// @Success      200  {object}  common.APIResponse{data=domain.CheckoutPreviewResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /checkout/preview [post]
func (h *CheckoutHandler) Preview(c *gin.Context) {
	var req domain.CheckoutPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.service.Preview(middleware.GetMemberID(c), &req)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// Checkout godoc
// @Summary      Place order
// @Description  Creates a bill from the given lines at the currently priced amounts
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        request  body  domain.CheckoutRequest  true  "Lines, shipping method and address"
// @Success      200  {object}  common.APIResponse{data=domain.BillResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req domain.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.service.Checkout(middleware.GetMemberID(c), &req)
	if err != nil {
		writeCheckoutError(c, err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

func writeCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrCartEmpty):
		common.ErrorResponse(c, http.StatusBadRequest, "No lines to price", err)
	case errors.Is(err, common.ErrInvalidQuantity):
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid quantity", err)
	case errors.Is(err, common.ErrBookNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "Book not found", err)
	case errors.Is(err, common.ErrShippingMethodNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "Shipping method not found", err)
	case errors.Is(err, common.ErrOutOfStock):
		common.ErrorResponse(c, http.StatusConflict, "Insufficient stock", err)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, "Checkout failed", err)
	}
}
