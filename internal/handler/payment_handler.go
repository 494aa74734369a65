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

// PaymentHandler handles payment recording for bills
type PaymentHandler struct {
	service *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(service *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// CreatePayment godoc
// @Summary      Start payment
// @Description  Records a pending payment for one of the member's pending bills
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body  domain.CreatePaymentRequest  true  "Bill and method"
// @Success      200  {object}  common.APIResponse{data=domain.PaymentResponse}
// @Failure      404  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req domain.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.service.Create(middleware.GetMemberID(c), &req)
	if err != nil {
		writePaymentError(c, err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// ConfirmPayment godoc
// @Summary      Confirm payment
// @Description  Marks a payment paid and confirms its bill (admin)
// @Tags         payments
// @Produce      json
// @Param        id  path  int  true  "Payment ID"
// @Success      200  {object}  common.APIResponse{data=domain.PaymentResponse}
// @Failure      404  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /admin/payments/{id}/confirm [post]
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	id, err := paramInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid payment ID", err)
		return
	}

	data, err := h.service.Confirm(id)
	if err != nil {
		writePaymentError(c, err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// FailPayment godoc
// @Summary      Fail payment
// @Description  Marks a pending payment as failed (admin)
// @Tags         payments
// @Produce      json
// @Param        id  path  int  true  "Payment ID"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /admin/payments/{id}/fail [post]
func (h *PaymentHandler) FailPayment(c *gin.Context) {
	id, err := paramInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid payment ID", err)
		return
	}

	if err := h.service.Fail(id); err != nil {
		writePaymentError(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"failed": true}, nil)
}

// GetBillPayment godoc
// @Summary      Payment for a bill
// @Tags         payments
// @Produce      json
// @Param        id  path  int  true  "Bill ID"
// @Success      200  {object}  common.APIResponse{data=domain.PaymentResponse}
// @Failure      404  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /bills/{id}/payment [get]
func (h *PaymentHandler) GetBillPayment(c *gin.Context) {
	billID, err := paramInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid bill ID", err)
		return
	}

	data, err := h.service.GetByBill(middleware.GetMemberID(c), billID, middleware.IsAdmin(c))
	if err != nil {
		writePaymentError(c, err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

func writePaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrBillNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "Bill not found", err)
	case errors.Is(err, common.ErrPaymentNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "Payment not found", err)
	case errors.Is(err, common.ErrPaymentSettled):
		common.ErrorResponse(c, http.StatusConflict, "Payment is already settled", err)
	case errors.Is(err, common.ErrInvalidStatusTransition):
		common.ErrorResponse(c, http.StatusConflict, "Bill is not payable in its current status", err)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, "Payment operation failed", err)
	}
}
