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

// BillHandler handles HTTP requests for bills and shipping methods
type BillHandler struct {
	service service.BillService
}

// NewBillHandler creates a new BillHandler
func NewBillHandler(service service.BillService) *BillHandler {
	return &BillHandler{service: service}
}

// ListBills godoc
// @Summary      List my bills
// @Tags         bills
// @Produce      json
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  common.APIResponse{data=domain.BillListResponse}
// @Security     BearerAuth
// @Router       /bills [get]
func (h *BillHandler) ListBills(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	data, err := h.service.ListByMember(middleware.GetMemberID(c), page, limit)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch bills", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// GetBill godoc
// @Summary      Bill detail
// @Description  Members see their own bills; admins see any
// @Tags         bills
// @Produce      json
// @Param        id  path  int  true  "Bill ID"
// @Success      200  {object}  common.APIResponse{data=domain.BillResponse}
// @Failure      404  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /bills/{id} [get]
func (h *BillHandler) GetBill(c *gin.Context) {
	id, err := paramInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid bill ID", err)
		return
	}

	data, err := h.service.GetByID(middleware.GetMemberID(c), id, middleware.IsAdmin(c))
	if err != nil {
		if errors.Is(err, common.ErrBillNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Bill not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch bill", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// CancelBill godoc
// @Summary      Cancel my bill
// @Description  Only pending bills can be cancelled by their owner
// @Tags         bills
// @Produce      json
// @Param        id  path  int  true  "Bill ID"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /bills/{id}/cancel [post]
func (h *BillHandler) CancelBill(c *gin.Context) {
	id, err := paramInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid bill ID", err)
		return
	}

	if err := h.service.Cancel(middleware.GetMemberID(c), id); err != nil {
		switch {
		case errors.Is(err, common.ErrBillNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Bill not found", err)
		case errors.Is(err, common.ErrInvalidStatusTransition):
			common.ErrorResponse(c, http.StatusConflict, "Bill can no longer be cancelled", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to cancel bill", err)
		}
		return
	}

	common.SuccessResponse(c, gin.H{"cancelled": true}, nil)
}

// UpdateBillStatus godoc
// @Summary      Update bill status
// @Description  Advances a bill through its fulfillment states (admin)
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        id       path  int                             true  "Bill ID"
// @Param        request  body  domain.UpdateBillStatusRequest  true  "New status"
// @Success      200  {object}  common.APIResponse{data=domain.BillResponse}
// @Failure      404  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /admin/bills/{id}/status [put]
func (h *BillHandler) UpdateBillStatus(c *gin.Context) {
	id, err := paramInt64(c, "id")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid bill ID", err)
		return
	}

	var req domain.UpdateBillStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	data, err := h.service.UpdateStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrBillNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Bill not found", err)
		case errors.Is(err, common.ErrInvalidStatusTransition):
			common.ErrorResponse(c, http.StatusConflict, "Invalid status transition", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update bill status", err)
		}
		return
	}

	common.SuccessResponse(c, data, nil)
}

// ListShippingMethods godoc
// @Summary      List shipping methods
// @Tags         bills
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=[]domain.ShippingMethod}
// @Router       /shipping-methods [get]
func (h *BillHandler) ListShippingMethods(c *gin.Context) {
	data, err := h.service.ListShippingMethods()
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch shipping methods", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}
