package service

import (
	"fmt"

	"github.com/litmart/litmart-backend/internal/common"
	"github.com/litmart/litmart-backend/internal/domain"
	"github.com/litmart/litmart-backend/internal/repository"
)

// BillService defines the business logic for orders after creation
type BillService interface {
	GetByID(memberID, billID int64, isAdmin bool) (*domain.BillResponse, error)
	ListByMember(memberID int64, page, limit int) (*domain.BillListResponse, error)
	UpdateStatus(billID int64, status domain.BillStatus) (*domain.BillResponse, error)
	Cancel(memberID, billID int64) error
	ListShippingMethods() ([]domain.ShippingMethod, error)
}

type billService struct {
	repo         repository.BillRepository
	shipping     repository.ShippingRepository
	notification *NotificationService
}

// NewBillService creates a new BillService
func NewBillService(repo repository.BillRepository, shipping repository.ShippingRepository, notification *NotificationService) BillService {
	return &billService{repo: repo, shipping: shipping, notification: notification}
}

// GetByID returns a bill, enforcing ownership for non-admin callers
func (s *billService) GetByID(memberID, billID int64, isAdmin bool) (*domain.BillResponse, error) {
	bill, err := s.repo.FindByID(billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, common.ErrBillNotFound
	}
	if !isAdmin && bill.MemberID != memberID {
		return nil, common.ErrForbidden
	}

	resp := bill.ToResponse()
	return &resp, nil
}

// ListByMember returns a page of the member's bills
func (s *billService) ListByMember(memberID int64, page, limit int) (*domain.BillListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	bills, total, err := s.repo.ListByMember(memberID, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.BillResponse, len(bills))
	for i, bill := range bills {
		responses[i] = bill.ToResponse()
	}

	return &domain.BillListResponse{Bills: responses, Total: total}, nil
}

// UpdateStatus moves a bill through its lifecycle (admin operation)
func (s *billService) UpdateStatus(billID int64, status domain.BillStatus) (*domain.BillResponse, error) {
	bill, err := s.repo.FindByID(billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, common.ErrBillNotFound
	}
	if !bill.CanTransitionTo(status) {
		return nil, fmt.Errorf("%s to %s: %w", bill.Status, status, common.ErrInvalidStatusTransition)
	}

	if err := s.repo.UpdateStatus(billID, status); err != nil {
		return nil, err
	}
	bill.Status = status

	if s.notification != nil {
		s.notification.Notify(bill.MemberID, domain.NotificationTypeOrder,
			"Order updated",
			fmt.Sprintf("Order %s is now %s.", bill.Code, status),
			fmt.Sprintf("/bills/%d", bill.ID))
	}

	resp := bill.ToResponse()
	return &resp, nil
}

// Cancel cancels a member's own pending bill
func (s *billService) Cancel(memberID, billID int64) error {
	bill, err := s.repo.FindByID(billID)
	if err != nil {
		return err
	}
	if bill == nil {
		return common.ErrBillNotFound
	}
	if bill.MemberID != memberID {
		return common.ErrForbidden
	}
	if !bill.CanTransitionTo(domain.BillStatusCancelled) {
		return fmt.Errorf("%s: %w", bill.Status, common.ErrInvalidStatusTransition)
	}

	return s.repo.UpdateStatus(billID, domain.BillStatusCancelled)
}

// ListShippingMethods returns the active shipping options
func (s *billService) ListShippingMethods() ([]domain.ShippingMethod, error) {
	return s.shipping.ListActive()
}
