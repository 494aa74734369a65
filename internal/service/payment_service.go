package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/litmart/litmart-backend/internal/common"
	"github.com/litmart/litmart-backend/internal/domain"
	"github.com/litmart/litmart-backend/internal/repository"
)

// PaymentService handles payment lifecycle for bills. The actual gateway is
// an external collaborator; this service only tracks settlement state.
type PaymentService struct {
	repo         *repository.PaymentRepository
	bills        repository.BillRepository
	notification *NotificationService
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(repo *repository.PaymentRepository, bills repository.BillRepository, notification *NotificationService) *PaymentService {
	return &PaymentService{repo: repo, bills: bills, notification: notification}
}

// Create initiates a payment for a member's own pending bill
func (s *PaymentService) Create(memberID int64, req *domain.CreatePaymentRequest) (*domain.PaymentResponse, error) {
	bill, err := s.bills.FindByID(req.BillID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, common.ErrBillNotFound
	}
	if bill.MemberID != memberID {
		return nil, common.ErrForbidden
	}
	if bill.Status != domain.BillStatusPending {
		return nil, fmt.Errorf("bill %s: %w", bill.Status, common.ErrInvalidStatusTransition)
	}

	payment := &domain.Payment{
		BillID:   bill.ID,
		MemberID: memberID,
		Method:   req.Method,
		Amount:   bill.GrandTotal,
		Status:   domain.PaymentStatusPending,
	}

	if err := s.repo.Create(payment); err != nil {
		return nil, err
	}

	resp := payment.ToResponse()
	return &resp, nil
}

// Confirm marks a payment as settled and confirms its bill
func (s *PaymentService) Confirm(paymentID int64) (*domain.PaymentResponse, error) {
	payment, err := s.repo.FindByID(paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, common.ErrPaymentNotFound
	}
	if payment.Status != domain.PaymentStatusPending {
		return nil, common.ErrPaymentSettled
	}

	ref := uuid.New().String()
	if err := s.repo.UpdateStatus(paymentID, domain.PaymentStatusPaid, ref); err != nil {
		return nil, err
	}

	if err := s.bills.UpdateStatus(payment.BillID, domain.BillStatusConfirmed); err != nil {
		return nil, err
	}

	if s.notification != nil {
		s.notification.Notify(payment.MemberID, domain.NotificationTypeOrder,
			"Payment received",
			"Your payment has been confirmed.",
			fmt.Sprintf("/bills/%d", payment.BillID))
	}

	payment.Status = domain.PaymentStatusPaid
	payment.TransactionRef = ref
	resp := payment.ToResponse()
	return &resp, nil
}

// Fail marks a payment as failed
func (s *PaymentService) Fail(paymentID int64) error {
	payment, err := s.repo.FindByID(paymentID)
	if err != nil {
		return err
	}
	if payment == nil {
		return common.ErrPaymentNotFound
	}
	if payment.Status != domain.PaymentStatusPending {
		return common.ErrPaymentSettled
	}

	return s.repo.UpdateStatus(paymentID, domain.PaymentStatusFailed, "")
}

// GetByBill returns the latest payment for a member's bill
func (s *PaymentService) GetByBill(memberID, billID int64, isAdmin bool) (*domain.PaymentResponse, error) {
	bill, err := s.bills.FindByID(billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, common.ErrBillNotFound
	}
	if !isAdmin && bill.MemberID != memberID {
		return nil, common.ErrForbidden
	}

	payment, err := s.repo.FindByBill(billID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, common.ErrPaymentNotFound
	}

	resp := payment.ToResponse()
	return &resp, nil
}
