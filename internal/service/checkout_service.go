package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"

	"github.com/litmart/litmart-backend/internal/common"
	"github.com/litmart/litmart-backend/internal/domain"
	"github.com/litmart/litmart-backend/internal/repository"
	"github.com/litmart/litmart-backend/pkg/logger"
)

var eventDiscountsApplied = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "event_discounts_applied_total",
		Help: "Number of bill lines discounted by a promotional event",
	},
	[]string{"event_id"},
)

// CheckoutService prices carts and turns them into bills
type CheckoutService interface {
	// Preview computes the full price breakdown for a cart without any side
	// effects. The active event is selected once for the whole call; whether
	// it discounts a given line depends per-line on targeting. A preview
	// either prices every line or fails whole (no partial results).
	Preview(memberID int64, req *domain.CheckoutPreviewRequest) (*domain.CheckoutPreviewResponse, error)

	// Checkout reprices the cart and creates a bill atomically: bill + items,
	// stock decrement, and event application logs in a single transaction.
	Checkout(memberID int64, req *domain.CheckoutRequest) (*domain.BillResponse, error)
}

type checkoutService struct {
	events       EventService
	books        repository.BookRepository
	shipping     repository.ShippingRepository
	bills        repository.BillRepository
	cart         repository.CartRepository
	notification *NotificationService
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(
	events EventService,
	books repository.BookRepository,
	shipping repository.ShippingRepository,
	bills repository.BillRepository,
	cart repository.CartRepository,
	notification *NotificationService,
) CheckoutService {
	return &checkoutService{
		events:       events,
		books:        books,
		shipping:     shipping,
		bills:        bills,
		cart:         cart,
		notification: notification,
	}
}

// pricedCart is the shared result of pricing a set of checkout lines
type pricedCart struct {
	lines              []domain.PreviewLine
	originalSubtotal   decimal.Decimal
	discountedSubtotal decimal.Decimal
	shippingFee        decimal.Decimal
	event              *domain.Event
	books              []*domain.Book
}

// price runs the pricing algorithm over the requested lines.
// The active event is selected once up front, not per line.
func (s *checkoutService) price(lines []domain.CheckoutLine, shippingMethodID int64) (*pricedCart, error) {
	method, err := s.shipping.FindByID(shippingMethodID)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, common.ErrShippingMethodNotFound
	}

	event, err := s.events.SelectActiveEvent(time.Now())
	if err != nil {
		return nil, err
	}

	result := &pricedCart{
		originalSubtotal:   decimal.Zero,
		discountedSubtotal: decimal.Zero,
		shippingFee:        method.Price,
		event:              event,
	}

	for _, line := range lines {
		book, err := s.books.FindByID(line.BookID)
		if err != nil {
			return nil, err
		}
		if book == nil {
			return nil, fmt.Errorf("book %d: %w", line.BookID, common.ErrBookNotFound)
		}
		if book.Stock < line.Quantity {
			return nil, fmt.Errorf("book %d (%s): %w", book.ID, book.Title, common.ErrOutOfStock)
		}

		basePrice := book.FinalPrice()
		finalPrice := basePrice
		discounted := false

		if event != nil && EventMatchesBook(event, book) {
			finalPrice = ApplyEventAction(event.FirstAction(), basePrice)
			discounted = finalPrice.LessThan(basePrice)
		}

		quantity := decimal.NewFromInt(int64(line.Quantity))
		result.lines = append(result.lines, domain.PreviewLine{
			BookID:           book.ID,
			Title:            book.Title,
			Quantity:         line.Quantity,
			UnitPrice:        basePrice,
			FinalUnitPrice:   finalPrice,
			LineTotal:        finalPrice.Mul(quantity),
			HasEventDiscount: discounted,
		})
		result.books = append(result.books, book)

		result.originalSubtotal = result.originalSubtotal.Add(basePrice.Mul(quantity))
		result.discountedSubtotal = result.discountedSubtotal.Add(finalPrice.Mul(quantity))
	}

	return result, nil
}

func (pc *pricedCart) grandTotal() decimal.Decimal {
	return pc.discountedSubtotal.Add(pc.shippingFee)
}

func (pc *pricedCart) totalSaved() decimal.Decimal {
	return pc.originalSubtotal.Sub(pc.discountedSubtotal)
}

func (pc *pricedCart) appliedEvent() *domain.AppliedEventInfo {
	if pc.event == nil {
		return nil
	}
	for _, line := range pc.lines {
		if line.HasEventDiscount {
			return &domain.AppliedEventInfo{
				ID:   pc.event.ID,
				Name: pc.event.Name,
				Type: pc.event.Type,
			}
		}
	}
	return nil
}

// Preview prices the cart without side effects
func (s *checkoutService) Preview(memberID int64, req *domain.CheckoutPreviewRequest) (*domain.CheckoutPreviewResponse, error) {
	priced, err := s.price(req.Lines, req.ShippingMethodID)
	if err != nil {
		return nil, err
	}

	return &domain.CheckoutPreviewResponse{
		Lines:              priced.lines,
		OriginalSubtotal:   priced.originalSubtotal,
		DiscountedSubtotal: priced.discountedSubtotal,
		ShippingFee:        priced.shippingFee,
		GrandTotal:         priced.grandTotal(),
		TotalSaved:         priced.totalSaved(),
		AppliedEvent:       priced.appliedEvent(),
	}, nil
}

// Checkout creates a bill from a repriced cart
func (s *checkoutService) Checkout(memberID int64, req *domain.CheckoutRequest) (*domain.BillResponse, error) {
	priced, err := s.price(req.Lines, req.ShippingMethodID)
	if err != nil {
		return nil, err
	}

	bill := &domain.Bill{
		Code:               uuid.New().String(),
		MemberID:           memberID,
		Status:             domain.BillStatusPending,
		ShippingMethodID:   req.ShippingMethodID,
		ShippingFee:        priced.shippingFee,
		OriginalSubtotal:   priced.originalSubtotal,
		DiscountedSubtotal: priced.discountedSubtotal,
		GrandTotal:         priced.grandTotal(),
		ShippingAddress:    req.ShippingAddress,
	}

	var logs []domain.EventLog
	for _, line := range priced.lines {
		bill.Items = append(bill.Items, domain.BillItem{
			BookID:           line.BookID,
			Title:            line.Title,
			Quantity:         line.Quantity,
			UnitPrice:        line.UnitPrice,
			FinalUnitPrice:   line.FinalUnitPrice,
			HasEventDiscount: line.HasEventDiscount,
		})

		// One log row per discounted line: the audit trail that blocks event
		// deletion and attributes the saved amount
		if line.HasEventDiscount && priced.event != nil {
			quantity := decimal.NewFromInt(int64(line.Quantity))
			logs = append(logs, domain.EventLog{
				EventID:      priced.event.ID,
				MemberID:     memberID,
				AppliedValue: line.UnitPrice.Sub(line.FinalUnitPrice).Mul(quantity),
			})
		}
	}

	if len(logs) > 0 {
		eventID := priced.event.ID
		bill.EventID = &eventID
	}

	if err := s.bills.CreateWithLogs(bill, logs); err != nil {
		return nil, err
	}

	for range logs {
		eventDiscountsApplied.WithLabelValues(strconv.FormatInt(priced.event.ID, 10)).Inc()
	}

	if err := s.cart.ClearForMember(memberID); err != nil {
		// The bill is committed; an unclean cart is an annoyance, not a failure
		logger.Warn("failed to clear cart for member %d after checkout: %v", memberID, err)
	}

	if s.notification != nil {
		s.notification.Notify(memberID, domain.NotificationTypeOrder,
			"Order placed",
			fmt.Sprintf("Your order %s has been received.", bill.Code),
			fmt.Sprintf("/bills/%d", bill.ID))
	}

	resp := bill.ToResponse()
	return &resp, nil
}
