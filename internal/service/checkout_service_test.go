package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/litmart/litmart-backend/internal/common"
	"github.com/litmart/litmart-backend/internal/domain"
)

// MockEventService is a mock implementation of EventService
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) List(page, limit int) (*domain.EventListResponse, error) {
	args := m.Called(page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventListResponse), args.Error(1)
}

func (m *MockEventService) GetByID(id int64) (*domain.EventResponse, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventResponse), args.Error(1)
}

func (m *MockEventService) Create(creatorID int64, req *domain.CreateEventRequest) (*domain.EventResponse, error) {
	args := m.Called(creatorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventResponse), args.Error(1)
}

func (m *MockEventService) Update(id int64, req *domain.UpdateEventRequest) (*domain.EventResponse, error) {
	args := m.Called(id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventResponse), args.Error(1)
}

func (m *MockEventService) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockEventService) ListLogs(eventID int64, page, limit int) ([]domain.EventLog, int64, error) {
	args := m.Called(eventID, page, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.EventLog), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventService) SelectActiveEvent(now time.Time) (*domain.Event, error) {
	args := m.Called(now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventService) CurrentEvent() (*domain.EventResponse, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventResponse), args.Error(1)
}

// MockBookRepository is a mock implementation of BookRepository
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) FindByID(id int64) (*domain.Book, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func (m *MockBookRepository) List(search string, categoryID int64, offset, limit int) ([]*domain.Book, int64, error) {
	args := m.Called(search, categoryID, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Book), args.Get(1).(int64), args.Error(2)
}

func (m *MockBookRepository) Create(book *domain.Book) error {
	args := m.Called(book)
	return args.Error(0)
}

func (m *MockBookRepository) Update(book *domain.Book) error {
	args := m.Called(book)
	return args.Error(0)
}

func (m *MockBookRepository) ReplaceCategories(book *domain.Book, categories []domain.Category) error {
	args := m.Called(book, categories)
	return args.Error(0)
}

func (m *MockBookRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockShippingRepository is a mock implementation of ShippingRepository
type MockShippingRepository struct {
	mock.Mock
}

func (m *MockShippingRepository) FindByID(id int64) (*domain.ShippingMethod, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShippingMethod), args.Error(1)
}

func (m *MockShippingRepository) ListActive() ([]domain.ShippingMethod, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShippingMethod), args.Error(1)
}

// MockBillRepository is a mock implementation of BillRepository
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) CreateWithLogs(bill *domain.Bill, logs []domain.EventLog) error {
	args := m.Called(bill, logs)
	return args.Error(0)
}

func (m *MockBillRepository) FindByID(id int64) (*domain.Bill, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepository) FindByCode(code string) (*domain.Bill, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepository) ListByMember(memberID int64, offset, limit int) ([]*domain.Bill, int64, error) {
	args := m.Called(memberID, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Bill), args.Get(1).(int64), args.Error(2)
}

func (m *MockBillRepository) UpdateStatus(id int64, status domain.BillStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// MockCartRepository is a mock implementation of CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) ListByMember(memberID int64) ([]*domain.CartItem, error) {
	args := m.Called(memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CartItem), args.Error(1)
}

func (m *MockCartRepository) FindItem(memberID, bookID int64) (*domain.CartItem, error) {
	args := m.Called(memberID, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartItem), args.Error(1)
}

func (m *MockCartRepository) Upsert(item *domain.CartItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockCartRepository) UpdateQuantity(id int64, quantity int) error {
	args := m.Called(id, quantity)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(memberID, itemID int64) error {
	args := m.Called(memberID, itemID)
	return args.Error(0)
}

func (m *MockCartRepository) ClearForMember(memberID int64) error {
	args := m.Called(memberID)
	return args.Error(0)
}

// ---- fixtures ----

func stockedBook(id int64, price int64, stock int, categories ...int64) *domain.Book {
	book := &domain.Book{
		ID:          id,
		Title:       "Book",
		Price:       decimal.NewFromInt(price),
		Stock:       stock,
		AuthorID:    1,
		PublisherID: 1,
		IsActive:    true,
	}
	for _, c := range categories {
		book.Categories = append(book.Categories, domain.Category{ID: c})
	}
	return book
}

func categoryDiscountEvent(categoryID int64, percent string) *domain.Event {
	return &domain.Event{
		ID:       7,
		Name:     "Category sale",
		Type:     "SALE",
		Status:   domain.EventStatusActive,
		Priority: 10,
		Targets:  []domain.EventTarget{{TargetType: domain.TargetCategory, TargetID: &categoryID}},
		Actions:  []domain.EventAction{{ID: 1, EventID: 7, ActionType: domain.ActionDiscountPercent, ActionValue: percent}},
	}
}

type checkoutMocks struct {
	events   *MockEventService
	books    *MockBookRepository
	shipping *MockShippingRepository
	bills    *MockBillRepository
	cart     *MockCartRepository
}

func newCheckoutService(t *testing.T) (CheckoutService, *checkoutMocks) {
	t.Helper()
	m := &checkoutMocks{
		events:   new(MockEventService),
		books:    new(MockBookRepository),
		shipping: new(MockShippingRepository),
		bills:    new(MockBillRepository),
		cart:     new(MockCartRepository),
	}
	svc := NewCheckoutService(m.events, m.books, m.shipping, m.bills, m.cart, nil)
	return svc, m
}

func standardShipping(fee int64) *domain.ShippingMethod {
	return &domain.ShippingMethod{ID: 1, Name: "Standard", Price: decimal.NewFromInt(fee), IsActive: true}
}

// ---- tests ----

func TestPreview_MixedCartDiscountsOnlyTargetedLines(t *testing.T) {
	svc, m := newCheckoutService(t)

	// Book 100 is in category 20 (targeted, 50% off); book 200 is not
	m.shipping.On("FindByID", int64(1)).Return(standardShipping(3000), nil)
	m.events.On("SelectActiveEvent", mock.AnythingOfType("time.Time")).
		Return(categoryDiscountEvent(20, "50"), nil)
	m.books.On("FindByID", int64(100)).Return(stockedBook(100, 10000, 5, 20), nil)
	m.books.On("FindByID", int64(200)).Return(stockedBook(200, 20000, 5, 30), nil)

	resp, err := svc.Preview(1, &domain.CheckoutPreviewRequest{
		Lines: []domain.CheckoutLine{
			{BookID: 100, Quantity: 2},
			{BookID: 200, Quantity: 1},
		},
		ShippingMethodID: 1,
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Lines, 2)

	assert.True(t, resp.Lines[0].HasEventDiscount)
	assert.True(t, decimal.NewFromInt(5000).Equal(resp.Lines[0].FinalUnitPrice))
	assert.True(t, decimal.NewFromInt(10000).Equal(resp.Lines[0].LineTotal))

	assert.False(t, resp.Lines[1].HasEventDiscount)
	assert.True(t, decimal.NewFromInt(20000).Equal(resp.Lines[1].FinalUnitPrice))

	// 2*10000 + 1*20000 = 40000 original; 2*5000 + 20000 = 30000 discounted
	assert.True(t, decimal.NewFromInt(40000).Equal(resp.OriginalSubtotal), "original %s", resp.OriginalSubtotal)
	assert.True(t, decimal.NewFromInt(30000).Equal(resp.DiscountedSubtotal), "discounted %s", resp.DiscountedSubtotal)
	assert.True(t, decimal.NewFromInt(3000).Equal(resp.ShippingFee))
	assert.True(t, decimal.NewFromInt(33000).Equal(resp.GrandTotal), "grand %s", resp.GrandTotal)
	assert.True(t, decimal.NewFromInt(10000).Equal(resp.TotalSaved), "saved %s", resp.TotalSaved)

	assert.NotNil(t, resp.AppliedEvent)
	assert.Equal(t, int64(7), resp.AppliedEvent.ID)
}

func TestPreview_NoActiveEvent(t *testing.T) {
	svc, m := newCheckoutService(t)

	m.shipping.On("FindByID", int64(1)).Return(standardShipping(3000), nil)
	m.events.On("SelectActiveEvent", mock.AnythingOfType("time.Time")).Return(nil, nil)
	m.books.On("FindByID", int64(100)).Return(stockedBook(100, 10000, 5, 20), nil)

	resp, err := svc.Preview(1, &domain.CheckoutPreviewRequest{
		Lines:            []domain.CheckoutLine{{BookID: 100, Quantity: 1}},
		ShippingMethodID: 1,
	})

	assert.NoError(t, err)
	assert.False(t, resp.Lines[0].HasEventDiscount)
	assert.True(t, resp.TotalSaved.IsZero())
	assert.Nil(t, resp.AppliedEvent)
}

func TestPreview_EventThatMatchesNoLineReportsNoAppliedEvent(t *testing.T) {
	svc, m := newCheckoutService(t)

	m.shipping.On("FindByID", int64(1)).Return(standardShipping(3000), nil)
	m.events.On("SelectActiveEvent", mock.AnythingOfType("time.Time")).
		Return(categoryDiscountEvent(99, "50"), nil)
	m.books.On("FindByID", int64(100)).Return(stockedBook(100, 10000, 5, 20), nil)

	resp, err := svc.Preview(1, &domain.CheckoutPreviewRequest{
		Lines:            []domain.CheckoutLine{{BookID: 100, Quantity: 1}},
		ShippingMethodID: 1,
	})

	assert.NoError(t, err)
	assert.False(t, resp.Lines[0].HasEventDiscount)
	assert.Nil(t, resp.AppliedEvent)
}

func TestPreview_CatalogSalePriceIsTheDiscountBase(t *testing.T) {
	svc, m := newCheckoutService(t)

	book := stockedBook(100, 10000, 5, 20)
	sale := decimal.NewFromInt(8000)
	book.SalePrice = &sale

	m.shipping.On("FindByID", int64(1)).Return(standardShipping(0), nil)
	m.events.On("SelectActiveEvent", mock.AnythingOfType("time.Time")).
		Return(categoryDiscountEvent(20, "50"), nil)
	m.books.On("FindByID", int64(100)).Return(book, nil)

	resp, err := svc.Preview(1, &domain.CheckoutPreviewRequest{
		Lines:            []domain.CheckoutLine{{BookID: 100, Quantity: 1}},
		ShippingMethodID: 1,
	})

	assert.NoError(t, err)
	// Event discount applies on top of the catalog sale price, not list price
	assert.True(t, decimal.NewFromInt(8000).Equal(resp.Lines[0].UnitPrice))
	assert.True(t, decimal.NewFromInt(4000).Equal(resp.Lines[0].FinalUnitPrice))
}

func TestPreview_OutOfStockFailsWhole(t *testing.T) {
	svc, m := newCheckoutService(t)

	m.shipping.On("FindByID", int64(1)).Return(standardShipping(3000), nil)
	m.events.On("SelectActiveEvent", mock.AnythingOfType("time.Time")).Return(nil, nil)
	m.books.On("FindByID", int64(100)).Return(stockedBook(100, 10000, 5), nil)
	m.books.On("FindByID", int64(200)).Return(stockedBook(200, 20000, 1), nil)

	resp, err := svc.Preview(1, &domain.CheckoutPreviewRequest{
		Lines: []domain.CheckoutLine{
			{BookID: 100, Quantity: 1},
			{BookID: 200, Quantity: 3},
		},
		ShippingMethodID: 1,
	})

	assert.ErrorIs(t, err, common.ErrOutOfStock)
	assert.Nil(t, resp, "a failing preview must not return partial results")
}

func TestPreview_UnknownBook(t *testing.T) {
	svc, m := newCheckoutService(t)

	m.shipping.On("FindByID", int64(1)).Return(standardShipping(3000), nil)
	m.events.On("SelectActiveEvent", mock.AnythingOfType("time.Time")).Return(nil, nil)
	m.books.On("FindByID", int64(999)).Return(nil, nil)

	_, err := svc.Preview(1, &domain.CheckoutPreviewRequest{
		Lines:            []domain.CheckoutLine{{BookID: 999, Quantity: 1}},
		ShippingMethodID: 1,
	})

	assert.ErrorIs(t, err, common.ErrBookNotFound)
}

func TestPreview_UnknownShippingMethod(t *testing.T) {
	svc, m := newCheckoutService(t)

	m.shipping.On("FindByID", int64(42)).Return(nil, nil)

	_, err := svc.Preview(1, &domain.CheckoutPreviewRequest{
		Lines:            []domain.CheckoutLine{{BookID: 100, Quantity: 1}},
		ShippingMethodID: 42,
	})

	assert.ErrorIs(t, err, common.ErrShippingMethodNotFound)
	m.events.AssertNotCalled(t, "SelectActiveEvent", mock.Anything)
}

func TestCheckout_WritesBillAndEventLogsAtomically(t *testing.T) {
	svc, m := newCheckoutService(t)

	m.shipping.On("FindByID", int64(1)).Return(standardShipping(3000), nil)
	m.events.On("SelectActiveEvent", mock.AnythingOfType("time.Time")).
		Return(categoryDiscountEvent(20, "50"), nil)
	m.books.On("FindByID", int64(100)).Return(stockedBook(100, 10000, 5, 20), nil)
	m.books.On("FindByID", int64(200)).Return(stockedBook(200, 20000, 5), nil)

	var createdBill *domain.Bill
	var createdLogs []domain.EventLog
	m.bills.On("CreateWithLogs", mock.AnythingOfType("*domain.Bill"), mock.AnythingOfType("[]domain.EventLog")).
		Run(func(args mock.Arguments) {
			createdBill = args.Get(0).(*domain.Bill)
			createdLogs = args.Get(1).([]domain.EventLog)
		}).Return(nil)
	m.cart.On("ClearForMember", int64(42)).Return(nil)

	resp, err := svc.Checkout(42, &domain.CheckoutRequest{
		Lines: []domain.CheckoutLine{
			{BookID: 100, Quantity: 2},
			{BookID: 200, Quantity: 1},
		},
		ShippingMethodID: 1,
		ShippingAddress:  "1 Library Lane",
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)

	assert.Equal(t, int64(42), createdBill.MemberID)
	assert.Equal(t, domain.BillStatusPending, createdBill.Status)
	assert.NotEmpty(t, createdBill.Code)
	assert.Len(t, createdBill.Items, 2)
	assert.True(t, createdBill.Items[0].HasEventDiscount)
	assert.False(t, createdBill.Items[1].HasEventDiscount)
	assert.True(t, decimal.NewFromInt(33000).Equal(createdBill.GrandTotal), "grand %s", createdBill.GrandTotal)
	assert.NotNil(t, createdBill.EventID)
	assert.Equal(t, int64(7), *createdBill.EventID)

	// One log per discounted line, valued at the total saved on that line
	assert.Len(t, createdLogs, 1)
	assert.Equal(t, int64(7), createdLogs[0].EventID)
	assert.Equal(t, int64(42), createdLogs[0].MemberID)
	assert.True(t, decimal.NewFromInt(10000).Equal(createdLogs[0].AppliedValue), "applied %s", createdLogs[0].AppliedValue)

	m.cart.AssertCalled(t, "ClearForMember", int64(42))
}

func TestCheckout_NoDiscountMeansNoEventReference(t *testing.T) {
	svc, m := newCheckoutService(t)

	m.shipping.On("FindByID", int64(1)).Return(standardShipping(3000), nil)
	m.events.On("SelectActiveEvent", mock.AnythingOfType("time.Time")).Return(nil, nil)
	m.books.On("FindByID", int64(100)).Return(stockedBook(100, 10000, 5), nil)

	var createdBill *domain.Bill
	var createdLogs []domain.EventLog
	m.bills.On("CreateWithLogs", mock.AnythingOfType("*domain.Bill"), mock.AnythingOfType("[]domain.EventLog")).
		Run(func(args mock.Arguments) {
			createdBill = args.Get(0).(*domain.Bill)
			createdLogs = args.Get(1).([]domain.EventLog)
		}).Return(nil)
	m.cart.On("ClearForMember", int64(42)).Return(nil)

	_, err := svc.Checkout(42, &domain.CheckoutRequest{
		Lines:            []domain.CheckoutLine{{BookID: 100, Quantity: 1}},
		ShippingMethodID: 1,
		ShippingAddress:  "1 Library Lane",
	})

	assert.NoError(t, err)
	assert.Nil(t, createdBill.EventID)
	assert.Empty(t, createdLogs)
}

func TestCheckout_RepositoryFailureSurfaces(t *testing.T) {
	svc, m := newCheckoutService(t)

	m.shipping.On("FindByID", int64(1)).Return(standardShipping(3000), nil)
	m.events.On("SelectActiveEvent", mock.AnythingOfType("time.Time")).Return(nil, nil)
	m.books.On("FindByID", int64(100)).Return(stockedBook(100, 10000, 0), nil)

	_, err := svc.Checkout(42, &domain.CheckoutRequest{
		Lines:            []domain.CheckoutLine{{BookID: 100, Quantity: 1}},
		ShippingMethodID: 1,
		ShippingAddress:  "1 Library Lane",
	})

	assert.ErrorIs(t, err, common.ErrOutOfStock)
	m.bills.AssertNotCalled(t, "CreateWithLogs", mock.Anything, mock.Anything)
	m.cart.AssertNotCalled(t, "ClearForMember", mock.Anything)
}
