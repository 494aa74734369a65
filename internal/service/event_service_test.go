package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/litmart/litmart-backend/internal/common"
	"github.com/litmart/litmart-backend/internal/domain"
)

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) FindAllOrdered() ([]*domain.Event, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Event), args.Error(1)
}

func (m *MockEventRepository) List(offset, limit int) ([]*domain.Event, int64, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*domain.Event), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventRepository) FindByID(id int64) (*domain.Event, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) Create(event *domain.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockEventRepository) Update(event *domain.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockEventRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockEventRepository) CountLogs(eventID int64) (int64, error) {
	args := m.Called(eventID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventRepository) ListLogs(eventID int64, offset, limit int) ([]domain.EventLog, int64, error) {
	args := m.Called(eventID, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.EventLog), args.Get(1).(int64), args.Error(2)
}

func runningEvent(id int64, priority int, status domain.EventStatus, start, end time.Time) *domain.Event {
	return &domain.Event{
		ID:        id,
		Name:      "event",
		Status:    status,
		Priority:  priority,
		StartTime: start,
		EndTime:   end,
	}
}

func TestSelectActiveEvent_PicksFirstRunningInOrder(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	// Repository returns events in selection order (priority DESC, ...).
	// The highest-priority entry is PAUSED, the next is outside its window,
	// so the third must win.
	events := []*domain.Event{
		runningEvent(1, 100, domain.EventStatusPaused, before, after),
		runningEvent(2, 50, domain.EventStatusActive, after, after.Add(time.Hour)),
		runningEvent(3, 10, domain.EventStatusActive, before, after),
		runningEvent(4, 5, domain.EventStatusActive, before, after),
	}

	repo := new(MockEventRepository)
	repo.On("FindAllOrdered").Return(events, nil)

	svc := NewEventService(repo, nil)
	selected, err := svc.SelectActiveEvent(now)

	assert.NoError(t, err)
	assert.NotNil(t, selected)
	assert.Equal(t, int64(3), selected.ID)
}

func TestSelectActiveEvent_NoneRunning(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	events := []*domain.Event{
		runningEvent(1, 100, domain.EventStatusDraft, now.Add(-time.Hour), now.Add(time.Hour)),
		runningEvent(2, 50, domain.EventStatusExpired, now.Add(-time.Hour), now.Add(time.Hour)),
	}

	repo := new(MockEventRepository)
	repo.On("FindAllOrdered").Return(events, nil)

	svc := NewEventService(repo, nil)
	selected, err := svc.SelectActiveEvent(now)

	assert.NoError(t, err)
	assert.Nil(t, selected)
}

func TestSelectActiveEvent_WindowBoundariesAreExclusive(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("event starting exactly now is not selected", func(t *testing.T) {
		events := []*domain.Event{
			runningEvent(1, 10, domain.EventStatusActive, now, now.Add(time.Hour)),
		}
		repo := new(MockEventRepository)
		repo.On("FindAllOrdered").Return(events, nil)

		svc := NewEventService(repo, nil)
		selected, err := svc.SelectActiveEvent(now)

		assert.NoError(t, err)
		assert.Nil(t, selected)
	})

	t.Run("event ending exactly now is not selected", func(t *testing.T) {
		events := []*domain.Event{
			runningEvent(1, 10, domain.EventStatusActive, now.Add(-time.Hour), now),
		}
		repo := new(MockEventRepository)
		repo.On("FindAllOrdered").Return(events, nil)

		svc := NewEventService(repo, nil)
		selected, err := svc.SelectActiveEvent(now)

		assert.NoError(t, err)
		assert.Nil(t, selected)
	})
}

func TestSelectActiveEvent_HigherPriorityWinsAmongRunning(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	events := []*domain.Event{
		runningEvent(7, 90, domain.EventStatusActive, before, after),
		runningEvent(8, 90, domain.EventStatusActive, before, after),
		runningEvent(9, 10, domain.EventStatusActive, before, after),
	}

	repo := new(MockEventRepository)
	repo.On("FindAllOrdered").Return(events, nil)

	svc := NewEventService(repo, nil)
	selected, err := svc.SelectActiveEvent(now)

	assert.NoError(t, err)
	// Ties resolve by the repository's total order; the first entry wins
	assert.Equal(t, int64(7), selected.ID)
}

func TestCreateEvent_RejectsInvalidWindow(t *testing.T) {
	repo := new(MockEventRepository)
	svc := NewEventService(repo, nil)

	start := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("start after end", func(t *testing.T) {
		_, err := svc.Create(1, &domain.CreateEventRequest{
			Name:      "bad",
			StartTime: start,
			EndTime:   start.Add(-time.Hour),
		})
		assert.ErrorIs(t, err, common.ErrInvalidTimeRange)
	})

	t.Run("start equal to end", func(t *testing.T) {
		_, err := svc.Create(1, &domain.CreateEventRequest{
			Name:      "bad",
			StartTime: start,
			EndTime:   start,
		})
		assert.ErrorIs(t, err, common.ErrInvalidTimeRange)
	})

	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateEvent_DefaultsToDraft(t *testing.T) {
	repo := new(MockEventRepository)
	var created *domain.Event
	repo.On("Create", mock.AnythingOfType("*domain.Event")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*domain.Event)
	}).Return(nil)

	svc := NewEventService(repo, nil)

	start := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	resp, err := svc.Create(42, &domain.CreateEventRequest{
		Name:      "Spring sale",
		StartTime: start,
		EndTime:   start.Add(24 * time.Hour),
		Targets:   []domain.EventTargetRequest{{TargetType: domain.TargetAll}},
		Actions:   []domain.EventActionRequest{{ActionType: domain.ActionDiscountPercent, ActionValue: "10"}},
	})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, domain.EventStatusDraft, created.Status)
	assert.Equal(t, int64(42), created.CreatedBy)
	assert.Len(t, created.Targets, 1)
	assert.Len(t, created.Actions, 1)
}

func TestDeleteEvent_BlockedByApplicationHistory(t *testing.T) {
	repo := new(MockEventRepository)
	repo.On("FindByID", int64(5)).Return(&domain.Event{ID: 5}, nil)
	repo.On("CountLogs", int64(5)).Return(int64(3), nil)

	svc := NewEventService(repo, nil)
	err := svc.Delete(5)

	assert.ErrorIs(t, err, common.ErrEventInUse)
	repo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestDeleteEvent_AllowedWithoutHistory(t *testing.T) {
	repo := new(MockEventRepository)
	repo.On("FindByID", int64(5)).Return(&domain.Event{ID: 5}, nil)
	repo.On("CountLogs", int64(5)).Return(int64(0), nil)
	repo.On("Delete", int64(5)).Return(nil)

	svc := NewEventService(repo, nil)
	err := svc.Delete(5)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteEvent_NotFound(t *testing.T) {
	repo := new(MockEventRepository)
	repo.On("FindByID", int64(5)).Return(nil, nil)

	svc := NewEventService(repo, nil)
	err := svc.Delete(5)

	assert.ErrorIs(t, err, common.ErrEventNotFound)
}

func TestGetEvent_NotFound(t *testing.T) {
	repo := new(MockEventRepository)
	repo.On("FindByID", int64(99)).Return(nil, nil)

	svc := NewEventService(repo, nil)
	_, err := svc.GetByID(99)

	assert.ErrorIs(t, err, common.ErrEventNotFound)
}

func TestUpdateEvent_ReplacesChildrenWholesale(t *testing.T) {
	existing := &domain.Event{
		ID:        5,
		Name:      "old",
		Status:    domain.EventStatusActive,
		StartTime: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Targets: []domain.EventTarget{
			{ID: 1, EventID: 5, TargetType: domain.TargetAll},
			{ID: 2, EventID: 5, TargetType: domain.TargetBook, TargetID: int64Ptr(1)},
		},
	}

	repo := new(MockEventRepository)
	repo.On("FindByID", int64(5)).Return(existing, nil)
	var updated *domain.Event
	repo.On("Update", mock.AnythingOfType("*domain.Event")).Run(func(args mock.Arguments) {
		updated = args.Get(0).(*domain.Event)
	}).Return(nil)

	svc := NewEventService(repo, nil)
	resp, err := svc.Update(5, &domain.UpdateEventRequest{
		Name:      "new",
		StartTime: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		Targets:   []domain.EventTargetRequest{{TargetType: domain.TargetCategory, TargetID: int64Ptr(8)}},
	})

	assert.NoError(t, err)
	assert.Equal(t, "new", resp.Name)
	// The two old targets are gone; only the one from the request remains
	assert.Len(t, updated.Targets, 1)
	assert.Equal(t, domain.TargetCategory, updated.Targets[0].TargetType)
}
