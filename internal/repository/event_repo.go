package repository

import (
	"errors"

	"github.com/litmart/litmart-backend/internal/domain"
	"gorm.io/gorm"
)

// EventRepository defines the interface for promotional event data access
type EventRepository interface {
	// FindAllOrdered returns every event with children preloaded, in selection
	// order: priority DESC, start_time ASC, id ASC. The ordering is total so
	// ties never resolve by storage order.
	FindAllOrdered() ([]*domain.Event, error)

	List(offset, limit int) ([]*domain.Event, int64, error)
	FindByID(id int64) (*domain.Event, error)
	Create(event *domain.Event) error
	Update(event *domain.Event) error
	Delete(id int64) error

	// CountLogs returns the number of application log rows for an event
	CountLogs(eventID int64) (int64, error)
	ListLogs(eventID int64, offset, limit int) ([]domain.EventLog, int64, error)
}

// eventRepository implements EventRepository with GORM
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) preloadChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Targets").
		Preload("Rules").
		Preload("Actions").
		Preload("Images")
}

// FindAllOrdered retrieves all events in selection order with children loaded.
// One query per child table; no per-event round trips.
func (r *eventRepository) FindAllOrdered() ([]*domain.Event, error) {
	var events []*domain.Event

	err := r.preloadChildren(r.db).
		Order("priority DESC, start_time ASC, id ASC").
		Find(&events).Error

	if err != nil {
		return nil, err
	}

	return events, nil
}

// List retrieves a page of events for admin views
func (r *eventRepository) List(offset, limit int) ([]*domain.Event, int64, error) {
	var events []*domain.Event
	var total int64

	if err := r.db.Model(&domain.Event{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.preloadChildren(r.db).
		Order("priority DESC, start_time ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&events).Error

	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// FindByID finds an event with its children
func (r *eventRepository) FindByID(id int64) (*domain.Event, error) {
	var event domain.Event

	err := r.preloadChildren(r.db).
		Where("id = ?", id).
		First(&event).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &event, nil
}

// Create inserts an event with its children in one transaction
func (r *eventRepository) Create(event *domain.Event) error {
	return r.db.Create(event).Error
}

// Update replaces the event row and all child collections wholesale
// (delete-all-then-recreate, no partial patch)
func (r *eventRepository) Update(event *domain.Event) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, child := range []interface{}{
			&domain.EventTarget{},
			&domain.EventRule{},
			&domain.EventAction{},
			&domain.EventImage{},
		} {
			if err := tx.Where("event_id = ?", event.ID).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(event).Error
	})
}

// Delete removes an event and its children. The service layer guards against
// deleting events with application history.
func (r *eventRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, child := range []interface{}{
			&domain.EventTarget{},
			&domain.EventRule{},
			&domain.EventAction{},
			&domain.EventImage{},
		} {
			if err := tx.Where("event_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&domain.Event{}, id).Error
	})
}

// CountLogs counts application log rows for an event
func (r *eventRepository) CountLogs(eventID int64) (int64, error) {
	var count int64
	err := r.db.Model(&domain.EventLog{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count, err
}

// ListLogs returns a page of application logs for an event
func (r *eventRepository) ListLogs(eventID int64, offset, limit int) ([]domain.EventLog, int64, error) {
	var logs []domain.EventLog
	var total int64

	if err := r.db.Model(&domain.EventLog{}).
		Where("event_id = ?", eventID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("event_id = ?", eventID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error

	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
