package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/litmart/litmart-backend/internal/common"
	"github.com/litmart/litmart-backend/internal/domain"
	"github.com/litmart/litmart-backend/internal/repository"
	"github.com/litmart/litmart-backend/pkg/cache"
	"github.com/litmart/litmart-backend/pkg/logger"
)

// EventService defines the business logic for promotional events
type EventService interface {
	// Admin CRUD
	List(page, limit int) (*domain.EventListResponse, error)
	GetByID(id int64) (*domain.EventResponse, error)
	Create(creatorID int64, req *domain.CreateEventRequest) (*domain.EventResponse, error)
	Update(id int64, req *domain.UpdateEventRequest) (*domain.EventResponse, error)
	Delete(id int64) error
	ListLogs(eventID int64, page, limit int) ([]domain.EventLog, int64, error)

	// SelectActiveEvent picks the single event the store applies at the given
	// instant: highest priority among events that are ACTIVE and strictly
	// inside their time window. Returns nil when no event qualifies — that is
	// a normal outcome, not an error.
	SelectActiveEvent(now time.Time) (*domain.Event, error)

	// CurrentEvent is the monitoring/display view of SelectActiveEvent
	CurrentEvent() (*domain.EventResponse, error)
}

type eventService struct {
	repo  repository.EventRepository
	cache cache.Service
}

// NewEventService creates a new EventService
func NewEventService(repo repository.EventRepository, cacheService cache.Service) EventService {
	return &eventService{repo: repo, cache: cacheService}
}

// List retrieves a page of events
func (s *eventService) List(page, limit int) (*domain.EventListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	events, total, err := s.repo.List((page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.EventResponse, len(events))
	for i, event := range events {
		responses[i] = event.ToResponse()
	}

	return &domain.EventListResponse{Events: responses, Total: total}, nil
}

// GetByID retrieves an event by ID
func (s *eventService) GetByID(id int64) (*domain.EventResponse, error) {
	event, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, common.ErrEventNotFound
	}

	resp := event.ToResponse()
	return &resp, nil
}

// Create validates and creates a new event with its children
func (s *eventService) Create(creatorID int64, req *domain.CreateEventRequest) (*domain.EventResponse, error) {
	if !req.StartTime.Before(req.EndTime) {
		return nil, common.ErrInvalidTimeRange
	}

	status := req.Status
	if status == "" {
		status = domain.EventStatusDraft
	}

	event := &domain.Event{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Status:      status,
		Priority:    req.Priority,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		CreatedBy:   creatorID,
		Targets:     buildTargets(req.Targets),
		Rules:       buildRules(req.Rules),
		Actions:     buildActions(req.Actions),
		Images:      buildImages(req.Images),
	}

	if err := s.repo.Create(event); err != nil {
		return nil, err
	}

	s.invalidateActiveEvent()

	resp := event.ToResponse()
	return &resp, nil
}

// Update replaces the event and all its child collections wholesale
func (s *eventService) Update(id int64, req *domain.UpdateEventRequest) (*domain.EventResponse, error) {
	if !req.StartTime.Before(req.EndTime) {
		return nil, common.ErrInvalidTimeRange
	}

	event, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, common.ErrEventNotFound
	}

	event.Name = req.Name
	event.Description = req.Description
	event.Type = req.Type
	if req.Status != "" {
		event.Status = req.Status
	}
	event.Priority = req.Priority
	event.StartTime = req.StartTime
	event.EndTime = req.EndTime
	event.Targets = buildTargets(req.Targets)
	event.Rules = buildRules(req.Rules)
	event.Actions = buildActions(req.Actions)
	event.Images = buildImages(req.Images)

	if err := s.repo.Update(event); err != nil {
		return nil, err
	}

	s.invalidateActiveEvent()

	resp := event.ToResponse()
	return &resp, nil
}

// Delete removes an event unless it has application history
func (s *eventService) Delete(id int64) error {
	event, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if event == nil {
		return common.ErrEventNotFound
	}

	logCount, err := s.repo.CountLogs(id)
	if err != nil {
		return err
	}
	if logCount > 0 {
		return common.ErrEventInUse
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.invalidateActiveEvent()
	return nil
}

// ListLogs returns a page of an event's application history
func (s *eventService) ListLogs(eventID int64, page, limit int) ([]domain.EventLog, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.repo.ListLogs(eventID, (page-1)*limit, limit)
}

// SelectActiveEvent scans events in priority DESC, start_time ASC, id ASC
// order and returns the first one that is ACTIVE and strictly inside its
// window. At most one event is selected system-wide per evaluation instant.
func (s *eventService) SelectActiveEvent(now time.Time) (*domain.Event, error) {
	events, err := s.repo.FindAllOrdered()
	if err != nil {
		return nil, err
	}

	for _, event := range events {
		if event.IsRunningAt(now) {
			return event, nil
		}
	}

	return nil, nil
}

// CurrentEvent returns the currently selected event for display. The result
// is cached briefly; pricing always selects fresh so the cache TTL only
// delays what storefront visitors see, never what they are charged.
func (s *eventService) CurrentEvent() (*domain.EventResponse, error) {
	ctx := context.Background()

	if s.cache != nil && s.cache.IsAvailable() {
		if data, err := s.cache.GetActiveEvent(ctx); err == nil {
			var resp domain.EventResponse
			if err := json.Unmarshal(data, &resp); err == nil {
				return &resp, nil
			}
		}
	}

	event, err := s.SelectActiveEvent(time.Now())
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}

	resp := event.ToResponse()

	if s.cache != nil {
		if err := s.cache.SetActiveEvent(ctx, resp); err != nil {
			logger.Warn("failed to cache active event: %v", err)
		}
	}

	return &resp, nil
}

func (s *eventService) invalidateActiveEvent() {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateActiveEvent(context.Background()); err != nil {
		logger.Warn("failed to invalidate active event cache: %v", err)
	}
}

func buildTargets(reqs []domain.EventTargetRequest) []domain.EventTarget {
	targets := make([]domain.EventTarget, len(reqs))
	for i, t := range reqs {
		targets[i] = domain.EventTarget{TargetType: t.TargetType, TargetID: t.TargetID}
	}
	return targets
}

func buildRules(reqs []domain.EventRuleRequest) []domain.EventRule {
	rules := make([]domain.EventRule, len(reqs))
	for i, r := range reqs {
		rules[i] = domain.EventRule{RuleType: r.RuleType, RuleValue: r.RuleValue}
	}
	return rules
}

func buildActions(reqs []domain.EventActionRequest) []domain.EventAction {
	actions := make([]domain.EventAction, len(reqs))
	for i, a := range reqs {
		actions[i] = domain.EventAction{ActionType: a.ActionType, ActionValue: a.ActionValue}
	}
	return actions
}

func buildImages(reqs []domain.EventImageRequest) []domain.EventImage {
	images := make([]domain.EventImage, len(reqs))
	for i, img := range reqs {
		images[i] = domain.EventImage{ImageType: img.ImageType, URL: img.URL}
	}
	return images
}
