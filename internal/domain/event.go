package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventStatus is the lifecycle state of a promotional event.
// It is independent of the time window: an event can be ACTIVE in status
// while outside its window, or inside its window but still DRAFT.
type EventStatus string

const (
	EventStatusDraft    EventStatus = "DRAFT"
	EventStatusActive   EventStatus = "ACTIVE"
	EventStatusPaused   EventStatus = "PAUSED"
	EventStatusExpired  EventStatus = "EXPIRED"
	EventStatusDisabled EventStatus = "DISABLED"
)

// TargetType describes what an event target points at
type TargetType string

const (
	TargetBook       TargetType = "BOOK"
	TargetCategory   TargetType = "CATEGORY"
	TargetSeries     TargetType = "SERIES"
	TargetAuthor     TargetType = "AUTHOR"
	TargetPublisher  TargetType = "PUBLISHER"
	TargetUser       TargetType = "USER"
	TargetUserGroup  TargetType = "USER_GROUP"
	TargetNewUser    TargetType = "NEW_USER"
	TargetVIPUser    TargetType = "VIP_USER"
	TargetAllOrders  TargetType = "ALL_ORDERS"
	TargetFirstOrder TargetType = "FIRST_ORDER"
	TargetLocation   TargetType = "LOCATION"
	TargetAll        TargetType = "ALL"
)

// ActionType describes the discount an event applies.
// Only the three DISCOUNT_* types are priced; the rest are stored as
// configuration but evaluate to no-op (fail closed, never crash checkout).
type ActionType string

const (
	ActionDiscountPercent    ActionType = "DISCOUNT_PERCENT"
	ActionDiscountAmount     ActionType = "DISCOUNT_AMOUNT"
	ActionDiscountFixedPrice ActionType = "DISCOUNT_FIXED_PRICE"
	ActionFreeShipping       ActionType = "FREE_SHIPPING"
	ActionFreeGift           ActionType = "FREE_GIFT"
	ActionBonusPoints        ActionType = "BONUS_POINTS"
	ActionCashback           ActionType = "CASHBACK"
	ActionBuyXGetY           ActionType = "BUY_X_GET_Y"
	ActionBundlePrice        ActionType = "BUNDLE_PRICE"
	ActionVoucherGrant       ActionType = "VOUCHER_GRANT"
	ActionTierUpgrade        ActionType = "TIER_UPGRADE"
	ActionPriorityShipping   ActionType = "PRIORITY_SHIPPING"
	ActionExtendedReturn     ActionType = "EXTENDED_RETURN"
	ActionGiftWrap           ActionType = "GIFT_WRAP"
	ActionSampleIncluded     ActionType = "SAMPLE_INCLUDED"
	ActionEarlyAccess        ActionType = "EARLY_ACCESS"
)

// RuleType is an open enum of event eligibility rules. Rules are stored as
// configuration but are not evaluated by the pricing path yet.
type RuleType string

const (
	RuleMinOrderValue   RuleType = "MIN_ORDER_VALUE"
	RuleMaxOrderValue   RuleType = "MAX_ORDER_VALUE"
	RuleMinQuantity     RuleType = "MIN_QUANTITY"
	RuleMaxQuantity     RuleType = "MAX_QUANTITY"
	RuleUsageLimit      RuleType = "USAGE_LIMIT"
	RuleUsagePerUser    RuleType = "USAGE_PER_USER"
	RuleTimeOfDay       RuleType = "TIME_OF_DAY"
	RuleDayOfWeek       RuleType = "DAY_OF_WEEK"
	RuleUserLevel       RuleType = "USER_LEVEL"
	RulePaymentMethod   RuleType = "PAYMENT_METHOD"
	RuleMinStock        RuleType = "MIN_STOCK"
	RuleFirstPurchase   RuleType = "FIRST_PURCHASE"
	RuleShippingRegion  RuleType = "SHIPPING_REGION"
	RuleMemberAgeDays   RuleType = "MEMBER_AGE_DAYS"
	RuleCartItemCount   RuleType = "CART_ITEM_COUNT"
)

// ImageType distinguishes the main banner from supplementary images
type ImageType string

const (
	ImageMain ImageType = "MAIN"
	ImageSub  ImageType = "SUB"
)

// Event represents a promotional campaign.
// Targets/Rules/Actions/Images are owned by composition: they are replaced
// wholesale on update and cascade-deleted with the event.
type Event struct {
	ID          int64       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string      `gorm:"column:name;type:varchar(255)" json:"name"`
	Description string      `gorm:"column:description;type:text" json:"description,omitempty"`
	Type        string      `gorm:"column:type;type:varchar(50)" json:"type"`
	Status      EventStatus `gorm:"column:status;type:varchar(20);index" json:"status"`
	Priority    int         `gorm:"column:priority;default:0" json:"priority"`
	StartTime   time.Time   `gorm:"column:start_time;index" json:"start_time"`
	EndTime     time.Time   `gorm:"column:end_time;index" json:"end_time"`
	CreatedBy   int64       `gorm:"column:created_by" json:"created_by"`
	CreatedAt   time.Time   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Targets []EventTarget `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"targets"`
	Rules   []EventRule   `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"rules"`
	Actions []EventAction `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"actions"`
	Images  []EventImage  `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

func (Event) TableName() string { return "events" }

// IsRunningAt reports whether the event is eligible for selection at the
// given instant: ACTIVE status and strictly inside its time window. An event
// starting or ending exactly at now is excluded.
func (e *Event) IsRunningAt(now time.Time) bool {
	return e.Status == EventStatusActive && e.StartTime.Before(now) && e.EndTime.After(now)
}

// FirstAction returns the event's first configured action, or nil.
// Only the first action is ever priced; extra actions are stored but ignored.
func (e *Event) FirstAction() *EventAction {
	if len(e.Actions) == 0 {
		return nil
	}
	return &e.Actions[0]
}

// EventTarget scopes an event to part of the catalog (or to user/order
// dimensions that the pricing path skips). TargetID is nil for types like ALL
// that do not reference an entity.
type EventTarget struct {
	ID         int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EventID    int64      `gorm:"column:event_id;index" json:"event_id"`
	TargetType TargetType `gorm:"column:target_type;type:varchar(30)" json:"target_type"`
	TargetID   *int64     `gorm:"column:target_id" json:"target_id,omitempty"`
}

func (EventTarget) TableName() string { return "event_targets" }

// EventRule is a stored eligibility rule. RuleValue semantics depend on
// RuleType (free text, typically numeric).
type EventRule struct {
	ID        int64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EventID   int64    `gorm:"column:event_id;index" json:"event_id"`
	RuleType  RuleType `gorm:"column:rule_type;type:varchar(30)" json:"rule_type"`
	RuleValue string   `gorm:"column:rule_value;type:varchar(255)" json:"rule_value"`
}

func (EventRule) TableName() string { return "event_rules" }

// EventAction is a stored pricing action. ActionValue is free text; the three
// implemented discount types expect a numeric value.
type EventAction struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EventID     int64      `gorm:"column:event_id;index" json:"event_id"`
	ActionType  ActionType `gorm:"column:action_type;type:varchar(30)" json:"action_type"`
	ActionValue string     `gorm:"column:action_value;type:varchar(255)" json:"action_value"`
}

func (EventAction) TableName() string { return "event_actions" }

// EventImage is display-only material, never consumed by pricing
type EventImage struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EventID   int64     `gorm:"column:event_id;index" json:"event_id"`
	ImageType ImageType `gorm:"column:image_type;type:varchar(10)" json:"image_type"`
	URL       string    `gorm:"column:url;type:varchar(500)" json:"url"`
}

func (EventImage) TableName() string { return "event_images" }

// EventLog is the append-only audit record of an event actually being applied
// to a finalized bill. It is written inside the bill's transaction, and its
// existence blocks deletion of the event.
type EventLog struct {
	ID           int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	EventID      int64           `gorm:"column:event_id;index" json:"event_id"`
	MemberID     int64           `gorm:"column:member_id;index" json:"member_id"`
	BillID       int64           `gorm:"column:bill_id;index" json:"bill_id"`
	AppliedValue decimal.Decimal `gorm:"column:applied_value;type:decimal(15,2)" json:"applied_value"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (EventLog) TableName() string { return "event_logs" }

// ---- requests / responses ----

// EventTargetRequest is one target in a create/update request
type EventTargetRequest struct {
	TargetType TargetType `json:"target_type" binding:"required"`
	TargetID   *int64     `json:"target_id"`
}

// EventRuleRequest is one rule in a create/update request
type EventRuleRequest struct {
	RuleType  RuleType `json:"rule_type" binding:"required"`
	RuleValue string   `json:"rule_value"`
}

// EventActionRequest is one action in a create/update request
type EventActionRequest struct {
	ActionType  ActionType `json:"action_type" binding:"required"`
	ActionValue string     `json:"action_value"`
}

// EventImageRequest is one image in a create/update request
type EventImageRequest struct {
	ImageType ImageType `json:"image_type" binding:"required"`
	URL       string    `json:"url" binding:"required"`
}

// CreateEventRequest is the request body for creating an event
type CreateEventRequest struct {
	Name        string               `json:"name" binding:"required"`
	Description string               `json:"description"`
	Type        string               `json:"type"`
	Status      EventStatus          `json:"status"`
	Priority    int                  `json:"priority"`
	StartTime   time.Time            `json:"start_time" binding:"required"`
	EndTime     time.Time            `json:"end_time" binding:"required"`
	Targets     []EventTargetRequest `json:"targets"`
	Rules       []EventRuleRequest   `json:"rules"`
	Actions     []EventActionRequest `json:"actions"`
	Images      []EventImageRequest  `json:"images"`
}

// UpdateEventRequest is the request body for updating an event.
// Child collections are replaced wholesale (delete-all-then-recreate).
type UpdateEventRequest struct {
	Name        string               `json:"name" binding:"required"`
	Description string               `json:"description"`
	Type        string               `json:"type"`
	Status      EventStatus          `json:"status"`
	Priority    int                  `json:"priority"`
	StartTime   time.Time            `json:"start_time" binding:"required"`
	EndTime     time.Time            `json:"end_time" binding:"required"`
	Targets     []EventTargetRequest `json:"targets"`
	Rules       []EventRuleRequest   `json:"rules"`
	Actions     []EventActionRequest `json:"actions"`
	Images      []EventImageRequest  `json:"images"`
}

// EventResponse is the API response format for an event
type EventResponse struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Type        string        `json:"type"`
	Status      EventStatus   `json:"status"`
	Priority    int           `json:"priority"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	Targets     []EventTarget `json:"targets"`
	Rules       []EventRule   `json:"rules"`
	Actions     []EventAction `json:"actions"`
	Images      []EventImage  `json:"images,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ToResponse converts Event to EventResponse
func (e *Event) ToResponse() EventResponse {
	return EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Type:        e.Type,
		Status:      e.Status,
		Priority:    e.Priority,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Targets:     e.Targets,
		Rules:       e.Rules,
		Actions:     e.Actions,
		Images:      e.Images,
		CreatedAt:   e.CreatedAt,
	}
}

// EventListResponse is the response for the event list endpoint
type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Total  int64           `json:"total"`
}

// AppliedEventInfo identifies the event applied to a preview or bill
type AppliedEventInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}
