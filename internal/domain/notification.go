package domain

import "time"

// Notification types
const (
	NotificationTypeOrder     = "order"
	NotificationTypePromotion = "promotion"
	NotificationTypeChat      = "chat"
	NotificationTypeSystem    = "system"
)

// Notification represents a member notification
// Table: notifications
type Notification struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	MemberID  int64     `gorm:"column:member_id;index" json:"member_id"`
	Type      string    `gorm:"column:type;type:varchar(20)" json:"type"`
	Title     string    `gorm:"column:title;type:varchar(255)" json:"title"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	URL       string    `gorm:"column:url;type:varchar(500)" json:"url,omitempty"`
	IsRead    bool      `gorm:"column:is_read;default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

// NotificationSummaryResponse represents unread count response
type NotificationSummaryResponse struct {
	TotalUnread int `json:"total_unread"`
}

// NotificationListResponse represents notification list response
type NotificationListResponse struct {
	Items       []NotificationItem `json:"items"`
	Total       int64              `json:"total"`
	UnreadCount int64              `json:"unread_count"`
	Page        int                `json:"page"`
	Limit       int                `json:"limit"`
	TotalPages  int                `json:"total_pages"`
}

// NotificationItem represents a single notification in a list
type NotificationItem struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	URL       string `json:"url,omitempty"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}
