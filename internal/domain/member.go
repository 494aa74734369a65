package domain

import "time"

// Member levels. Admin endpoints require LevelAdmin or higher.
const (
	LevelMember = 1
	LevelVIP    = 5
	LevelAdmin  = 10
)

// Member represents a registered user
// Table: members
type Member struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"column:username;type:varchar(50);uniqueIndex" json:"username"`
	Email        string    `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255)" json:"-"`
	Name         string    `gorm:"column:name;type:varchar(100)" json:"name"`
	Level        int       `gorm:"column:level;default:1" json:"level"`
	IsActive     bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Member) TableName() string { return "members" }

// IsAdmin reports whether the member has admin privileges
func (m *Member) IsAdmin() bool {
	return m.Level >= LevelAdmin
}

// RegisterRequest is the request body for member registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries issued tokens
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// MemberResponse is the API response format for a member
type MemberResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts Member to MemberResponse
func (m *Member) ToResponse() MemberResponse {
	return MemberResponse{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Name:      m.Name,
		Level:     m.Level,
		CreatedAt: m.CreatedAt,
	}
}
