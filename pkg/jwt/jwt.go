package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned when a token fails verification
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when a token is past its expiry
	ErrExpiredToken = errors.New("expired token")
)

// Claims is the litmart JWT payload
type Claims struct {
	jwt.RegisteredClaims
	MemberID int64  `json:"member_id"`
	Username string `json:"username"`
	Level    int    `json:"level"`
}

// Manager issues and verifies access/refresh tokens
type Manager struct {
	secretKey []byte
	expiresIn time.Duration
	refreshIn time.Duration
}

// NewManager creates a new JWT manager
func NewManager(secret string, expiresIn, refreshIn time.Duration) *Manager {
	return &Manager{
		secretKey: []byte(secret),
		expiresIn: expiresIn,
		refreshIn: refreshIn,
	}
}

// GenerateToken creates a signed access token for a member
func (m *Manager) GenerateToken(memberID int64, username string, level int) (string, error) {
	return m.generate(memberID, username, level, m.expiresIn)
}

// GenerateRefreshToken creates a signed refresh token for a member
func (m *Manager) GenerateRefreshToken(memberID int64, username string, level int) (string, error) {
	return m.generate(memberID, username, level, m.refreshIn)
}

func (m *Manager) generate(memberID int64, username string, level int, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "litmart-backend",
		},
		MemberID: memberID,
		Username: username,
		Level:    level,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// VerifyToken verifies a token and returns its claims
func (m *Manager) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
