package service

import (
	"github.com/litmart/litmart-backend/internal/common"
	"github.com/litmart/litmart-backend/internal/domain"
	"github.com/litmart/litmart-backend/internal/repository"
	"github.com/litmart/litmart-backend/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and token refresh
type AuthService struct {
	repo repository.MemberRepository
	jwt  *jwt.Manager
}

// NewAuthService creates a new AuthService
func NewAuthService(repo repository.MemberRepository, jwtManager *jwt.Manager) *AuthService {
	return &AuthService{repo: repo, jwt: jwtManager}
}

// Register creates a new member account
func (s *AuthService) Register(req *domain.RegisterRequest) (*domain.MemberResponse, error) {
	if existing, err := s.repo.FindByUsername(req.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, common.ErrMemberAlreadyExists
	}

	if existing, err := s.repo.FindByEmail(req.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, common.ErrMemberAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	member := &domain.Member{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Level:        domain.LevelMember,
		IsActive:     true,
	}

	if err := s.repo.Create(member); err != nil {
		return nil, err
	}

	resp := member.ToResponse()
	return &resp, nil
}

// Login verifies credentials and issues tokens
func (s *AuthService) Login(req *domain.LoginRequest) (*domain.TokenResponse, error) {
	member, err := s.repo.FindByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if member == nil || !member.IsActive {
		return nil, common.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(req.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	return s.issueTokens(member)
}

// Refresh exchanges a valid refresh token for new tokens
func (s *AuthService) Refresh(refreshToken string) (*domain.TokenResponse, error) {
	claims, err := s.jwt.VerifyToken(refreshToken)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	member, err := s.repo.FindByID(claims.MemberID)
	if err != nil {
		return nil, err
	}
	if member == nil || !member.IsActive {
		return nil, common.ErrInvalidToken
	}

	return s.issueTokens(member)
}

// GetProfile returns the member's own profile
func (s *AuthService) GetProfile(memberID int64) (*domain.MemberResponse, error) {
	member, err := s.repo.FindByID(memberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, common.ErrMemberNotFound
	}

	resp := member.ToResponse()
	return &resp, nil
}

func (s *AuthService) issueTokens(member *domain.Member) (*domain.TokenResponse, error) {
	access, err := s.jwt.GenerateToken(member.ID, member.Username, member.Level)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwt.GenerateRefreshToken(member.ID, member.Username, member.Level)
	if err != nil {
		return nil, err
	}
	return &domain.TokenResponse{AccessToken: access, RefreshToken: refresh}, nil
}
