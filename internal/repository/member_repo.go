package repository

import (
	"errors"

	"github.com/litmart/litmart-backend/internal/domain"
	"gorm.io/gorm"
)

// MemberRepository defines the interface for member data access
type MemberRepository interface {
	FindByID(id int64) (*domain.Member, error)
	FindByUsername(username string) (*domain.Member, error)
	FindByEmail(email string) (*domain.Member, error)
	Create(member *domain.Member) error
	Update(member *domain.Member) error
}

// memberRepository implements MemberRepository with GORM
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// FindByID finds a member by ID
func (r *memberRepository) FindByID(id int64) (*domain.Member, error) {
	var member domain.Member
	err := r.db.Where("id = ?", id).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// FindByUsername finds a member by username
func (r *memberRepository) FindByUsername(username string) (*domain.Member, error) {
	var member domain.Member
	err := r.db.Where("username = ?", username).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// FindByEmail finds a member by email
func (r *memberRepository) FindByEmail(email string) (*domain.Member, error) {
	var member domain.Member
	err := r.db.Where("email = ?", email).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// Create inserts a new member
func (r *memberRepository) Create(member *domain.Member) error {
	return r.db.Create(member).Error
}

// Update saves member fields
func (r *memberRepository) Update(member *domain.Member) error {
	return r.db.Save(member).Error
}
