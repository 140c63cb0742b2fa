package repository

import (
	"context"

	"gorm.io/gorm"

	"bulletin-board-api/internal/domain"
)

// MemberRepository defines the interface for member data access
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	FindByID(ctx context.Context, id uint) (*domain.Member, error)
	FindByEmail(ctx context.Context, email string) (*domain.Member, error)
	FindByUsername(ctx context.Context, username string) ([]*domain.Member, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdateUsernameByEmail(ctx context.Context, email, username string) (int64, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// memberRepositoryImpl is the GORM implementation of MemberRepository
type memberRepositoryImpl struct {
	db *gorm.DB
}

// NewMemberRepository creates a new instance of MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepositoryImpl{db: db}
}

// Create inserts a new member
func (r *memberRepositoryImpl) Create(ctx context.Context, member *domain.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// FindByID finds a member by its ID
func (r *memberRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Member, error) {
	var member domain.Member
	if err := r.db.WithContext(ctx).First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByEmail finds a member by its email
func (r *memberRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Member, error) {
	var member domain.Member
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByUsername returns every member with the exact username, oldest first.
// Usernames are not unique.
func (r *memberRepositoryImpl) FindByUsername(ctx context.Context, username string) ([]*domain.Member, error) {
	var members []*domain.Member
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("id ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ExistsByEmail reports whether a member with the email exists
func (r *memberRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Member{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateUsernameByEmail sets username and modified_date, returning the number of rows matched
func (r *memberRepositoryImpl) UpdateUsernameByEmail(ctx context.Context, email, username string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Member{}).
		Where("email = ?", email).
		Updates(map[string]interface{}{
			"username":      username,
			"modified_date": r.db.NowFunc(),
		})
	return result.RowsAffected, result.Error
}

// Delete removes a member row
func (r *memberRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Member{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of members
func (r *memberRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Member{}).Count(&count).Error
	return count, err
}
