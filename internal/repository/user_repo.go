package repository

import (
	"Marafon/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserById(ctx context.Context, id uint64) (*model.User, error)
	GetUserSimpleInfoByIds(ctx context.Context, ids []uint64) ([]*model.UserProfile, error)
	ListPending(ctx context.Context) ([]*model.User, error)
	ListApproved(ctx context.Context) ([]*model.User, error)
	CreateUser(ctx context.Context, user *model.User, profile *model.UserProfile) error
	UpdateUserIsApproved(ctx context.Context, id uint64, isApproved bool) (int64, error)
	UpdateUserProfile(ctx context.Context, profile *model.UserProfile) error
	UpdateAvatar(ctx context.Context, id uint64, avatarURL string) error
	DeleteUser(ctx context.Context, id uint64) error
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &UserRepoImpl{db: db}
}

func (s *UserRepoImpl) GetUserById(ctx context.Context, id uint64) (*model.User, error) {
	user := &model.User{}
	result := s.db.WithContext(ctx).
		Preload("Profile").
		Preload("Achievements").
		Where("is_delete = ?", false).
		First(user, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return user, nil
}

func (s *UserRepoImpl) GetUserSimpleInfoByIds(ctx context.Context, ids []uint64) ([]*model.UserProfile, error) {
	profiles := make([]*model.UserProfile, 0)
	result := s.db.WithContext(ctx).
		Select("user_id", "full_name", "avatar_url").
		Where("user_id IN ?", ids).
		Find(&profiles)

	if result.Error != nil {
		return nil, result.Error
	}

	return profiles, nil
}

func (s *UserRepoImpl) ListPending(ctx context.Context) ([]*model.User, error) {
	users := make([]*model.User, 0)
	result := s.db.WithContext(ctx).
		Preload("Profile").
		Where("is_approved = ? AND is_delete = ?", false, false).
		Order("created_at ASC").
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (s *UserRepoImpl) ListApproved(ctx context.Context) ([]*model.User, error) {
	users := make([]*model.User, 0)
	result := s.db.WithContext(ctx).
		Preload("Profile").
		Where("is_approved = ? AND is_delete = ?", true, false).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (s *UserRepoImpl) CreateUser(ctx context.Context, user *model.User, profile *model.UserProfile) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(user); result.Error != nil {
			return result.Error
		}

		profile.UserID = user.ID
		if result := tx.Create(profile); result.Error != nil {
			return result.Error
		}

		return nil
	})
}

func (s *UserRepoImpl) UpdateUserIsApproved(ctx context.Context, id uint64, isApproved bool) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", id).
		Update("is_approved", isApproved)

	return result.RowsAffected, result.Error
}

func (s *UserRepoImpl) UpdateUserProfile(ctx context.Context, profile *model.UserProfile) error {
	result := s.db.WithContext(ctx).Model(&model.UserProfile{}).Where("user_id = ?", profile.UserID).Updates(profile)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func (s *UserRepoImpl) UpdateAvatar(ctx context.Context, id uint64, avatarURL string) error {
	return s.db.WithContext(ctx).
		Model(&model.UserProfile{}).
		Where("user_id = ?", id).
		Update("avatar_url", avatarURL).Error
}

func (s *UserRepoImpl) DeleteUser(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Model(&model.User{}).Where("id = ?", id).Update("is_delete", true); result.Error != nil {
			return result.Error
		}

		// 打卡与成就随用户一并清除
		if result := tx.Where("user_id = ?", id).Delete(&model.DailyProgress{}); result.Error != nil {
			return result.Error
		}

		if result := tx.Where("user_id = ?", id).Delete(&model.UserAchievement{}); result.Error != nil {
			return result.Error
		}

		return nil
	})
}
