package repository

import (
	"Marafon/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type AccountRepo interface {
	GetByUsername(ctx context.Context, username string) (*model.Account, error)
	Create(ctx context.Context, account *model.Account) error
}

type accountRepoImpl struct {
	db *gorm.DB
}

func NewAccountRepo(db *gorm.DB) AccountRepo {
	return &accountRepoImpl{db: db}
}

func (s *accountRepoImpl) GetByUsername(ctx context.Context, username string) (*model.Account, error) {
	account := &model.Account{}
	result := s.db.WithContext(ctx).
		Where("username = ?", username).
		First(account)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return account, nil
}

func (s *accountRepoImpl) Create(ctx context.Context, account *model.Account) error {
	return s.db.WithContext(ctx).Create(account).Error
}
