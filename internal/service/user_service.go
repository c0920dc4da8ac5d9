package service

import (
	"Marafon/internal/api/dto"
	"Marafon/internal/model"
	"Marafon/internal/pkg/consts"
	"Marafon/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterUserDTO) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	ListPending(ctx context.Context) ([]*dto.UserDTO, error)
	ApproveUser(ctx context.Context, id uint64) error
	RejectUser(ctx context.Context, id uint64) error
	UpdateUser(ctx context.Context, id uint64, updateDTO *dto.UpdateUserDTO) error
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterUserDTO) error {
	existing, err := s.userRepo.GetUserById(ctx, regDTO.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrUserExist
	}

	user := &model.User{
		ID:       regDTO.UserID,
		Username: regDTO.Username,
	}

	profile := &model.UserProfile{}
	if err = copier.Copy(profile, regDTO); err != nil {
		return err
	}
	profile.AvatarURL = consts.DefaultAvatarURL

	return s.userRepo.CreateUser(ctx, user, profile)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

func (s *UserServiceImpl) ListPending(ctx context.Context) ([]*dto.UserDTO, error) {
	users, err := s.userRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.UserDTO, 0, len(users))
	for _, user := range users {
		result = append(result, toUserDTO(user))
	}
	return result, nil
}

func (s *UserServiceImpl) ApproveUser(ctx context.Context, id uint64) error {
	rows, err := s.userRepo.UpdateUserIsApproved(ctx, id, true)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserServiceImpl) RejectUser(ctx context.Context, id uint64) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.userRepo.DeleteUser(ctx, id)
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, id uint64, updateDTO *dto.UpdateUserDTO) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	profile := &model.UserProfile{UserID: id}
	if err = copier.Copy(profile, updateDTO); err != nil {
		return err
	}
	return s.userRepo.UpdateUserProfile(ctx, profile)
}

func toUserDTO(user *model.User) *dto.UserDTO {
	achievements := make([]string, 0, len(user.Achievements))
	for _, a := range user.Achievements {
		achievements = append(achievements, a.AchievementID)
	}

	createdAt := user.CreatedAt
	return &dto.UserDTO{
		UserID:       user.ID,
		Username:     user.Username,
		FullName:     user.Profile.FullName,
		AvatarURL:    user.Profile.AvatarURL,
		Timezone:     user.Profile.Timezone,
		IsApproved:   user.IsApproved,
		Achievements: achievements,
		CreatedAt:    &createdAt,
	}
}
