package service

import (
	"Marafon/internal/api/dto"
	"Marafon/internal/model"
	"Marafon/internal/pkg/redis"
	"Marafon/internal/pkg/security"
	"Marafon/internal/repository"
	"context"
	"time"
)

type AccountService interface {
	Login(ctx context.Context, credential *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	CreateAccount(ctx context.Context, username, password, role string) error
}

type accountServiceImpl struct {
	accountRepo repository.AccountRepo
}

func NewAccountService(accountRepo repository.AccountRepo) AccountService {
	return &accountServiceImpl{accountRepo: accountRepo}
}

func (s *accountServiceImpl) Login(ctx context.Context, credential *dto.CredentialDTO) (string, error) {
	if credential.Username == "" || credential.Password == "" {
		return "", ErrMissingLoginCredentials
	}

	account, err := s.accountRepo.GetByUsername(ctx, credential.Username)
	if err != nil {
		return "", err
	}
	if account == nil {
		return "", ErrPasswordIncorrect
	}

	if err = security.CheckPasswordHash(credential.Password, account.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	return security.GenerateToken(account.ID, []string{account.Role})
}

func (s *accountServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	// 拉黑签名直到 token 自然过期
	return redis.SetWithExpiration(ctx, signature, true, security.JWTExpirationTime)
}

func (s *accountServiceImpl) CreateAccount(ctx context.Context, username, password, role string) error {
	existing, err := s.accountRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAccountExist
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return err
	}

	return s.accountRepo.Create(ctx, &model.Account{
		Username:  username,
		Password:  hash,
		Role:      role,
		CreatedAt: time.Now(),
	})
}
