package service

import (
	"Marafon/internal/api/dto"
	"Marafon/internal/pkg/consts"
	"Marafon/internal/pkg/security"
	"Marafon/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginIssuesToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(repository.NewAccountRepo(db))
	ctx := context.Background()

	require.NoError(t, svc.CreateAccount(ctx, "bot", "secret-pass", consts.RoleBot))

	token, err := svc.Login(ctx, &dto.CredentialDTO{Username: "bot", Password: "secret-pass"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := security.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, []string{consts.RoleBot}, claims.Roles)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(repository.NewAccountRepo(db))
	ctx := context.Background()

	require.NoError(t, svc.CreateAccount(ctx, "bot", "secret-pass", consts.RoleBot))

	_, err := svc.Login(ctx, &dto.CredentialDTO{Username: "bot", Password: "wrong"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	// 不存在的账号返回同一个错误，不暴露账号是否存在
	_, err = svc.Login(ctx, &dto.CredentialDTO{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestLoginMissingCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(repository.NewAccountRepo(db))

	_, err := svc.Login(context.Background(), &dto.CredentialDTO{Username: "bot"})
	assert.ErrorIs(t, err, ErrMissingLoginCredentials)
}

func TestCreateAccountDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAccountService(repository.NewAccountRepo(db))
	ctx := context.Background()

	require.NoError(t, svc.CreateAccount(ctx, "admin", "pass", consts.RoleAdmin))
	assert.ErrorIs(t, svc.CreateAccount(ctx, "admin", "pass", consts.RoleAdmin), ErrAccountExist)
}
