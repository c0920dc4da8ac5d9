package handler

import (
	"Marafon/internal/api/dto"
	"Marafon/internal/pkg/response"
	"Marafon/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	accountSvc service.AccountService
}

func NewAuthHandler(accountSvc service.AccountService) *AuthHandler {
	return &AuthHandler{
		accountSvc: accountSvc,
	}
}

func (s *AuthHandler) Login(c *gin.Context) {
	var credentialDTO dto.CredentialDTO
	err := c.ShouldBind(&credentialDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.accountSvc.Login(c.Request.Context(), &credentialDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{
		"token": token,
	})
}

func (s *AuthHandler) Logout(c *gin.Context) {
	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	err := s.accountSvc.Logout(c.Request.Context(), tokenString)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
