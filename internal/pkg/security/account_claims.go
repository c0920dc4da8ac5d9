package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTSecret         string = "Marafon"
	JWTExpirationTime        = time.Hour * 24
)

// AccountClaims 定义了 Token 中需要包含的业务信息
type AccountClaims struct {
	AccountID uint64   `json:"account_id"`
	Roles     []string `json:"roles"`
	jwt.RegisteredClaims
}
