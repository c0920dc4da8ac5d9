package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("参数错误")
	ErrUserNotFound            = errors.New("用户不存在")
	ErrUserExist               = errors.New("用户已注册")
	ErrUserNotApproved         = errors.New("用户尚未通过审核")
	ErrAccountExist            = errors.New("账号已存在")
	ErrPasswordIncorrect       = errors.New("密码错误")
	ErrMissingLoginCredentials = errors.New("缺少登录凭据")
	ErrPeriodInvalid           = errors.New("未知的排行周期")
	ErrMetricInvalid           = errors.New("未知的排行指标")
	UnauthorizedError          = errors.New("权限不足")
	UnExpectedError            = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrUserNotFound:            NotFound,
	ErrUserExist:               BadRequest,
	ErrUserNotApproved:         Unauthorized,
	ErrAccountExist:            BadRequest,
	ErrPasswordIncorrect:       Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	ErrPeriodInvalid:           BadRequest,
	ErrMetricInvalid:           BadRequest,
	UnauthorizedError:          Unauthorized,
	UnExpectedError:            InternalServerError,
}
