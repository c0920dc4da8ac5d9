package handler

import (
	"Marafon/internal/api/dto"
	"Marafon/internal/job"
	"Marafon/internal/pkg/response"
	"Marafon/internal/pkg/util"
	"Marafon/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc        service.UserService
	achievementSvc service.AchievementService
	avatarJob      *job.AvatarRefreshJob
}

func NewUserHandler(userSvc service.UserService, achievementSvc service.AchievementService, avatarJob *job.AvatarRefreshJob) *UserHandler {
	return &UserHandler{
		userSvc:        userSvc,
		achievementSvc: achievementSvc,
		avatarJob:      avatarJob,
	}
}

func (s *UserHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterUserDTO
	err := c.ShouldBind(&registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.userSvc.Register(c.Request.Context(), &registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) GetUserInfo(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	user, err := s.userSvc.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) ListPending(c *gin.Context) {
	users, err := s.userSvc.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}

func (s *UserHandler) ApproveUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	err = s.userSvc.ApproveUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) RejectUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	err = s.userSvc.RejectUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) UpdateUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	var updateDTO dto.UpdateUserDTO
	if err = c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = s.userSvc.UpdateUser(c.Request.Context(), userID, &updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) GetAchievements(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	progress, err := s.achievementSvc.Progress(c.Request.Context(), userID, c.Query("timezone"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, progress)
}

// RefreshAvatar 立即刷新指定用户的头像，不等每日任务
func (s *UserHandler) RefreshAvatar(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	user, err := s.userSvc.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = s.avatarJob.RefreshOne(c.Request.Context(), user.UserID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
