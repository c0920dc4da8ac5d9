package handler

import (
	"Marafon/internal/api/dto"
	"Marafon/internal/pkg/response"
	"Marafon/internal/pkg/util"
	"Marafon/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	progressSvc service.ProgressService
}

func NewProgressHandler(progressSvc service.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		progressSvc: progressSvc,
	}
}

func (s *ProgressHandler) Submit(c *gin.Context) {
	var submitDTO dto.SubmitProgressDTO
	err := c.ShouldBind(&submitDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&submitDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.progressSvc.Submit(c.Request.Context(), &submitDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *ProgressHandler) GetToday(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	progress, err := s.progressSvc.GetToday(c.Request.Context(), userID, c.Query("timezone"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, progress)
}
