package handler

import (
	"Marafon/internal/pkg/response"
	"Marafon/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsSvc service.StatsService
}

func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsSvc: statsSvc,
	}
}

func (s *StatsHandler) GetStats(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	stats, err := s.statsSvc.Summarize(c.Request.Context(), userID, c.Query("timezone"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stats)
}
