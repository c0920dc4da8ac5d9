package handler

import (
	"Marafon/internal/api/dto"
	"Marafon/internal/pkg/response"
	"Marafon/internal/pkg/util"
	"Marafon/internal/service"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardSvc service.LeaderboardService
}

func NewLeaderboardHandler(leaderboardSvc service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardSvc: leaderboardSvc,
	}
}

func (s *LeaderboardHandler) Rank(c *gin.Context) {
	var queryDTO dto.LeaderboardQueryDTO
	err := c.ShouldBindQuery(&queryDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&queryDTO); err != nil {
		response.Error(c, err)
		return
	}
	board, err := s.leaderboardSvc.Rank(c.Request.Context(), &queryDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, board)
}
