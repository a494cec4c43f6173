package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"utsav/services"
	"utsav/utils"
)

type LeaderboardController struct {
	boards *services.LeaderboardService
}

func NewLeaderboardController(boards *services.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{boards: boards}
}

// Get returns ranked team standings, optionally scoped with ?roundId=.
func (lc *LeaderboardController) Get(c *gin.Context) {
	board, err := lc.boards.ComputeLeaderboard(c.Request.Context(), c.Query("roundId"))
	if err != nil {
		utils.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}
