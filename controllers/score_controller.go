package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"utsav/services"
	"utsav/utils"
)

type ScoreController struct {
	scores *services.ScoreService
}

func NewScoreController(scores *services.ScoreService) *ScoreController {
	return &ScoreController{scores: scores}
}

// Submit records a judge's scoring of one team in one round.
func (sc *ScoreController) Submit(c *gin.Context) {
	var req struct {
		TeamID           string                         `json:"teamId" binding:"required"`
		RoundID          string                         `json:"roundId" binding:"required"`
		JudgeID          string                         `json:"judgeId" binding:"required"`
		ScoresByCriteria []services.CriterionScoreInput `json:"scoresByCriteria" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Missing required fields or criteria scores")
		return
	}

	rec, err := sc.scores.Submit(c.Request.Context(), services.SubmitInput{
		TeamID:  req.TeamID,
		RoundID: req.RoundID,
		JudgeID: req.JudgeID,
		Scores:  req.ScoresByCriteria,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// Amend replaces the full criteria set of an existing score record.
func (sc *ScoreController) Amend(c *gin.Context) {
	var req struct {
		ScoresByCriteria []services.CriterionScoreInput `json:"scoresByCriteria" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Criteria scores are required")
		return
	}

	rec, err := sc.scores.Amend(c.Request.Context(), c.Param("id"), req.ScoresByCriteria)
	if err != nil {
		utils.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// ListByRound returns all score records for one round.
func (sc *ScoreController) ListByRound(c *gin.Context) {
	records, err := sc.scores.ListByRound(c.Request.Context(), c.Param("roundId"))
	if err != nil {
		utils.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
