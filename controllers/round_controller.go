package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"utsav/models"
	"utsav/services"
	"utsav/utils"
)

type RoundController struct {
	dir services.Directory
}

func NewRoundController(dir services.Directory) *RoundController {
	return &RoundController{dir: dir}
}

const roundSelection = `
        id
        name
        description
        date
        time
        status
        criteria {
          id
          name
          maxScore
        }`

const addRoundMutation = `
    mutation AddRound($input: [AddRoundInput!]!) {
      addRound(input: $input) {
        round {` + roundSelection + `
        }
      }
    }`

const updateRoundMutation = `
    mutation UpdateRound($input: UpdateRoundInput!) {
      updateRound(input: $input) {
        round {` + roundSelection + `
        }
      }
    }`

const deleteRoundMutation = `
    mutation DeleteRound($filter: RoundFilter!) {
      deleteRound(filter: $filter) {
        msg
      }
    }`

const listRoundsQuery = `
    query GetRounds {
      queryRound {` + roundSelection + `
      }
    }`

type criterionInput struct {
	Name     string `json:"name" binding:"required"`
	MaxScore int    `json:"maxScore" binding:"required,gt=0"`
}

// Create adds a round together with its scoring criteria.
func (rc *RoundController) Create(c *gin.Context) {
	var req struct {
		Name        string           `json:"name" binding:"required"`
		Description string           `json:"description"`
		Date        string           `json:"date"`
		Time        string           `json:"time"`
		Status      string           `json:"status"`
		Criteria    []criterionInput `json:"criteria" binding:"dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid round payload: "+err.Error())
		return
	}

	criteria := make([]map[string]any, 0, len(req.Criteria))
	for _, cr := range req.Criteria {
		criteria = append(criteria, map[string]any{
			"name":     cr.Name,
			"maxScore": cr.MaxScore,
		})
	}

	vars := map[string]any{
		"input": []map[string]any{{
			"name":        req.Name,
			"description": req.Description,
			"date":        req.Date,
			"time":        req.Time,
			"status":      req.Status,
			"criteria":    criteria,
		}},
	}
	var out struct {
		AddRound struct {
			Round []models.Round `json:"round"`
		} `json:"addRound"`
	}
	if err := rc.dir.Run(c.Request.Context(), addRoundMutation, vars, &out); err != nil {
		utils.Error(c, err)
		return
	}
	if len(out.AddRound.Round) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating round."})
		return
	}
	c.JSON(http.StatusCreated, out.AddRound.Round[0])
}

// Update edits round fields and adds or removes criteria in one call.
func (rc *RoundController) Update(c *gin.Context) {
	var req struct {
		Name              string           `json:"name"`
		Description       string           `json:"description"`
		Date              string           `json:"date"`
		Time              string           `json:"time"`
		Status            string           `json:"status"`
		AddCriteria       []criterionInput `json:"addCriteria" binding:"dive"`
		RemoveCriteriaIDs []string         `json:"removeCriteriaIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid round payload: "+err.Error())
		return
	}

	set := map[string]any{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Description != "" {
		set["description"] = req.Description
	}
	if req.Date != "" {
		set["date"] = req.Date
	}
	if req.Time != "" {
		set["time"] = req.Time
	}
	if req.Status != "" {
		set["status"] = req.Status
	}
	if len(req.AddCriteria) > 0 {
		criteria := make([]map[string]any, 0, len(req.AddCriteria))
		for _, cr := range req.AddCriteria {
			criteria = append(criteria, map[string]any{
				"name":     cr.Name,
				"maxScore": cr.MaxScore,
			})
		}
		set["criteria"] = criteria
	}

	input := map[string]any{
		"filter": map[string]any{"id": map[string]any{"eq": c.Param("id")}},
	}
	if len(set) > 0 {
		input["set"] = set
	}
	if len(req.RemoveCriteriaIDs) > 0 {
		removals := make([]map[string]any, 0, len(req.RemoveCriteriaIDs))
		for _, id := range req.RemoveCriteriaIDs {
			removals = append(removals, map[string]any{"id": id})
		}
		input["remove"] = map[string]any{"criteria": removals}
	}

	var out struct {
		UpdateRound struct {
			Round []models.Round `json:"round"`
		} `json:"updateRound"`
	}
	if err := rc.dir.Run(c.Request.Context(), updateRoundMutation, map[string]any{"input": input}, &out); err != nil {
		utils.Error(c, err)
		return
	}
	if len(out.UpdateRound.Round) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Round not found"})
		return
	}
	c.JSON(http.StatusOK, out.UpdateRound.Round[0])
}

func (rc *RoundController) Delete(c *gin.Context) {
	vars := map[string]any{
		"filter": map[string]any{"id": map[string]any{"eq": c.Param("id")}},
	}
	var out struct {
		DeleteRound struct {
			Msg string `json:"msg"`
		} `json:"deleteRound"`
	}
	if err := rc.dir.Run(c.Request.Context(), deleteRoundMutation, vars, &out); err != nil {
		utils.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out.DeleteRound)
}

func (rc *RoundController) List(c *gin.Context) {
	var out struct {
		QueryRound []models.Round `json:"queryRound"`
	}
	if err := rc.dir.Run(c.Request.Context(), listRoundsQuery, map[string]any{}, &out); err != nil {
		utils.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out.QueryRound)
}
