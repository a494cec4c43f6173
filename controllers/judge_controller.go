package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"utsav/models"
	"utsav/services"
	"utsav/utils"
)

type JudgeController struct {
	dir services.Directory
}

func NewJudgeController(dir services.Directory) *JudgeController {
	return &JudgeController{dir: dir}
}

const addJudgeMutation = `
    mutation AddJudge($input: [AddJudgeInput!]!) {
      addJudge(input: $input) {
        judge { id name email contactNumber }
      }
    }`

const listJudgesQuery = `
    query GetJudges {
      queryJudge {
        id name email contactNumber
      }
    }`

const getJudgeQuery = `
    query GetJudge($filter: JudgeFilter!) {
      queryJudge(filter: $filter) {
        id name email contactNumber
      }
    }`

const updateJudgeMutation = `
    mutation UpdateJudge($input: UpdateJudgeInput!) {
      updateJudge(input: $input) {
        judge { id name email contactNumber }
      }
    }`

const deleteJudgeMutation = `
    mutation DeleteJudge($filter: JudgeFilter!) {
      deleteJudge(filter: $filter) {
        msg
      }
    }`

type judgeRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"omitempty,email"`
	ContactNumber string `json:"contactNumber"`
}

func (jc *JudgeController) Create(c *gin.Context) {
	var req judgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid judge payload: "+err.Error())
		return
	}

	vars := map[string]any{
		"input": []map[string]any{{
			"name":          req.Name,
			"email":         req.Email,
			"contactNumber": req.ContactNumber,
		}},
	}
	var out struct {
		AddJudge struct {
			Judge []models.Judge `json:"judge"`
		} `json:"addJudge"`
	}
	if err := jc.dir.Run(c.Request.Context(), addJudgeMutation, vars, &out); err != nil {
		utils.Error(c, err)
		return
	}
	if len(out.AddJudge.Judge) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating judge."})
		return
	}
	c.JSON(http.StatusCreated, out.AddJudge.Judge[0])
}

func (jc *JudgeController) List(c *gin.Context) {
	var out struct {
		QueryJudge []models.Judge `json:"queryJudge"`
	}
	if err := jc.dir.Run(c.Request.Context(), listJudgesQuery, map[string]any{}, &out); err != nil {
		utils.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out.QueryJudge)
}

func (jc *JudgeController) Get(c *gin.Context) {
	vars := map[string]any{
		"filter": map[string]any{"id": map[string]any{"eq": c.Param("id")}},
	}
	var out struct {
		QueryJudge []models.Judge `json:"queryJudge"`
	}
	if err := jc.dir.Run(c.Request.Context(), getJudgeQuery, vars, &out); err != nil {
		utils.Error(c, err)
		return
	}
	if len(out.QueryJudge) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Judge not found"})
		return
	}
	c.JSON(http.StatusOK, out.QueryJudge[0])
}

func (jc *JudgeController) Update(c *gin.Context) {
	var req judgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid judge payload: "+err.Error())
		return
	}

	input := map[string]any{
		"filter": map[string]any{"id": map[string]any{"eq": c.Param("id")}},
		"set": map[string]any{
			"name":          req.Name,
			"email":         req.Email,
			"contactNumber": req.ContactNumber,
		},
	}
	var out struct {
		UpdateJudge struct {
			Judge []models.Judge `json:"judge"`
		} `json:"updateJudge"`
	}
	if err := jc.dir.Run(c.Request.Context(), updateJudgeMutation, map[string]any{"input": input}, &out); err != nil {
		utils.Error(c, err)
		return
	}
	if len(out.UpdateJudge.Judge) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Judge not found"})
		return
	}
	c.JSON(http.StatusOK, out.UpdateJudge.Judge[0])
}

func (jc *JudgeController) Delete(c *gin.Context) {
	vars := map[string]any{
		"filter": map[string]any{"id": map[string]any{"eq": c.Param("id")}},
	}
	var out struct {
		DeleteJudge struct {
			Msg string `json:"msg"`
		} `json:"deleteJudge"`
	}
	if err := jc.dir.Run(c.Request.Context(), deleteJudgeMutation, vars, &out); err != nil {
		utils.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Judge deleted successfully"})
}
