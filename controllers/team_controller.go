package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"utsav/models"
	"utsav/services"
	"utsav/utils"
)

type TeamController struct {
	dir services.Directory
}

func NewTeamController(dir services.Directory) *TeamController {
	return &TeamController{dir: dir}
}

const teamSelection = `
        id
        name
        college
        contactName
        contactEmail
        contactPhone
        members`

const listTeamsQuery = `
    query GetTeams {
      queryTeam {` + teamSelection + `
      }
    }`

const getTeamQuery = `
    query GetTeamByID($id: ID!) {
      queryTeam(filter: { id: { eq: $id } }) {` + teamSelection + `
      }
    }`

const addTeamMutation = `
    mutation AddTeam($input: [AddTeamInput!]!) {
      addTeam(input: $input) {
        team {` + teamSelection + `
        }
      }
    }`

const updateTeamMutation = `
    mutation UpdateTeam($filter: TeamFilter!, $set: UpdateTeamInput!) {
      updateTeam(filter: $filter, set: $set) {
        team {` + teamSelection + `
        }
      }
    }`

const deleteTeamMutation = `
    mutation DeleteTeam($filter: TeamFilter!) {
      deleteTeam(filter: $filter) {
        msg: numUids
      }
    }`

func (tc *TeamController) List(c *gin.Context) {
	var out struct {
		QueryTeam []models.Team `json:"queryTeam"`
	}
	if err := tc.dir.Run(c.Request.Context(), listTeamsQuery, map[string]any{}, &out); err != nil {
		utils.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out.QueryTeam)
}

func (tc *TeamController) Get(c *gin.Context) {
	var out struct {
		QueryTeam []models.Team `json:"queryTeam"`
	}
	if err := tc.dir.Run(c.Request.Context(), getTeamQuery, map[string]any{"id": c.Param("id")}, &out); err != nil {
		utils.Error(c, err)
		return
	}
	if len(out.QueryTeam) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
		return
	}
	c.JSON(http.StatusOK, out.QueryTeam[0])
}

type teamRequest struct {
	Name         string   `json:"name" binding:"required"`
	College      string   `json:"college"`
	ContactName  string   `json:"contactName"`
	ContactEmail string   `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone string   `json:"contactPhone"`
	Members      []string `json:"members"`
}

func (tc *TeamController) Create(c *gin.Context) {
	var req teamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid team payload: "+err.Error())
		return
	}

	vars := map[string]any{
		"input": []map[string]any{{
			"name":         req.Name,
			"college":      req.College,
			"contactName":  req.ContactName,
			"contactEmail": req.ContactEmail,
			"contactPhone": req.ContactPhone,
			"members":      req.Members,
		}},
	}
	var out struct {
		AddTeam struct {
			Team []models.Team `json:"team"`
		} `json:"addTeam"`
	}
	if err := tc.dir.Run(c.Request.Context(), addTeamMutation, vars, &out); err != nil {
		utils.Error(c, err)
		return
	}
	if len(out.AddTeam.Team) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding team."})
		return
	}
	c.JSON(http.StatusCreated, out.AddTeam.Team[0])
}

func (tc *TeamController) Update(c *gin.Context) {
	var req teamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid team payload: "+err.Error())
		return
	}

	vars := map[string]any{
		"filter": map[string]any{"id": map[string]any{"eq": c.Param("id")}},
		"set": map[string]any{
			"name":         req.Name,
			"college":      req.College,
			"contactName":  req.ContactName,
			"contactEmail": req.ContactEmail,
			"contactPhone": req.ContactPhone,
			"members":      req.Members,
		},
	}
	var out struct {
		UpdateTeam struct {
			Team []models.Team `json:"team"`
		} `json:"updateTeam"`
	}
	if err := tc.dir.Run(c.Request.Context(), updateTeamMutation, vars, &out); err != nil {
		utils.Error(c, err)
		return
	}
	if len(out.UpdateTeam.Team) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
		return
	}
	c.JSON(http.StatusOK, out.UpdateTeam.Team[0])
}

func (tc *TeamController) Delete(c *gin.Context) {
	vars := map[string]any{
		"filter": map[string]any{"id": map[string]any{"eq": c.Param("id")}},
	}
	var out struct {
		DeleteTeam struct {
			Msg int `json:"msg"`
		} `json:"deleteTeam"`
	}
	if err := tc.dir.Run(c.Request.Context(), deleteTeamMutation, vars, &out); err != nil {
		utils.Error(c, err)
		return
	}
	if out.DeleteTeam.Msg == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found or already deleted"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}
