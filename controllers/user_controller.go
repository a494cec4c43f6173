package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"utsav/models"
	"utsav/services"
	"utsav/utils"
)

type UserController struct {
	dir services.Directory
}

func NewUserController(dir services.Directory) *UserController {
	return &UserController{dir: dir}
}

const createUserMutation = `
    mutation AddUser($name: String!, $email: String!, $contactNumber: String, $role: Role!, $hashedPassword: String!) {
      addUser(input: [{
        name: $name,
        email: $email,
        contactNumber: $contactNumber,
        role: $role,
        hashedPassword: $hashedPassword
      }]) {
        user { id name email contactNumber role }
      }
    }`

const listUsersQuery = `
    query GetUsers {
      queryUser {
        id name email contactNumber role
      }
    }`

const getUserQuery = `
    query GetUser($id: ID!) {
      getUser(id: $id) {
        id name email contactNumber role
      }
    }`

const updateUserMutation = `
    mutation UpdateUser($input: UpdateUserInput!) {
      updateUser(input: $input) {
        user { id name email contactNumber role }
      }
    }`

const deleteUserMutation = `
    mutation DeleteUser($filter: UserFilter!) {
      deleteUser(filter: $filter) {
        msg
        numUids
      }
    }`

// Create adds a user with a server-side hashed password. Admin only.
func (uc *UserController) Create(c *gin.Context) {
	var req struct {
		Name          string      `json:"name" binding:"required"`
		Email         string      `json:"email" binding:"required,email"`
		ContactNumber string      `json:"contactNumber"`
		Role          models.Role `json:"role" binding:"required,oneof=Admin Judge User"`
		Password      string      `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Name, email, password, and role are required: "+err.Error())
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(c, err)
		return
	}

	vars := map[string]any{
		"name":           req.Name,
		"email":          req.Email,
		"contactNumber":  req.ContactNumber,
		"role":           req.Role,
		"hashedPassword": string(hashed),
	}
	var out struct {
		AddUser struct {
			User []models.User `json:"user"`
		} `json:"addUser"`
	}
	if err := uc.dir.Run(c.Request.Context(), createUserMutation, vars, &out); err != nil {
		utils.Error(c, err)
		return
	}
	if len(out.AddUser.User) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating user."})
		return
	}
	c.JSON(http.StatusCreated, out.AddUser.User[0])
}

func (uc *UserController) List(c *gin.Context) {
	var out struct {
		QueryUser []models.User `json:"queryUser"`
	}
	if err := uc.dir.Run(c.Request.Context(), listUsersQuery, map[string]any{}, &out); err != nil {
		utils.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, out.QueryUser)
}

func (uc *UserController) Get(c *gin.Context) {
	var out struct {
		GetUser *models.User `json:"getUser"`
	}
	if err := uc.dir.Run(c.Request.Context(), getUserQuery, map[string]any{"id": c.Param("id")}, &out); err != nil {
		utils.Error(c, err)
		return
	}
	if out.GetUser == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, out.GetUser)
}

// Update sets only the fields present in the request; a new password is
// re-hashed before it is stored.
func (uc *UserController) Update(c *gin.Context) {
	var req struct {
		Name          string      `json:"name"`
		Email         string      `json:"email"`
		ContactNumber string      `json:"contactNumber"`
		Role          models.Role `json:"role" binding:"omitempty,oneof=Admin Judge User"`
		Password      string      `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	set := map[string]any{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Email != "" {
		set["email"] = req.Email
	}
	if req.ContactNumber != "" {
		set["contactNumber"] = req.ContactNumber
	}
	if req.Role != "" {
		set["role"] = req.Role
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.Error(c, err)
			return
		}
		set["hashedPassword"] = string(hashed)
	}

	input := map[string]any{
		"filter": map[string]any{"id": []string{c.Param("id")}},
		"set":    set,
	}
	var out struct {
		UpdateUser struct {
			User []models.User `json:"user"`
		} `json:"updateUser"`
	}
	if err := uc.dir.Run(c.Request.Context(), updateUserMutation, map[string]any{"input": input}, &out); err != nil {
		utils.Error(c, err)
		return
	}
	if len(out.UpdateUser.User) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, out.UpdateUser.User[0])
}

func (uc *UserController) Delete(c *gin.Context) {
	vars := map[string]any{
		"filter": map[string]any{"id": []string{c.Param("id")}},
	}
	var out struct {
		DeleteUser struct {
			Msg     string `json:"msg"`
			NumUids int    `json:"numUids"`
		} `json:"deleteUser"`
	}
	if err := uc.dir.Run(c.Request.Context(), deleteUserMutation, vars, &out); err != nil {
		utils.Error(c, err)
		return
	}
	if out.DeleteUser.NumUids == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found or already deleted"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
