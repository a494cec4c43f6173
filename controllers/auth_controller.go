package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"utsav/middlewares"
	"utsav/models"
	"utsav/services"
	"utsav/utils"
)

type AuthController struct {
	dir    services.Directory
	tokens *utils.TokenManager
}

func NewAuthController(dir services.Directory, tokens *utils.TokenManager) *AuthController {
	return &AuthController{dir: dir, tokens: tokens}
}

const addUserMutation = `
    mutation AddUser($name: String!, $email: String!, $hashedPassword: String!, $role: Role!) {
      addUser(input: [{ name: $name, email: $email, hashedPassword: $hashedPassword, role: $role }]) {
        user { id name email role }
      }
    }`

const userByEmailQuery = `
    query GetUserByEmail($email: String!) {
      queryUser(filter: { email: { eq: $email } }) {
        id name email role hashedPassword
      }
    }`

const userByIDQuery = `
    query GetUserById($id: ID!) {
      queryUser(filter: { id: { eq: $id } }) {
        id name email role
      }
    }`

// Register creates a user and logs them straight in.
func (ac *AuthController) Register(c *gin.Context) {
	var req struct {
		Name     string      `json:"name" binding:"required"`
		Email    string      `json:"email" binding:"required,email"`
		Password string      `json:"password" binding:"required,min=8"`
		Role     models.Role `json:"role" binding:"required,oneof=Admin Judge User"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "All fields are required: "+err.Error())
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(c, err)
		return
	}

	var out struct {
		AddUser struct {
			User []models.User `json:"user"`
		} `json:"addUser"`
	}
	vars := map[string]any{
		"name":           req.Name,
		"email":          req.Email,
		"hashedPassword": string(hashed),
		"role":           req.Role,
	}
	if err := ac.dir.Run(c.Request.Context(), addUserMutation, vars, &out); err != nil {
		utils.Error(c, err)
		return
	}
	if len(out.AddUser.User) == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error registering user."})
		return
	}

	token, err := ac.tokens.Generate(out.AddUser.User[0].ID, req.Role)
	if err != nil {
		utils.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully!",
		"token":   token,
	})
}

// Login verifies credentials and issues a token.
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Email and password are required.")
		return
	}

	var out struct {
		QueryUser []models.User `json:"queryUser"`
	}
	if err := ac.dir.Run(c.Request.Context(), userByEmailQuery, map[string]any{"email": req.Email}, &out); err != nil {
		utils.Error(c, err)
		return
	}
	if len(out.QueryUser) == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials."})
		return
	}

	user := out.QueryUser[0]
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials."})
		return
	}

	token, err := ac.tokens.Generate(user.ID, user.Role)
	if err != nil {
		utils.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful!", "token": token})
}

// Me returns the calling user's profile.
func (ac *AuthController) Me(c *gin.Context) {
	userID := c.GetString(middlewares.ContextUserID)

	var out struct {
		QueryUser []models.User `json:"queryUser"`
	}
	if err := ac.dir.Run(c.Request.Context(), userByIDQuery, map[string]any{"id": userID}, &out); err != nil {
		utils.Error(c, err)
		return
	}
	if len(out.QueryUser) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		return
	}
	c.JSON(http.StatusOK, out.QueryUser[0])
}
