package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/pizzashop/pizza-shop-api/internal/auth"
	"github.com/pizzashop/pizza-shop-api/internal/models"
	"github.com/pizzashop/pizza-shop-api/internal/services"
)

type AuthController struct {
	userService services.UserService
	tokens      *auth.TokenService
}

func NewAuthController(userService services.UserService, tokens *auth.TokenService) *AuthController {
	return &AuthController{
		userService: userService,
		tokens:      tokens,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a user account and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError("Validation error", err.Error()))
		return
	}

	user := &models.User{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     models.RoleUser,
	}

	if err := user.HashPassword(); err != nil {
		log.WithError(err).Error("Password hashing failed")
		c.JSON(http.StatusInternalServerError, models.NewAPIError("Internal server error"))
		return
	}

	if err := ac.userService.CreateUser(user); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, models.NewAPIError("User already exists"))
			return
		}
		log.WithError(err).Error("User creation failed")
		c.JSON(http.StatusInternalServerError, models.NewAPIError("Internal server error"))
		return
	}

	token, err := ac.tokens.Generate(user.ID)
	if err != nil {
		log.WithError(err).Error("Token generation failed")
		c.JSON(http.StatusInternalServerError, models.NewAPIError("Internal server error"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    userResponse(user),
		"token":   token,
	})
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Router /api/auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError("Validation error", err.Error()))
		return
	}

	// Unknown email and wrong password produce the same response so the
	// two cases cannot be told apart.
	user, err := ac.userService.GetUserByEmail(req.Email)
	if err != nil || !user.CheckPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, models.NewAPIError("Invalid credentials"))
		return
	}

	token, err := ac.tokens.Generate(user.ID)
	if err != nil {
		log.WithError(err).Error("Token generation failed")
		c.JSON(http.StatusInternalServerError, models.NewAPIError("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    userResponse(user),
		"token":   token,
	})
}

func userResponse(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
	}
}
