package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Githubuser289/Calories-BE/services"
)

type UserController struct {
	auth *services.AuthService
}

func NewUserController(auth *services.AuthService) *UserController {
	return &UserController{auth: auth}
}

type SignupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Signup godoc
// @Summary      Register a new account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body body SignupInput true "account data"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Router       /users/signup [post]
func (ctl *UserController) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := ctl.auth.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailInUse) {
			c.JSON(http.StatusConflict, gin.H{"message": "Email in use"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// Login godoc
// @Summary      Log in and receive a bearer token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body body LoginInput true "credentials"
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} map[string]string
// @Router       /users/login [post]
func (ctl *UserController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	token, user, err := ctl.auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Email or password is wrong"})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// Logout godoc
// @Summary      Invalidate the current token
// @Tags         users
// @Security     BearerAuth
// @Success      204
// @Failure      401 {object} map[string]string
// @Router       /users/logout [get]
func (ctl *UserController) Logout(c *gin.Context) {
	userID := c.GetString("userID")

	if err := ctl.auth.Logout(c.Request.Context(), userID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
			return
		}
		serverError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Current godoc
// @Summary      Return the authenticated account's email
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Router       /users/current [get]
func (ctl *UserController) Current(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"email": c.GetString("email"),
	})
}

func serverError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error: " + err.Error()})
}
