package controllers

import (
	"errors"
	"log"
	"net/http"

	userdto "codebank/dto/user"
	"codebank/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (ct *UserController) Register(c *gin.Context) {
	var payload userdto.UserRegisterDTO
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := ct.users.Register(c.Request.Context(), payload.Username, payload.Email, payload.Password)
	if errors.Is(err, services.ErrEmailTaken) || errors.Is(err, services.ErrUsernameTaken) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Println("Registration error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (ct *UserController) Login(c *gin.Context) {
	var payload userdto.UserLoginDTO
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := ct.users.Login(c.Request.Context(), payload.Email, payload.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		log.Println("Login error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"email":    user.Email,
		"username": user.Username,
		"userId":   user.ID.Hex(),
	})
}
