package routes

import (
	"codebank/controllers"

	"github.com/gin-gonic/gin"
)

// SetupUserRoutes defines the routes for registration and login.
func SetupUserRoutes(r *gin.Engine, users *controllers.UserController) {
	r.POST("/api/register", users.Register)
	r.POST("/api/login", users.Login)
}
