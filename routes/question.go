package routes

import (
	"codebank/controllers"
	"codebank/middleware"

	"github.com/gin-gonic/gin"
)

// SetupQuestionRoutes registers the question API routes. Listing is public;
// mutations require a valid bearer token.
func SetupQuestionRoutes(r *gin.Engine, questions *controllers.QuestionController, verifier middleware.TokenVerifier) {
	r.GET("/questions", questions.List)

	private := r.Group("/questions")
	private.Use(middleware.Auth(verifier))

	private.POST("", questions.Create)
	private.PUT("/:id", questions.Update)
	private.DELETE("/:id", questions.Delete)
}
