package controllers

import (
	"errors"
	"log"
	"net/http"

	questiondto "codebank/dto/question"
	"codebank/services"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	questions *services.QuestionService
}

func NewQuestionController(questions *services.QuestionService) *QuestionController {
	return &QuestionController{questions: questions}
}

func (ct *QuestionController) List(c *gin.Context) {
	questions, err := ct.questions.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, questions)
}

func (ct *QuestionController) Create(c *gin.Context) {
	userID := c.GetString("userId")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var payload questiondto.QuestionCreateDTO
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := ct.questions.Create(c.Request.Context(), userID, payload)
	if err != nil {
		log.Println("Error creating question:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, question)
}

func (ct *QuestionController) Update(c *gin.Context) {
	var payload questiondto.QuestionUpdateDTO
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := ct.questions.Update(c.Request.Context(), c.Param("id"), payload)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}
	if err != nil {
		log.Println("Error updating question:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, question)
}

func (ct *QuestionController) Delete(c *gin.Context) {
	err := ct.questions.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}
	if err != nil {
		log.Println("Error deleting question:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Question deleted successfully"})
}
