package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"intervue_backend/internal/middleware"
	"intervue_backend/internal/services"
	"intervue_backend/internal/services/dto"
)

type QuestionHandler struct {
	*BaseHandler
	questionService services.QuestionService
}

func NewQuestionHandler(base *BaseHandler, questionService services.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		BaseHandler:     base,
		questionService: questionService,
	}
}

func (h *QuestionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	questions := rg.Group("/questions")
	questions.Use(middleware.AuthMiddleware())
	{
		questions.POST("/generate", h.Generate)
	}
}

// Generate always answers 200: when the model is unavailable or returns
// garbage the response carries the built-in question set instead.
func (h *QuestionHandler) Generate(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.GenerateQuestionsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response := h.questionService.Generate(c.Request.Context(), &req)
	c.JSON(http.StatusOK, response)
}
