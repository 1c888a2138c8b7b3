package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"intervue_backend/internal/middleware"
	"intervue_backend/internal/models"
	"intervue_backend/internal/services"
	"intervue_backend/internal/services/dto"
)

type InterviewHandler struct {
	*BaseHandler
	interviewService services.InterviewService
}

func NewInterviewHandler(base *BaseHandler, interviewService services.InterviewService) *InterviewHandler {
	return &InterviewHandler{
		BaseHandler:      base,
		interviewService: interviewService,
	}
}

func (h *InterviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	interviews := rg.Group("/interviews")
	interviews.Use(middleware.AuthMiddleware())
	{
		interviews.POST("", h.Create)
		interviews.GET("", h.List)
		interviews.GET("/:interviewId", h.Get)
		interviews.PATCH("/:interviewId", h.Update)
		interviews.POST("/:interviewId/complete", h.Complete)
		interviews.DELETE("/:interviewId", h.Delete)
	}
}

func (h *InterviewHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateInterviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	interview, err := h.interviewService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, interview)
}

// List returns the user's interviews ordered by scheduled time. Stale
// upcoming interviews are swept to completed before the fetch, so the
// client always sees current statuses.
func (h *InterviewHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.InterviewListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	var status *models.InterviewStatus
	if query.Status != "" {
		s := models.InterviewStatus(query.Status)
		status = &s
	}

	interviews, err := h.interviewService.List(userID, status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"interviews": interviews})
}

func (h *InterviewHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	interview, err := h.interviewService.Get(userID, c.Param("interviewId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, interview)
}

func (h *InterviewHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateInterviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	interview, err := h.interviewService.Update(userID, c.Param("interviewId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, interview)
}

func (h *InterviewHandler) Complete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CompleteInterviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	interview, err := h.interviewService.Complete(userID, c.Param("interviewId"), models.InterviewStatus(req.Outcome))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, interview)
}

func (h *InterviewHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.interviewService.Delete(userID, c.Param("interviewId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Interview deleted"})
}
