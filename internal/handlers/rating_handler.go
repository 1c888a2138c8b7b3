package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"intervue_backend/internal/middleware"
	"intervue_backend/internal/services"
	"intervue_backend/internal/services/dto"
)

type RatingHandler struct {
	*BaseHandler
	ratingService services.RatingService
}

func NewRatingHandler(base *BaseHandler, ratingService services.RatingService) *RatingHandler {
	return &RatingHandler{
		BaseHandler:   base,
		ratingService: ratingService,
	}
}

func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ratings := rg.Group("/ratings")
	ratings.Use(middleware.AuthMiddleware())
	{
		ratings.POST("", h.Create)
		ratings.GET("", h.List)
		ratings.GET("/summary", h.Summary)
	}
}

func (h *RatingHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRatingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	rating, err := h.ratingService.Create(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rating)
}

func (h *RatingHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	ratings, err := h.ratingService.List(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}

func (h *RatingHandler) Summary(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	summary, err := h.ratingService.Summary(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
