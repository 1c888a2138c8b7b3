package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"intervue_backend/internal/middleware"
	"intervue_backend/internal/services"
)

type AnalyticsHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(base *BaseHandler, analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:      base,
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")
	analytics.Use(middleware.AuthMiddleware())
	{
		analytics.GET("/dashboard", h.Dashboard)
	}
}

func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	dashboard, err := h.analyticsService.Dashboard(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
