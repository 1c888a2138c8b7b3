package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"intervue_backend/internal/middleware"
	"intervue_backend/internal/services"
)

// InternalHandler exposes maintenance triggers for external schedulers.
// Routes are guarded by the shared cron secret, not user auth.
type InternalHandler struct {
	*BaseHandler
	reminderService services.ReminderService
}

func NewInternalHandler(base *BaseHandler, reminderService services.ReminderService) *InternalHandler {
	return &InternalHandler{
		BaseHandler:     base,
		reminderService: reminderService,
	}
}

func (h *InternalHandler) RegisterRoutes(rg *gin.RouterGroup) {
	internal := rg.Group("/internal")
	internal.Use(middleware.CronSecretMiddleware())
	{
		internal.POST("/reminders/run", h.RunReminders)
	}
}

func (h *InternalHandler) RunReminders(c *gin.Context) {
	if err := h.reminderService.Run(c.Request.Context(), time.Now().UTC()); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder run completed"})
}
