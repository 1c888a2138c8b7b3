package routes

import (
	"github.com/gin-gonic/gin"

	"intervue_backend/internal/handlers"
	"intervue_backend/internal/logger"
	"intervue_backend/ws"
)

// RegisterRoutes wires every HTTP and WebSocket route onto the engine.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	wsHandler *ws.Handler,
) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.InterviewHandler.RegisterRoutes(api)
		appHandlers.RatingHandler.RegisterRoutes(api)
		appHandlers.QuestionHandler.RegisterRoutes(api)
		appHandlers.AnalyticsHandler.RegisterRoutes(api)
		appHandlers.ListingHandler.RegisterRoutes(api)
		appHandlers.InternalHandler.RegisterRoutes(api)
	}

	// Auth happens inside the handler via the token query param, since
	// browsers cannot attach headers to websocket upgrades.
	ginRouter.GET("/ws", wsHandler.Serve)
	logger.Info("WebSocket route /ws registered")
}
