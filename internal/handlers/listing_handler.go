package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"intervue_backend/internal/services"
)

type ListingHandler struct {
	*BaseHandler
	listingService services.ListingService
}

func NewListingHandler(base *BaseHandler, listingService services.ListingService) *ListingHandler {
	return &ListingHandler{
		BaseHandler:    base,
		listingService: listingService,
	}
}

// RegisterRoutes exposes listings without auth; the board is public
// browse-only data.
func (h *ListingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	listings := rg.Group("/listings")
	{
		listings.GET("", h.List)
	}
}

func (h *ListingHandler) List(c *gin.Context) {
	listings := h.listingService.List(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"listings": listings})
}
