package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup defines routes that don't require authentication.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers public routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// APIRoutes registers the BlinkLean business endpoints.
type APIRoutes struct {
	handler *Handler
}

// NewAPIRoutes creates the route group for handler.
func NewAPIRoutes(handler *Handler) *APIRoutes {
	return &APIRoutes{handler: handler}
}

// RegisterPublicRoutes registers every /api endpoint. None of them require authentication.
func (r *APIRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/availability/check", r.handler.CheckAvailability)
	rg.POST("/scrap/predict", r.handler.PredictScrap)
	rg.POST("/address/suggest", r.handler.SuggestAddresses)
	rg.POST("/chat", r.handler.Chat)
	rg.GET("/zones", r.handler.ListZones)
	rg.GET("/rates", r.handler.ListRates)
}

var _ PublicRouteGroup = (*APIRoutes)(nil)
