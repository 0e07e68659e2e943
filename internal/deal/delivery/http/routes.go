package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the deals endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	deals := rg.Group("/deals")
	{
		deals.GET("", h.List)
		deals.POST("", h.Create)
		deals.DELETE("/:id", h.Delete)
	}
}
