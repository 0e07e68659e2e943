package http

import "github.com/gin-gonic/gin"

// RegisterWebhookRoutes maps the WhatsApp provider webhook at /webhook.
func RegisterWebhookRoutes(r gin.IRouter, h Handler) {
	r.GET("/webhook", h.Verify)
	r.POST("/webhook", h.Receive)
}

// RegisterRoutes maps the chat API under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/chat", h.Chat)
}
