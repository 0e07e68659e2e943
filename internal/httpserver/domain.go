package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "pneuma-faq-bot/internal/chat/delivery/http"
	dealHTTP "pneuma-faq-bot/internal/deal/delivery/http"
)

// setupChatDomain registers the provider webhook at /webhook and the chat API
// at /api/v1/chat.
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) error {
	var sender chatHTTP.Sender
	if srv.sender != nil && srv.sender.Configured() {
		sender = srv.sender
	}

	h := chatHTTP.New(srv.l, srv.dispatcherUC, sender, srv.chatConfig)
	chatHTTP.RegisterWebhookRoutes(srv.gin, h)
	chatHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Chat routes registered at GET/POST /webhook and POST /api/v1/chat")
	return nil
}

// setupDealDomain registers /api/v1/deals.
func (srv *HTTPServer) setupDealDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := dealHTTP.New(srv.l, srv.dealUC)
	dealHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Deals routes registered at /api/v1/deals")
	return nil
}
