package http

import (
	"github.com/gin-gonic/gin"

	"pneuma-faq-bot/internal/deal"
	"pneuma-faq-bot/pkg/log"
)

// Handler is the public interface for the deals HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc deal.UseCase
}

// New creates a new HTTP handler for the deals domain.
func New(l log.Logger, uc deal.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
