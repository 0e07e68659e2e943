package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"pneuma-faq-bot/internal/dispatcher"
	"pneuma-faq-bot/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Receive(c *gin.Context)
	Verify(c *gin.Context)
	Chat(c *gin.Context)
}

// Sender delivers replies to WhatsApp Cloud API users.
type Sender interface {
	Configured() bool
	SendText(ctx context.Context, to, text string) (string, error)
	MarkRead(ctx context.Context, messageID string) error
}

// Config configures the chat handler.
type Config struct {
	VerifyToken string
	Security    SecurityConfig
}

type handler struct {
	l           log.Logger
	uc          dispatcher.UseCase
	sender      Sender
	security    *SecurityValidator
	verifyToken string
	runAsync    func(func())
}

// New creates a new HTTP handler for inbound chat messages. sender may be nil
// when the Cloud API channel is not configured.
func New(l log.Logger, uc dispatcher.UseCase, sender Sender, cfg Config) Handler {
	return &handler{
		l:           l,
		uc:          uc,
		sender:      sender,
		security:    NewSecurityValidator(cfg.Security),
		verifyToken: cfg.VerifyToken,
		runAsync:    func(f func()) { go f() },
	}
}
