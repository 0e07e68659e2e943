package telegram

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pneuma-faq-bot/internal/metrics"
	"pneuma-faq-bot/internal/model"
)

// Run polls for updates until ctx is cancelled. Messages are answered one at
// a time in arrival order.
func (c *Channel) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = c.pollingTimeout

	updates := c.bot.GetUpdatesChan(u)
	c.l.Info(ctx, "telegram: polling for updates")

	for {
		select {
		case <-ctx.Done():
			c.bot.StopReceivingUpdates()
			c.l.Info(ctx, "telegram: polling stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			c.handleUpdate(ctx, update)
		}
	}
}

func (c *Channel) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	var out string
	switch strings.ToLower(text) {
	case commandStart:
		out = welcomeText
	case commandHelp:
		out = helpText
	default:
		metrics.InboundMessages.WithLabelValues(string(model.ChannelTelegram)).Inc()
		reply := c.uc.Handle(ctx, model.NewInboundMessage(text, senderOf(msg), model.ChannelTelegram))
		out = reply.Text
	}

	if _, err := c.bot.Send(tgbotapi.NewMessage(msg.Chat.ID, out)); err != nil {
		c.l.Errorf(ctx, "telegram: send reply to chat %d: %v", msg.Chat.ID, err)
	}
}

// senderOf prefers the username and falls back to the numeric user id.
func senderOf(msg *tgbotapi.Message) string {
	if msg.From == nil {
		return ""
	}
	if msg.From.UserName != "" {
		return msg.From.UserName
	}
	return strconv.FormatInt(msg.From.ID, 10)
}
