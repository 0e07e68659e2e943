package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pneuma-faq-bot/internal/dispatcher"
	"pneuma-faq-bot/pkg/log"
)

// Config configures the Telegram channel.
type Config struct {
	BotToken       string
	PollingTimeout int
}

// bot is the part of *tgbotapi.BotAPI the channel uses.
type bot interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	StopReceivingUpdates()
}

// Channel answers Telegram messages received by long polling.
type Channel struct {
	l              log.Logger
	uc             dispatcher.UseCase
	bot            bot
	pollingTimeout int
}

// New authenticates the bot token with the Telegram API.
func New(l log.Logger, uc dispatcher.UseCase, cfg Config) (*Channel, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("telegram: connect bot: %w", err)
	}
	return newChannel(l, uc, api, cfg.PollingTimeout), nil
}

func newChannel(l log.Logger, uc dispatcher.UseCase, b bot, pollingTimeout int) *Channel {
	if pollingTimeout <= 0 {
		pollingTimeout = defaultPollingTimeout
	}
	return &Channel{
		l:              l,
		uc:             uc,
		bot:            b,
		pollingTimeout: pollingTimeout,
	}
}
