package model

import (
	"time"

	"github.com/google/uuid"
)

// Channel identifies the transport a message arrived on.
type Channel string

const (
	ChannelWebhook       Channel = "webhook"
	ChannelWhatsAppCloud Channel = "whatsapp_cloud"
	ChannelWhatsmeow     Channel = "whatsmeow"
	ChannelTelegram      Channel = "telegram"
	ChannelAPI           Channel = "api"
)

// InboundMessage is one user message. It lives for a single dispatch and is
// never persisted.
type InboundMessage struct {
	ID         uuid.UUID
	Text       string
	From       string // sender address, may be empty
	Channel    Channel
	ReceivedAt time.Time
}

// NewInboundMessage stamps a message with a fresh id and the arrival time.
func NewInboundMessage(text, from string, channel Channel) InboundMessage {
	return InboundMessage{
		ID:         uuid.New(),
		Text:       text,
		From:       from,
		Channel:    channel,
		ReceivedAt: time.Now(),
	}
}
