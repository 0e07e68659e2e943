package whatsmeow

import (
	"context"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types/events"
	"google.golang.org/protobuf/proto"

	"pneuma-faq-bot/internal/metrics"
	"pneuma-faq-bot/internal/model"
)

// Start registers the message handler and connects. A device without a
// session prints a pairing QR code and, when QRPath is set, writes it as PNG.
func (c *Channel) Start(ctx context.Context) error {
	c.client.AddEventHandler(c.handleEvent)

	if c.client.Store.ID != nil {
		if err := c.client.Connect(); err != nil {
			return fmt.Errorf("whatsmeow: connect: %w", err)
		}
		c.l.Infof(ctx, "whatsmeow: connected as %s", c.client.Store.ID.User)
		return nil
	}

	qrChan, err := c.client.GetQRChannel(ctx)
	if err != nil {
		return fmt.Errorf("whatsmeow: qr channel: %w", err)
	}
	if err := c.client.Connect(); err != nil {
		return fmt.Errorf("whatsmeow: connect: %w", err)
	}

	go c.watchQR(ctx, qrChan)
	return nil
}

// Stop disconnects the client.
func (c *Channel) Stop() {
	c.client.Disconnect()
}

func (c *Channel) watchQR(ctx context.Context, qrChan <-chan whatsmeow.QRChannelItem) {
	for evt := range qrChan {
		if evt.Event != qrEventCode {
			c.l.Infof(ctx, "whatsmeow: login event %s", evt.Event)
			continue
		}

		c.l.Infof(ctx, "whatsmeow: scan QR code to link device: %s", evt.Code)
		if c.qrPath == "" {
			continue
		}
		if err := qrcode.WriteFile(evt.Code, qrcode.Medium, qrCodeSize, c.qrPath); err != nil {
			c.l.Warnf(ctx, "whatsmeow: write QR png: %v", err)
			continue
		}
		c.l.Infof(ctx, "whatsmeow: QR code written to %s", c.qrPath)
	}
}

func (c *Channel) handleEvent(evt interface{}) {
	msg, ok := evt.(*events.Message)
	if !ok {
		return
	}

	from, text, ok := parseMessage(msg)
	if !ok {
		return
	}

	c.runAsync(func() {
		c.reply(context.Background(), msg, from, text)
	})
}

// reply runs the dispatcher and sends the answer to the originating chat.
func (c *Channel) reply(ctx context.Context, msg *events.Message, from, text string) {
	metrics.InboundMessages.WithLabelValues(string(model.ChannelWhatsmeow)).Inc()

	ctx, cancel := context.WithTimeout(ctx, replyTimeout)
	defer cancel()

	out := c.uc.Handle(ctx, model.NewInboundMessage(text, from, model.ChannelWhatsmeow))

	if _, err := c.sender.SendMessage(ctx, msg.Info.Chat, &waE2E.Message{
		Conversation: proto.String(out.Text),
	}); err != nil {
		c.l.Errorf(ctx, "whatsmeow: send reply to %s: %v", from, err)
	}
}

// parseMessage extracts the sender and text of a direct text message. Own
// messages, group chats and non-text messages are skipped.
func parseMessage(evt *events.Message) (from, text string, ok bool) {
	if evt == nil || evt.Message == nil {
		return "", "", false
	}
	if evt.Info.IsFromMe || evt.Info.IsGroup {
		return "", "", false
	}

	text = evt.Message.GetConversation()
	if text == "" {
		text = evt.Message.GetExtendedTextMessage().GetText()
	}
	if strings.TrimSpace(text) == "" {
		return "", "", false
	}

	return evt.Info.Sender.User, text, true
}
