package whatsmeow

import (
	"context"
	"fmt"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	_ "modernc.org/sqlite"

	"pneuma-faq-bot/internal/dispatcher"
	"pneuma-faq-bot/pkg/log"
)

// Config configures the linked-device channel.
type Config struct {
	StorePath string
	QRPath    string
}

// sender is the part of *whatsmeow.Client used to reply.
type sender interface {
	SendMessage(ctx context.Context, to types.JID, message *waE2E.Message, extra ...whatsmeow.SendRequestExtra) (whatsmeow.SendResponse, error)
}

// Channel answers WhatsApp messages received by a linked device.
type Channel struct {
	l      log.Logger
	uc     dispatcher.UseCase
	client *whatsmeow.Client
	sender sender
	qrPath string
	// runAsync runs per-message work off the event loop.
	runAsync func(func())
}

// New opens the device store and prepares a client. Call Start to connect.
func New(ctx context.Context, l log.Logger, uc dispatcher.UseCase, cfg Config) (*Channel, error) {
	if cfg.StorePath == "" {
		cfg.StorePath = defaultStorePath
	}

	container, err := sqlstore.New(ctx, "sqlite", "file:"+cfg.StorePath+"?_pragma=foreign_keys(1)", newLogAdapter(l, "Database"))
	if err != nil {
		return nil, fmt.Errorf("whatsmeow: open store: %w", err)
	}

	device, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("whatsmeow: get device: %w", err)
	}

	client := whatsmeow.NewClient(device, newLogAdapter(l, "Client"))
	return &Channel{
		l:        l,
		uc:       uc,
		client:   client,
		sender:   client,
		qrPath:   cfg.QRPath,
		runAsync: func(f func()) { go f() },
	}, nil
}
