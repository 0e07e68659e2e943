package whatsmeow

import "time"

const (
	defaultStorePath = "whatsmeow.db"
	qrCodeSize       = 256
	replyTimeout     = 30 * time.Second
	qrEventCode      = "code"
)
