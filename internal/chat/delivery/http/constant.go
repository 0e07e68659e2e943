package http

import "time"

const (
	defaultSender     = "unknown"
	defaultTestSender = "test_user"

	errNoMessageText   = "No message text found"
	errInvalidToken    = "Invalid verification token"
	errInvalidPayload  = "Invalid payload"
	errInvalidSig      = "invalid signature"
	errRateLimited     = "rate limit exceeded"
	errForbiddenSource = "forbidden"

	signatureHeader = "X-Hub-Signature-256"

	cloudReplyTimeout = 30 * time.Second
)
