package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"pneuma-faq-bot/internal/metrics"
	"pneuma-faq-bot/internal/model"
	"pneuma-faq-bot/pkg/log"
	"pneuma-faq-bot/pkg/response"
	"pneuma-faq-bot/pkg/whatsapp"
)

// Receive godoc
// @Summary     Receive a WhatsApp message
// @Description Accepts Twilio ({Body, From}, JSON or form), generic ({message:{text}, from}) and direct ({message, from}) payloads and replies synchronously. Meta WhatsApp Cloud notifications are acknowledged and answered through the Cloud API.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Success     200 {object} webhookResp
// @Failure     400 {object} webhookErrResp "No message text found"
// @Failure     401 {object} webhookErrResp "Invalid signature"
// @Failure     429 {object} webhookErrResp "Rate limit exceeded"
// @Router      /webhook [POST]
func (h *handler) Receive(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.Receive: %v", err)
		metrics.WebhookRejected.WithLabelValues("ip").Inc()
		c.JSON(http.StatusForbidden, webhookErrResp{Error: errForbiddenSource})
		return
	}

	body, req, err := h.readWebhookReq(c)
	if err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.Receive decode: %v", err)
		metrics.WebhookRejected.WithLabelValues("payload").Inc()
		c.JSON(http.StatusBadRequest, webhookErrResp{Error: errInvalidPayload})
		return
	}

	if req.Object != "" {
		h.receiveCloud(c, body)
		return
	}

	text, from := req.text()
	if strings.TrimSpace(text) == "" {
		metrics.WebhookRejected.WithLabelValues("empty").Inc()
		c.JSON(http.StatusBadRequest, webhookErrResp{Error: errNoMessageText})
		return
	}

	if err := h.security.CheckRateLimit(h.rateKey(c, from)); err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.Receive: %v", err)
		metrics.WebhookRejected.WithLabelValues("rate_limit").Inc()
		c.JSON(http.StatusTooManyRequests, webhookErrResp{Error: errRateLimited})
		return
	}

	metrics.InboundMessages.WithLabelValues(string(model.ChannelWebhook)).Inc()
	reply := h.uc.Handle(ctx, model.NewInboundMessage(text, from, model.ChannelWebhook))
	h.l.Infof(ctx, "chat.delivery.http.Receive from=%s intent=%s action=%s", from, reply.IntentID, reply.Action)

	c.JSON(http.StatusOK, h.newWebhookResp(reply, from))
}

// receiveCloud acknowledges a Meta notification and answers its text
// messages in the background.
func (h *handler) receiveCloud(c *gin.Context, body []byte) {
	ctx := c.Request.Context()

	if err := h.security.ValidateMetaSignature(body, c.GetHeader(signatureHeader)); err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.receiveCloud: %v", err)
		metrics.WebhookRejected.WithLabelValues("signature").Inc()
		c.JSON(http.StatusUnauthorized, webhookErrResp{Error: errInvalidSig})
		return
	}

	var payload whatsapp.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.receiveCloud decode: %v", err)
		c.JSON(http.StatusBadRequest, webhookErrResp{Error: errInvalidPayload})
		return
	}

	// Statuses and other notifications carry no text; Meta still expects 200.
	for _, msg := range payload.TextMessages() {
		if err := h.security.CheckRateLimit(msg.From); err != nil {
			h.l.Warnf(ctx, "chat.delivery.http.receiveCloud: %v", err)
			metrics.WebhookRejected.WithLabelValues("rate_limit").Inc()
			continue
		}
		metrics.InboundMessages.WithLabelValues(string(model.ChannelWhatsAppCloud)).Inc()

		inbound := model.NewInboundMessage(msg.Text, msg.From, model.ChannelWhatsAppCloud)
		wamid := msg.ID
		h.runAsync(func() { h.replyCloud(inbound, wamid) })
	}

	response.OK(c, gin.H{"status": "accepted"})
}

// replyCloud runs detached from the request, which is already answered.
// wamid is the provider message id, marked read before the reply is sent.
func (h *handler) replyCloud(msg model.InboundMessage, wamid string) {
	ctx, cancel := context.WithTimeout(context.Background(), cloudReplyTimeout)
	defer cancel()
	ctx = log.WithTraceID(ctx, msg.ID.String())

	reply := h.uc.Handle(ctx, msg)

	if h.sender == nil || !h.sender.Configured() {
		h.l.Warnf(ctx, "chat.delivery.http.replyCloud: WhatsApp Cloud API not configured, dropping reply to %s", msg.From)
		return
	}
	if wamid != "" {
		if err := h.sender.MarkRead(ctx, wamid); err != nil {
			h.l.Warnf(ctx, "chat.delivery.http.replyCloud MarkRead: %v", err)
		}
	}
	if _, err := h.sender.SendText(ctx, msg.From, reply.Text); err != nil {
		h.l.Errorf(ctx, "chat.delivery.http.replyCloud SendText: %v", err)
	}
}

// Verify godoc
// @Summary     Verify the webhook
// @Description Echoes hub.challenge when hub.verify_token matches the configured token.
// @Tags        Webhook
// @Produce     plain
// @Param       hub.mode         query string false "subscribe"
// @Param       hub.verify_token query string true  "Verify token"
// @Param       hub.challenge    query string true  "Challenge to echo"
// @Success     200 {string} string "challenge"
// @Failure     403 {string} string "Invalid verification token"
// @Router      /webhook [GET]
func (h *handler) Verify(c *gin.Context) {
	token := c.Query("hub.verify_token")
	if token == "" || token != h.verifyToken {
		metrics.WebhookRejected.WithLabelValues("verify_token").Inc()
		c.String(http.StatusForbidden, errInvalidToken)
		return
	}
	c.String(http.StatusOK, c.Query("hub.challenge"))
}

// Chat godoc
// @Summary     Ask the bot
// @Description Routes one message through the intent dispatcher and returns the reply with routing details.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		response.Error(c, errors.New(errNoMessageText), nil)
		return
	}

	if err := h.security.CheckRateLimit(h.rateKey(c, req.From)); err != nil {
		h.l.Warnf(ctx, "chat.delivery.http.Chat: %v", err)
		response.TooManyRequests(c)
		return
	}

	metrics.InboundMessages.WithLabelValues(string(model.ChannelAPI)).Inc()
	reply := h.uc.Handle(ctx, model.NewInboundMessage(req.Message, req.From, model.ChannelAPI))

	response.OK(c, h.newChatResp(reply, time.Now()))
}

// rateKey limits by sender, or by client IP when the sender is anonymous.
func (h *handler) rateKey(c *gin.Context, from string) string {
	if from == "" || from == defaultSender || from == defaultTestSender {
		return "ip:" + extractIP(c.Request)
	}
	return from
}
