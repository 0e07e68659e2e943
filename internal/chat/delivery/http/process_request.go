package http

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
)

// readWebhookReq reads the raw body and decodes it. Form-encoded Twilio
// callbacks are accepted alongside JSON.
func (h *handler) readWebhookReq(c *gin.Context) ([]byte, webhookReq, error) {
	var req webhookReq

	if strings.HasPrefix(c.ContentType(), "application/x-www-form-urlencoded") {
		req.Body = c.PostForm("Body")
		req.FromUpper = c.PostForm("From")
		return nil, req, nil
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, req, err
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return body, req, err
	}
	return body, req, nil
}

// processChatReq binds and validates the chat API body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
