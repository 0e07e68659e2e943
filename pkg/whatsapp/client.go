package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	DefaultAPIURL    = "https://graph.facebook.com/v21.0"
	ObjectBusiness   = "whatsapp_business_account"
	messagingProduct = "whatsapp"
)

// ErrNotConfigured is returned when the client has no token or phone number id.
var ErrNotConfigured = errors.New("whatsapp: access token and phone number id are required")

// Client is the WhatsApp Cloud API client.
type Client struct {
	token         string
	phoneNumberID string
	apiURL        string
	httpClient    *http.Client
}

// NewClient creates a client sending from phoneNumberID.
func NewClient(token, phoneNumberID string) *Client {
	return &Client{
		token:         token,
		phoneNumberID: phoneNumberID,
		apiURL:        DefaultAPIURL,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetAPIURL overrides the default Graph API URL for testing purposes.
func (c *Client) SetAPIURL(url string) {
	if url != "" {
		c.apiURL = url
	}
}

// Configured reports whether the client can send.
func (c *Client) Configured() bool {
	return c != nil && c.token != "" && c.phoneNumberID != ""
}

// SendText sends a plain text message and returns the WhatsApp message id.
func (c *Client) SendText(ctx context.Context, to, text string) (string, error) {
	var out SendMessageResponse
	err := c.post(ctx, SendMessageRequest{
		MessagingProduct: messagingProduct,
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text:             &TextBody{Body: text},
	}, &out)
	if err != nil {
		return "", fmt.Errorf("failed to send message: %w", err)
	}
	if len(out.Messages) == 0 {
		return "", nil
	}
	return out.Messages[0].ID, nil
}

// MarkRead marks an inbound message as read.
func (c *Client) MarkRead(ctx context.Context, messageID string) error {
	if err := c.post(ctx, markReadRequest{
		MessagingProduct: messagingProduct,
		Status:           "read",
		MessageID:        messageID,
	}, nil); err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}
	return nil
}

func (c *Client) post(ctx context.Context, payload any, out any) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.apiURL, c.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		var apiErr APIErrorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("whatsapp API error %d (code %d): %s", resp.StatusCode, apiErr.Error.Code, apiErr.Error.Message)
		}
		return fmt.Errorf("whatsapp API error %d: %s", resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// TextMessages flattens the text messages of a webhook payload. Status
// updates and non-text messages are skipped.
func (p WebhookPayload) TextMessages() []InboundText {
	var out []InboundText
	for _, e := range p.Entry {
		for _, ch := range e.Changes {
			names := make(map[string]string, len(ch.Value.Contacts))
			for _, ct := range ch.Value.Contacts {
				names[ct.WaID] = ct.Profile.Name
			}
			for _, m := range ch.Value.Messages {
				if m.Type != "text" || m.Text == nil || m.Text.Body == "" {
					continue
				}
				out = append(out, InboundText{
					ID:            m.ID,
					From:          m.From,
					Name:          names[m.From],
					Text:          m.Text.Body,
					PhoneNumberID: ch.Value.Metadata.PhoneNumberID,
				})
			}
		}
	}
	return out
}
