// Package telegram delivers text to a chat via the Bot API sendMessage
// endpoint, splitting long texts into protocol-sized chunks.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	applog "monozvit/internal/log"
)

// DefaultBaseURL is the production Bot API host.
const DefaultBaseURL = "https://api.telegram.org"

// MaxMessageLength is the Bot API's hard per-message limit.
const MaxMessageLength = 4096

// DeliveryError reports a non-success response from the Bot API. Chunks sent
// before the failure stay sent; the delivery as a whole still fails.
type DeliveryError struct {
	Status int
	Body   string
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("telegram: sendMessage failed with status %d: %s", e.Status, e.Body)
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *applog.Logger
}

type Option func(*Client)

// WithBaseURL overrides the API host, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the transport, e.g. to set a timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(token string, logger *applog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger.WithComponent(applog.ComponentTelegram),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// SendMessage delivers text to chatID. Texts over MaxMessageLength are split
// on line boundaries and sent as separate sequential messages; the first
// failed request fails the whole delivery.
func (c *Client) SendMessage(ctx context.Context, chatID, text string) error {
	if utf8.RuneCountInString(text) <= MaxMessageLength {
		return c.send(ctx, chatID, text)
	}

	parts := Split(text, MaxMessageLength)
	c.logger.InfoContext(ctx, "message exceeds limit, splitting",
		applog.FieldLengthChars, utf8.RuneCountInString(text),
		applog.FieldParts, len(parts))
	for _, part := range parts {
		if err := c.send(ctx, chatID, part); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) send(ctx context.Context, chatID, text string) error {
	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("telegram: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("telegram: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram: send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &DeliveryError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	c.logger.DebugContext(ctx, "message delivered",
		applog.FieldChatID, chatID,
		applog.FieldLengthChars, utf8.RuneCountInString(text))
	return nil
}
