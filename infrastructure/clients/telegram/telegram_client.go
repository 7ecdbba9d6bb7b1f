package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"yt-autopublish/domain/dto"

	"github.com/google/go-querystring/query"
)

// Config represents Telegram Bot API configuration
type Config struct {
	BaseURL  string
	BotToken string
	Timeout  time.Duration
}

// Client sends messages through the Telegram Bot API
type Client struct {
	baseURL    string
	botToken   string
	httpClient *http.Client
}

func NewTelegramClient(config *Config) *Client {
	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		botToken:   config.BotToken,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// SendMessage posts text to chatID. richFormatting enables Markdown (bold via *...*).
func (c *Client) SendMessage(ctx context.Context, chatID, text string, richFormatting bool) error {
	if c.botToken == "" || chatID == "" {
		return fmt.Errorf("telegram bot token and chat id are required")
	}
	msg := dto.TelegramSendMessageRequest{ChatID: chatID, Text: text}
	if richFormatting {
		msg.ParseMode = "Markdown"
	}
	form, err := query.Values(msg)
	if err != nil {
		return fmt.Errorf("encode telegram message: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, url.PathEscape(c.botToken))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// the request URL embeds the bot token; keep it out of logs
		return fmt.Errorf("telegram request failed: %w", redact(err, c.botToken))
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 16<<10))
	var out dto.TelegramResponse
	if jsonErr := json.Unmarshal(body, &out); jsonErr != nil && resp.StatusCode == http.StatusOK {
		return fmt.Errorf("decode telegram response: %w", jsonErr)
	}
	if resp.StatusCode != http.StatusOK || !out.OK {
		return fmt.Errorf("telegram sendMessage failed: status %d: %s", resp.StatusCode, out.Description)
	}
	return nil
}

type redactedError struct{ msg string }

func (e redactedError) Error() string { return e.msg }

func redact(err error, secret string) error {
	if secret == "" || !strings.Contains(err.Error(), secret) {
		return err
	}
	return redactedError{msg: strings.ReplaceAll(err.Error(), secret, "***")}
}
