package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	var path, chatID, text, parseMode string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		assert.NoError(t, r.ParseForm())
		chatID = r.PostForm.Get("chat_id")
		text = r.PostForm.Get("text")
		parseMode = r.PostForm.Get("parse_mode")
		_, _ = w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	defer srv.Close()

	c := NewTelegramClient(&Config{BaseURL: srv.URL, BotToken: "123:abc", Timeout: time.Second})
	err := c.SendMessage(context.Background(), "-100", "*Lucas Hart*\nhello", true)
	require.NoError(t, err)

	assert.Equal(t, "/bot123:abc/sendMessage", path)
	assert.Equal(t, "-100", chatID)
	assert.Equal(t, "*Lucas Hart*\nhello", text)
	assert.Equal(t, "Markdown", parseMode)
}

func TestSendMessage_PlainText(t *testing.T) {
	var parseMode string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		parseMode = r.PostForm.Get("parse_mode")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewTelegramClient(&Config{BaseURL: srv.URL, BotToken: "t", Timeout: time.Second})
	require.NoError(t, c.SendMessage(context.Background(), "1", "hi", false))
	assert.Empty(t, parseMode)
}

func TestSendMessage_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	c := NewTelegramClient(&Config{BaseURL: srv.URL, BotToken: "t", Timeout: time.Second})
	err := c.SendMessage(context.Background(), "1", "hi", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestSendMessage_MissingCredentials(t *testing.T) {
	c := NewTelegramClient(&Config{BaseURL: "http://unused", Timeout: time.Second})
	assert.Error(t, c.SendMessage(context.Background(), "1", "hi", true))
}

func TestSendMessage_TransportErrorHidesToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewTelegramClient(&Config{BaseURL: srv.URL, BotToken: "secret-token", Timeout: time.Second})
	err := c.SendMessage(context.Background(), "1", "hi", true)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-token")
}
