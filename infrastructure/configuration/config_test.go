package configuration

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("config-missing", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, int64(10), cfg.YouTube.Lookback)
	assert.Equal(t, 8, cfg.Publish.MinTags)
	assert.Equal(t, 30, cfg.Publish.MaxTags)
	assert.Equal(t, 5, cfg.Publish.TitleMinLength)
	assert.Equal(t, 70, cfg.Publish.TitleMaxLength)
	assert.Contains(t, cfg.Publish.GenericTitleWords, "untitled")
	assert.Contains(t, cfg.Publish.GenericTitleWords, "upload")
	assert.NotEmpty(t, cfg.Publish.FillerTags)
	assert.Equal(t, "https://text.pollinations.ai", cfg.TextGen.BaseURL)
	assert.Equal(t, 30, cfg.HTTP.TimeoutSeconds)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config-test.json", `{
		"youtube": {"clientId": "file-client", "refreshToken": "file-refresh", "lookback": 5},
		"publish": {"categoryId": "27", "tags": ["#a #b #c"], "minTags": 3, "maxTags": 10},
		"telegram": {"chatId": "12345"}
	}`)
	t.Setenv("YOUTUBE_CLIENT_ID", "env-client")
	t.Setenv("TELEGRAM_BOT_TOKEN", "bot-token")

	cfg, err := Load("config-test", dir)
	require.NoError(t, err)

	assert.Equal(t, "env-client", cfg.YouTube.ClientID)
	assert.Equal(t, "file-refresh", cfg.YouTube.RefreshToken)
	assert.Equal(t, int64(5), cfg.YouTube.Lookback)
	assert.Equal(t, "27", cfg.Publish.CategoryID)
	assert.Equal(t, []string{"#a #b #c"}, cfg.Publish.Tags)
	assert.Equal(t, 3, cfg.Publish.MinTags)
	assert.Equal(t, 10, cfg.Publish.MaxTags)
	assert.True(t, cfg.TelegramEnabled())
	require.NoError(t, cfg.Validate())
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config-bad.json", `{"youtube": `)

	_, err := Load("config-bad", dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			YouTube: YouTube{ClientID: "id", RefreshToken: "rt", Lookback: 10},
			Publish: Publish{MinTags: 8, MaxTags: 30, TitleMaxLength: 70},
			HTTP:    HTTP{TimeoutSeconds: 30},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing client id", mutate: func(c *Config) { c.YouTube.ClientID = "" }, wantErr: ErrMissingCredential},
		{name: "placeholder client id", mutate: func(c *Config) { c.YouTube.ClientID = "YOUR_CLIENT_ID" }, wantErr: ErrMissingCredential},
		{name: "missing refresh token", mutate: func(c *Config) { c.YouTube.RefreshToken = "" }, wantErr: ErrMissingCredential},
		{name: "zero lookback", mutate: func(c *Config) { c.YouTube.Lookback = 0 }, wantErr: ErrInvalidConfig},
		{name: "min above max", mutate: func(c *Config) { c.Publish.MinTags = 40 }, wantErr: ErrInvalidConfig},
		{name: "zero timeout", mutate: func(c *Config) { c.HTTP.TimeoutSeconds = 0 }, wantErr: ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTelegramEnabled(t *testing.T) {
	c := &Config{Telegram: Telegram{BotToken: "t"}}
	assert.False(t, c.TelegramEnabled())
	c.Telegram.ChatID = "1"
	assert.True(t, c.TelegramEnabled())
}

func TestYouTubeCredentials_TokenFileFallback(t *testing.T) {
	dir := t.TempDir()
	tokenFile := writeFile(t, dir, "token.json", `{"access_token":"at","refresh_token":"from-file"}`)

	c := &Config{YouTube: YouTube{ClientID: "id", ClientSecret: "secret", RefreshToken: "your_refresh_token_here"}}
	creds := c.YouTubeCredentials(tokenFile)

	assert.Equal(t, "id", creds.ClientID)
	assert.Equal(t, "secret", creds.ClientSecret)
	assert.Equal(t, "from-file", creds.RefreshToken)

	c.YouTube.RefreshToken = "configured"
	assert.Equal(t, "configured", c.YouTubeCredentials(tokenFile).RefreshToken)
}

func TestLoad_RefreshTokenFromTokenFile(t *testing.T) {
	dir := t.TempDir()
	tokenFile := writeFile(t, dir, "token.json", `{"refresh_token":"from-file"}`)
	writeFile(t, dir, "config-token.json", `{"youtube": {"clientId": "id", "tokenFile": "`+filepath.ToSlash(tokenFile)+`"}}`)

	cfg, err := Load("config-token", dir)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.YouTube.RefreshToken)
	require.NoError(t, cfg.Validate())
}

func TestLoadEnvFromFile(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, ".env", "# comment\n\nAUTOPUB_TEST_A=\"one\"\nexport AUTOPUB_TEST_B=two\nAUTOPUB_TEST_C=keep\nnot a pair\n")
	t.Setenv("AUTOPUB_TEST_C", "existing")
	t.Cleanup(func() {
		os.Unsetenv("AUTOPUB_TEST_A")
		os.Unsetenv("AUTOPUB_TEST_B")
	})

	n := LoadEnvFromFile(filepath.Join(dir, "missing.env"), p)

	assert.Equal(t, 2, n)
	assert.Equal(t, "one", os.Getenv("AUTOPUB_TEST_A"))
	assert.Equal(t, "two", os.Getenv("AUTOPUB_TEST_B"))
	assert.Equal(t, "existing", os.Getenv("AUTOPUB_TEST_C"))
}
