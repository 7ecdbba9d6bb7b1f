package configuration

import (
	"errors"
	"fmt"
	"os"
	"time"

	"yt-autopublish/infrastructure/logger"

	"github.com/spf13/viper"
)

var (
	// ErrMissingCredential means a required secret was not supplied
	ErrMissingCredential = errors.New("missing required credential")
	// ErrInvalidConfig means the configuration is present but unusable
	ErrInvalidConfig = errors.New("invalid configuration")
)

type Config struct {
	YouTube  YouTube  `mapstructure:"youtube"`
	TextGen  TextGen  `mapstructure:"textGen"`
	Telegram Telegram `mapstructure:"telegram"`
	Publish  Publish  `mapstructure:"publish"`
	Audit    Audit    `mapstructure:"audit"`
	Pubsub   Pubsub   `mapstructure:"pubsub"`
	HTTP     HTTP     `mapstructure:"http"`
}

type YouTube struct {
	ClientID     string `mapstructure:"clientId"`
	ClientSecret string `mapstructure:"clientSecret"`
	RefreshToken string `mapstructure:"refreshToken"`
	Lookback     int64  `mapstructure:"lookback"`
	// TokenFile supplies the refresh token when none is configured
	TokenFile string `mapstructure:"tokenFile"`
	// Endpoint overrides the API base URL (used against fakes)
	Endpoint string `mapstructure:"endpoint"`
}

type TextGen struct {
	BaseURL             string `mapstructure:"baseURL"`
	Model               string `mapstructure:"model"`
	TitlePrompt         string `mapstructure:"titlePrompt"`
	DescriptionPrompt   string `mapstructure:"descriptionPrompt"`
	FallbackDescription string `mapstructure:"fallbackDescription"`
}

type Telegram struct {
	BaseURL  string `mapstructure:"baseURL"`
	BotToken string `mapstructure:"botToken"`
	ChatID   string `mapstructure:"chatId"`
}

type Publish struct {
	CategoryID        string   `mapstructure:"categoryId"`
	CategoryLabel     string   `mapstructure:"categoryLabel"`
	ChannelName       string   `mapstructure:"channelName"`
	HashtagBlock      string   `mapstructure:"hashtagBlock"`
	Tags              []string `mapstructure:"tags"`
	FillerTags        []string `mapstructure:"fillerTags"`
	MinTags           int      `mapstructure:"minTags"`
	MaxTags           int      `mapstructure:"maxTags"`
	KeepExistingTags  bool     `mapstructure:"keepExistingTags"`
	TitleMinLength    int      `mapstructure:"titleMinLength"`
	TitleMaxLength    int      `mapstructure:"titleMaxLength"`
	GenericTitleWords []string `mapstructure:"genericTitleWords"`
}

// Audit enables the write-only publish trail when DSN is set
type Audit struct {
	DSN string `mapstructure:"dsn"`
}

type Pubsub struct {
	ProjectID string `mapstructure:"projectId"`
	Topic     string `mapstructure:"topic"`
}

type HTTP struct {
	TimeoutSeconds int `mapstructure:"timeoutSeconds"`
}

// Timeout is the bound applied to every outbound call
func (h HTTP) Timeout() time.Duration {
	return time.Duration(h.TimeoutSeconds) * time.Second
}

var envBindings = map[string]string{
	"youtube.clientId":     "YOUTUBE_CLIENT_ID",
	"youtube.clientSecret": "YOUTUBE_CLIENT_SECRET",
	"youtube.refreshToken": "YOUTUBE_REFRESH_TOKEN",
	"telegram.botToken":    "TELEGRAM_BOT_TOKEN",
	"telegram.chatId":      "TELEGRAM_CHAT_ID",
	"audit.dsn":            "AUDIT_DSN",
	"pubsub.projectId":     "PUBSUB_PROJECT_ID",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("youtube.lookback", 10)
	v.SetDefault("youtube.tokenFile", "token.json")
	v.SetDefault("textGen.baseURL", "https://text.pollinations.ai")
	v.SetDefault("textGen.titlePrompt", "Write one catchy YouTube title under 60 characters for a video currently named: {title}. Reply with the title only, no quotes.")
	v.SetDefault("textGen.descriptionPrompt", "Write a short, engaging YouTube description for a video titled: {title}. Reply with the description only.")
	v.SetDefault("textGen.fallbackDescription", "Thanks for watching! Like, share and subscribe for more videos like this.")
	v.SetDefault("telegram.baseURL", "https://api.telegram.org")
	v.SetDefault("publish.categoryId", "22")
	v.SetDefault("publish.categoryLabel", "People & Blogs")
	v.SetDefault("publish.hashtagBlock", "#shorts #viral #trending #motivation")
	v.SetDefault("publish.tags", []string{})
	v.SetDefault("publish.fillerTags", []string{"shorts", "viral", "trending", "motivation", "explore", "youtube", "daily", "inspiration", "life", "success"})
	v.SetDefault("publish.minTags", 8)
	v.SetDefault("publish.maxTags", 30)
	v.SetDefault("publish.titleMinLength", 5)
	v.SetDefault("publish.titleMaxLength", 70)
	v.SetDefault("publish.genericTitleWords", []string{"untitled", "upload", "new video", "my video"})
	v.SetDefault("pubsub.topic", "video-published")
	v.SetDefault("http.timeoutSeconds", 30)
}

// Load reads config.json (or config-<ENV>.json when name is empty and ENV is set)
// from the given paths, falling back to ".", "../" and "../../". Environment
// variables override file values.
func Load(name string, paths ...string) (*Config, error) {
	if name == "" {
		name = getConfig()
	}
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("json")
	if len(paths) == 0 {
		paths = []string{".", "../", "../../"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidConfig, name, err)
		}
		logger.GetLogger().WithField("config", name).Warn("Config file not found, using defaults and environment")
	} else {
		logger.GetLogger().WithField("config", v.ConfigFileUsed()).Info("Config set up successfully")
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if placeholder(c.YouTube.RefreshToken) == "" {
		c.YouTube.RefreshToken = c.YouTubeCredentials(c.YouTube.TokenFile).RefreshToken
	}
	return &c, nil
}

// Validate checks the config before any network call is made
func (c *Config) Validate() error {
	if placeholder(c.YouTube.ClientID) == "" {
		return fmt.Errorf("%w: youtube client id (YOUTUBE_CLIENT_ID)", ErrMissingCredential)
	}
	if placeholder(c.YouTube.RefreshToken) == "" {
		return fmt.Errorf("%w: youtube refresh token (YOUTUBE_REFRESH_TOKEN)", ErrMissingCredential)
	}
	if c.YouTube.Lookback <= 0 {
		return fmt.Errorf("%w: youtube.lookback must be positive, got %d", ErrInvalidConfig, c.YouTube.Lookback)
	}
	if c.Publish.MinTags < 0 || c.Publish.MaxTags <= 0 || c.Publish.MinTags > c.Publish.MaxTags {
		return fmt.Errorf("%w: tag bounds min=%d max=%d", ErrInvalidConfig, c.Publish.MinTags, c.Publish.MaxTags)
	}
	if c.Publish.TitleMaxLength < 4 {
		return fmt.Errorf("%w: publish.titleMaxLength must be at least 4", ErrInvalidConfig)
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: http.timeoutSeconds must be positive", ErrInvalidConfig)
	}
	return nil
}

// TelegramEnabled reports whether both messaging credentials are present
func (c *Config) TelegramEnabled() bool {
	return placeholder(c.Telegram.BotToken) != "" && placeholder(c.Telegram.ChatID) != ""
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}
