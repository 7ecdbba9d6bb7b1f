package configuration

import (
	"encoding/json"
	"os"
	"strings"
)

// YouTubeCredentials holds the OAuth client and refresh token used for the hosting API
type YouTubeCredentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// YouTubeCredentials resolves the OAuth credentials, filling a missing refresh
// token from a token.json produced by an earlier consent flow.
func (c *Config) YouTubeCredentials(tokenFile string) YouTubeCredentials {
	creds := YouTubeCredentials{
		ClientID:     placeholder(c.YouTube.ClientID),
		ClientSecret: placeholder(c.YouTube.ClientSecret),
		RefreshToken: placeholder(c.YouTube.RefreshToken),
	}
	if creds.RefreshToken == "" && tokenFile != "" {
		if data, err := os.ReadFile(tokenFile); err == nil {
			var tf struct {
				RefreshToken string `json:"refresh_token"`
			}
			if json.Unmarshal(data, &tf) == nil {
				creds.RefreshToken = tf.RefreshToken
			}
		}
	}
	return creds
}

// placeholder blanks out template values such as YOUR_CLIENT_ID or your_refresh_token_here
func placeholder(v string) string {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(strings.ToUpper(v), "YOUR_") {
		return ""
	}
	return v
}
