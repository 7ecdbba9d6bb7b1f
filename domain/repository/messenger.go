package repository

import "context"

// IMessenger delivers operator notifications
type IMessenger interface {
	SendMessage(ctx context.Context, chatID, text string, richFormatting bool) error
}
