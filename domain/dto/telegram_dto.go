package dto

// TelegramSendMessageRequest is the form body of the Bot API sendMessage call
type TelegramSendMessageRequest struct {
	ChatID                string `url:"chat_id"`
	Text                  string `url:"text"`
	ParseMode             string `url:"parse_mode,omitempty"`
	DisableWebPagePreview bool   `url:"disable_web_page_preview,omitempty"`
}

// TelegramResponse is the envelope returned by every Bot API method
type TelegramResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}
