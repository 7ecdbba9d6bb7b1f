package dto

// TextGenerationQuery is encoded into the query string of a text generation request.
// The prompt itself travels in the URL path.
type TextGenerationQuery struct {
	Seed    int    `url:"seed"`
	Model   string `url:"model,omitempty"`
	Private bool   `url:"private,omitempty"`
}
