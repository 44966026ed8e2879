package models

type GenerateTextResponse struct {
	Result      string `json:"result"`
	CreditsLeft int    `json:"credits_left"`
}

type GenerateImageResponse struct {
	ImageURL    string `json:"image_url"`
	Prompt      string `json:"prompt"`
	CreditsLeft int    `json:"credits_left"`
}

// MarketingContent bundles the three artefacts produced for a social
// platform post.
type MarketingContent struct {
	Text    string `json:"text"`
	Image   string `json:"image"`
	Caption string `json:"caption"`
}

type GenerateMarketingResponse struct {
	Content     MarketingContent `json:"content"`
	CreditsLeft int              `json:"credits_left"`
}

type CalendarEntry struct {
	Day   int    `json:"day"`
	Topic string `json:"topic"`
	Idea  string `json:"idea"`
}

type GenerateCalendarResponse struct {
	Calendar    []CalendarEntry `json:"calendar"`
	CreditsLeft int             `json:"credits_left"`
}
