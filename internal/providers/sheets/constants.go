package sheets

import "time"

const (
	providerName = "sheets"

	// DefaultCSVURL is the published matchup sheet.
	DefaultCSVURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vR-2usKJIhDgXcx0EiAO9zFitGNdhquuYheq85oh97KtR8P_X9LUinJhr9ryzsa1iPNjR8WwzLA1glo/pub?gid=596426925&single=true&output=csv"
	// DefaultUserAgent mimics a desktop browser; the publish endpoint rejects some bare clients.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Safari/537.36"

	defaultHTTPTimeout = 30 * time.Second
	errorBodyLimit     = 512
)
