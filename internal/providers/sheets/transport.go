package sheets

import (
	"net/http"
	"strings"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// resolveHTTPClient keeps every fetch bounded: an injected client without its
// own timeout is copied with the configured one.
func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	if client == nil {
		return &http.Client{Timeout: timeout}
	}
	if client.Timeout > 0 {
		return client
	}
	bounded := *client
	bounded.Timeout = timeout
	return &bounded
}

func resolveURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultCSVURL
	}
	return raw
}

func resolveUserAgent(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return DefaultUserAgent
	}
	return raw
}
