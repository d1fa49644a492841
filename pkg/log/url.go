package log

import (
	"log/slog"
	"net/url"
)

// ScrubbedURL returns an attribute holding rawURL without its credentials
// and query string. Unset URLs are logged as empty values.
func ScrubbedURL(name string, rawURL string) slog.Attr {
	if rawURL == "" {
		return slog.String(name, "")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return slog.String(name, "<invalid url>")
	}

	scrubbed := *u

	if scrubbed.User != nil {
		scrubbed.User = url.UserPassword("xxx", "xxx")
	}

	if scrubbed.RawQuery != "" {
		scrubbed.RawQuery = "xxx"
	}

	return slog.String(name, scrubbed.String())
}
