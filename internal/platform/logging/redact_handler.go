package logging

import (
	"log/slog"

	"github.com/m-mizutani/masq"
)

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. Nothing in the tracker domain is sensitive, but log
// fields named like credentials are redacted so future additions cannot
// leak through debug logging.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	return masq.New(
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),
		masq.WithFieldPrefix("api_key"),
	)
}
