package yahoo

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// logTransport logs every exchange with Yahoo. The query string is left out,
// it carries the session crumb.
type logTransport struct {
	base http.RoundTripper
}

// RoundTrip implements the http.RoundTripper interface.
func (t *logTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		log.Debug().Err(err).Str("method", req.Method).Str("host", req.URL.Host).Str("path", req.URL.Path).Msg("http request failed")
		return nil, err
	}
	log.Debug().Str("method", req.Method).Str("host", req.URL.Host).Str("path", req.URL.Path).Int("status", resp.StatusCode).Msg("http")
	return resp, nil
}
