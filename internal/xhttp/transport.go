package xhttp

import (
	"fmt"
	"net/http"

	"github.com/mihrab-app/mihrab/internal/version"
)

type mihrabTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*mihrabTransport)(nil)

func (t *mihrabTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "mihrab/"+version.Get())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper that stamps outgoing requests
// with the client identity.
func NewTransport() http.RoundTripper {
	return &mihrabTransport{base: http.DefaultTransport}
}
