// Package network provides the HTTP client used for release checks.
package network

import (
	"net/http"
	"time"

	"github.com/framex-cli/framex/constant"
)

// UserAgent identifies framex to remote APIs.
var UserAgent = constant.Framex + "/" + constant.Version

// Client is the shared HTTP client. Every request carries UserAgent.
var Client = &http.Client{
	Timeout:   10 * time.Second,
	Transport: &userAgentTransport{base: newTransport()},
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 5 * time.Second
	return t
}

type userAgentTransport struct {
	base http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	return t.base.RoundTrip(req)
}
