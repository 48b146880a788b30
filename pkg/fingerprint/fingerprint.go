// Package fingerprint provides header-based CDN provider detection
package fingerprint

import (
	"net/http"
	"strings"
)

// Provider describes the response-header signature of a CDN/proxy provider
type Provider struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// SentinelHeaders are header names whose mere presence indicates the provider
	SentinelHeaders []string `json:"sentinel_headers"`

	// ServerValues are values the Server header may equal (case-insensitive)
	ServerValues []string `json:"server_values"`
}

// Cloudflare returns the Cloudflare provider signature.
// Cloudflare stamps every proxied response with a cf-ray header and
// usually sets "Server: cloudflare".
func Cloudflare() *Provider {
	return &Provider{
		ID:              "cloudflare",
		Name:            "Cloudflare",
		SentinelHeaders: []string{"cf-ray"},
		ServerValues:    []string{"cloudflare"},
	}
}

// Match reports whether the response headers carry this provider's signature.
// Header names are matched case-insensitively; Server values are compared
// case-folded but must be exactly equal (no substring matching).
func (p *Provider) Match(headers http.Header) bool {
	if p == nil || headers == nil {
		return false
	}

	for _, name := range p.SentinelHeaders {
		// Presence alone is the signal; the value is irrelevant
		if len(headers.Values(name)) > 0 {
			return true
		}
	}

	server := headers.Get("Server")
	if server == "" {
		return false
	}
	for _, v := range p.ServerValues {
		if strings.EqualFold(server, v) {
			return true
		}
	}

	return false
}
