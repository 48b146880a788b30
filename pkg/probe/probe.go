package probe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/loglnx/ProxyIP/internal/version"
	"github.com/loglnx/ProxyIP/pkg/core"
	"github.com/loglnx/ProxyIP/pkg/fingerprint"
)

// Prober performs single-domain HTTPS header probes against a provider signature
type Prober struct {
	client    *http.Client
	provider  *fingerprint.Provider
	timeout   time.Duration
	userAgent string
}

// New creates a prober from the given configuration
func New(config *core.Config, provider *fingerprint.Provider) (*Prober, error) {
	if config == nil || provider == nil {
		return nil, core.ErrInvalidConfig
	}

	client, err := NewClient(config)
	if err != nil {
		return nil, err
	}

	return &Prober{
		client:    client,
		provider:  provider,
		timeout:   config.Timeout,
		userAgent: config.UserAgent,
	}, nil
}

// Probe issues a HEAD request to https://{domain} and classifies the response
// headers against the provider signature. It is a total function: every
// failure mode (DNS, dial, TLS, timeout, malformed response) is folded into a
// negative classification, and it returns within the configured timeout plus
// small overhead.
func (p *Prober) Probe(ctx context.Context, domain string) *core.ProbeResult {
	result := &core.ProbeResult{
		Domain: domain,
	}

	reqCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodHead, fmt.Sprintf("https://%s", domain), nil)
	if err != nil {
		result.Status = "error"
		result.Error = err.Error()
		return result
	}

	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	} else {
		req.Header.Set("User-Agent", fmt.Sprintf("cfscan/%s", version.Version))
	}

	startTime := time.Now()
	resp, err := p.client.Do(req)
	result.ResponseTime = time.Since(startTime).String()

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			result.Status = "timeout"
		} else {
			result.Status = "error"
			result.Error = err.Error()
		}
		return result
	}
	defer resp.Body.Close()

	result.HTTPCode = resp.StatusCode
	result.Server = resp.Header.Get("Server")

	if p.provider.Match(resp.Header) {
		result.Matched = true
		result.Status = "matched"
	} else {
		result.Status = "unmatched"
	}

	return result
}

// isTimeout reports whether the error chain contains a network timeout
func isTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	// http.Client wraps deadline errors with its own text
	return strings.Contains(err.Error(), "Client.Timeout exceeded")
}
