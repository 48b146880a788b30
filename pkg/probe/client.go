// Package probe performs single-domain HTTPS header probes
package probe

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/proxy"

	"github.com/loglnx/ProxyIP/pkg/core"
)

// NewClient builds the shared HTTP client used by all probes.
// Certificate validation is disabled on purpose: the scan measures
// infrastructure fingerprints, and many probed hosts present invalid
// certificates.
func NewClient(config *core.Config) (*http.Client, error) {
	if config == nil {
		return nil, core.ErrInvalidConfig
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: config.ConnectTimeout,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: true,
		},
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: config.Workers,
		IdleConnTimeout:     30 * time.Second,
	}

	if config.ProxyURL != "" {
		if err := configureProxy(transport, config.ProxyURL); err != nil {
			return nil, err
		}
	}

	return &http.Client{
		Timeout:   config.Timeout,
		Transport: transport,
		// Redirects are followed (default policy); classification applies
		// to the headers of the final response.
	}, nil
}

// configureProxy routes the transport through an HTTP or SOCKS5 proxy
func configureProxy(transport *http.Transport, proxyURL string) error {
	u, err := url.Parse(proxyURL)
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrInvalidProxy, err)
	}

	switch u.Scheme {
	case "http", "https":
		transport.Proxy = http.ProxyURL(u)
	case "socks5", "socks5h":
		var auth *proxy.Auth
		if u.User != nil {
			password, _ := u.User.Password()
			auth = &proxy.Auth{
				User:     u.User.Username(),
				Password: password,
			}
		}

		dialer, err := proxy.SOCKS5("tcp", u.Host, auth, proxy.Direct)
		if err != nil {
			return fmt.Errorf("failed to create SOCKS5 dialer: %w", err)
		}
		transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			return dialer.Dial(network, addr)
		}
		transport.Proxy = nil
	default:
		return fmt.Errorf("%w: unsupported scheme %q", core.ErrInvalidProxy, u.Scheme)
	}

	return nil
}
