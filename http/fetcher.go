// Package http provides an HTTP-based implementation of ponsdict.Fetcher.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jiaulislam/ponsdict"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements ponsdict.Fetcher at compile time.
var _ ponsdict.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves dictionary pages using plain HTTP GET requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	proxy     *url.URL
	transport http.RoundTripper
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithProxyURL routes requests through the given proxy.
// Without it, HTTP_PROXY/HTTPS_PROXY from the environment are honoured.
func WithProxyURL(u *url.URL) Option {
	return func(f *Fetcher) {
		f.proxy = u
	}
}

// WithTransport replaces the round tripper. Proxy settings are ignored
// when a custom transport is set.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) {
		f.transport = rt
	}
}

// ParseProxy parses a proxy URL as given on the command line.
// An empty string returns nil.
func ParseProxy(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, ponsdict.Errorf(ponsdict.EINVALID, "invalid proxy URL %q", raw)
	}
	return u, nil
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	transport := f.transport
	if transport == nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		if f.proxy != nil {
			t.Proxy = http.ProxyURL(f.proxy)
		} else {
			t.Proxy = http.ProxyFromEnvironment
		}
		transport = t
	}

	f.client = &http.Client{
		Timeout:   f.timeout,
		Transport: transport,
	}

	return f
}

// Fetch issues a GET request and returns the decoded body with its status.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*ponsdict.RawDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decode body of %s: %w", url, err)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}

	return &ponsdict.RawDocument{
		URL:        url,
		StatusCode: resp.StatusCode,
		Body:       string(data),
	}, nil
}
