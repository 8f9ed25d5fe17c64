// Package robots implements helpcenter.URLPolicy from robots.txt files.
package robots

import (
	"context"
	"net/http"
	"net/url"

	"github.com/AlexJubs/helpcenter"
	"github.com/temoto/robotstxt"
)

// DefaultUserAgent is the agent tested against robots.txt groups.
const DefaultUserAgent = "helpcenter"

// Ensure Policy implements helpcenter.URLPolicy at compile time.
var _ helpcenter.URLPolicy = (*Policy)(nil)

// Policy checks URLs against the robots.txt of their host. Each host's
// robots.txt is fetched once. Policy is not safe for concurrent use.
type Policy struct {
	client    *http.Client
	userAgent string
	hosts     map[string]*robotstxt.RobotsData
}

// Option configures a Policy.
type Option func(*Policy)

// WithClient sets the HTTP client used to fetch robots.txt.
func WithClient(c *http.Client) Option {
	return func(p *Policy) {
		p.client = c
	}
}

// WithUserAgent sets the agent name matched against robots.txt groups.
func WithUserAgent(agent string) Option {
	return func(p *Policy) {
		if agent != "" {
			p.userAgent = agent
		}
	}
}

// NewPolicy creates a Policy.
func NewPolicy(opts ...Option) *Policy {
	p := &Policy{
		client:    http.DefaultClient,
		userAgent: DefaultUserAgent,
		hosts:     make(map[string]*robotstxt.RobotsData),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Allowed reports whether the user agent may fetch rawURL. A robots.txt
// answering 4xx allows everything and one answering 5xx allows nothing.
// An unreachable robots.txt allows everything.
func (p *Policy) Allowed(ctx context.Context, rawURL string) (bool, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false, helpcenter.Errorf(helpcenter.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Host == "" {
		return false, helpcenter.Errorf(helpcenter.EINVALID, "URL %q has no host", rawURL)
	}

	data, err := p.robots(ctx, u)
	if err != nil {
		return false, err
	}
	if data == nil {
		return true, nil
	}
	return data.TestAgent(u.RequestURI(), p.userAgent), nil
}

// robots returns the cached robots.txt for the URL's host, fetching it on
// first use. A nil result means the file could not be retrieved.
func (p *Policy) robots(ctx context.Context, u *url.URL) (*robotstxt.RobotsData, error) {
	key := u.Scheme + "://" + u.Host
	if data, ok := p.hosts[key]; ok {
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, key+"/robots.txt", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		p.hosts[key] = nil
		return nil, nil
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		data = nil
	}
	p.hosts[key] = data
	return data, nil
}
