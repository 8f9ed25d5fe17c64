// Package crawl walks a help center from its root page down to article
// content and drives the extraction run.
package crawl

import (
	"context"
	"strings"

	"github.com/AlexJubs/helpcenter"
)

// Crawler fetches help-center pages and extracts their links and content.
type Crawler struct {
	Fetcher helpcenter.Fetcher
	Links   helpcenter.LinkExtractor
	Content helpcenter.ContentExtractor

	// BaseURL is prepended to relative page and article links.
	BaseURL string

	// Policy, if set, is consulted before every fetch.
	Policy helpcenter.URLPolicy

	// Filter, if set, drops articles whose link was already discovered.
	Filter helpcenter.LinkFilter
}

// DiscoverPages fetches the root page and returns its categories.
func (c *Crawler) DiscoverPages(ctx context.Context, rootURL string) ([]*helpcenter.Page, error) {
	html, err := c.fetch(ctx, rootURL)
	if err != nil {
		return nil, err
	}
	return c.Links.ExtractPages(html)
}

// DiscoverArticles fetches a category page, appends its articles to
// page.Articles and returns the newly discovered articles.
func (c *Crawler) DiscoverArticles(ctx context.Context, page *helpcenter.Page) ([]*helpcenter.Article, error) {
	html, err := c.fetch(ctx, c.URL(page.Link))
	if err != nil {
		return nil, err
	}

	articles, err := c.Links.ExtractArticles(html)
	if err != nil {
		return nil, err
	}

	if c.Filter != nil {
		kept := articles[:0]
		for _, a := range articles {
			if !c.Filter.Seen(a.Link) {
				kept = append(kept, a)
			}
		}
		articles = kept
	}

	page.Articles = append(page.Articles, articles...)
	return articles, nil
}

// FetchRawContent fetches an article page and returns its content region
// as indented HTML. Returns ENOTFOUND if the page has no content region.
func (c *Crawler) FetchRawContent(ctx context.Context, articleLink string) (string, error) {
	html, err := c.fetch(ctx, c.URL(articleLink))
	if err != nil {
		return "", err
	}
	return c.Content.ExtractRegion(html)
}

// URL resolves a link against BaseURL. Absolute links are returned as is.
func (c *Crawler) URL(link string) string {
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	base := strings.TrimSuffix(c.BaseURL, "/")
	if link != "" && !strings.HasPrefix(link, "/") {
		link = "/" + link
	}
	return base + link
}

func (c *Crawler) fetch(ctx context.Context, url string) (string, error) {
	if c.Policy != nil {
		allowed, err := c.Policy.Allowed(ctx, url)
		if err != nil {
			return "", err
		}
		if !allowed {
			return "", helpcenter.Errorf(helpcenter.EFORBIDDEN, "%s disallowed by robots.txt", url)
		}
	}
	return c.Fetcher.Fetch(ctx, url)
}
