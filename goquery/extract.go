// Package goquery implements the help-center extractors with CSS selectors
// built from a helpcenter.SiteLayout.
package goquery

import (
	"strings"

	"github.com/AlexJubs/helpcenter"
	"github.com/PuerkitoBio/goquery"
)

// Ensure LinkExtractor implements helpcenter.LinkExtractor at compile time.
var _ helpcenter.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor discovers category and article links.
type LinkExtractor struct {
	pageLink  string
	container string
}

// NewLinkExtractor creates a LinkExtractor for the layout.
func NewLinkExtractor(layout helpcenter.SiteLayout) *LinkExtractor {
	return &LinkExtractor{
		pageLink:  layout.PageLink.CSS(),
		container: layout.ArticleContainer.CSS(),
	}
}

// ExtractPages returns one Page per page-link element, in document order.
// The title is the element text and the link its href attribute.
func (e *LinkExtractor) ExtractPages(rawHTML string) ([]*helpcenter.Page, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}

	pages := []*helpcenter.Page{}
	doc.Find(e.pageLink).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		pages = append(pages, &helpcenter.Page{
			Title: strings.TrimSpace(sel.Text()),
			Link:  href,
		})
	})

	return pages, nil
}

// ExtractArticles returns one Article per article container, in document
// order. The first anchor inside the container provides the title (its
// title attribute) and the link (its href attribute).
func (e *LinkExtractor) ExtractArticles(rawHTML string) ([]*helpcenter.Article, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}

	articles := []*helpcenter.Article{}
	doc.Find(e.container).Each(func(_ int, sel *goquery.Selection) {
		anchor := sel.Find("a").First()
		if anchor.Length() == 0 {
			return
		}
		title, _ := anchor.Attr("title")
		href, _ := anchor.Attr("href")
		articles = append(articles, &helpcenter.Article{
			Title: title,
			Link:  href,
		})
	})

	return articles, nil
}

func parse(rawHTML string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, helpcenter.Errorf(helpcenter.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
