package mock

import "github.com/AlexJubs/helpcenter"

var _ helpcenter.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of helpcenter.LinkExtractor.
type LinkExtractor struct {
	ExtractPagesFn    func(html string) ([]*helpcenter.Page, error)
	ExtractArticlesFn func(html string) ([]*helpcenter.Article, error)
}

func (e *LinkExtractor) ExtractPages(html string) ([]*helpcenter.Page, error) {
	return e.ExtractPagesFn(html)
}

func (e *LinkExtractor) ExtractArticles(html string) ([]*helpcenter.Article, error) {
	return e.ExtractArticlesFn(html)
}

var _ helpcenter.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of helpcenter.ContentExtractor.
type ContentExtractor struct {
	ExtractRegionFn func(html string) (string, error)
}

func (e *ContentExtractor) ExtractRegion(html string) (string, error) {
	return e.ExtractRegionFn(html)
}

var _ helpcenter.FallbackExtractor = (*FallbackExtractor)(nil)

// FallbackExtractor is a mock implementation of helpcenter.FallbackExtractor.
type FallbackExtractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *FallbackExtractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
