package helpcenter

// LinkExtractor discovers the help-center hierarchy in HTML documents.
type LinkExtractor interface {
	// ExtractPages returns the top-level categories linked from the root
	// page, in document order, with no articles.
	ExtractPages(html string) ([]*Page, error)

	// ExtractArticles returns the articles previewed on a category page,
	// in document order. Containers without an anchor are skipped.
	ExtractArticles(html string) ([]*Article, error)
}

// ContentExtractor isolates the main content region of an article page.
type ContentExtractor interface {
	// ExtractRegion returns the content region serialized as indented HTML.
	// Returns ENOTFOUND if the page has no content region.
	ExtractRegion(html string) (string, error)
}

// FallbackExtractor extracts article text without an LLM.
type FallbackExtractor interface {
	// Extract returns the bulleted list items followed by the top-level
	// paragraphs of a content region, one per line.
	Extract(html string) (string, error)
}
