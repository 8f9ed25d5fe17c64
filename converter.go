package helpcenter

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be a content region from a ContentExtractor.
	Convert(html string) (string, error)
}
