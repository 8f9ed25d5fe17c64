package goquery

import (
	"bytes"

	"github.com/AlexJubs/helpcenter"
	"github.com/yosssi/gohtml"
	"golang.org/x/net/html"
)

// Ensure ContentExtractor implements helpcenter.ContentExtractor at compile time.
var _ helpcenter.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor locates the main content region of an article page.
type ContentExtractor struct {
	region string
}

// NewContentExtractor creates a ContentExtractor for the layout.
func NewContentExtractor(layout helpcenter.SiteLayout) *ContentExtractor {
	return &ContentExtractor{region: layout.ContentRegion.CSS()}
}

// ExtractRegion returns the first content region element, including its own
// tag, rendered as indented HTML.
func (e *ContentExtractor) ExtractRegion(rawHTML string) (string, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return "", err
	}

	region := doc.Find(e.region).First()
	if region.Length() == 0 {
		return "", helpcenter.Errorf(helpcenter.ENOTFOUND, "content region %q not found", e.region)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, region.Get(0)); err != nil {
		return "", helpcenter.Errorf(helpcenter.EINTERNAL, "failed to render content region: %v", err)
	}

	return gohtml.Format(buf.String()), nil
}
