package goquery

import (
	"strings"

	"github.com/AlexJubs/helpcenter"
	"github.com/PuerkitoBio/goquery"
)

// Bullet prefixes list items in fallback output.
const Bullet = "• "

// Ensure FallbackExtractor implements helpcenter.FallbackExtractor at compile time.
var _ helpcenter.FallbackExtractor = (*FallbackExtractor)(nil)

// FallbackExtractor scrapes list items and paragraphs from a content region
// when no model is available.
type FallbackExtractor struct {
	region    string
	listItem  string
	paragraph string
}

// NewFallbackExtractor creates a FallbackExtractor for the layout.
func NewFallbackExtractor(layout helpcenter.SiteLayout) *FallbackExtractor {
	return &FallbackExtractor{
		region:    layout.ContentRegion.CSS(),
		listItem:  layout.ListItem.CSS(),
		paragraph: layout.Paragraph.CSS(),
	}
}

// Extract returns every list item of the region as a bulleted line, followed
// by every paragraph that is a direct child of the region. Whitespace inside
// an item is collapsed and items without text are omitted.
func (e *FallbackExtractor) Extract(rawHTML string) (string, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return "", err
	}

	region := doc.Find(e.region).First()
	if region.Length() == 0 {
		return "", helpcenter.Errorf(helpcenter.ENOTFOUND, "content region %q not found", e.region)
	}

	var lines []string
	region.Find(e.listItem).Each(func(_ int, item *goquery.Selection) {
		// Prefer the item's paragraph so nested lists and labels are skipped.
		text := item
		if p := item.Find(e.paragraph).First(); p.Length() > 0 {
			text = p
		}
		if s := collapse(text.Text()); s != "" {
			lines = append(lines, Bullet+s)
		}
	})

	region.ChildrenFiltered(e.paragraph).Each(func(_ int, p *goquery.Selection) {
		if s := collapse(p.Text()); s != "" {
			lines = append(lines, s)
		}
	})

	return strings.Join(lines, "\n"), nil
}

// collapse trims s and replaces inner whitespace runs with a single space.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
