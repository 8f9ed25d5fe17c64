package helpcenter

import "strings"

// Selector matches elements by tag name and class attribute string.
// Every whitespace-separated class in Class must be present on the element.
type Selector struct {
	Tag   string `yaml:"tag"`
	Class string `yaml:"class"`
}

// CSS returns the selector as a CSS selector string.
// An empty Tag matches any element.
func (s Selector) CSS() string {
	var sb strings.Builder
	sb.WriteString(s.Tag)
	for _, class := range strings.Fields(s.Class) {
		sb.WriteByte('.')
		sb.WriteString(class)
	}
	if sb.Len() == 0 {
		return "*"
	}
	return sb.String()
}

// IsZero reports whether the selector has neither tag nor class.
func (s Selector) IsZero() bool {
	return s.Tag == "" && strings.TrimSpace(s.Class) == ""
}

// SiteLayout describes where a help center keeps its links and content.
type SiteLayout struct {
	// PageLink matches the anchors of top-level categories on the root page.
	PageLink Selector `yaml:"page_link"`

	// ArticleContainer matches the elements wrapping each article preview
	// on a category page. The first anchor inside is the article link.
	ArticleContainer Selector `yaml:"article_container"`

	// ContentRegion matches the main content element of an article page.
	ContentRegion Selector `yaml:"content_region"`

	// ListItem and Paragraph are used by the fallback extractor.
	ListItem  Selector `yaml:"list_item"`
	Paragraph Selector `yaml:"paragraph"`
}

// Validate returns an error if a selector required for crawling is missing.
func (l *SiteLayout) Validate() error {
	if l.PageLink.IsZero() {
		return Errorf(EINVALID, "page link selector required")
	}
	if l.ArticleContainer.IsZero() {
		return Errorf(EINVALID, "article container selector required")
	}
	if l.ContentRegion.IsZero() {
		return Errorf(EINVALID, "content region selector required")
	}
	return nil
}

// DefaultLayout returns the layout of the Notion help center.
func DefaultLayout() SiteLayout {
	return SiteLayout{
		PageLink: Selector{
			Tag:   "a",
			Class: "helpCenterArticleGrid_titleLink__hTrdL",
		},
		ArticleContainer: Selector{
			Tag:   "article",
			Class: "helpCenterContentPreview_articlePreview__Epc1O article-preview-condensed",
		},
		ContentRegion: Selector{
			Class: "contentfulRichText_richText__rW7Oq contentfulRichText_sans__UVbfz",
		},
		ListItem: Selector{
			Tag:   "li",
			Class: "contentfulRichText_listItem___Swmu",
		},
		Paragraph: Selector{
			Tag:   "p",
			Class: "contentfulRichText_paragraph___hjRE",
		},
	}
}
