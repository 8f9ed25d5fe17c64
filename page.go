package helpcenter

import "context"

// Page represents a top-level help-center category.
type Page struct {
	Title    string
	Link     string // relative to the site base URL
	Articles []*Article
}

// Article represents a leaf help article discovered under a Page.
type Article struct {
	Title   string
	Link    string   // relative to the site base URL
	Content *Content // nil until fetched
}

// SetContent records the normalized content of the article.
// Content can be set at most once.
func (a *Article) SetContent(c *Content) error {
	if a.Content != nil {
		return Errorf(EINVALID, "content for article %q already set", a.Link)
	}
	a.Content = c
	return nil
}

// ContentSource identifies how article content was produced.
type ContentSource string

// ContentSource values.
const (
	SourceLLM      ContentSource = "llm"
	SourceFallback ContentSource = "fallback"
)

// Content is the normalized text of an article.
type Content struct {
	Text   string
	Source ContentSource
}

// Result is one processed article collected by a run.
type Result struct {
	Page       string        `yaml:"page"`
	Article    string        `yaml:"title"`
	Link       string        `yaml:"source"`
	Text       string        `yaml:"-"`
	Prettified bool          `yaml:"prettified"`
	Source     ContentSource `yaml:"extraction"`
	Sections   int           `yaml:"sections"`
	Hash       string        `yaml:"hash"`
}

// Validate returns an error if the result contains invalid fields.
func (r *Result) Validate() error {
	if r.Link == "" {
		return Errorf(EINVALID, "result link required")
	}
	return nil
}

// ResultStore persists results with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type ResultStore interface {
	Save(ctx context.Context, result *Result) error
	Commit() error
	Abort() error
}
