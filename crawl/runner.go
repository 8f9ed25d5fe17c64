package crawl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/AlexJubs/helpcenter"
	"github.com/AlexJubs/helpcenter/normalize"
)

// Mode selects how a Runner processes articles.
type Mode int

const (
	// ModeBatch extracts, sections and prettifies every article.
	ModeBatch Mode = iota

	// ModeInteractive asks before extracting and before prettifying.
	ModeInteractive
)

// String returns the flag value for the mode.
func (m Mode) String() string {
	switch m {
	case ModeInteractive:
		return "interactive"
	default:
		return "batch"
	}
}

// ParseMode maps "interactive" or "batch" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "interactive":
		return ModeInteractive, nil
	case "batch":
		return ModeBatch, nil
	default:
		return ModeBatch, helpcenter.Errorf(helpcenter.EINVALID, "unknown mode %q", s)
	}
}

const separator = "------------------------------"

// Runner drives one extraction run over a help center.
type Runner struct {
	Crawler    *Crawler
	Normalizer helpcenter.Normalizer

	// Converter, if set, converts the content region to Markdown before it
	// is sent to the model. The fallback extractor always sees the HTML.
	Converter helpcenter.Converter

	// Prompter answers questions in ModeInteractive.
	Prompter helpcenter.Prompter
	Mode     Mode

	// Store, if set, receives every collected result. It is committed when
	// the run succeeds and aborted otherwise.
	Store helpcenter.ResultStore

	Stdout io.Writer
	Logger *slog.Logger
}

// Run discovers every page and article under rootURL and returns the
// collected results in processing order.
func (r *Runner) Run(ctx context.Context, rootURL string) (results []*helpcenter.Result, err error) {
	if r.Stdout == nil {
		r.Stdout = io.Discard
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.DiscardHandler)
	}
	if r.Mode == ModeInteractive && r.Prompter == nil {
		return nil, helpcenter.Errorf(helpcenter.EINVALID, "interactive mode requires a prompter")
	}

	if r.Store != nil {
		defer func() {
			if err != nil {
				if abortErr := r.Store.Abort(); abortErr != nil {
					r.Logger.Error("abort failed", "error", abortErr)
				}
				return
			}
			err = r.Store.Commit()
		}()
	}

	pages, err := r.Crawler.DiscoverPages(ctx, rootURL)
	if err != nil {
		return nil, fmt.Errorf("discovering pages: %w", err)
	}
	for _, page := range pages {
		fmt.Fprintf(r.Stdout, "Title: %s, href: %s\n", page.Title, page.Link)
	}
	fmt.Fprintln(r.Stdout, separator)

	for _, page := range pages {
		fmt.Fprintf(r.Stdout, "\nExtracting sub-articles for '%s':\n", page.Title)
		articles, err := r.Crawler.DiscoverArticles(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("discovering articles for %s: %w", page.Link, err)
		}
		for _, article := range articles {
			fmt.Fprintf(r.Stdout, "Title: %s, href: %s\n", article.Title, article.Link)
		}
		fmt.Fprintln(r.Stdout, separator)
	}

	results = []*helpcenter.Result{}
	for _, page := range pages {
		for _, article := range page.Articles {
			result, err := r.process(ctx, page, article)
			if err != nil {
				return nil, err
			}
			if result == nil {
				continue
			}
			if r.Store != nil {
				if err := r.Store.Save(ctx, result); err != nil {
					if helpcenter.ErrorCode(err) != helpcenter.EINVALID {
						return nil, err
					}
					r.skip(article, err)
					continue
				}
			}
			results = append(results, result)
		}
		if r.Mode == ModeInteractive {
			fmt.Fprintln(r.Stdout, separator)
		}
	}

	if r.Crawler.Filter != nil {
		r.Logger.Info("dedupe", "links", r.Crawler.Filter.EstimatedCount())
	}

	return results, nil
}

// process handles one article. A nil result means the article was skipped.
func (r *Runner) process(ctx context.Context, page *helpcenter.Page, article *helpcenter.Article) (*helpcenter.Result, error) {
	if r.Mode == ModeInteractive {
		ok, err := r.Prompter.Confirm(fmt.Sprintf(
			"From '%s', Help Article: %s, href: %s\nExtract the content?",
			page.Title, article.Title, article.Link))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
	}

	content, err := r.extract(ctx, article)
	if err != nil {
		switch helpcenter.ErrorCode(err) {
		case helpcenter.ENOTFOUND, helpcenter.EFORBIDDEN:
			r.skip(article, err)
			return nil, nil
		}
		return nil, fmt.Errorf("extracting %s: %w", article.Link, err)
	}

	result := &helpcenter.Result{
		Page:     page.Title,
		Article:  article.Title,
		Link:     article.Link,
		Text:     content.Text,
		Source:   content.Source,
		Sections: len(normalize.SplitSections(content.Text)),
	}

	prettify := true
	if r.Mode == ModeInteractive {
		fmt.Fprintln(r.Stdout, content.Text)
		prettify, err = r.Prompter.Confirm("Prettify the content with LLM?")
		if err != nil {
			return nil, err
		}
	}

	if prettify {
		text, err := r.Normalizer.Prettify(ctx, article.Title, content.Text)
		if err != nil {
			r.Logger.Warn("prettify failed, keeping raw content", "link", article.Link, "error", helpcenter.ErrorMessage(err))
		} else {
			result.Text = text
			result.Prettified = true
		}
	}

	result.Hash = ComputeHash(result.Text)

	switch {
	case r.Mode == ModeBatch:
		fmt.Fprintf(r.Stdout, "added processed content for '%s' -> '%s'\n", page.Title, article.Title)
	case result.Prettified:
		fmt.Fprintln(r.Stdout, result.Text)
		fmt.Fprintf(r.Stdout, "added processed content for %s\n", article.Title)
	default:
		fmt.Fprintf(r.Stdout, "added raw content for %s\n", article.Title)
	}

	return result, nil
}

// skip reports an article that cannot be collected.
func (r *Runner) skip(article *helpcenter.Article, err error) {
	r.Logger.Warn("skipping article", "link", article.Link, "error", helpcenter.ErrorMessage(err))
	fmt.Fprintf(r.Stdout, "skipped '%s': %s\n", article.Title, helpcenter.ErrorMessage(err))
}

// extract fetches the article's content region and sections it.
func (r *Runner) extract(ctx context.Context, article *helpcenter.Article) (*helpcenter.Content, error) {
	region, err := r.Crawler.FetchRawContent(ctx, article.Link)
	if err != nil {
		return nil, err
	}

	markup := region
	if r.Converter != nil {
		if markup, err = r.Converter.Convert(region); err != nil {
			return nil, err
		}
	}

	content, err := r.Normalizer.Section(ctx, article.Link, markup, region)
	if err != nil {
		return nil, err
	}
	if err := article.SetContent(content); err != nil {
		return nil, err
	}
	return content, nil
}
