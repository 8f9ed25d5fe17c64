// Package fs provides file-based storage for extraction results.
package fs

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/AlexJubs/helpcenter"
)

// URLToPath converts an article link to a relative file path.
// Example: /help/create-a-page → help/create-a-page.md
// Links that would resolve outside the output directory return EINVALID.
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", helpcenter.Errorf(helpcenter.EINVALID, "invalid link %q: %v", rawURL, err)
	}

	path := u.Path

	// Handle root or trailing slash → index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	path = strings.TrimPrefix(path, "/")

	if strings.HasSuffix(path, "/") {
		path += "index.md"
	} else {
		path += ".md"
	}

	path = filepath.Clean(filepath.FromSlash(path))
	if !filepath.IsLocal(path) {
		return "", helpcenter.Errorf(helpcenter.EINVALID, "link %q escapes the output directory", rawURL)
	}
	return path, nil
}
