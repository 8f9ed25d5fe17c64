package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AlexJubs/helpcenter"
	"gopkg.in/yaml.v3"
)

// Ensure FileStore implements helpcenter.ResultStore at compile time.
var _ helpcenter.ResultStore = (*FileStore)(nil)

// FileStore implements helpcenter.ResultStore with atomic update semantics.
// Results are saved to a temporary directory, then moved atomically on Commit.
// Results sharing a link are written side by side with a numeric suffix.
// A FileStore is not safe for concurrent use.
type FileStore struct {
	baseDir string
	name    string
	paths   map[string]struct{}

	// Now returns the crawl date written to the frontmatter.
	Now func() time.Time
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
		paths:   make(map[string]struct{}),
		Now:     time.Now,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes the result as a Markdown file with YAML frontmatter.
func (s *FileStore) Save(ctx context.Context, result *helpcenter.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := result.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(result.Link)
	if err != nil {
		return err
	}
	relPath = s.claim(relPath)

	fullPath := filepath.Join(s.tempDir(), relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := FormatResult(result, s.Now())
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// claim reserves relPath, or the first free "-N" variant of it, for this run.
func (s *FileStore) claim(relPath string) string {
	path := relPath
	stem := strings.TrimSuffix(relPath, ".md")
	for n := 2; ; n++ {
		if _, taken := s.paths[path]; !taken {
			break
		}
		path = fmt.Sprintf("%s-%d.md", stem, n)
	}
	s.paths[path] = struct{}{}
	return path
}

type frontmatter struct {
	helpcenter.Result `yaml:",inline"`
	Crawled           string `yaml:"crawled"`
}

// FormatResult formats a result with YAML frontmatter.
func FormatResult(result *helpcenter.Result, crawled time.Time) (string, error) {
	meta, err := yaml.Marshal(frontmatter{
		Result:  *result,
		Crawled: crawled.Format("2006-01-02"),
	})
	if err != nil {
		return "", helpcenter.Errorf(helpcenter.EINTERNAL, "failed to encode frontmatter: %v", err)
	}
	return "---\n" + string(meta) + "---\n\n" + result.Text + "\n", nil
}

// Commit replaces the output directory with everything saved so far.
func (s *FileStore) Commit() error {
	// A run without results still produces an empty output directory.
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	clear(s.paths)
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards everything saved since the store was created.
func (s *FileStore) Abort() error {
	clear(s.paths)
	return os.RemoveAll(s.tempDir())
}
