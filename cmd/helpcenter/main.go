package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/AlexJubs/helpcenter"
	"github.com/AlexJubs/helpcenter/anthropic"
	"github.com/AlexJubs/helpcenter/bloom"
	"github.com/AlexJubs/helpcenter/crawl"
	"github.com/AlexJubs/helpcenter/fs"
	"github.com/AlexJubs/helpcenter/gemini"
	"github.com/AlexJubs/helpcenter/goquery"
	"github.com/AlexJubs/helpcenter/htmltomarkdown"
	hchttp "github.com/AlexJubs/helpcenter/http"
	"github.com/AlexJubs/helpcenter/normalize"
	"github.com/AlexJubs/helpcenter/openai"
	"github.com/AlexJubs/helpcenter/robots"
	"github.com/AlexJubs/helpcenter/rod"
	hcslog "github.com/AlexJubs/helpcenter/slog"
	"github.com/AlexJubs/helpcenter/yaml"
	"github.com/alecthomas/kong"
	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	openaisdk "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", helpcenter.ErrorMessage(err))
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin supplies answers to interactive prompts.
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	// Kong exits after printing help; record it instead so the run stops here.
	var exited bool
	parser, err := kong.New(cli,
		kong.Name("helpcenter"),
		kong.Description("Extract and normalize help-center articles with an LLM"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if exited {
		return nil
	}
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())

	prompter := NewPrompter(m.Stdin, stdout)

	mode, err := resolveMode(cli.Mode, prompter)
	if err != nil {
		return err
	}

	layout := helpcenter.DefaultLayout()
	if cli.Layout != "" {
		if layout, err = yaml.LoadLayout(cli.Layout); err != nil {
			return err
		}
	}

	completer, err := newCompleter(ctx, cli, stderr)
	if err != nil {
		return err
	}

	var fetcher helpcenter.Fetcher
	if cli.Render {
		rf, err := rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rf
	} else {
		fetcher = hchttp.NewFetcher(hchttp.WithTimeout(cli.Timeout))
	}
	defer fetcher.Close()

	crawler := &crawl.Crawler{
		Fetcher: hcslog.NewLoggingFetcher(fetcher, logger),
		Links:   goquery.NewLinkExtractor(layout),
		Content: goquery.NewContentExtractor(layout),
		BaseURL: cli.Base,
	}
	if cli.Robots {
		crawler.Policy = hcslog.NewLoggingPolicy(robots.NewPolicy(robots.WithUserAgent(cli.UserAgent)), logger)
	}
	if cli.Dedupe {
		crawler.Filter = bloom.NewFilter(bloom.DefaultCapacity, bloom.DefaultFalsePositiveRate)
	}

	runner := &crawl.Runner{
		Crawler: crawler,
		Normalizer: normalize.NewNormalizer(
			hcslog.NewLoggingCompleter(completer, logger),
			goquery.NewFallbackExtractor(layout),
			logger,
		),
		Prompter: prompter,
		Mode:     mode,
		Stdout:   stdout,
		Logger:   logger,
	}
	if cli.Format == "markdown" {
		runner.Converter = htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(cli.Base))
	}
	if cli.Out != "" {
		out := filepath.Clean(cli.Out)
		runner.Store = fs.NewFileStore(filepath.Dir(out), filepath.Base(out))
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Runner: runner,
	}

	cmd := &RunCmd{
		URL: cli.URL,
		Out: cli.Out,
	}

	return cmd.Run(deps)
}

// resolveMode parses the --mode flag, asking the user when it is empty.
func resolveMode(flag string, prompter helpcenter.Prompter) (crawl.Mode, error) {
	if strings.TrimSpace(flag) != "" {
		return crawl.ParseMode(flag)
	}
	interactive, err := prompter.Confirm("Would you like to review each article individually?")
	if err != nil {
		return crawl.ModeBatch, err
	}
	if interactive {
		return crawl.ModeInteractive, nil
	}
	return crawl.ModeBatch, nil
}

// newCompleter builds the Completer for the configured provider.
func newCompleter(ctx context.Context, cli *CLI, stderr io.Writer) (helpcenter.Completer, error) {
	switch cli.Provider {
	case "gemini":
		if cli.GeminiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, helpcenter.Errorf(helpcenter.EINVALID, "GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cli.GeminiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewCompleter(client, cli.Model), nil

	case "anthropic":
		if cli.AnthropicKey == "" {
			fmt.Fprintln(stderr, "ANTHROPIC_API_KEY environment variable not set")
			return nil, helpcenter.Errorf(helpcenter.EINVALID, "ANTHROPIC_API_KEY not set")
		}
		opts := []anthropicoption.RequestOption{anthropicoption.WithAPIKey(cli.AnthropicKey)}
		if cli.AnthropicBaseURL != "" {
			opts = append(opts, anthropicoption.WithBaseURL(cli.AnthropicBaseURL))
		}
		return anthropic.NewCompleter(anthropicsdk.NewClient(opts...), cli.Model), nil

	default:
		if cli.OpenAIKey == "" {
			fmt.Fprintln(stderr, "OPENAI_API_KEY environment variable not set")
			return nil, helpcenter.Errorf(helpcenter.EINVALID, "OPENAI_API_KEY not set")
		}
		opts := []openaioption.RequestOption{openaioption.WithAPIKey(cli.OpenAIKey)}
		if cli.OpenAIBaseURL != "" {
			opts = append(opts, openaioption.WithBaseURL(cli.OpenAIBaseURL))
		}
		return openai.NewCompleter(openaisdk.NewClient(opts...), cli.Model), nil
	}
}
