package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/AlexJubs/helpcenter/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Runner *crawl.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL       string        `arg:"" optional:"" default:"https://www.notion.so/help/reference" help:"Help center root page"`
	Base      string        `default:"https://www.notion.so" help:"Base URL for relative page and article links"`
	Mode      string        `help:"Processing mode: interactive or batch (asked when omitted)"`
	Provider  string        `default:"openai" enum:"openai,gemini,anthropic" help:"LLM provider (openai, gemini, anthropic)"`
	Model     string        `help:"Model name (provider default when empty)"`
	Timeout   time.Duration `short:"t" default:"2m" help:"Fetch timeout per page"`
	Render    bool          `help:"Render pages with headless Chrome"`
	Format    string        `default:"html" enum:"html,markdown" help:"Form of the content sent to the model (html, markdown)"`
	Layout    string        `placeholder:"FILE" help:"YAML file overriding the default site selectors"`
	Dedupe    bool          `help:"Process each article link only once"`
	Robots    bool          `help:"Honor robots.txt"`
	UserAgent string        `default:"helpcenter" help:"User agent tested against robots.txt"`
	Out       string        `short:"o" placeholder:"DIR" help:"Write results as Markdown files to DIR"`
	Verbose   bool          `short:"v" help:"Enable debug logging"`

	OpenAIKey        string `name:"openai-api-key" env:"OPENAI_API_KEY" hidden:""`
	OpenAIBaseURL    string `name:"openai-base-url" env:"OPENAI_BASE_URL" hidden:""`
	GeminiKey        string `name:"gemini-api-key" env:"GEMINI_API_KEY" hidden:""`
	AnthropicKey     string `name:"anthropic-api-key" env:"ANTHROPIC_API_KEY" hidden:""`
	AnthropicBaseURL string `name:"anthropic-base-url" env:"ANTHROPIC_BASE_URL" hidden:""`
}

// RunCmd runs one extraction over a help center.
type RunCmd struct {
	URL string
	Out string
}

