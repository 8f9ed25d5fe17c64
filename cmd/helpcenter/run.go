package main

import (
	"fmt"
	"io"

	"github.com/AlexJubs/helpcenter"
	"github.com/AlexJubs/helpcenter/crawl"
)

// Run executes the extraction and prints a summary of the results.
func (c *RunCmd) Run(deps *Dependencies) error {
	results, err := deps.Runner.Run(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	var total int
	fmt.Fprintln(deps.Stdout)
	for _, r := range results {
		printResult(deps.Stdout, r)
		total += len(r.Text)
	}
	fmt.Fprintf(deps.Stdout, "Collected %d articles (%s)\n", len(results), crawl.FormatBytes(total))

	if c.Out != "" {
		fmt.Fprintf(deps.Stdout, "Saved to %s\n", c.Out)
	}
	return nil
}

// printResult writes a one-line summary of a result.
func printResult(w io.Writer, r *helpcenter.Result) {
	state := "raw"
	if r.Prettified {
		state = "prettified"
	}
	fmt.Fprintf(w, "- %s -> %s (%s, %s)\n", r.Page, r.Article, r.Source, state)
}
