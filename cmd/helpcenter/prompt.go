package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/AlexJubs/helpcenter"
)

// Ensure Prompter implements helpcenter.Prompter at compile time.
var _ helpcenter.Prompter = (*Prompter)(nil)

// Prompter asks yes/no questions on a console.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading answers from in.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Confirm prints the question and reports whether the answer is "y".
// Returns io.EOF when input ends before an answer is given.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s (y/n): ", question)

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
