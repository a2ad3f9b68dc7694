package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled is returned when the user ends input or types the cancel
// token instead of answering.
var ErrCancelled = errors.New("cancelled")

// CancelToken aborts the questionnaire when typed as an answer.
const CancelToken = ":q"

var (
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	problemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("red"))
)

// Option is one choice offered by Select and MultiSelect.
type Option struct {
	Value string
	Label string
}

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter. A single buffered reader is kept for the whole
// session so piped answers are not lost between questions.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// readLine returns the next trimmed answer.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF):
		// A final answer without a trailing newline still counts
		if strings.TrimSpace(line) == "" {
			return "", ErrCancelled
		}
	case err != nil:
		return "", fmt.Errorf("reading input: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == CancelToken {
		return "", ErrCancelled
	}
	return line, nil
}

func (p *Prompter) ask(message, hint string) {
	if hint != "" {
		fmt.Fprint(p.out, promptStyle.Render(message)+" "+hintStyle.Render(hint)+": ")
		return
	}
	fmt.Fprint(p.out, promptStyle.Render(message)+": ")
}

// Problem prints a validation problem before a question is repeated.
func (p *Prompter) Problem(msg string) {
	fmt.Fprintln(p.out, problemStyle.Render("  "+msg))
}

// Prompt asks the user for text input with an optional default value.
// If the user presses Enter without typing anything, the default is returned.
//
// Example:
//
//	name, err := p.Prompt("Project name", "my-agent")
//	// Displays: Project name (my-agent): _
func (p *Prompter) Prompt(message, defaultValue string) (string, error) {
	hint := ""
	if defaultValue != "" {
		hint = fmt.Sprintf("(%s)", defaultValue)
	}
	p.ask(message, hint)

	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// Confirm asks the user a yes/no question.
// If defaultYes is true, pressing Enter returns true. Otherwise, returns false.
// Anything other than y/yes/n/no repeats the question.
//
// Example:
//
//	ok, err := p.Confirm("Use TypeScript?", true)
//	// Displays: Use TypeScript? [Y/n]: _
func (p *Prompter) Confirm(message string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	for {
		p.ask(message, hint)

		answer, err := p.readLine()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.Problem("Please answer y or n.")
	}
}

func (p *Prompter) listOptions(options []Option) {
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %s %s\n", hintStyle.Render(fmt.Sprintf("%d)", i+1)), opt.Label)
	}
}

// resolve maps an answer (1-based number or option value) to an option index.
func resolve(options []Option, answer string) (int, bool) {
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(options) {
			return n - 1, true
		}
		return 0, false
	}
	for i, opt := range options {
		if strings.EqualFold(opt.Value, answer) {
			return i, true
		}
	}
	return 0, false
}

// Select asks the user to pick one option by number or value. Pressing
// Enter picks options[defaultIndex].
func (p *Prompter) Select(message string, options []Option, defaultIndex int) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("select %q: no options", message)
	}
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}

	fmt.Fprintln(p.out, promptStyle.Render(message))
	p.listOptions(options)

	for {
		p.ask("Choice", fmt.Sprintf("(%d)", defaultIndex+1))

		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			return options[defaultIndex].Value, nil
		}
		if i, ok := resolve(options, answer); ok {
			return options[i].Value, nil
		}
		p.Problem(fmt.Sprintf("Choose a number between 1 and %d.", len(options)))
	}
}

// NoneToken selects nothing in MultiSelect when defaults are offered.
const NoneToken = "none"

// MultiSelect asks the user to pick any number of options as a comma
// separated list of numbers or values. Values are returned in the order
// typed, without duplicates. Pressing Enter selects the defaults that
// match an option, and typing NoneToken selects nothing.
func (p *Prompter) MultiSelect(message string, options []Option, defaults []string) ([]string, error) {
	var preselected []string
	for _, d := range defaults {
		if i, ok := resolve(options, d); ok && !slices.Contains(preselected, options[i].Value) {
			preselected = append(preselected, options[i].Value)
		}
	}

	hint := "(comma separated, Enter for none)"
	if len(preselected) > 0 {
		hint = fmt.Sprintf("(comma separated, Enter for %s, %q for none)", strings.Join(preselected, ","), NoneToken)
	}

	fmt.Fprintln(p.out, promptStyle.Render(message))
	p.listOptions(options)

outer:
	for {
		p.ask("Choices", hint)

		answer, err := p.readLine()
		if err != nil {
			return nil, err
		}
		switch {
		case answer == "":
			return preselected, nil
		case strings.EqualFold(answer, NoneToken):
			return nil, nil
		}

		var values []string
		seen := make(map[int]bool)
		for _, part := range strings.Split(answer, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			i, ok := resolve(options, part)
			if !ok {
				p.Problem(fmt.Sprintf("Unknown choice %q.", part))
				continue outer
			}
			if !seen[i] {
				seen[i] = true
				values = append(values, options[i].Value)
			}
		}
		return values, nil
	}
}
