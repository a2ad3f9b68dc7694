// Package prompt collects a project configuration from interactive input.
//
// # Usage
//
//	p := prompt.New(os.Stdin, os.Stdout)
//	cfg, err := prompt.Collect(p, prompt.Defaults{Provider: scaffold.ProviderOpenAI})
//	if errors.Is(err, prompt.ErrCancelled) {
//	    return nil // user backed out
//	}
//
// # Cancellation
//
// End of input (Ctrl-D) or the answer ":q" cancels the whole run with
// ErrCancelled. Callers treat cancellation as a normal exit.
//
// # Styling
//
// The package uses lipgloss for consistent terminal styling:
//   - Prompts are displayed in cyan and bold
//   - Hints (defaults, [Y/n], option numbers) are displayed in gray
//   - Validation problems are displayed in red and the question is repeated
package prompt
