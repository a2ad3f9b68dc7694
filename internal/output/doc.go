// Package output provides styled terminal output for the hatch CLI.
//
// # Usage
//
//	output.Success("Created project: myagent")
//	output.Info("Next steps:")
//	output.Step("cd myagent")
//	output.Error("Something went wrong")
//
// # Spinner
//
// Spin runs a function while a spinner is shown on stderr. When stderr is
// not a terminal the spinner is skipped and a single result line is printed:
//
//	err := output.Spin("Creating project", func() error {
//	    return materializer.Materialize(ctx, cfg, root)
//	})
//
// # Styling
//
//   - Success: 🐣 green bold
//   - Error: ❌ red bold (stderr)
//   - Warn: ⚠️ yellow (stderr)
//   - Info: ℹ️ cyan
//   - Step: indented gray
package output
