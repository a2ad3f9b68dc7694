// Package output provides styled terminal output for the hatch CLI.
package output

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Success prints a success message with 🐣 emoji and green color.
// Use this for completed operations.
//
// Example:
//
//	output.Success("Created project: myagent")
func Success(msg string) {
	fmt.Println(successStyle.Render("🐣 " + msg))
}

// Error prints an error message with ❌ emoji and red color to stderr.
//
// Example:
//
//	output.Error("Failed to create project: permission denied")
func Error(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("❌ "+msg))
}

// Warn prints a warning to stderr.
func Warn(msg string) {
	fmt.Fprintln(os.Stderr, warnStyle.Render("⚠️  "+msg))
}

// Info prints an informational message with ℹ️ emoji and cyan color.
//
// Example:
//
//	output.Info("Next steps:")
func Info(msg string) {
	fmt.Println(infoStyle.Render("ℹ️  " + msg))
}

// Step prints an indented step message in gray.
// Use this for actionable next steps or sub-items.
//
// Example:
//
//	output.Step("cd myagent")
//	output.Step("npm install")
func Step(msg string) {
	fmt.Println(stepStyle.Render("   " + msg))
}
