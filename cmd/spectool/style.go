package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	// dimStyle for muted labels
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for success indicators
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// errorStyle for error indicators
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	// countStyle for the numbers in summary lines
	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)
)

// FormatSummary renders the post-extraction summary line.
func FormatSummary(w io.Writer, states, edges int) {
	fmt.Fprintf(w, "%s %s states, %s edges\n",
		successStyle.Render("Extracted"),
		countStyle.Render(fmt.Sprintf("%d", states)),
		countStyle.Render(fmt.Sprintf("%d", edges)),
	)
}

// FormatArtifact renders one written-artifact line.
func FormatArtifact(w io.Writer, kind, path string) {
	fmt.Fprintf(w, "%s %s\n", dimStyle.Render(kind+":"), path)
}
