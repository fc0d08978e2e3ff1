package main

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// renderTerminal renders a reading's markdown for the terminal. Single
// newlines in readings are meant as line breaks, so they are made hard.
func renderTerminal(text string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return r.Render(hardBreaks(text))
}

func hardBreaks(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines[:len(lines)-1] {
		if l != "" && lines[i+1] != "" {
			lines[i] = l + "  "
		}
	}
	return strings.Join(lines, "\n")
}
