// Package color names the ANSI colors used for plain CLI output. The richer
// hex palette used by the metadata table and progress bar lives in style.
package color

import "github.com/charmbracelet/lipgloss"

// New wraps an ANSI code or hex string.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")

	HiRed    = New("9")
	HiPurple = New("13")
)
