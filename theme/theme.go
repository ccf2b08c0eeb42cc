// Package theme holds the colour palette, text styles and status icons used
// by hookcfg's terminal output.
package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Terminal (ANSI-friendly) palette
const (
	terminalGreen  = "2"
	terminalYellow = "3"
	terminalRed    = "1"
	terminalOrange = "208"
	terminalCyan   = "6"
	terminalBlue   = "4"
	terminalViolet = "5"
	terminalMuted  = "8"
)

// Colors is the palette used by a theme.
type Colors struct {
	Green     lipgloss.TerminalColor
	Yellow    lipgloss.TerminalColor
	Red       lipgloss.TerminalColor
	Orange    lipgloss.TerminalColor
	Cyan      lipgloss.TerminalColor
	Blue      lipgloss.TerminalColor
	Violet    lipgloss.TerminalColor
	MutedText lipgloss.TerminalColor
}

// Theme bundles the palette with the styles built from it.
type Theme struct {
	Colors  Colors
	Muted   lipgloss.Style
	Italic  lipgloss.Style
	Accent  lipgloss.Style
	Bold    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Header  lipgloss.Style
}

// DefaultTheme is the theme used by the CLI.
var DefaultTheme = NewTheme()

// NewTheme builds the terminal theme.
func NewTheme() *Theme {
	c := Colors{
		Green:     lipgloss.Color(terminalGreen),
		Yellow:    lipgloss.Color(terminalYellow),
		Red:       lipgloss.Color(terminalRed),
		Orange:    lipgloss.Color(terminalOrange),
		Cyan:      lipgloss.Color(terminalCyan),
		Blue:      lipgloss.Color(terminalBlue),
		Violet:    lipgloss.Color(terminalViolet),
		MutedText: lipgloss.Color(terminalMuted),
	}
	return &Theme{
		Colors:  c,
		Muted:   lipgloss.NewStyle().Foreground(c.MutedText),
		Italic:  lipgloss.NewStyle().Italic(true),
		Accent:  lipgloss.NewStyle().Foreground(c.Cyan),
		Bold:    lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(c.Green).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(c.Yellow),
		Error:   lipgloss.NewStyle().Foreground(c.Red).Bold(true),
		Header:  lipgloss.NewStyle().Foreground(c.Orange).Bold(true),
	}
}

// Status icons.
var (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconInfo    = "i"
	IconSkipped = "-"
	IconBullet  = "•"
)

// UseASCIIIcons swaps the icon set for plain ASCII, for terminals without
// unicode support.
func UseASCIIIcons() {
	IconSuccess = "[ok]"
	IconError = "[x]"
	IconWarning = "[!]"
	IconInfo = "[i]"
	IconSkipped = "[-]"
	IconBullet = "*"
}

// ConfigureColor decides whether styled output carries colour. Colour is
// dropped when disabled explicitly, when NO_COLOR is set, or when stdout is
// not a terminal.
func ConfigureColor(disable bool) {
	if disable || os.Getenv("NO_COLOR") != "" || !isatty.IsTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// ColorEnabled reports whether lipgloss will currently emit colour codes.
func ColorEnabled() bool {
	return lipgloss.ColorProfile() != termenv.Ascii
}
