// SPDX-License-Identifier: MPL-2.0

package printout

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const (
	// ColorAuto enables colors only when the output stream is a terminal
	// and NO_COLOR is unset.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces ANSI colors.
	ColorAlways ColorMode = "always"
	// ColorNever disables all escape sequences.
	ColorNever ColorMode = "never"

	// DefaultIndent is the indentation unit repeated by Indent.
	DefaultIndent = "    "

	bulletGlyph   = "▪ "
	branchGlyph   = "├── "
	lastLeafGlyph = "└── "
	yesGlyph      = "✔"
	noGlyph       = "✖"
)

// ErrInvalidColorMode is returned when a ColorMode value is not recognized.
var ErrInvalidColorMode = errors.New("invalid color mode")

type (
	// ColorMode selects whether escape sequences are emitted.
	ColorMode string

	// Surround holds the left and right padding strings of a block.
	Surround struct {
		Left  string
		Right string
	}

	// Theme is the catalog of named rendering rules used by a Printer.
	// Colors are lipgloss colors; ANSI indexes ("1".."15") keep output
	// stable across terminals.
	Theme struct {
		// IndentString is the unit repeated by Indent.
		IndentString string

		Info    lipgloss.Color
		Warning lipgloss.Color
		Error   lipgloss.Color
		Success lipgloss.Color
		// Glyph colors bullets and tree branches.
		Glyph lipgloss.Color

		// HeaderBackground is also used by BlockInfo.
		HeaderBackground   lipgloss.Color
		SuccessBackground  lipgloss.Color
		WarningBackground  lipgloss.Color
		CriticalBackground lipgloss.Color

		HeaderSurround   Surround
		SuccessSurround  Surround
		WarningSurround  Surround
		CriticalSurround Surround
	}
)

// Validate returns an error if the ColorMode is not one of the known modes.
func (m ColorMode) Validate() error {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("%w: %q (expected auto, always or never)", ErrInvalidColorMode, string(m))
	}
}

// String returns the mode name.
func (m ColorMode) String() string { return string(m) }

// DefaultTheme returns the built-in catalog: green info, yellow warning,
// red error, and blue/green/yellow/red backgrounds for blocks.
func DefaultTheme() Theme {
	return Theme{
		IndentString: DefaultIndent,

		Info:    lipgloss.Color("2"),
		Warning: lipgloss.Color("3"),
		Error:   lipgloss.Color("1"),
		Success: lipgloss.Color("2"),
		Glyph:   lipgloss.Color("4"),

		HeaderBackground:   lipgloss.Color("4"),
		SuccessBackground:  lipgloss.Color("2"),
		WarningBackground:  lipgloss.Color("3"),
		CriticalBackground: lipgloss.Color("1"),

		HeaderSurround:   Surround{Left: "---> ", Right: " <---"},
		SuccessSurround:  Surround{Left: "  ", Right: "  "},
		WarningSurround:  Surround{Left: "  ", Right: "  "},
		CriticalSurround: Surround{Left: "  ", Right: "  "},
	}
}
