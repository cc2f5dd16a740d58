// SPDX-License-Identifier: MPL-2.0

package printout

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

type (
	// Printer writes styled messages to an output stream.
	// A Printer holds no mutable state; WithIndent returns a copy.
	Printer struct {
		w      io.Writer
		theme  Theme
		mode   ColorMode
		indent int
		styles styleSet
	}

	// Option configures a Printer.
	Option func(*Printer)

	styleSet struct {
		info, warning, errorLine, success                   lipgloss.Style
		titleInfo, titleWarning, titleError, titleSuccess   lipgloss.Style
		header, blockSuccess, blockWarning, critical, glyph lipgloss.Style
	}
)

// WithTheme replaces the default style catalog.
func WithTheme(theme Theme) Option {
	return func(p *Printer) {
		p.theme = theme
	}
}

// WithColorMode selects whether escape sequences are emitted.
// Invalid modes fall back to ColorAuto.
func WithColorMode(mode ColorMode) Option {
	return func(p *Printer) {
		if mode.Validate() == nil {
			p.mode = mode
		}
	}
}

// New creates a Printer writing to w (os.Stdout when nil).
func New(w io.Writer, opts ...Option) *Printer {
	if w == nil {
		w = os.Stdout
	}
	p := &Printer{
		w:     w,
		theme: DefaultTheme(),
		mode:  ColorAuto,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.styles = newStyleSet(newRenderer(w, p.mode), p.theme)
	return p
}

// newRenderer builds a lipgloss renderer with an explicit color profile so
// that output never depends on environment probing done by the library.
func newRenderer(w io.Writer, mode ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if colorEnabled(w, mode) {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

func colorEnabled(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newStyleSet(r *lipgloss.Renderer, t Theme) styleSet {
	plain := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	fg := func(c lipgloss.Color) lipgloss.Style {
		return plain.Foreground(c)
	}
	title := func(c lipgloss.Color) lipgloss.Style {
		return fg(c).Bold(true).Underline(true)
	}
	block := func(bg lipgloss.Color) lipgloss.Style {
		return plain.Background(bg).Bold(true)
	}
	return styleSet{
		info:         fg(t.Info),
		warning:      fg(t.Warning),
		errorLine:    fg(t.Error),
		success:      fg(t.Success),
		titleInfo:    title(t.Info),
		titleWarning: title(t.Warning),
		titleError:   title(t.Error),
		titleSuccess: title(t.Success),
		header:       block(t.HeaderBackground),
		blockSuccess: block(t.SuccessBackground),
		blockWarning: block(t.WarningBackground),
		critical:     block(t.CriticalBackground),
		glyph:        fg(t.Glyph),
	}
}

// WithIndent returns a copy of the Printer whose line operations are
// prefixed by Indent(level). Item operations add their own level on top.
func (p *Printer) WithIndent(level int) *Printer {
	cp := *p
	cp.indent = max(level, 0)
	return &cp
}

// Theme returns the catalog the Printer renders with.
func (p *Printer) Theme() Theme { return p.theme }

// Indent returns the indentation unit repeated level times.
func (p *Printer) Indent(level int) string {
	if level <= 0 {
		return ""
	}
	return strings.Repeat(p.theme.IndentString, level)
}

// Plain writes msg without any style.
func (p *Printer) Plain(msg any) {
	p.write(p.Indent(p.indent) + text(msg) + "\n")
}

// Info writes msg in the info color.
func (p *Printer) Info(msg any) { p.line(p.styles.info, msg) }

// Warning writes msg in the warning color.
func (p *Printer) Warning(msg any) { p.line(p.styles.warning, msg) }

// Error writes msg in the error color.
func (p *Printer) Error(msg any) { p.line(p.styles.errorLine, msg) }

// Success writes msg in the success color.
func (p *Printer) Success(msg any) { p.line(p.styles.success, msg) }

// TitleInfo writes msg bold and underlined in the info color, followed by
// an empty line.
func (p *Printer) TitleInfo(msg any) { p.title(p.styles.titleInfo, msg) }

// TitleWarning is TitleInfo in the warning color.
func (p *Printer) TitleWarning(msg any) { p.title(p.styles.titleWarning, msg) }

// TitleError is TitleInfo in the error color.
func (p *Printer) TitleError(msg any) { p.title(p.styles.titleError, msg) }

// TitleSuccess is TitleInfo in the success color.
func (p *Printer) TitleSuccess(msg any) { p.title(p.styles.titleSuccess, msg) }

// Header writes msg surrounded by the header padding on the header
// background, between empty lines.
func (p *Printer) Header(msg any) {
	p.block(p.styles.header, p.theme.HeaderSurround, msg)
}

// BlockInfo is an alias of Header.
func (p *Printer) BlockInfo(msg any) { p.Header(msg) }

// BlockSuccess writes msg as a block on the success background.
func (p *Printer) BlockSuccess(msg any) {
	p.block(p.styles.blockSuccess, p.theme.SuccessSurround, msg)
}

// BlockWarning writes msg as a block on the warning background.
func (p *Printer) BlockWarning(msg any) {
	p.block(p.styles.blockWarning, p.theme.WarningSurround, msg)
}

// BlockError renders the same block as Critical without aborting.
func (p *Printer) BlockError(msg any) {
	p.block(p.styles.critical, p.theme.CriticalSurround, msg)
}

// Critical renders msg as an error block then returns an *AbortError.
// Callers must return the error unchanged so that no further task code runs.
func (p *Printer) Critical(msg any) error {
	p.BlockError(msg)
	return &AbortError{Message: text(msg)}
}

// DotItem writes msg prefixed by the indentation and a bullet.
func (p *Printer) DotItem(msg any, indent int) {
	prefix := p.styles.glyph.Render(p.Indent(p.indent+indent) + bulletGlyph)
	p.write(prefix + text(msg) + "\n")
}

// TreeItem writes msg prefixed by the indentation and a tree branch. The
// last branch glyph is used when ends is true.
func (p *Printer) TreeItem(msg any, ends bool, indent int) {
	glyph := branchGlyph
	if ends {
		glyph = lastLeafGlyph
	}
	prefix := p.styles.glyph.Render(p.Indent(p.indent+indent) + glyph)
	p.write(prefix + text(msg) + "\n")
}

// TreeList writes one TreeItem per item, closing the branch on the last one.
func (p *Printer) TreeList(items []string, indent int) {
	for i, item := range items {
		p.TreeItem(item, i == len(items)-1, indent)
	}
}

// YesOrNo returns "✔" for true and "✖" for false, colored with the success
// or error color when colored is set. It writes nothing.
func (p *Printer) YesOrNo(value, colored bool) string {
	glyph, style := noGlyph, p.styles.errorLine
	if value {
		glyph, style = yesGlyph, p.styles.success
	}
	if !colored {
		return glyph
	}
	return style.Render(glyph)
}

func (p *Printer) line(style lipgloss.Style, msg any) {
	p.write(p.Indent(p.indent) + render(style, text(msg)) + "\n")
}

func (p *Printer) title(style lipgloss.Style, msg any) {
	p.write(p.Indent(p.indent) + render(style, text(msg)) + "\n\n")
}

func (p *Printer) block(style lipgloss.Style, s Surround, msg any) {
	p.write("\n" + render(style, s.Left+text(msg)+s.Right) + "\n\n")
}

// render styles each line of s on its own so that lipgloss does not pad
// lines to a common width.
func render(style lipgloss.Style, s string) string {
	if !strings.Contains(s, "\n") {
		return style.Render(s)
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}

// write emits a full rendering in one call. Output errors are not
// actionable for a printer and are dropped.
func (p *Printer) write(s string) {
	_, _ = io.WriteString(p.w, s)
}

func text(msg any) string {
	if s, ok := msg.(string); ok {
		return s
	}
	return fmt.Sprint(msg)
}
