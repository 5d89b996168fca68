// Package styles provides shared lipgloss styles for CLI output.
package styles

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Semantic palette used across the CLI (tokyo-night).
var (
	ColorPrimary   = lipgloss.Color("#7aa2f7")
	ColorSecondary = lipgloss.Color("#7dcfff")
	ColorMuted     = lipgloss.Color("#565f89")
	ColorSuccess   = lipgloss.Color("#9ece6a")
	ColorWarning   = lipgloss.Color("#e0af68")
	ColorError     = lipgloss.Color("#f7768e")
	ColorAccent    = lipgloss.Color("#bb9af7")
)

// tagColors maps category tags to their display color.
var tagColors = map[string]lipgloss.Color{
	"READ":   ColorSecondary,
	"WRITE":  ColorSuccess,
	"EDIT":   ColorWarning,
	"BASH":   ColorPrimary,
	"GREP":   ColorAccent,
	"GLOB":   ColorAccent,
	"LS":     ColorMuted,
	"WEB":    ColorSecondary,
	"SEARCH": ColorSecondary,
	"TASK":   ColorPrimary,
	"TOOL":   ColorMuted,
	"TODO":   ColorSuccess,
	"AGENT":  ColorPrimary,
}

// Painter renders category tags, optionally colored. A nil Painter
// renders plain text.
type Painter struct {
	enabled bool
	styles  map[string]lipgloss.Style
}

// NewPainter creates a Painter for the given output writer and color
// mode (auto, always, never). In auto mode colors are enabled only
// when w is a terminal; always forces a TrueColor profile so piped
// output keeps its ANSI sequences.
func NewPainter(w io.Writer, mode string) *Painter {
	enabled := false

	switch mode {
	case "always":
		enabled = true
	case "auto":
		if f, ok := w.(*os.File); ok {
			enabled = term.IsTerminal(int(f.Fd()))
		}
	}

	if !enabled {
		return &Painter{}
	}

	renderer := lipgloss.NewRenderer(w)
	if mode == "always" {
		renderer.SetColorProfile(termenv.TrueColor)
	}

	styles := make(map[string]lipgloss.Style, len(tagColors))
	for tag, color := range tagColors {
		styles[tag] = renderer.NewStyle().Foreground(color).Bold(true)
	}

	return &Painter{enabled: true, styles: styles}
}

// Tag renders a category tag.
func (p *Painter) Tag(tag string) string {
	if p == nil || !p.enabled {
		return tag
	}
	if style, ok := p.styles[tag]; ok {
		return style.Render(tag)
	}
	return tag
}
