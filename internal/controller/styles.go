package controller

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/bundlepatch/internal/model"
)

// Styles colours report words. A nil *Styles renders plain text.
type Styles struct {
	ok      lipgloss.Style
	missing lipgloss.Style
	unknown lipgloss.Style
}

// NewStyles builds styles bound to the terminal behind w.
func NewStyles(w io.Writer) *Styles {
	renderer := lipgloss.NewRenderer(w)

	return &Styles{
		ok:      renderer.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		missing: renderer.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		unknown: renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

func (s *Styles) report(report m.Report) string {
	word := string(report)
	if s == nil {
		return word
	}

	switch report {
	case m.ReportOK:
		return s.ok.Render(word)
	case m.ReportMissing:
		return s.missing.Render(word)
	default:
		return s.unknown.Render(word)
	}
}
