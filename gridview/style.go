package gridview

import "github.com/charmbracelet/lipgloss"

// Style controls the grid's rendering.
type Style struct {
	Cell        lipgloss.Style
	CellFocused lipgloss.Style
	Heading     lipgloss.Style
	FirstRow    lipgloss.Style
	Separator   lipgloss.Style

	Handle     lipgloss.Style
	HandleDrag lipgloss.Style
	DropTarget lipgloss.Style

	Remover        lipgloss.Style
	RemoverFocused lipgloss.Style

	// Glyphs. Empty values fall back to the defaults below.
	HandleGlyph  string
	RemoverGlyph string
	SepGlyph     string
}

const (
	defaultHandleGlyph  = "⠿"
	defaultRemoverGlyph = "✕"
	defaultSepGlyph     = "│"
)

func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Cell:           lipgloss.NewStyle(),
		CellFocused:    lipgloss.NewStyle().Reverse(true),
		Heading:        lipgloss.NewStyle().Bold(true),
		FirstRow:       lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("236")),
		Separator:      dim,
		Handle:         dim,
		HandleDrag:     lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		DropTarget:     lipgloss.NewStyle().Underline(true),
		Remover:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		RemoverFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Reverse(true),
	}
}

func (s Style) glyphs() (handle, remover, sep string) {
	handle, remover, sep = s.HandleGlyph, s.RemoverGlyph, s.SepGlyph
	if handle == "" {
		handle = defaultHandleGlyph
	}
	if remover == "" {
		remover = defaultRemoverGlyph
	}
	if sep == "" {
		sep = defaultSepGlyph
	}
	return handle, remover, sep
}
