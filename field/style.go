package field

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tablefield/gridview"
)

// Style controls the form chrome. Grid styles the embedded grid.
type Style struct {
	Fieldset    lipgloss.Style
	Legend      lipgloss.Style
	Description lipgloss.Style
	Empty       lipgloss.Style

	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style
	ButtonDanger   lipgloss.Style
	ButtonPrimary  lipgloss.Style

	Help lipgloss.Style

	Grid gridview.Style
}

func DefaultStyle() Style {
	button := lipgloss.NewStyle().Padding(0, 1)
	return Style{
		Fieldset: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Legend:         lipgloss.NewStyle().Bold(true),
		Description:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Empty:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		Button:         button.Foreground(lipgloss.Color("252")),
		ButtonFocused:  button.Reverse(true),
		ButtonDisabled: button.Foreground(lipgloss.Color("238")),
		ButtonDanger:   button.Foreground(lipgloss.Color("9")),
		ButtonPrimary:  button.Foreground(lipgloss.Color("12")).Bold(true),
		Help:           lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Grid:           gridview.DefaultStyle(),
	}
}
