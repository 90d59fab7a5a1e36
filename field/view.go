package field

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tablefield/gridview"
)

const (
	markerExpanded  = "▾"
	markerCollapsed = "▸"
)

func (m Model) View() string {
	st := m.cfg.Style
	parts := m.header()
	if !m.collapsed {
		if m.value.Present() {
			parts = append(parts, m.grid.View())
		}
		parts = append(parts, m.renderButtons())
		if m.cfg.ShowHelp {
			parts = append(parts, st.Help.Render(m.help.ShortHelpView(m.helpBindings())))
		}
	}
	return st.Fieldset.Render(strings.Join(parts, "\n"))
}

// header returns the legend and description lines.
func (m Model) header() []string {
	st := m.cfg.Style
	var out []string

	legend := m.cfg.Title
	if m.cfg.Options.Collapsible {
		marker := markerExpanded
		if m.collapsed {
			marker = markerCollapsed
		}
		legend = strings.TrimSpace(marker + " " + legend)
	}
	if legend != "" {
		out = append(out, st.Legend.Render(legend))
	}
	if m.cfg.Description != "" && !m.collapsed {
		out = append(out, st.Description.Render(m.cfg.Description))
	}
	return out
}

func (m Model) renderButtons() string {
	labels := m.buttonLabels()
	return strings.Join(labels, " ")
}

func (m Model) buttonLabels() []string {
	st := m.cfg.Style
	buttons := m.Buttons()
	out := make([]string, len(buttons))
	for i, b := range buttons {
		s := st.Button
		switch {
		case b.Disabled:
			s = st.ButtonDisabled
		case b.Action == ActionClear:
			s = st.ButtonDanger
		case b.Action == ActionNewTable:
			s = st.ButtonPrimary
		}
		if m.focused && m.zone == focusBar && i == m.button {
			s = st.ButtonFocused
		}
		out[i] = s.Render("[" + b.Action.String() + "]")
	}
	return out
}

func (m Model) helpBindings() []key.Binding {
	km := m.cfg.KeyMap
	if m.zone == focusGrid {
		return append(gridview.DefaultKeyMap().ShortHelp(), km.SwitchFocus, km.Undo)
	}
	return km.ShortHelp()
}

// chromeHeight is the number of lines the form adds around the grid.
func (m Model) chromeHeight() int {
	st := m.cfg.Style
	h := len(m.header()) + 1 // buttons
	if m.cfg.ShowHelp {
		h++
	}
	return h + st.Fieldset.GetVerticalFrameSize()
}

func (m Model) gridSize() (int, int) {
	w := m.width - m.cfg.Style.Fieldset.GetHorizontalFrameSize()
	if w < 0 {
		w = 0
	}
	if m.height <= 0 {
		return w, 0
	}
	h := m.height - m.chromeHeight()
	if h < 1 {
		h = 1
	}
	return w, h
}

// origin returns the screen offset of the first line after the header.
func (m Model) origin() (x, y int) {
	st := m.cfg.Style.Fieldset
	x = st.GetBorderLeftSize() + st.GetPaddingLeft()
	y = st.GetBorderTopSize() + st.GetPaddingTop() + len(m.header())
	return x, y
}

// buttonAt maps an x offset on the button line to a button index.
func (m Model) buttonAt(x int) (int, bool) {
	start := 0
	for i, label := range m.buttonLabels() {
		w := lipgloss.Width(label)
		if x >= start && x < start+w {
			return i, true
		}
		start += w + 1
	}
	return 0, false
}
