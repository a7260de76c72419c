package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/onestop/internal/keymap"
	"github.com/llehouerou/onestop/internal/ui"
	"github.com/llehouerou/onestop/internal/ui/headerbar"
	"github.com/llehouerou/onestop/internal/ui/layout"
	"github.com/llehouerou/onestop/internal/ui/playerbar"
	"github.com/llehouerou/onestop/internal/ui/render"
	"github.com/llehouerou/onestop/internal/ui/styles"
)

// layout resizes the catalog grid to the space left by the fixed rows.
func (m *Model) layout() {
	m.Catalog.SetSize(m.Width, layout.ContentHeight(m.Height, layout.ContentOpts{
		HeaderHeight:    headerbar.Height,
		PlayerBarHeight: playerbar.Height(m.state, m.DisplayMode, m.Width),
		StatusHeight:    ui.StatusHeight,
		HelpHeight:      m.helpHeight(),
	}))
}

func (m Model) helpHeight() int {
	return lipgloss.Height(m.helpView())
}

func (m Model) helpView() string {
	m.Help.Width = m.Width
	return m.Help.View(keymap.NewHelpMap(m.Keys))
}

// View implements tea.Model.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	parts := []string{
		headerbar.Render(Title, m.headerStatus(), m.Width),
		m.Catalog.View(),
	}
	if bar := playerbar.Render(m.state, m.barView(), m.Width); bar != "" {
		parts = append(parts, bar)
	}
	parts = append(parts, m.statusLine(), m.helpView())
	return strings.Join(parts, "\n")
}

func (m Model) barView() playerbar.View {
	v := playerbar.View{Mode: m.DisplayMode, Cover: m.coverSeq}
	if m.state.IsLoading() {
		v.Spinner = m.Spinner.View()
	}
	return v
}

func (m Model) headerStatus() string {
	switch {
	case m.fetching:
		return m.Spinner.View() + " fetching songs"
	case m.state.CatalogLen == 1:
		return "1 song"
	default:
		return fmt.Sprintf("%d songs", m.state.CatalogLen)
	}
}

func (m Model) statusLine() string {
	if m.ErrorMsg == "" {
		return ""
	}
	return styles.T().S().Error.Render(render.TruncateStyled(" "+m.ErrorMsg, m.Width))
}
