package catalogview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/onestop/internal/icons"
	"github.com/llehouerou/onestop/internal/ui/render"
	"github.com/llehouerou/onestop/internal/ui/styles"
)

// View renders the visible rows of the grid.
func (m Model) View() string {
	width, height := m.Size()
	if width <= 0 || height <= 0 {
		return ""
	}
	st := styles.T().S()

	switch {
	case m.err != "":
		return m.message(st.Error.Render(render.TruncateStyled(m.err, width)))
	case m.loading:
		return m.message(st.Muted.Render("Loading songs…"))
	case len(m.tracks) == 0:
		return m.message(st.Muted.Render("No songs available"))
	}

	cols := m.Columns()
	start, end := m.cursor.VisibleRows(len(m.tracks), cols, m.visibleRows())

	rows := make([]string, 0, end-start)
	for r := start; r < end; r++ {
		cards := make([]string, 0, cols)
		for c := range cols {
			i := r*cols + c
			if i >= len(m.tracks) {
				break
			}
			cards = append(cards, m.renderCard(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	out := strings.Join(rows, "\n")
	return lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).Render(out)
}

func (m Model) message(s string) string {
	width, height := m.Size()
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s)
}

func (m Model) renderCard(i int) string {
	st := styles.T().S()
	t := m.tracks[i]
	inner := max(m.cardWidth()-4, 1) // border and padding

	title := render.Sanitize(t.DisplayTitle())
	titleStyle := st.Title
	if i == m.current {
		marker := icons.Playing()
		if !m.playing {
			marker = icons.PlayState(false, true) + " "
		}
		title = marker + title
		titleStyle = st.Playing
	}
	artist := render.Sanitize(t.Artist)
	if artist == "" {
		artist = "Unknown Artist"
	}

	body := titleStyle.Render(render.TruncateAndPad(title, inner)) + "\n" +
		st.Muted.Render(render.TruncateAndPad(artist, inner))

	style := st.Card
	if i == m.cursor.Pos() {
		style = st.CardCursor
	}
	return style.Width(m.cardWidth() - 2).Render(body)
}
