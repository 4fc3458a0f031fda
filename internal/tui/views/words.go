package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hodu-dev/hangul/internal/audio"
	"github.com/hodu-dev/hangul/internal/data"
)

// Words view styles
var (
	wordRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee")).
			Padding(0, 1)

	wordRowActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436")).
				Padding(0, 1)

	wordSearchBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#ffe66d")).
				Padding(0, 1)
)

// WordsModel is the categorized word browser view model.
type WordsModel struct {
	doc    *data.Document
	player *audio.Player

	category int
	selected int

	// Search
	searchInput textinput.Model
	searching   bool
	query       string

	width  int
	height int
}

// NewWordsModel creates a new words view model.
func NewWordsModel(doc *data.Document, player *audio.Player) WordsModel {
	ti := textinput.New()
	ti.Placeholder = "Search words..."
	ti.CharLimit = 40
	ti.Width = 30
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))

	return WordsModel{doc: doc, player: player, searchInput: ti}
}

// SetDocument swaps the loaded document.
func (m *WordsModel) SetDocument(doc *data.Document) {
	m.doc = doc
	m.category = 0
	m.selected = 0
	m.query = ""
	m.searching = false
	m.searchInput.SetValue("")
}

// SetSize updates the view dimensions.
func (m *WordsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Searching reports whether the search input has focus, so the app
// shell can keep global shortcuts out of typed text.
func (m WordsModel) Searching() bool {
	return m.searching
}

func (m WordsModel) words() []data.Word {
	if m.doc == nil || m.category >= len(m.doc.Categories) {
		return nil
	}
	all := m.doc.Categories[m.category].Words
	if m.query == "" {
		return all
	}

	q := strings.ToLower(m.query)
	var filtered []data.Word
	for _, w := range all {
		if strings.Contains(w.Korean, m.query) ||
			strings.Contains(strings.ToLower(w.English), q) ||
			strings.Contains(strings.ToLower(w.Romanization), q) {
			filtered = append(filtered, w)
		}
	}
	return filtered
}

// Update handles messages.
func (m WordsModel) Update(msg tea.Msg) (WordsModel, tea.Cmd) {
	if m.doc == nil || len(m.doc.Categories) == 0 {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Search input captures keys while active
		if m.searching {
			switch msg.String() {
			case "enter":
				m.query = strings.TrimSpace(m.searchInput.Value())
				m.searching = false
				m.selected = 0
				return m, nil
			case "esc":
				m.searching = false
				m.query = ""
				m.searchInput.SetValue("")
				return m, nil
			}
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "/":
			m.searching = true
			m.searchInput.Focus()
			return m, textinput.Blink
		case "esc":
			if m.query != "" {
				m.query = ""
				m.searchInput.SetValue("")
				m.selected = 0
				return m, nil
			}
		case "tab", "right", "l":
			m.category = (m.category + 1) % len(m.doc.Categories)
			m.selected = 0
			return m, nil
		case "shift+tab", "left", "h":
			m.category--
			if m.category < 0 {
				m.category = len(m.doc.Categories) - 1
			}
			m.selected = 0
			return m, nil
		case "down", "j":
			if m.selected < len(m.words())-1 {
				m.selected++
			}
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case " ", "enter":
			words := m.words()
			if m.selected < len(words) {
				w := words[m.selected]
				return m, playKeyed(m.player, audio.CategoryWords, w.ClipKey(), w.Korean)
			}
			return m, nil
		}

	case playDoneMsg:
		return m, nil
	}

	return m, nil
}

// View renders the words view.
func (m WordsModel) View() string {
	if m.doc == nil || len(m.doc.Categories) == 0 {
		return noDataStyle.Render("No word categories in the loaded data file")
	}

	var b strings.Builder

	// Category tabs
	var tabViews []string
	for i, cat := range m.doc.Categories {
		style := tabStyle
		if i == m.category {
			style = tabActiveStyle
		}
		tabViews = append(tabViews, style.Render(fmt.Sprintf("%s (%d)", cat.Name, len(cat.Words))))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabViews...))
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", minInt(m.width-4, 60))))
	b.WriteString("\n\n")

	// Search box
	if m.searching {
		b.WriteString(wordSearchBoxStyle.Render(m.searchInput.View()))
		b.WriteString("\n\n")
	} else if m.query != "" {
		b.WriteString(helpStyle.Render("Filter: ") + romanStyle.Render(m.query))
		b.WriteString("\n\n")
	}

	// Word list next to detail
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderList(), " ", m.renderDetail()))
	b.WriteString("\n\n")

	if m.searching {
		b.WriteString(helpStyle.Render("enter: apply filter • esc: cancel"))
	} else {
		b.WriteString(helpStyle.Render("tab/←→: category • j/k: word • space: play • /: search"))
	}

	return b.String()
}

func (m WordsModel) renderList() string {
	words := m.words()
	if len(words) == 0 {
		return boxStyle.Render(helpStyle.Render("(no matches)"))
	}
	var rows []string

	for i, w := range words {
		row := fmt.Sprintf("%-14s %s", w.Korean, w.English)
		style := wordRowStyle
		if i == m.selected {
			style = wordRowActiveStyle
		}
		rows = append(rows, style.Render(row))
	}

	return boxStyle.Render(strings.Join(rows, "\n"))
}

func (m WordsModel) renderDetail() string {
	words := m.words()
	if m.selected >= len(words) {
		return ""
	}
	w := words[m.selected]

	var b strings.Builder

	b.WriteString(bigSyllableStyle.Render(w.Korean))
	b.WriteString("\n")
	b.WriteString(romanUnderStyle.Render(w.Romanization))
	b.WriteString("\n")
	b.WriteString(valueStyle.Render(w.English))
	b.WriteString("\n\n")
	b.WriteString(renderBreakdownBox(w))

	return b.String()
}
