package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hodu-dev/hangul/internal/audio"
	"github.com/hodu-dev/hangul/internal/data"
	"github.com/hodu-dev/hangul/internal/hangul"
	"github.com/hodu-dev/hangul/internal/tui/bigchar"
	"github.com/hodu-dev/hangul/internal/tui/components"
)

// Compose view styles
var (
	composeColStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(0, 1).
			MarginRight(1)

	composeColActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#ffe66d")).
				Padding(0, 1).
				MarginRight(1)

	composeColTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#a8dadc"))

	composeItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888"))

	composeItemActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436"))
)

// ComposeModel is the syllable builder view model. Three columns pick
// an initial consonant, a vowel and an optional final consonant; the
// composed block is shown and played.
type ComposeModel struct {
	doc    *data.Document
	player *audio.Player

	// Column focus: 0=initial, 1=vowel, 2=final
	column  int
	initial int
	vowel   int
	final   int

	showReference bool

	width  int
	height int
}

// NewComposeModel creates a new compose view model.
func NewComposeModel(doc *data.Document, player *audio.Player) ComposeModel {
	return ComposeModel{doc: doc, player: player}
}

// SetDocument swaps the loaded document.
func (m *ComposeModel) SetDocument(doc *data.Document) {
	m.doc = doc
}

// SetSize updates the view dimensions.
func (m *ComposeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// current composes the syllable from the three selections.
func (m ComposeModel) current() components.SyllableResult {
	return components.Analyze(
		hangul.Initials[m.initial],
		hangul.Medials[m.vowel],
		hangul.Finals[m.final],
	)
}

func (m ComposeModel) columnLen(col int) int {
	switch col {
	case 0:
		return len(hangul.Initials)
	case 1:
		return len(hangul.Medials)
	default:
		return len(hangul.Finals)
	}
}

func (m *ComposeModel) selection(col int) *int {
	switch col {
	case 0:
		return &m.initial
	case 1:
		return &m.vowel
	default:
		return &m.final
	}
}

// Update handles messages.
func (m ComposeModel) Update(msg tea.Msg) (ComposeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "right", "l", "tab":
			m.column = (m.column + 1) % 3
			return m, nil
		case "left", "h", "shift+tab":
			m.column--
			if m.column < 0 {
				m.column = 2
			}
			return m, nil
		case "down", "j":
			sel := m.selection(m.column)
			if *sel < m.columnLen(m.column)-1 {
				*sel++
			}
			return m, nil
		case "up", "k":
			sel := m.selection(m.column)
			if *sel > 0 {
				*sel--
			}
			return m, nil
		case "r":
			m.initial, m.vowel, m.final = 0, 0, 0
			return m, nil
		case "s":
			m.showReference = !m.showReference
			return m, nil
		case " ", "enter":
			return m, m.play()
		}

	case playDoneMsg:
		return m, nil
	}

	return m, nil
}

// play routes through the pre-generated clip for open syllables and
// straight to speech for closed ones, which have no clip.
func (m ComposeModel) play() tea.Cmd {
	r := m.current()
	if r.Fallback {
		return playSpeech(m.player, r.Syllable)
	}
	if r.HasClip {
		return playKeyed(m.player, audio.CategorySyllables, r.ClipKey, r.Syllable)
	}
	return playSpeech(m.player, r.Syllable)
}

// View renders the compose view.
func (m ComposeModel) View() string {
	var b strings.Builder

	r := m.current()

	// Composed syllable
	contentWidth := m.width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}

	var charDisplay string
	if !r.Fallback && bigchar.IsAvailable() {
		if art := bigchar.GetCached(r.Syllable, 26, 13); art != "" {
			charDisplay = jamoStyle.Render(art)
		}
	}
	if charDisplay == "" {
		charDisplay = bigSyllableStyle.Render(r.Syllable)
	}

	romanDisplay := romanUnderStyle.Render(r.Romanized)
	charBlock := lipgloss.JoinVertical(lipgloss.Center, charDisplay, romanDisplay)
	b.WriteString(lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center).Render(charBlock))
	b.WriteString("\n")

	// Jamo columns
	cols := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderColumn(0, "Initial", hangul.Initials, m.initial),
		m.renderColumn(1, "Vowel", hangul.Medials, m.vowel),
		m.renderColumn(2, "Final", hangul.Finals, m.final),
		m.renderInfoBox(r),
	)
	b.WriteString(cols)
	b.WriteString("\n")

	if m.showReference {
		b.WriteString(m.renderStructureReference())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("←/→: column • ↑/↓: jamo • space: play • s: structure • r: reset"))

	return b.String()
}

// renderStructureReference shows the six-position block layout table
// from the data file.
func (m ComposeModel) renderStructureReference() string {
	if m.doc == nil || len(m.doc.Structure) == 0 {
		return helpStyle.Render("(no structure reference in data file)")
	}

	var lines []string
	for _, row := range m.doc.Structure {
		line := fmt.Sprintf("%s  %s %s",
			jamoStyle.Render(row.Example),
			romanStyle.Render(fmt.Sprintf("%-8s", row.Pattern)),
			valueStyle.Render(row.Description),
		)
		lines = append(lines, line)
	}

	return boxStyle.Render(
		subtitleStyle.Render("Block Structure") + "\n\n" + strings.Join(lines, "\n"),
	)
}

func (m ComposeModel) renderColumn(col int, title string, table []string, selected int) string {
	var b strings.Builder

	b.WriteString(composeColTitleStyle.Render(title))
	b.WriteString("\n")

	// Window of entries around the selection
	visible := m.height - 24
	if visible < 7 {
		visible = 7
	}
	start := selected - visible/2
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(table) {
		end = len(table)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	for i := start; i < end; i++ {
		entry := table[i]
		label := entry
		if entry == "" {
			label = "(none)"
		} else {
			switch col {
			case 0:
				label = fmt.Sprintf("%s %s", entry, hangul.InitialRomanization(i))
			case 1:
				label = fmt.Sprintf("%s %s", entry, hangul.MedialRomanization(i))
			}
		}

		style := composeItemStyle
		if i == selected {
			style = composeItemActiveStyle
		}
		b.WriteString(style.Render(fmt.Sprintf(" %-7s", label)))
		b.WriteString("\n")
	}

	if start > 0 || end < len(table) {
		b.WriteString(helpStyle.Render(fmt.Sprintf(" %d/%d", selected+1, len(table))))
	}

	frame := composeColStyle
	if col == m.column {
		frame = composeColActiveStyle
	}
	return frame.Render(strings.TrimRight(b.String(), "\n"))
}

func (m ComposeModel) renderInfoBox(r components.SyllableResult) string {
	var lines []string

	lines = append(lines, labelStyle.Render("Syllable:")+" "+jamoStyle.Render(r.Syllable))
	lines = append(lines, labelStyle.Render("Romanized:")+" "+romanStyle.Render(r.Romanized))

	if r.HasClip {
		lines = append(lines, labelStyle.Render("Clip:")+" "+valueStyle.Render(r.ClipKey+".mp3"))
	} else if r.HasBatchim {
		lines = append(lines, labelStyle.Render("Clip:")+" "+helpStyle.Render("none (spoken)"))
	}

	if r.HasBatchim {
		lines = append(lines, labelStyle.Render("Batchim:")+" "+jamoStyle.Render(r.Final))
	}

	return boxStyle.Render(
		subtitleStyle.Render("Result") + "\n\n" + strings.Join(lines, "\n"),
	)
}
