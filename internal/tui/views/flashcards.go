package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hodu-dev/hangul/internal/audio"
	"github.com/hodu-dev/hangul/internal/data"
	"github.com/hodu-dev/hangul/internal/tui/bigchar"
	"github.com/hodu-dev/hangul/internal/tui/components"
)

// Flashcard view styles
var (
	cardWordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d")).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(2, 8).
			Align(lipgloss.Center)

	cardRomanStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4")).
			Bold(true).
			Align(lipgloss.Center).
			Padding(1, 1)

	cardEnglishStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f1faee")).
				Align(lipgloss.Center)

	cardProgressStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888"))

	cardFlipHintStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#4ecdc4")).
				Bold(true).
				Align(lipgloss.Center)
)

type flashcard struct {
	word     data.Word
	category string
}

// FlashcardsModel is the word flashcard view model.
type FlashcardsModel struct {
	player *audio.Player

	cards   []flashcard
	current int
	flipped bool

	width  int
	height int
}

// NewFlashcardsModel creates a new flashcard view model.
func NewFlashcardsModel(doc *data.Document, player *audio.Player) FlashcardsModel {
	m := FlashcardsModel{player: player}
	m.SetDocument(doc)
	return m
}

// SetDocument rebuilds the card list from the document.
func (m *FlashcardsModel) SetDocument(doc *data.Document) {
	m.cards = nil
	m.current = 0
	m.flipped = false

	if doc == nil {
		return
	}
	for _, cat := range doc.Categories {
		for _, w := range cat.Words {
			m.cards = append(m.cards, flashcard{word: w, category: cat.Name})
		}
	}
}

// SetSize updates the view dimensions.
func (m *FlashcardsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m FlashcardsModel) Update(msg tea.Msg) (FlashcardsModel, tea.Cmd) {
	if len(m.cards) == 0 {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case " ", "enter":
			m.flipped = !m.flipped
			if m.flipped {
				// Reveal also pronounces the word
				return m, m.playCurrent()
			}
			return m, nil
		case "right", "l", "n":
			if m.current < len(m.cards)-1 {
				m.current++
				m.flipped = false
			}
			return m, nil
		case "left", "h":
			if m.current > 0 {
				m.current--
				m.flipped = false
			}
			return m, nil
		case "r":
			m.current = 0
			m.flipped = false
			return m, nil
		case "p":
			return m, m.playCurrent()
		}

	case playDoneMsg:
		return m, nil
	}

	return m, nil
}

func (m FlashcardsModel) playCurrent() tea.Cmd {
	if m.current >= len(m.cards) {
		return nil
	}
	w := m.cards[m.current].word
	return playKeyed(m.player, audio.CategoryWords, w.ClipKey(), w.Korean)
}

// View renders the flashcard view.
func (m FlashcardsModel) View() string {
	if len(m.cards) == 0 {
		return noDataStyle.Render("No words in the loaded data file")
	}

	var b strings.Builder
	card := m.cards[m.current]

	progress := cardProgressStyle.Render(
		fmt.Sprintf("Card %d of %d • %s", m.current+1, len(m.cards), card.category),
	)
	b.WriteString(progress)
	b.WriteString("\n\n")

	contentWidth := m.width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}

	if m.flipped {
		b.WriteString(m.renderBack(card, contentWidth))
	} else {
		b.WriteString(m.renderFront(card, contentWidth))
	}

	b.WriteString("\n\n")
	helpText := "space: flip • ←/→: prev/next • p: play • r: reset"
	b.WriteString(helpStyle.Render(helpText))

	return b.String()
}

func (m FlashcardsModel) renderFront(card flashcard, contentWidth int) string {
	display := m.renderWordArt(card.word)
	block := lipgloss.NewStyle().
		Width(contentWidth).
		Align(lipgloss.Center).
		Render(display)

	hint := cardFlipHintStyle.Width(contentWidth).Render("Press SPACE to reveal")

	return block + "\n\n" + hint
}

func (m FlashcardsModel) renderBack(card flashcard, contentWidth int) string {
	var b strings.Builder
	w := card.word

	display := m.renderWordArt(w)
	romanDisplay := cardRomanStyle.Render(w.Romanization)
	block := lipgloss.JoinVertical(lipgloss.Center, display, romanDisplay)
	b.WriteString(lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center).Render(block))
	b.WriteString("\n")

	b.WriteString(cardEnglishStyle.Width(contentWidth).Render(w.English))
	b.WriteString("\n\n")

	b.WriteString(renderBreakdownBox(w))

	return b.String()
}

// renderWordArt renders each syllable as block art, side by side, with
// a styled text fallback when no font is available.
func (m FlashcardsModel) renderWordArt(w data.Word) string {
	if bigchar.IsAvailable() {
		perSyllable := 14
		if max := (m.width - 8) / len([]rune(w.Korean)); max > 0 && max < perSyllable {
			perSyllable = max
		}
		var blocks []string
		for _, r := range w.Korean {
			if art := bigchar.GetCached(string(r), perSyllable, 7); art != "" {
				blocks = append(blocks, jamoStyle.Render(art))
			}
		}
		if len(blocks) == len([]rune(w.Korean)) {
			return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
		}
	}
	return cardWordStyle.Render(w.Korean)
}

// renderBreakdownBox shows the jamo decomposition of every syllable.
// Shared with the words view.
func renderBreakdownBox(w data.Word) string {
	var lines []string

	for i, syllable := range w.Syllables {
		var jamoPart string
		if i < len(w.Breakdown) {
			bd := w.Breakdown[i]
			parts := []string{bd.Initial, bd.Vowel}
			if bd.Final != "" {
				parts = append(parts, bd.Final)
			}
			jamoPart = strings.Join(parts, " + ")
		}

		roman := ""
		if runes := []rune(syllable); len(runes) > 0 {
			if result, ok := components.AnalyzeRune(runes[0]); ok {
				roman = result.Romanized
			}
		}

		line := fmt.Sprintf("%s  %s → %s",
			labelStyle.Render(syllable),
			jamoStyle.Render(jamoPart),
			romanStyle.Render(roman),
		)
		lines = append(lines, line)
	}

	return boxStyle.Render(
		subtitleStyle.Render("Syllable Breakdown") + "\n\n" + strings.Join(lines, "\n"),
	)
}
