// Package views provides the individual views for the unified TUI.
package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hodu-dev/hangul/internal/audio"
	"github.com/hodu-dev/hangul/internal/clipboard"
	"github.com/hodu-dev/hangul/internal/data"
	"github.com/hodu-dev/hangul/internal/llm"
	"github.com/hodu-dev/hangul/internal/tui/bigchar"
	"github.com/mattn/go-runewidth"
)

// Shared view styles
var (
	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4"))

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 2)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d")).
			Background(lipgloss.Color("#2d3436")).
			Padding(0, 2)

	bigSyllableStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#1a1a2e")).
				Padding(2, 8).
				Align(lipgloss.Center)

	romanUnderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4")).
			Bold(true).
			Align(lipgloss.Center).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	jamoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d")).
			Bold(true)

	romanStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(1, 2)

	mnemonicBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#ff6b6b")).
				Padding(1, 2).
				Margin(1, 0)

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d")).
			Bold(true).
			Italic(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)

	noDataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Bold(true)

	dividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3d5a80"))
)

// playDoneMsg reports a finished (or abandoned) playback request.
type playDoneMsg struct{}

// playLetter plays a letter's recording chain, speaking the jamo when
// no clip is available.
func playLetter(player *audio.Player, l data.Letter) tea.Cmd {
	if player == nil {
		return nil
	}
	var sources []audio.Source
	if l.AudioFile != "" {
		sources = audio.LetterSources(l.AudioFile)
	}
	return func() tea.Msg {
		player.Play(context.Background(), sources, l.Char)
		return playDoneMsg{}
	}
}

// playKeyed plays a single pre-generated clip, speaking text when the
// clip is missing.
func playKeyed(player *audio.Player, category, key, text string) tea.Cmd {
	if player == nil {
		return nil
	}
	return func() tea.Msg {
		player.PlayKeyed(context.Background(), category, key, text)
		return playDoneMsg{}
	}
}

// playSpeech goes straight to the speech synthesizer.
func playSpeech(player *audio.Player, text string) tea.Cmd {
	if player == nil {
		return nil
	}
	return func() tea.Msg {
		player.Play(context.Background(), nil, text)
		return playDoneMsg{}
	}
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

type mnemonicResultMsg struct {
	char     string
	mnemonic string
	err      error
}

// AlphabetModel is the letter grid view model.
type AlphabetModel struct {
	doc       *data.Document
	player    *audio.Player
	llmClient *llm.Client

	// Tabs: 0=Consonants, 1=Vowels
	tab      int
	selected int
	cols     int

	// Generated mnemonics, keyed by jamo
	mnemonics          map[string]string
	mnemonicGenerating bool
	mnemonicErr        error

	copied bool

	width  int
	height int
}

// NewAlphabetModel creates a new alphabet view model.
func NewAlphabetModel(doc *data.Document, player *audio.Player, llmClient *llm.Client) AlphabetModel {
	return AlphabetModel{
		doc:       doc,
		player:    player,
		llmClient: llmClient,
		cols:      7,
		mnemonics: make(map[string]string),
	}
}

// SetDocument swaps the loaded alphabet document.
func (m *AlphabetModel) SetDocument(doc *data.Document) {
	m.doc = doc
	m.selected = 0
	m.mnemonicErr = nil
}

// SetSize updates the view dimensions.
func (m *AlphabetModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m AlphabetModel) letters() []data.Letter {
	if m.doc == nil {
		return nil
	}
	if m.tab == 0 {
		return m.doc.Consonants
	}
	return m.doc.Vowels
}

// Update handles messages.
func (m AlphabetModel) Update(msg tea.Msg) (AlphabetModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		letters := m.letters()

		switch msg.String() {
		case "tab", "shift+tab":
			m.tab = (m.tab + 1) % 2
			m.selected = 0
			m.mnemonicErr = nil
			return m, nil
		case "right", "l":
			if m.selected < len(letters)-1 {
				m.selected++
			}
			return m, nil
		case "left", "h":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected+m.cols < len(letters) {
				m.selected += m.cols
			}
			return m, nil
		case "up", "k":
			if m.selected-m.cols >= 0 {
				m.selected -= m.cols
			}
			return m, nil
		case " ", "enter":
			if m.selected < len(letters) {
				return m, playLetter(m.player, letters[m.selected])
			}
			return m, nil
		case "g":
			if m.selected < len(letters) && !m.mnemonicGenerating {
				if m.llmClient == nil {
					m.mnemonicErr = fmt.Errorf("ANTHROPIC_API_KEY not set")
					return m, nil
				}
				m.mnemonicGenerating = true
				m.mnemonicErr = nil
				return m, m.generateMnemonic(letters[m.selected])
			}
			return m, nil
		case "y":
			if text := m.currentMnemonic(); text != "" {
				if err := clipboard.Write(text); err == nil {
					m.copied = true
					return m, clearCopiedAfter(2 * time.Second)
				}
			}
			return m, nil
		}

	case mnemonicResultMsg:
		m.mnemonicGenerating = false
		if msg.err != nil {
			m.mnemonicErr = msg.err
		} else {
			m.mnemonics[msg.char] = msg.mnemonic
		}
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case playDoneMsg:
		return m, nil
	}

	return m, nil
}

// currentMnemonic prefers the generated mnemonic over the data file's.
func (m AlphabetModel) currentMnemonic() string {
	letters := m.letters()
	if m.selected >= len(letters) {
		return ""
	}
	l := letters[m.selected]
	if text, ok := m.mnemonics[l.Char]; ok {
		return text
	}
	return l.Mnemonic
}

func (m AlphabetModel) generateMnemonic(l data.Letter) tea.Cmd {
	client := m.llmClient

	elements := llm.LetterElements{
		Char:         l.Char,
		Romanization: l.Romanization,
		Type:         l.Type,
		Articulatory: l.Articulatory,
		Examples:     m.exampleWords(l.Char),
	}

	return func() tea.Msg {
		mnemonic, err := client.GenerateMnemonic(elements)
		return mnemonicResultMsg{char: l.Char, mnemonic: mnemonic, err: err}
	}
}

// exampleWords finds up to three flashcard words containing the jamo.
func (m AlphabetModel) exampleWords(jamo string) []string {
	if m.doc == nil {
		return nil
	}
	var examples []string
	for _, cat := range m.doc.Categories {
		for _, w := range cat.Words {
			for _, b := range w.Breakdown {
				if b.Initial == jamo || b.Vowel == jamo || b.Final == jamo {
					examples = append(examples, w.Korean)
					break
				}
			}
			if len(examples) >= 3 {
				return examples
			}
		}
	}
	return examples
}

// View renders the alphabet view.
func (m AlphabetModel) View() string {
	if m.doc == nil {
		return noDataStyle.Render("No alphabet data loaded")
	}

	var b strings.Builder

	// Tabs
	tabs := []string{
		fmt.Sprintf("Consonants (%d)", len(m.doc.Consonants)),
		fmt.Sprintf("Vowels (%d)", len(m.doc.Vowels)),
	}
	var tabViews []string
	for i, t := range tabs {
		style := tabStyle
		if i == m.tab {
			style = tabActiveStyle
		}
		tabViews = append(tabViews, style.Render(t))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabViews...))
	b.WriteString("\n")
	b.WriteString(dividerStyle.Render(strings.Repeat("─", minInt(m.width-4, 60))))
	b.WriteString("\n\n")

	// Letter grid
	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	// Selected letter detail
	letters := m.letters()
	if m.selected < len(letters) {
		b.WriteString(m.renderDetail(letters[m.selected]))
	}

	// Help
	b.WriteString("\n")
	helpParts := []string{"←↓↑→: navigate", "tab: consonants/vowels", "space: play"}
	if m.currentMnemonic() == "" {
		helpParts = append(helpParts, "g: mnemonic")
	} else {
		helpParts = append(helpParts, "y: copy mnemonic")
	}
	b.WriteString(helpStyle.Render(strings.Join(helpParts, " • ")))

	return b.String()
}

func (m AlphabetModel) renderGrid() string {
	letters := m.letters()
	var rows []string

	for start := 0; start < len(letters); start += m.cols {
		end := start + m.cols
		if end > len(letters) {
			end = len(letters)
		}

		var cells []string
		for i := start; i < end; i++ {
			l := letters[i]
			cell := fmt.Sprintf(" %s %-3s", l.Char, l.Romanization)

			var style lipgloss.Style
			if i == m.selected {
				style = tabActiveStyle
			} else {
				style = lipgloss.NewStyle().Foreground(lipgloss.Color("#f1faee")).Padding(0, 1)
			}
			cells = append(cells, style.Render(cell))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(rows, "\n")
}

func (m AlphabetModel) renderDetail(l data.Letter) string {
	var b strings.Builder

	contentWidth := m.width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}

	// Big rendering of the jamo
	var charDisplay string
	if bigchar.IsAvailable() {
		if art := bigchar.GetCached(l.Char, 24, 12); art != "" {
			charDisplay = jamoStyle.Render(art)
		}
	}
	if charDisplay == "" {
		charDisplay = bigSyllableStyle.Render(l.Char)
	}

	romanDisplay := romanUnderStyle.Render(l.Romanization)
	charBlock := lipgloss.JoinVertical(lipgloss.Center, charDisplay, romanDisplay)
	b.WriteString(lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center).Render(charBlock))
	b.WriteString("\n")

	// Detail box
	var lines []string
	lines = append(lines, labelStyle.Render("Sound:")+" "+romanStyle.Render(l.Romanization))
	if l.Type != "" {
		lines = append(lines, labelStyle.Render("Type:")+" "+valueStyle.Render(l.Type))
	}
	if l.Articulatory != "" {
		lines = append(lines, labelStyle.Render("Articulation:")+" "+valueStyle.Render(l.Articulatory))
	}
	if l.WhisperTest != "" {
		lines = append(lines, labelStyle.Render("Whisper test:")+" "+valueStyle.Render(l.WhisperTest))
	}
	b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")

	// Mnemonic
	if m.mnemonicGenerating {
		b.WriteString("\n")
		b.WriteString(loadingStyle.Render("Generating mnemonic..."))
		b.WriteString("\n")
	} else if m.mnemonicErr != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.mnemonicErr.Error()))
		b.WriteString("\n")
	} else if text := m.currentMnemonic(); text != "" {
		width := 70
		if m.width > 0 && m.width-10 < width {
			width = m.width - 10
		}
		header := subtitleStyle.Render("Mnemonic")
		if m.copied {
			header += "  " + copiedStyle.Render("Copied!")
		}
		b.WriteString(mnemonicBoxStyle.Width(width).Render(
			header + "\n\n" + wordWrap(text, width-6),
		))
	}

	return b.String()
}

func wordWrap(s string, width int) string {
	if width <= 0 {
		width = 60
	}
	var lines []string
	var currentLine strings.Builder
	currentWidth := 0

	words := strings.Fields(s)
	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth+wordWidth+1 > width && currentWidth > 0 {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			currentLine.WriteString(" ")
			currentWidth++
		}
		currentLine.WriteString(word)
		currentWidth += wordWidth
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}
	return strings.Join(lines, "\n")
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
