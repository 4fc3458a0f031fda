package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hodu-dev/hangul/internal/audio"
	"github.com/hodu-dev/hangul/internal/config"
	"github.com/hodu-dev/hangul/internal/data"
	"github.com/hodu-dev/hangul/internal/llm"
	"github.com/hodu-dev/hangul/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewAlphabet ViewType = iota
	ViewCompose
	ViewFlashcards
	ViewWords
	ViewFilePicker
	ViewSettings
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// ViewSwitchMsg requests a view change
type ViewSwitchMsg struct {
	View ViewType
}

// DocumentLoadedMsg is sent when an alphabet data file is loaded
type DocumentLoadedMsg struct {
	Document *data.Document
	Path     string
	Err      error
}

// AppModel is the main unified TUI model
type AppModel struct {
	// Core dependencies
	doc       *data.Document
	config    *config.Config
	player    *audio.Player
	llmClient *llm.Client

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	alphabetView   views.AlphabetModel
	composeView    views.ComposeModel
	flashcardsView views.FlashcardsModel
	wordsView      views.WordsModel
	filePickerView views.FilePickerModel
	settingsView   views.SettingsModel

	// Loaded data file
	dataPath string

	// Help overlay
	showHelp bool
}

// NewApp creates a new unified TUI application
func NewApp(doc *data.Document, cfg *config.Config, player *audio.Player) AppModel {
	llmClient, _ := llm.NewClient()

	menuItems := []MenuItem{
		{Label: "Alphabet", View: ViewAlphabet, Shortcut: "1"},
		{Label: "Compose", View: ViewCompose, Shortcut: "2"},
		{Label: "Flashcards", View: ViewFlashcards, Shortcut: "3"},
		{Label: "Words", View: ViewWords, Shortcut: "4"},
		{Label: "Open Data", View: ViewFilePicker, Shortcut: "5"},
		{Label: "Settings", View: ViewSettings, Shortcut: "6"},
	}

	app := AppModel{
		doc:           doc,
		config:        cfg,
		player:        player,
		llmClient:     llmClient,
		sidebarWidth:  18,
		currentView:   ViewAlphabet,
		menuItems:     menuItems,
		sidebarActive: false,

		alphabetView:   views.NewAlphabetModel(doc, player, llmClient),
		composeView:    views.NewComposeModel(doc, player),
		flashcardsView: views.NewFlashcardsModel(doc, player),
		wordsView:      views.NewWordsModel(doc, player),
		filePickerView: views.NewFilePickerModel(),
		settingsView:   views.NewSettingsModel(cfg, doc),
	}

	return app
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// While the word search has focus, only ctrl+c stays global
		if m.currentView == ViewWords && m.wordsView.Searching() {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.wordsView, cmd = m.wordsView.Update(msg)
			return m, cmd
		}

		// Global keys
		switch msg.String() {
		case "ctrl+c", "q":
			if m.player != nil {
				m.player.StopAll()
			}
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case "esc":
			// Esc stops audio and goes back to sidebar, or quits
			if m.player != nil {
				m.player.StopAll()
			}
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.sidebarActive = true
			return m, nil
		case "1":
			return m.switchView(ViewAlphabet, 0)
		case "2":
			return m.switchView(ViewCompose, 1)
		case "3":
			return m.switchView(ViewFlashcards, 2)
		case "4":
			return m.switchView(ViewWords, 3)
		case "5":
			return m.switchView(ViewFilePicker, 4)
		case "6":
			return m.switchView(ViewSettings, 5)
		}

		// Sidebar navigation when active
		if m.sidebarActive {
			switch msg.String() {
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
				return m, nil
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
				return m, nil
			case "enter", "l", "right":
				m.currentView = m.menuItems[m.selectedMenu].View
				m.sidebarActive = false
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Update view sizes
		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.alphabetView.SetSize(contentWidth, contentHeight)
		m.composeView.SetSize(contentWidth, contentHeight)
		m.flashcardsView.SetSize(contentWidth, contentHeight)
		m.wordsView.SetSize(contentWidth, contentHeight)
		m.filePickerView.SetSize(contentWidth, contentHeight)
		m.settingsView.SetSize(contentWidth, contentHeight)

		return m, nil

	case ViewSwitchMsg:
		m.currentView = msg.View
		for i, item := range m.menuItems {
			if item.View == msg.View {
				m.selectedMenu = i
				break
			}
		}
		return m, nil

	case views.FileSelectedMsg:
		return m, m.loadDocument(msg.Path)

	case DocumentLoadedMsg:
		if msg.Err == nil && msg.Document != nil {
			m.doc = msg.Document
			m.dataPath = msg.Path
			m.alphabetView.SetDocument(msg.Document)
			m.composeView.SetDocument(msg.Document)
			m.flashcardsView.SetDocument(msg.Document)
			m.wordsView.SetDocument(msg.Document)
			m.settingsView.SetDocument(msg.Document)
			m.currentView = ViewAlphabet
			m.selectedMenu = 0
		}
		return m, nil
	}

	// Delegate to active view if not in sidebar mode
	if !m.sidebarActive {
		var cmd tea.Cmd
		switch m.currentView {
		case ViewAlphabet:
			m.alphabetView, cmd = m.alphabetView.Update(msg)
		case ViewCompose:
			m.composeView, cmd = m.composeView.Update(msg)
		case ViewFlashcards:
			m.flashcardsView, cmd = m.flashcardsView.Update(msg)
		case ViewWords:
			m.wordsView, cmd = m.wordsView.Update(msg)
		case ViewFilePicker:
			m.filePickerView, cmd = m.filePickerView.Update(msg)
		case ViewSettings:
			m.settingsView, cmd = m.settingsView.Update(msg)
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m AppModel) switchView(view ViewType, menu int) (tea.Model, tea.Cmd) {
	m.currentView = view
	m.selectedMenu = menu
	m.sidebarActive = false
	return m, nil
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	// Render sidebar
	sidebar := m.renderSidebar()

	// Render main content based on current view
	var content string
	switch m.currentView {
	case ViewAlphabet:
		content = m.alphabetView.View()
	case ViewCompose:
		content = m.composeView.View()
	case ViewFlashcards:
		content = m.flashcardsView.View()
	case ViewWords:
		content = m.wordsView.View()
	case ViewFilePicker:
		content = m.filePickerView.View()
	case ViewSettings:
		content = m.settingsView.View()
	}

	// Apply content styling
	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	// Join horizontally
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	// Title
	title := SidebarTitleStyle.Render("  한글  ")
	items = append(items, title)
	items = append(items, "")

	// Menu items
	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		var style lipgloss.Style
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				// Indicate current view but not focused
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		} else {
			style = SidebarItemStyle
		}

		items = append(items, style.Render(label))
	}

	// Spacer
	usedHeight := len(items) + 4 // account for borders and help
	if m.height > usedHeight {
		for i := 0; i < m.height-usedHeight-2; i++ {
			items = append(items, "")
		}
	}

	// Help text at bottom
	help := SidebarHelpStyle.Render("? Help  q Quit")
	items = append(items, help)

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

// loadDocument loads an alphabet data file asynchronously
func (m AppModel) loadDocument(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := data.Load(path)
		return DocumentLoadedMsg{Document: doc, Path: path, Err: err}
	}
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#4ECDC4")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFE66D")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F1FAEE"))

	helpText := titleStyle.Render("한글 - Hangul Trainer") + "\n\n"

	helpText += sectionStyle.Render("Global Keys") + "\n"
	helpText += keyStyle.Render("1-6") + descStyle.Render("Switch views") + "\n"
	helpText += keyStyle.Render("esc") + descStyle.Render("Stop audio / sidebar") + "\n"
	helpText += keyStyle.Render("?") + descStyle.Render("Show this help") + "\n"
	helpText += keyStyle.Render("q") + descStyle.Render("Quit") + "\n"

	helpText += sectionStyle.Render("Alphabet View") + "\n"
	helpText += keyStyle.Render("←↓↑→") + descStyle.Render("Navigate letters") + "\n"
	helpText += keyStyle.Render("tab") + descStyle.Render("Consonants/vowels") + "\n"
	helpText += keyStyle.Render("space") + descStyle.Render("Play pronunciation") + "\n"
	helpText += keyStyle.Render("g") + descStyle.Render("Generate mnemonic") + "\n"
	helpText += keyStyle.Render("y") + descStyle.Render("Copy mnemonic") + "\n"

	helpText += sectionStyle.Render("Compose View") + "\n"
	helpText += keyStyle.Render("←/→") + descStyle.Render("Switch jamo column") + "\n"
	helpText += keyStyle.Render("↑/↓") + descStyle.Render("Pick jamo") + "\n"
	helpText += keyStyle.Render("space") + descStyle.Render("Play syllable") + "\n"
	helpText += keyStyle.Render("s") + descStyle.Render("Toggle structure reference") + "\n"

	helpText += sectionStyle.Render("Flashcards View") + "\n"
	helpText += keyStyle.Render("space") + descStyle.Render("Flip card") + "\n"
	helpText += keyStyle.Render("←/→") + descStyle.Render("Prev/next card") + "\n"
	helpText += keyStyle.Render("p") + descStyle.Render("Play word") + "\n"
	helpText += keyStyle.Render("r") + descStyle.Render("Reset to first card") + "\n"

	helpText += sectionStyle.Render("Words View") + "\n"
	helpText += keyStyle.Render("tab") + descStyle.Render("Switch category") + "\n"
	helpText += keyStyle.Render("/") + descStyle.Render("Search") + "\n"
	helpText += keyStyle.Render("space") + descStyle.Render("Play word") + "\n"

	helpText += "\n" + lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")).
		Italic(true).
		Render("Press any key to close")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#4ECDC4")).
		Padding(1, 2).
		Width(50)

	// Center the help box
	helpBox := boxStyle.Render(helpText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
