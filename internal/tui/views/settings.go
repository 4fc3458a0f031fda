package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hodu-dev/hangul/internal/config"
	"github.com/hodu-dev/hangul/internal/data"
)

// Settings view styles
var (
	settingsTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FF6B6B")).
				MarginBottom(1)

	settingsPathStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Italic(true).
				MarginBottom(1)

	settingsHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#a8dadc"))

	settingsRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f1faee"))

	settingsMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))
)

// SettingsModel is the read-only settings view model.
type SettingsModel struct {
	config    *config.Config
	doc       *data.Document
	configDir string

	// Tabs: 0=Audio, 1=TTS, 2=Data
	tab int

	width  int
	height int
}

// NewSettingsModel creates a new settings model.
func NewSettingsModel(cfg *config.Config, doc *data.Document) SettingsModel {
	configDir, _ := config.GetConfigDir()

	return SettingsModel{
		config:    cfg,
		doc:       doc,
		configDir: configDir,
	}
}

// SetDocument swaps the loaded document.
func (m *SettingsModel) SetDocument(doc *data.Document) {
	m.doc = doc
}

// SetSize updates the view dimensions.
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % 3
			return m, nil
		case "shift+tab", "left", "h":
			m.tab--
			if m.tab < 0 {
				m.tab = 2
			}
			return m, nil
		}
	}
	return m, nil
}

// View renders the settings view.
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(settingsTitleStyle.Render("Configuration"))
	b.WriteString("\n")
	b.WriteString(settingsPathStyle.Render("Config: " + m.configDir))
	b.WriteString("\n\n")

	tabs := []string{"Audio", "TTS", "Data"}
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

	switch m.tab {
	case 0:
		b.WriteString(m.renderAudio())
	case 1:
		b.WriteString(m.renderTTS())
	case 2:
		b.WriteString(m.renderData())
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab/←→: switch tabs • edit " + m.configDir + "/config.yaml to change"))

	return b.String()
}

func (m SettingsModel) renderRow(label, value string) string {
	if value == "" {
		value = "(default)"
		return fmt.Sprintf("%-16s %s\n", label, settingsMutedStyle.Render(value))
	}
	return fmt.Sprintf("%-16s %s\n", label, settingsRowStyle.Render(value))
}

func (m SettingsModel) renderAudio() string {
	var b strings.Builder

	b.WriteString(settingsHeaderStyle.Render("Playback"))
	b.WriteString("\n\n")

	if m.config == nil {
		b.WriteString(settingsMutedStyle.Render("No configuration loaded"))
		return b.String()
	}

	b.WriteString(m.renderRow("asset dir", m.config.AssetDir))
	b.WriteString(m.renderRow("espeak voice", m.config.Audio.ESpeakVoice))
	speed := ""
	if m.config.Audio.ESpeakSpeed != 0 {
		speed = fmt.Sprintf("%d wpm", m.config.Audio.ESpeakSpeed)
	}
	b.WriteString(m.renderRow("espeak speed", speed))

	return b.String()
}

func (m SettingsModel) renderTTS() string {
	var b strings.Builder

	b.WriteString(settingsHeaderStyle.Render("Clip Generation"))
	b.WriteString("\n\n")

	if m.config == nil {
		b.WriteString(settingsMutedStyle.Render("No configuration loaded"))
		return b.String()
	}

	b.WriteString(m.renderRow("provider", m.config.TTS.Provider))
	b.WriteString(m.renderRow("openai model", m.config.TTS.OpenAIModel))
	b.WriteString(m.renderRow("openai voice", m.config.TTS.OpenAIVoice))
	speed := ""
	if m.config.TTS.OpenAISpeed != 0 {
		speed = fmt.Sprintf("%.1f", m.config.TTS.OpenAISpeed)
	}
	b.WriteString(m.renderRow("openai speed", speed))

	return b.String()
}

func (m SettingsModel) renderData() string {
	var b strings.Builder

	b.WriteString(settingsHeaderStyle.Render("Alphabet Data"))
	b.WriteString("\n\n")

	if m.config != nil {
		b.WriteString(m.renderRow("data file", m.config.DataFile))
	}

	if m.doc == nil {
		b.WriteString(settingsMutedStyle.Render("No document loaded"))
		return b.String()
	}

	b.WriteString(m.renderRow("consonants", fmt.Sprintf("%d", len(m.doc.Consonants))))
	b.WriteString(m.renderRow("vowels", fmt.Sprintf("%d", len(m.doc.Vowels))))
	b.WriteString(m.renderRow("categories", fmt.Sprintf("%d", len(m.doc.Categories))))
	b.WriteString(m.renderRow("words", fmt.Sprintf("%d", m.doc.WordCount())))

	if len(m.doc.Tips) > 0 {
		b.WriteString("\n")
		b.WriteString(settingsHeaderStyle.Render("Tips"))
		b.WriteString("\n\n")
		for _, tip := range m.doc.Tips {
			b.WriteString(settingsRowStyle.Render("• " + tip))
			b.WriteString("\n")
		}
	}

	return b.String()
}
