// Package llm provides LLM integration for generating letter mnemonics.
package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	anthropicAPIURL = "https://api.anthropic.com/v1/messages"
	defaultModel    = "claude-sonnet-4-20250514"
)

// Client is an Anthropic API client.
type Client struct {
	apiKey     string
	httpClient *http.Client
	model      string
}

// LetterElements contains everything known about a letter that a
// mnemonic could build on.
type LetterElements struct {
	Char         string   // the jamo, e.g. "ㄱ"
	Romanization string
	Type         string   // basic, tense, aspirated, compound
	Articulatory string   // how the sound is produced, if known
	Examples     []string // words from the flashcard list using the letter
}

// message represents an Anthropic API message.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// request represents an Anthropic API request.
type request struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

// response represents an Anthropic API response.
type response struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewClient creates a new Anthropic client.
// It reads the API key from the ANTHROPIC_API_KEY environment variable.
func NewClient() (*Client, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
	}
	apiKey = strings.TrimSpace(apiKey)

	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		model: defaultModel,
	}, nil
}

// GenerateMnemonic generates a short shape-based memory hook for a
// letter.
func (c *Client) GenerateMnemonic(elements LetterElements) (string, error) {
	prompt := buildPrompt(elements)

	req := request{
		Model:     c.model,
		MaxTokens: 200,
		Messages: []message{
			{Role: "user", Content: prompt},
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequest("POST", anthropicAPIURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var apiResp response
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}

	if apiResp.Error != nil {
		return "", fmt.Errorf("API error: %s", apiResp.Error.Message)
	}

	if len(apiResp.Content) == 0 {
		return "", fmt.Errorf("empty response from API")
	}

	return strings.TrimSpace(apiResp.Content[0].Text), nil
}

// buildPrompt creates the prompt for the LLM.
func buildPrompt(e LetterElements) string {
	var sb strings.Builder

	sb.WriteString("You are helping a beginner remember letters of the Korean alphabet.\n")
	sb.WriteString("A good mnemonic ties the SHAPE of the letter to the SOUND it makes.\n\n")

	sb.WriteString("=== LETTER ===\n")
	sb.WriteString(fmt.Sprintf("Letter: %s\n", e.Char))
	sb.WriteString(fmt.Sprintf("Sound: %s\n", e.Romanization))
	if e.Type != "" {
		sb.WriteString(fmt.Sprintf("Class: %s\n", e.Type))
	}
	if e.Articulatory != "" {
		sb.WriteString(fmt.Sprintf("Articulation: %s\n", e.Articulatory))
	}
	if len(e.Examples) > 0 {
		sb.WriteString(fmt.Sprintf("Appears in: %s\n", strings.Join(e.Examples, ", ")))
	}

	sb.WriteString("\n=== YOUR TASK ===\n")
	sb.WriteString("Write ONE mnemonic of at most two sentences connecting the letter's shape to its sound.\n")
	sb.WriteString("Concrete and visual beats clever. Output only the mnemonic.")

	return sb.String()
}
