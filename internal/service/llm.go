package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cinedelices/backend/internal/types"
)

// LLMService generates recipe drafts from movie or series metadata via
// the Mistral chat-completions API.
type LLMService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

func NewLLMService(apiKey, apiURL, model string) *LLMService {
	return &LLMService{
		apiKey: apiKey,
		apiURL: apiURL,
		model:  model,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// GeneratedRecipe is the structure of a recipe draft returned by the
// model.
type GeneratedRecipe struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Difficulty   string   `json:"difficulty"`
	PrepTime     int      `json:"prep_time"`
	CookTime     int      `json:"cook_time"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateRecipe asks the model for a recipe inspired by the given media
// item. The model is instructed to return strict JSON; the reply is
// parsed between the first and last brace to survive chatter around it.
func (s *LLMService) GenerateRecipe(ctx context.Context, media *types.GenerateRecipeRequest) (*GeneratedRecipe, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("MISTRAL_API_KEY is not configured")
	}

	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a professional chef and concise culinary writer."},
			{Role: "user", Content: buildPrompt(media)},
		},
		Temperature: 0.7,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errText, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Mistral API error: %d %s", resp.StatusCode, strings.TrimSpace(string(errText)))
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return nil, err
	}
	if len(chat.Choices) == 0 || chat.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("Mistral API response missing content")
	}

	return extractRecipeJSON(chat.Choices[0].Message.Content)
}

func buildPrompt(media *types.GenerateRecipeRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Movie/TV show: %s", strings.TrimSpace(media.Title))
	if media.Year != 0 {
		fmt.Fprintf(&b, " (%d)", media.Year)
	}
	b.WriteString(".\n")
	if media.Type != "" {
		fmt.Fprintf(&b, "Type: %s.\n", media.Type)
	}
	if media.Overview != "" {
		fmt.Fprintf(&b, "Overview: %s\n", media.Overview)
	}

	b.WriteString("Based on the provided information about a movie or a TV show, please generate a recipe inspired by it.\n")
	b.WriteString("Return ONLY valid JSON in the following format:\n")
	b.WriteString(`{
  "title": "Recipe title",
  "description": "Short description",
  "ingredients": ["ingredient 1", "ingredient 2"],
  "instructions": ["step 1", "step 2"],
  "difficulty": "facile|moyen|difficile",
  "prep_time": 30,
  "cook_time": 45
}
`)
	b.WriteString("Use concise cooking steps and real ingredients.")

	return b.String()
}

func extractRecipeJSON(text string) (*GeneratedRecipe, error) {
	first := strings.Index(text, "{")
	last := strings.LastIndex(text, "}")
	if first == -1 || last <= first {
		return nil, fmt.Errorf("model response did not include JSON")
	}

	var recipe GeneratedRecipe
	if err := json.Unmarshal([]byte(text[first:last+1]), &recipe); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}
	return &recipe, nil
}
