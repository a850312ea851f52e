package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/01moynul/studybuddy-golang/internal/importer"
	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-1.5-flash"

// maxContentRunes caps how much of a material is sent to the model.
const maxContentRunes = 30000

// FlashcardGenerator holds the Gemini client used to write flashcards.
type FlashcardGenerator struct {
	Client    *genai.Client
	ModelName string
	MaxCards  int
	log       *zap.Logger
}

// NewFlashcardGenerator initializes the Gemini client.
func NewFlashcardGenerator(ctx context.Context, apiKey, modelName string, maxCards int, log *zap.Logger) (*FlashcardGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if modelName == "" {
		modelName = defaultModel
	}
	return &FlashcardGenerator{Client: client, ModelName: modelName, MaxCards: maxCards, log: log}, nil
}

// Close releases the underlying client connection.
func (g *FlashcardGenerator) Close() error {
	return g.Client.Close()
}

// Generate asks the model for question/answer pairs covering content.
func (g *FlashcardGenerator) Generate(ctx context.Context, title, content string) ([]importer.Card, error) {
	model := g.Client.GenerativeModel(g.ModelName)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(fmt.Sprintf(`
			You are StudyBuddy, a tutor that writes flashcards for students.
			Write at most %d flashcards from the material you are given.
			Respond with a JSON array only: [{"question": "...", "answer": "...", "difficulty": "easy|medium|hard"}].
			Keep answers short. Do not invent facts that are not in the material.
		`, g.MaxCards))},
	}

	prompt := fmt.Sprintf("Title: %s\n\n%s", title, truncate(content, maxContentRunes))
	res, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("error generating flashcards: %w", err)
	}

	if res.UsageMetadata != nil {
		g.log.Debug("flashcards generated", zap.Int32("total_tokens", res.UsageMetadata.TotalTokenCount))
	}

	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return nil, fmt.Errorf("model returned no candidates")
	}

	var text strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}

	cards, err := parseCards(text.String())
	if err != nil {
		return nil, err
	}
	if g.MaxCards > 0 && len(cards) > g.MaxCards {
		cards = cards[:g.MaxCards]
	}
	return cards, nil
}

type generatedCard struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty"`
}

// parseCards decodes the model's JSON reply. Replies wrapped in a markdown
// code fence are accepted too.
func parseCards(raw string) ([]importer.Card, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	}

	var generated []generatedCard
	if err := json.Unmarshal([]byte(raw), &generated); err != nil {
		return nil, fmt.Errorf("failed to decode model reply: %w", err)
	}

	cards := make([]importer.Card, 0, len(generated))
	for _, c := range generated {
		q, a := strings.TrimSpace(c.Question), strings.TrimSpace(c.Answer)
		if q == "" || a == "" {
			continue
		}
		card := importer.Card{Question: q, Answer: a}
		switch d := strings.ToLower(c.Difficulty); d {
		case "easy", "medium", "hard":
			card.Difficulty = d
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
