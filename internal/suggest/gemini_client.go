package suggest

import (
	"context"
	"fmt"

	"fjacquet/testimony-csv/internal/logging"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements AIClient against the Google Gemini API.
type GeminiClient struct {
	apiKey string
	model  string
	logger logging.Logger

	client *genai.Client
	gm     *genai.GenerativeModel
}

// NewGeminiClient creates a GeminiClient for the given API key and model
// name. The underlying connection is established lazily on first use.
func NewGeminiClient(apiKey, model string, logger logging.Logger) *GeminiClient {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &GeminiClient{
		apiKey: apiKey,
		model:  model,
		logger: logger,
	}
}

// ensureClient initializes the Gemini client on first use.
func (c *GeminiClient) ensureClient(ctx context.Context) error {
	if c.client != nil {
		return nil
	}
	if c.apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c.client = client
	c.gm = client.GenerativeModel(c.model)
	return nil
}

// GenerateText sends the prompt to the model and returns the first
// candidate's text.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	if err := c.ensureClient(ctx); err != nil {
		return "", err
	}

	resp, err := c.gm.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini API")
	}

	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}
