package assistant

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/wattwise/wattwise/internal/domain"
)

// Generator is the remote text-generation collaborator. It may fail; the
// pipeline absorbs every failure.
type Generator interface {
	Generate(ctx context.Context, history []domain.HistoryItem, message string) (string, error)
}

const systemPrompt = `You are WattBot, an AI energy assistant designed to help users save energy, understand their bills, and get personalized tips for their home. You are friendly, helpful, and focused on providing practical energy-saving advice. Keep your responses concise but informative, with specific actionable tips.

Here's some context about the user:
- They live in India and use electricity primarily for home appliances
- Common appliances include AC, refrigerator, water heater, washing machine, and electronics
- Electricity is measured in kWh and billed in rupees (₹)
- The user is interested in saving energy and reducing their electricity bill
- In India, electricity tariffs are often tiered (higher rates for higher consumption)
- Average electricity rate in urban India is around ₹8-10 per kWh
- Peak summer temperatures can reach 40-45°C in many parts of India

Energy-saving knowledge to incorporate when relevant:
- ACs: Each degree below 24°C can increase energy consumption by 6%
- Refrigerators: Keeping them 75% full is optimal for efficiency
- Water heaters: Use for 30-45 minutes before bathing rather than keeping on all day
- Fans: Ceiling fans use about 60-80 watts and can reduce AC dependence
- Lighting: LED bulbs use 80% less energy than incandescent and 50% less than CFL
- Peak hours: In most Indian cities, 7-11 PM has highest electricity demand and rates

When providing advice, focus on practical tips that would work in an Indian context. Use specifics when possible, like actual temperature settings, timer recommendations, or estimated savings in rupees.`

// GeminiClient implements Generator against the Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Generate sends the conversation context plus the new message and returns
// the model's text. An empty candidate is treated as a failure.
func (c *GeminiClient) Generate(ctx context.Context, history []domain.HistoryItem, message string) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, h := range history {
		var role genai.Role = genai.RoleUser
		if h.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(h.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}

// Ping reports whether the remote service currently answers. Errors are
// swallowed and reported as unavailable.
func (c *GeminiClient) Ping(ctx context.Context) bool {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text("Hello"), nil)
	if err != nil {
		return false
	}
	return strings.TrimSpace(resp.Text()) != ""
}
