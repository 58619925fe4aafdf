package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	geminiModel = "gemini-2.0-flash"

	// Extraction is a small structured call; synthesis produces a long
	// itinerary and gets a much wider window.
	extractTimeout   = 60 * time.Second
	itineraryTimeout = 120 * time.Second
)

const extractPrompt = `Extract only the source (starting city) and destination (target city) from the following unstructured travel query.
If a source or destination cannot be confidently identified as a city, return an empty string for that field.

Return your response in the following JSON format:
{
  "source": "...",
  "destination": "..."
}

Here is the user's input:
`

// GeminiProvider implements LLMProvider using Google's Gemini models.
type GeminiProvider struct {
	client    *genai.Client
	extract   *genai.GenerativeModel
	itinerary *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Force JSON responses for the extraction model so the balanced-object
	// scan is a safety net rather than the primary parser.
	extract := client.GenerativeModel(geminiModel)
	extract.ResponseMIMEType = "application/json"
	extract.SetTemperature(0.1)

	itinerary := client.GenerativeModel(geminiModel)
	itinerary.SetTemperature(0.4)

	return &GeminiProvider{
		client:    client,
		extract:   extract,
		itinerary: itinerary,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// ExtractRoute asks the model for a {source, destination} JSON object and
// decodes it. Any transport or parse failure is returned as an error; the
// caller decides how the pipeline degrades.
func (p *GeminiProvider) ExtractRoute(ctx context.Context, userText string) (*RouteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, extractTimeout)
	defer cancel()

	resp, err := p.extract.GenerateContent(ctx, genai.Text(extractPrompt+"\n"+userText))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	text, err := candidateText(resp)
	if err != nil {
		return nil, err
	}
	return parseRouteResult(text)
}

// GenerateItinerary runs the synthesis stage and returns the model's Markdown
// itinerary text.
func (p *GeminiProvider) GenerateItinerary(ctx context.Context, req ItineraryRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, itineraryTimeout)
	defer cancel()

	prompt := buildItineraryPrompt(req)
	resp, err := p.itinerary.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	return candidateText(resp)
}

// buildItineraryPrompt embeds the user request, travel metrics, and place
// details plus the five fixed instruction points.
func buildItineraryPrompt(req ItineraryRequest) string {
	return fmt.Sprintf(`User Request: """%s"""
Travel Info: %s
Destination Details: %s

You are a travel expert AI. Generate a detailed itinerary for a trip from %s to %s.
Include:
1. Best mode of travel.
2. Accommodation suggestions from the provided details.
3. Daily itinerary with specific activities and meal recommendations.
4. Approximate budget breakdown.
5. Practical travel tips.

Use Markdown for formatting.
`, req.UserText, req.TravelInfo, req.PlacesInfo, req.Source, req.Destination)
}

// candidateText joins the text parts of the first candidate.
func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var parts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		txt, ok := part.(genai.Text)
		if !ok || strings.TrimSpace(string(txt)) == "" {
			continue
		}
		parts = append(parts, string(txt))
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("gemini: API returned empty text parts")
	}
	return strings.Join(parts, "\n"), nil
}
