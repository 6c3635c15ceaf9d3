// Package gemini implements insight generation using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ajablonski/newsclip"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// maxPromptContent caps how much article body is sent with each request.
const maxPromptContent = 4000

// Ensure Generator implements newsclip.Generator at compile time.
var _ newsclip.Generator = (*Generator)(nil)

// Generator implements newsclip.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client) *Generator {
	return &Generator{client: client}
}

// Generate produces editorial framing for one article.
func (g *Generator) Generate(ctx context.Context, title, content, summary string) (*newsclip.Insight, error) {
	if strings.TrimSpace(title) == "" {
		return nil, newsclip.Errorf(newsclip.EINVALID, "title required")
	}

	prompt := BuildPrompt(title, content, summary)
	config := BuildConfig()

	result, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, newsclip.Errorf(newsclip.EINTERNAL, "gemini returned nil result")
	}

	return ParseInsight(result.Text())
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.7)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an editor writing framing for a curated news digest. Respond with a JSON object containing \"whyItMatters\" (1-2 sentences on why the story matters to readers) and \"takeaways\" (exactly 3 short bullet strings). Respond with JSON only, no markdown fences.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildPrompt builds the user prompt containing the article text.
func BuildPrompt(title, content, summary string) string {
	if body := []rune(content); len(body) > maxPromptContent {
		content = string(body[:maxPromptContent])
	}

	var sb strings.Builder
	sb.WriteString("<article>\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", title)
	if summary != "" {
		fmt.Fprintf(&sb, "<summary>%s</summary>\n", summary)
	}
	if content != "" {
		fmt.Fprintf(&sb, "<content>%s</content>\n", content)
	}
	sb.WriteString("</article>\n\n")
	sb.WriteString("Write the digest framing for this article.")
	return sb.String()
}

// ParseInsight decodes a model response into an Insight. Markdown code
// fences around the JSON are tolerated.
func ParseInsight(text string) (*newsclip.Insight, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var insight newsclip.Insight
	if err := json.Unmarshal([]byte(cleaned), &insight); err != nil {
		return nil, newsclip.Errorf(newsclip.EINTERNAL, "decode insight: %v", err)
	}

	if strings.TrimSpace(insight.WhyItMatters) == "" {
		return nil, newsclip.Errorf(newsclip.EINTERNAL, "insight missing whyItMatters")
	}
	if len(insight.Takeaways) < 3 {
		return nil, newsclip.Errorf(newsclip.EINTERNAL, "insight has %d takeaways, want 3", len(insight.Takeaways))
	}
	insight.Takeaways = insight.Takeaways[:3]

	return &insight, nil
}
