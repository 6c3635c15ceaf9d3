package newsclip

import (
	"context"
	"strings"
)

// Insight is editorial framing generated for one article.
type Insight struct {
	// WhyItMatters is a 1-2 sentence explanation of the article's
	// significance.
	WhyItMatters string `json:"whyItMatters"`

	// Takeaways are exactly three bullet points of key insights.
	Takeaways []string `json:"takeaways"`
}

// Generator produces insights from article text.
type Generator interface {
	// Generate returns an insight for the given article text. Callers
	// must tolerate failure and substitute FallbackInsight.
	Generate(ctx context.Context, title, content, summary string) (*Insight, error)
}

// FallbackInsight returns deterministic template insights for when no
// Generator is configured or generation fails. The same title always
// yields the same insight.
func FallbackInsight(title string) *Insight {
	subject := strings.TrimSpace(title)
	if fields := strings.Fields(subject); len(fields) > 0 {
		subject = fields[0]
	}
	if subject == "" {
		subject = "This"
	}
	return &Insight{
		WhyItMatters: "This " + subject + " development signals a shift worth tracking for anyone making decisions in this market.",
		Takeaways: []string{
			"Important development in the " + subject + " story",
			"Key context for readers following this market",
			"Watch for follow-on coverage as the situation develops",
		},
	}
}
