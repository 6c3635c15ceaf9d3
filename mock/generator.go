package mock

import (
	"context"

	"github.com/ajablonski/newsclip"
)

var _ newsclip.Generator = (*Generator)(nil)

// Generator is a mock implementation of newsclip.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, title, content, summary string) (*newsclip.Insight, error)
}

func (g *Generator) Generate(ctx context.Context, title, content, summary string) (*newsclip.Insight, error) {
	return g.GenerateFn(ctx, title, content, summary)
}
