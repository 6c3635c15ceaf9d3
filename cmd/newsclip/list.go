package main

import (
	"fmt"

	"github.com/ajablonski/newsclip"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := newsclip.ArticleFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.SourceName = &c.Source
	}

	articles, err := deps.Articles.FindArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	if len(articles) == 0 {
		fmt.Fprintln(deps.Stdout, "No articles found. Use 'newsclip harvest' to collect some.")
		return nil
	}

	for _, a := range articles {
		fmt.Fprintf(deps.Stdout, "%s  [%s %d]  %s\n", a.PublishedAt.Format("2006-01-02"), a.SourceName, a.QualityScore, a.Title)
		fmt.Fprintf(deps.Stdout, "    %s\n", a.URL)
		if c.Full {
			if a.Summary != "" {
				fmt.Fprintf(deps.Stdout, "    %s\n", a.Summary)
			}
			if a.WhyItMatters != "" {
				fmt.Fprintf(deps.Stdout, "    Why it matters: %s\n", a.WhyItMatters)
			}
			for _, takeaway := range a.Takeaways {
				fmt.Fprintf(deps.Stdout, "    - %s\n", takeaway)
			}
		}
	}

	return nil
}
