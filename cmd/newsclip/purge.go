package main

import (
	"fmt"

	"github.com/ajablonski/newsclip"
)

// Run executes the purge command.
func (c *PurgeCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return newsclip.Errorf(newsclip.EINVALID, "use --force to confirm deletion")
	}

	filter := newsclip.ArticleFilter{}
	if c.Source != "" {
		filter.SourceName = &c.Source
	}

	n, err := deps.Articles.DeleteArticles(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %d articles\n", n)
	return nil
}
