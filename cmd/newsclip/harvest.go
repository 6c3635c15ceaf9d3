package main

import (
	"fmt"

	"github.com/ajablonski/newsclip"
)

// Run executes the harvest command.
func (c *HarvestCmd) Run(deps *Dependencies) error {
	sources := DefaultSources()
	if c.Sources != "" {
		loaded, err := LoadSources(c.Sources)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
			return err
		}
		sources = loaded
	}

	fmt.Fprintf(deps.Stdout, "Harvesting up to %d articles from %d sources...\n", c.Limit, len(sources))

	result, err := deps.Harvester.HarvestAndStore(deps.Ctx, sources, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Harvested %d articles: %d saved, %d duplicates, %d failed\n",
		result.Harvested, result.Saved, result.Duplicates, result.Failed)
	return nil
}
