package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ajablonski/newsclip"
)

// DefaultSources returns the built-in source list, ordered so the
// highest-trust sources are scanned first.
func DefaultSources() []newsclip.Source {
	sources := []newsclip.Source{
		{URL: "https://commercialobserver.com/", Name: "Commercial Observer", TrustWeight: 92},
		{URL: "https://www.cbre.com/insights", Name: "CBRE Insights", TrustWeight: 90},
		{URL: "https://www.jll.com/en/insights", Name: "JLL Insights", TrustWeight: 89},
		{URL: "https://creinsightjournal.com/", Name: "CRE Insight Journal", TrustWeight: 88},
		{URL: "https://www.blackstone.com/insights/", Name: "Blackstone Insights", TrustWeight: 86},
		{URL: "https://www.nar.realtor/commercial-real-estate-market-insights", Name: "NAR Market Insights", TrustWeight: 84},
	}
	newsclip.SortSourcesByTrust(sources)
	return sources
}

// LoadSources reads a JSON array of sources from path. Each entry needs
// url, name, and trustWeight; kind defaults to "html".
func LoadSources(path string) ([]newsclip.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var sources []newsclip.Source
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, newsclip.Errorf(newsclip.EINVALID, "invalid sources file %q: %v", path, err)
	}

	for i := range sources {
		if err := sources[i].Validate(); err != nil {
			return nil, err
		}
	}

	newsclip.SortSourcesByTrust(sources)
	return sources, nil
}
