package newsclip

import (
	"net/url"
	"sort"
)

// SourceKind distinguishes how a source's URL should be read.
type SourceKind string

// Source kinds.
const (
	// SourceHTML points at an article listing page to be scanned with
	// structural selectors.
	SourceHTML SourceKind = "html"

	// SourceFeed points at an RSS or Atom feed.
	SourceFeed SourceKind = "feed"
)

// Source is one configured article origin.
type Source struct {
	// URL is the listing page or feed URL.
	URL string `json:"url"`

	// Name labels records extracted from this source.
	Name string `json:"name"`

	// TrustWeight is a caller-supplied credibility score. It is copied
	// unchanged into each record's QualityScore.
	TrustWeight int `json:"trustWeight"`

	// Kind defaults to SourceHTML when empty.
	Kind SourceKind `json:"kind,omitempty"`
}

// Validate returns an error if the source contains invalid fields.
func (s *Source) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "source name required")
	}
	if s.URL == "" {
		return Errorf(EINVALID, "source URL required")
	}
	u, err := url.Parse(s.URL)
	if err != nil || !u.IsAbs() {
		return Errorf(EINVALID, "source URL must be absolute: %q", s.URL)
	}
	switch s.Kind {
	case "", SourceHTML, SourceFeed:
	default:
		return Errorf(EINVALID, "unknown source kind %q", s.Kind)
	}
	return nil
}

// SortSourcesByTrust orders sources by descending trust weight, keeping
// the configured order for equal weights. Orchestration scans sources in
// list order and truncates the merged result, so higher-trust sources
// should come first if the caller wants them to survive truncation.
func SortSourcesByTrust(sources []Source) {
	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].TrustWeight > sources[j].TrustWeight
	})
}
