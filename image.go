package newsclip

import (
	"sort"
	"strings"
)

// ImageStrategy identifies which discovery heuristic produced a candidate.
type ImageStrategy string

// Image discovery strategies.
const (
	StrategyMetaSignal ImageStrategy = "meta-signal"
	StrategyHeroClass  ImageStrategy = "hero-class"
	StrategyGeneric    ImageStrategy = "generic"
)

// Image strategy priorities. Lower is trusted more: a meta-tag signal is
// an explicit editorial choice, a hero-class element is a strong layout
// hint, a bare img tag is noise until proven otherwise.
const (
	PriorityMetaSignal = 1
	PriorityHeroClass  = 2
	PriorityGeneric    = 3
)

// ImageCandidate is one discovered image URL with ranking metadata.
type ImageCandidate struct {
	// URL is the absolute, resolved image URL.
	URL string

	// Strategy is the heuristic that found this candidate.
	Strategy ImageStrategy

	// Priority ranks strategies; lower is better.
	Priority int

	// SizeHint is 1, 0.5, or 0, inferred from URL substrings suggesting
	// resolution. Used only to break ties within a priority tier.
	SizeHint float64
}

// minImageURLLength rejects URLs too short to be real asset paths.
const minImageURLLength = 20

// imageBlockList excludes chrome and tracking assets by URL substring.
var imageBlockList = []string{
	"logo", "icon", "avatar", "profile", "thumbnail", "placeholder",
	"spacer", "pixel", "banner", "advertisement", "ads", "favicon",
	"social", "share", "button",
}

// imageExtensions are file extensions accepted as images.
var imageExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg", ".avif",
}

// imageHostPrefixes admit extension-less CDN URLs by subdomain convention.
var imageHostPrefixes = []string{
	"images.", "img.", "cdn.", "media.", "static.", "assets.",
}

// Size hint token vocabularies, largest tier first.
var (
	largeSizeTokens  = []string{"1920", "1600", "1200", "800", "large", "full"}
	mediumSizeTokens = []string{"600", "400", "medium"}
)

// SizeHint infers a coarse resolution signal from URL substrings.
func SizeHint(rawURL string) float64 {
	lower := strings.ToLower(rawURL)
	for _, token := range largeSizeTokens {
		if strings.Contains(lower, token) {
			return 1
		}
	}
	for _, token := range mediumSizeTokens {
		if strings.Contains(lower, token) {
			return 0.5
		}
	}
	return 0
}

// ValidImageURL reports whether a candidate URL passes the exclusion
// rules: long enough to be a real asset path, not on the blocklist, and
// either carrying a known image extension or served from an image-hosting
// subdomain. The blocklist wins over everything else, so a "logo.png" is
// rejected despite its extension.
func ValidImageURL(rawURL string) bool {
	if len(rawURL) < minImageURLLength {
		return false
	}
	lower := strings.ToLower(rawURL)
	for _, blocked := range imageBlockList {
		if strings.Contains(lower, blocked) {
			return false
		}
	}
	hasExtension := false
	for _, ext := range imageExtensions {
		if strings.Contains(lower, ext) {
			hasExtension = true
			break
		}
	}
	hasImageHost := false
	for _, prefix := range imageHostPrefixes {
		if strings.Contains(lower, prefix) {
			hasImageHost = true
			break
		}
	}
	return hasExtension || hasImageHost
}

// FilterAndRankImages applies the exclusion rules, assigns size hints,
// and sorts the survivors by (priority ascending, size hint descending).
// The sort is stable: ties beyond those two keys retain discovery order.
// The caller takes index 0 as the best image.
func FilterAndRankImages(candidates []ImageCandidate) []ImageCandidate {
	var valid []ImageCandidate
	for _, c := range candidates {
		if !ValidImageURL(c.URL) {
			continue
		}
		c.SizeHint = SizeHint(c.URL)
		valid = append(valid, c)
	}
	sort.SliceStable(valid, func(i, j int) bool {
		if valid[i].Priority != valid[j].Priority {
			return valid[i].Priority < valid[j].Priority
		}
		return valid[i].SizeHint > valid[j].SizeHint
	})
	return valid
}
