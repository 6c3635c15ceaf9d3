package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ajablonski/newsclip"
)

// heroClassVocabulary marks images placed as hero or featured art.
// "wp-post-image" is the WordPress featured-image marker.
var heroClassVocabulary = []string{
	"hero", "featured", "main", "article", "wp-post-image",
}

// Ensure ImageExtractor implements newsclip.ImageExtractor at compile time.
var _ newsclip.ImageExtractor = (*ImageExtractor)(nil)

// ImageExtractor discovers hero image candidates with three independent
// strategies and returns the top-ranked survivor. The strategies are not
// short-circuited: a page may expose a meta-tag signal pointing at a
// low-quality image while a hero-class element holds a better one, so
// ranking decides the winner, not first-match.
type ImageExtractor struct{}

// NewImageExtractor creates a new ImageExtractor.
func NewImageExtractor() *ImageExtractor {
	return &ImageExtractor{}
}

// ExtractImage returns the best image URL for the page.
// Returns ENOTFOUND if no candidate passes filtering.
func (e *ImageExtractor) ExtractImage(html, baseURL string) (string, error) {
	candidates, err := ExtractImageCandidates(html, baseURL)
	if err != nil {
		return "", err
	}
	ranked := newsclip.FilterAndRankImages(candidates)
	if len(ranked) == 0 {
		return "", newsclip.Errorf(newsclip.ENOTFOUND, "no image found")
	}
	return ranked[0].URL, nil
}

// ExtractImageCandidates runs all three strategies against the HTML and
// returns every hit with its strategy priority, resolved to an absolute
// URL. Candidates are returned in strategy order (meta-signal, then
// hero-class, then generic), preserving document order within each.
func ExtractImageCandidates(html, baseURL string) ([]newsclip.ImageCandidate, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EINVALID, "failed to parse HTML: %v", err)
	}

	var candidates []newsclip.ImageCandidate
	add := func(rawURL string, strategy newsclip.ImageStrategy, priority int) {
		resolved := resolveURL(base, rawURL)
		if resolved == "" {
			return
		}
		candidates = append(candidates, newsclip.ImageCandidate{
			URL:      resolved,
			Strategy: strategy,
			Priority: priority,
		})
	}

	for _, img := range metaImages(doc) {
		add(img, newsclip.StrategyMetaSignal, newsclip.PriorityMetaSignal)
	}
	for _, img := range heroImages(doc) {
		add(img, newsclip.StrategyHeroClass, newsclip.PriorityHeroClass)
	}
	for _, img := range genericImages(doc) {
		add(img, newsclip.StrategyGeneric, newsclip.PriorityGeneric)
	}

	return candidates, nil
}

// metaImages finds meta-tag image signals: Open Graph and Twitter card
// images (in either property/name spelling), itemprop images, and
// image_src links. Attribute order within the tag does not matter.
// Only keys naming the image itself qualify; sub-properties such as
// og:image:width carry dimensions or alt text, not URLs.
func metaImages(doc *goquery.Document) []string {
	var urls []string
	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		content, ok := sel.Attr("content")
		if !ok || content == "" {
			return
		}
		property, _ := sel.Attr("property")
		name, _ := sel.Attr("name")
		itemprop, _ := sel.Attr("itemprop")
		key := strings.ToLower(property + name)
		if isMetaImageKey(key) || strings.EqualFold(itemprop, "image") {
			urls = append(urls, content)
		}
	})
	doc.Find(`link[rel="image_src"]`).Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok && href != "" {
			urls = append(urls, href)
		}
	})
	return urls
}

// isMetaImageKey reports whether a meta property or name identifies an
// image URL. Known keys: og:image, og:image:secure_url, twitter:image,
// twitter:image:src, and namespaced variants ending in ":image".
func isMetaImageKey(key string) bool {
	switch key {
	case "og:image:secure_url", "twitter:image:src":
		return true
	}
	return key == "image" || strings.HasSuffix(key, ":image")
}

// heroImages finds img elements whose class attribute contains any of the
// hero vocabulary markers.
func heroImages(doc *goquery.Document) []string {
	var urls []string
	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		class, ok := sel.Attr("class")
		if !ok {
			return
		}
		lower := strings.ToLower(class)
		for _, marker := range heroClassVocabulary {
			if strings.Contains(lower, marker) {
				if src, ok := sel.Attr("src"); ok && src != "" {
					urls = append(urls, src)
				}
				return
			}
		}
	})
	return urls
}

// genericImages collects every image element's source attribute.
func genericImages(doc *goquery.Document) []string {
	var urls []string
	doc.Find("img[src]").Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr("src"); ok && src != "" {
			urls = append(urls, src)
		}
	})
	return urls
}
