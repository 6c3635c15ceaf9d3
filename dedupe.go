package newsclip

// Dedupe returns items with duplicates removed, keeping the first
// occurrence of each key and preserving order. The seen-set is scoped to
// the call so separate runs are independent.
func Dedupe[T any](items []T, key func(T) string) []T {
	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}

// DedupeArticles removes articles sharing a URL, keeping the first
// (highest-ranked) occurrence.
func DedupeArticles(articles []*Article) []*Article {
	return Dedupe(articles, func(a *Article) string { return a.URL })
}
