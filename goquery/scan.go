// Package goquery implements HTML candidate scanning, record building,
// and image discovery for newsclip using CSS selectors.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// DefaultBlockSelectors is the ordered selector list used to find
// candidate article blocks. Semantic containers come before generic ones:
// later stages keep first-seen URLs, so earlier selectors win ties.
var DefaultBlockSelectors = []string{
	"article",
	".post",
	".article",
	".article-card",
	".article-item",
	".insight-card",
	".research-item",
	".news-item",
	"li",
}

// MinBlockTextLength is the minimum visible text length for a candidate
// block. Shorter blocks are navigation chrome.
const MinBlockTextLength = 50

// MaxBlocksPerPage caps emitted blocks to bound worst-case cost on
// pathological pages with thousands of list items.
const MaxBlocksPerPage = 50

// ScanBlocks walks the document against the ordered selector list and
// collects plausible content blocks. A block is retained only if its
// visible text is at least MinBlockTextLength characters and it contains
// at least one hyperlink descendant; link-less blocks cannot yield a URL.
// At most MaxBlocksPerPage blocks are returned. The scan is a pure
// function of its inputs: the same document and selectors always yield
// the same ordered result.
func ScanBlocks(doc *goquery.Document, selectors []string) []*goquery.Selection {
	var blocks []*goquery.Selection
	for _, selector := range selectors {
		if len(blocks) >= MaxBlocksPerPage {
			break
		}
		doc.Find(selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			if len(blocks) >= MaxBlocksPerPage {
				return false
			}
			if utf8.RuneCountInString(normalizeSpace(sel.Text())) < MinBlockTextLength {
				return true
			}
			if sel.Find("a[href]").Length() == 0 {
				return true
			}
			blocks = append(blocks, sel)
			return true
		})
	}
	return blocks
}

// normalizeSpace collapses whitespace runs to single spaces and trims.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
