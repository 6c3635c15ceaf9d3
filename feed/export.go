package feed

import (
	"time"

	"github.com/ajablonski/newsclip"
	"github.com/beevik/etree"
)

// Exporter renders harvested articles as an RSS 2.0 digest so the
// output can be consumed by any feed reader.
type Exporter struct {
	Title       string
	Link        string
	Description string
}

// NewExporter creates an Exporter with the given channel metadata.
func NewExporter(title, link, description string) *Exporter {
	return &Exporter{
		Title:       title,
		Link:        link,
		Description: description,
	}
}

// Export serializes articles into an indented RSS 2.0 document.
func (e *Exporter) Export(articles []*newsclip.Article, now time.Time) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")

	channel := rss.CreateElement("channel")
	channel.CreateElement("title").SetText(e.Title)
	channel.CreateElement("link").SetText(e.Link)
	channel.CreateElement("description").SetText(e.Description)
	channel.CreateElement("lastBuildDate").SetText(now.Format(time.RFC1123Z))

	for _, article := range articles {
		item := channel.CreateElement("item")
		item.CreateElement("title").SetText(article.Title)
		item.CreateElement("link").SetText(article.URL)
		if article.Summary != "" {
			item.CreateElement("description").SetText(article.Summary)
		}
		if article.SourceName != "" {
			item.CreateElement("source").SetText(article.SourceName)
		}
		if !article.PublishedAt.IsZero() {
			item.CreateElement("pubDate").SetText(article.PublishedAt.Format(time.RFC1123Z))
		}
		guid := item.CreateElement("guid")
		guid.CreateAttr("isPermaLink", "true")
		guid.SetText(article.URL)
	}

	doc.Indent(2)
	return doc.WriteToString()
}
