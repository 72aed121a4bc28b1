package scorebat

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ashleypule/soccer-score/pkg/models"
)

// EmbedHTML returns the first video's embed markup.
func EmbedHTML(h *models.Highlight) string {
	if h == nil || len(h.Videos) == 0 {
		return ""
	}
	return h.Videos[0].Embed
}

// EmbedURL extracts the iframe src from the first video's embed markup.
// Feeds that already carry a bare URL are returned as is.
func EmbedURL(h *models.Highlight) string {
	embed := strings.TrimSpace(EmbedHTML(h))
	if embed == "" {
		return ""
	}
	if strings.HasPrefix(embed, "http://") || strings.HasPrefix(embed, "https://") {
		return embed
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(embed))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("iframe").First().Attr("src")
	return strings.TrimSpace(src)
}
