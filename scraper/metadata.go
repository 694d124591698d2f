package scraper

import (
	"log/slog"
	nurl "net/url"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	readability "github.com/go-shiori/go-readability"
	"github.com/pagelens/pagelens/models"
)

// previewLimit caps the markdown content preview carried in responses.
const previewLimit = 2000

// mdConverter is a reusable, goroutine-safe converter. The base plugin
// strips script/style/head noise; commonmark renders standard Markdown.
var mdConverter = converter.NewConverter(
	converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
	),
)

// extractMeta runs the Mozilla Readability algorithm over the rendered
// markup to pull page metadata and a markdown preview of the main content.
// Metadata extraction is best-effort: on any failure the report simply
// carries less context, the analysis itself is unaffected.
func extractMeta(rawHTML, sourceURL string) models.PageMeta {
	meta := models.PageMeta{FinalURL: sourceURL}

	parsedURL, err := nurl.Parse(sourceURL)
	if err != nil {
		return meta
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), parsedURL)
	if err != nil {
		slog.Debug("readability extraction failed", "url", sourceURL, "error", err)
		return meta
	}

	meta.Title = article.Title
	meta.Excerpt = article.Excerpt
	meta.SiteName = article.SiteName

	if md, mdErr := mdConverter.ConvertString(article.Content, converter.WithDomain(parsedURL.Host)); mdErr == nil {
		meta.ContentPreview = truncateRunes(strings.TrimSpace(md), previewLimit)
	}

	return meta
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
