package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func docFrom(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func TestSampleLinks_ResolvesRelative(t *testing.T) {
	doc := docFrom(t, `<body>
		<a href="/about">About</a>
		<a href="contact">Contact</a>
		<a href="https://other.example.org/page">External</a>
	</body>`)

	links := SampleLinks(doc, "https://example.com/home")

	for _, want := range []string{
		"https://example.com/about",
		"https://example.com/contact",
		"https://other.example.org/page",
	} {
		if _, ok := links[want]; !ok {
			t.Errorf("missing %q in %v", want, links)
		}
	}
	if len(links) != 3 {
		t.Errorf("got %d links, want 3: %v", len(links), links)
	}
}

func TestSampleLinks_SkipsNonHTTPSchemes(t *testing.T) {
	doc := docFrom(t, `<body>
		<a href="mailto:team@example.com">Mail</a>
		<a href="javascript:void(0)">JS</a>
		<a href="ftp://example.com/file">FTP</a>
		<a href="tel:+15551234567">Call</a>
	</body>`)

	links := SampleLinks(doc, "https://example.com")
	if len(links) != 0 {
		t.Errorf("got %v, want no links", links)
	}
}

func TestSampleLinks_SkipsNonTextExtensions(t *testing.T) {
	doc := docFrom(t, `<body>
		<a href="/photo.jpg">Photo</a>
		<a href="/doc.PDF">Doc</a>
		<a href="/banner.png?v=2">Banner</a>
		<a href="/styles.css">Styles</a>
		<a href="/pricing">Pricing</a>
	</body>`)

	links := SampleLinks(doc, "https://example.com")

	if len(links) != 1 {
		t.Fatalf("got %v, want only the pricing link", links)
	}
	if _, ok := links["https://example.com/pricing"]; !ok {
		t.Errorf("missing pricing link in %v", links)
	}
}

func TestSampleLinks_EmptyAndMissingHrefs(t *testing.T) {
	doc := docFrom(t, `<body>
		<a href="">Empty</a>
		<a>No href</a>
	</body>`)

	links := SampleLinks(doc, "https://example.com")
	if len(links) != 0 {
		t.Errorf("got %v, want no links", links)
	}
}

func TestSampleLinks_BadBaseURL(t *testing.T) {
	doc := docFrom(t, `<body><a href="/x">X</a></body>`)
	links := SampleLinks(doc, "://not-a-url")
	if len(links) != 0 {
		t.Errorf("got %v, want no links for unparsable base", links)
	}
}

func TestHasNonTextExtension(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/a.jpg", true},
		{"/a.JPG", true},
		{"/archive.zip", true},
		{"/about", false},
		{"/index.html", false},
		{"/jpg", false},
	}

	for _, tt := range tests {
		if got := hasNonTextExtension(tt.path); got != tt.want {
			t.Errorf("hasNonTextExtension(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestParseVisible_StripsNonContent(t *testing.T) {
	html := `<html><body>
		<script>var hidden = 1;</script>
		<style>.x { color: red }</style>
		<noscript>Enable JS</noscript>
		<p>Visible paragraph</p>
	</body></html>`

	doc, text, err := parseVisible(html)
	if err != nil {
		t.Fatalf("parseVisible: %v", err)
	}

	if strings.Contains(text, "hidden") || strings.Contains(text, "color") || strings.Contains(text, "Enable JS") {
		t.Errorf("non-content markup leaked into text: %q", text)
	}
	if !strings.Contains(text, "Visible paragraph") {
		t.Errorf("visible text missing: %q", text)
	}
	if doc.Find("script").Length() != 0 {
		t.Error("script elements should be removed from the document")
	}
}

func TestVisibleText_JoinsWithNewlines(t *testing.T) {
	doc := docFrom(t, `<body><h1>Title</h1><p>First</p><p>Second</p></body>`)
	text := visibleText(doc)

	for _, want := range []string{"Title", "First", "Second"} {
		if !strings.Contains(text, want) {
			t.Errorf("text %q missing %q", text, want)
		}
	}
	if !strings.Contains(text, "\n") {
		t.Errorf("block texts should be newline-separated: %q", text)
	}
}
