// Package extract reduces HTML documents to the plain text whose words are counted.
package extract

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// blockElements end a run of text; their contents never join a neighbour's word.
var blockElements = map[string]struct{}{
	"address": {}, "article": {}, "aside": {}, "blockquote": {}, "br": {},
	"dd": {}, "div": {}, "dl": {}, "dt": {}, "figcaption": {}, "figure": {},
	"footer": {}, "h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"header": {}, "hr": {}, "li": {}, "main": {}, "nav": {}, "ol": {}, "p": {},
	"pre": {}, "section": {}, "table": {}, "td": {}, "th": {}, "title": {},
	"tr": {}, "ul": {},
}

// IsHTMLPath reports whether a file name looks like an HTML document.
func IsHTMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	default:
		return false
	}
}

// ToText extracts readable text from HTML.
//
// Parameters:
//   - content: io.Reader containing HTML
//   - selector: optional CSS selector; when set only matching elements are used
//   - includeAll: if true, skips readability extraction and uses the whole body
//   - baseURL: optional URL for context during readability extraction (can be nil)
//
// Script, style and noscript elements never contribute words.
func ToText(content io.Reader, selector string, includeAll bool, baseURL *url.URL) (string, error) {
	if selector != "" {
		return extractWithSelector(content, selector)
	}

	if includeAll {
		doc, err := goquery.NewDocumentFromReader(content)
		if err != nil {
			return "", fmt.Errorf("failed to parse HTML: %w", err)
		}
		return selectionText(doc.Find("body")), nil
	}

	return extractMainContent(content, baseURL)
}

// extractMainContent uses go-readability to find the main article.
func extractMainContent(content io.Reader, baseURL *url.URL) (string, error) {
	if baseURL == nil {
		baseURL = &url.URL{}
	}

	article, err := readability.FromReader(content, baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract main content: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return "", fmt.Errorf("failed to parse extracted article: %w", err)
	}

	text := selectionText(doc.Selection)
	slog.Debug("Readable content extracted", "title", article.Title, "textLength", len(text))
	return text, nil
}

func extractWithSelector(content io.Reader, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(content)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	selection := doc.Find(selector)
	if selection.Length() == 0 {
		return "", fmt.Errorf("no elements found matching selector: %s", selector)
	}

	var parts []string
	selection.Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, selectionText(s))
	})

	return strings.Join(parts, "\n"), nil
}

// selectionText returns the text of s with block elements separated by newlines.
func selectionText(s *goquery.Selection) string {
	s.Find("script, style, noscript, template").Remove()

	var b strings.Builder
	writeText(&b, s)
	return strings.TrimSpace(b.String())
}

func writeText(b *strings.Builder, s *goquery.Selection) {
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		name := goquery.NodeName(c)
		if name == "#text" {
			b.WriteString(c.Text())
			return
		}

		_, block := blockElements[name]
		if block {
			b.WriteByte('\n')
		}
		writeText(b, c)
		if block {
			b.WriteByte('\n')
		}
	})
}
