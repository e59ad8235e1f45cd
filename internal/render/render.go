// Package render converts post Markdown into HTML and back into plain text.
package render

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// HTML renders GitHub flavored Markdown: headings, lists, fenced code,
// tables, autolinks, strikethrough and task lists. Raw HTML is passed through.
func HTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PlainText returns the text content of an HTML fragment with whitespace
// collapsed to single spaces.
func PlainText(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}

// WordCount counts the words of the rendered Markdown source.
func WordCount(source string) (int, error) {
	rendered, err := HTML(source)
	if err != nil {
		return 0, err
	}
	text, err := PlainText(rendered)
	if err != nil {
		return 0, err
	}
	return len(strings.Fields(text)), nil
}
