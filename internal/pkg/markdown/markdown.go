package markdown

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Raw HTML in the input is not rendered (goldmark's default), so user text is safe to embed.
var md = goldmark.New(goldmark.WithExtensions(extension.Table))

// ToHTML converts a markdown fragment to HTML.
func ToHTML(input string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(input), &buf); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return buf.String(), nil
}

// Page wraps the rendered fragment in a standalone HTML document.
func Page(title, input string) ([]byte, error) {
	body, err := ToHTML(input)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"es\">\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	b.WriteString("<style>body{font-family:sans-serif;margin:2em}table{border-collapse:collapse}td,th{border:1px solid #999;padding:4px 8px}</style>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("</body>\n</html>\n")
	return []byte(b.String()), nil
}

// Valid reports whether the input parses as a markdown document.
func Valid(input string) bool {
	doc := md.Parser().Parse(text.NewReader([]byte(input)))
	return doc != nil && doc.HasChildren()
}
