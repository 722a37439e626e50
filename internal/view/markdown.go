package view

import (
	"bytes"
	"html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	ticketMarkdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	ticketPolicy   = bluemonday.UGCPolicy()
)

// RenderTicketBody converts a ticket description or response to sanitized
// HTML. Ticket bodies are end-user input, so everything the UGC policy does
// not allow is stripped. Templates must pipe the result through |safe.
func RenderTicketBody(src string) string {
	var buf bytes.Buffer
	if err := ticketMarkdown.Convert([]byte(src), &buf); err != nil {
		return "<p>" + html.EscapeString(src) + "</p>"
	}
	return string(ticketPolicy.SanitizeBytes(buf.Bytes()))
}
