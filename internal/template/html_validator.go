package template

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// voidElements don't take closing tags.
var voidElements = map[string]bool{
	"area":     true,
	"base":     true,
	"br":       true,
	"col":      true,
	"embed":    true,
	"hr":       true,
	"img":      true,
	"input":    true,
	"link":     true,
	"meta":     true,
	"param":    true,
	"source":   true,
	"track":    true,
	"wbr":      true,
	"!doctype": true,
}

// ValidateTagBalance checks that every opening tag in rendered page output
// has a matching, properly nested closing tag. Used by rendering tests to
// catch broken template includes before they ship.
func ValidateTagBalance(htmlContent string) error {
	tagStack := []string{}
	tokenizer := html.NewTokenizer(strings.NewReader(htmlContent))

	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			err := tokenizer.Err()
			if err == io.EOF {
				if len(tagStack) > 0 {
					return fmt.Errorf("unclosed tags at end of document: %v", tagStack)
				}
				return nil
			}
			return fmt.Errorf("HTML tokenizer error: %v", err)

		case html.StartTagToken:
			tn, _ := tokenizer.TagName()
			tagName := strings.ToLower(string(tn))
			if !voidElements[tagName] {
				tagStack = append(tagStack, tagName)
			}

		case html.EndTagToken:
			tn, _ := tokenizer.TagName()
			tagName := strings.ToLower(string(tn))
			if voidElements[tagName] {
				continue
			}
			if len(tagStack) == 0 {
				return fmt.Errorf("unexpected closing tag </%s> with no matching open tag", tagName)
			}
			last := tagStack[len(tagStack)-1]
			if last != tagName {
				return fmt.Errorf("mismatched tags: expected </%s> but got </%s>", last, tagName)
			}
			tagStack = tagStack[:len(tagStack)-1]

		case html.SelfClosingTagToken:
			continue
		}
	}
}
