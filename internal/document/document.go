// Package document wraps a permissive HTML parse of a response body.
//
// Parsing never fails: malformed markup is repaired the way browsers do it and
// an unreadable body degrades to an empty document.
package document

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a read-only view over a parsed page.
type Document struct {
	doc    *goquery.Document
	text   string
	markup string
	forms  []Form
}

// Form is a single <form> element.
type Form struct {
	markup string
}

// Markup returns the normalized serialization of the form, including the form tag itself.
func (f Form) Markup() string {
	return f.markup
}

// Parse builds a Document from raw body bytes.
func Parse(body []byte) *Document {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		doc = goquery.NewDocumentFromNode(&html.Node{Type: html.DocumentNode})
	}

	d := &Document{doc: doc, text: doc.Text()}
	if markup, err := doc.Html(); err == nil {
		d.markup = markup
	}

	doc.Find("form").Each(func(_ int, sel *goquery.Selection) {
		markup, err := goquery.OuterHtml(sel)
		if err != nil {
			return
		}
		d.forms = append(d.forms, Form{markup: markup})
	})

	return d
}

// Text returns the concatenated text of every text node, script bodies included.
func (d *Document) Text() string {
	if d == nil {
		return ""
	}
	return d.text
}

// Markup returns the normalized serialization of the whole document.
func (d *Document) Markup() string {
	if d == nil {
		return ""
	}
	return d.markup
}

// Forms returns the form elements in document order.
func (d *Document) Forms() []Form {
	if d == nil {
		return nil
	}
	out := make([]Form, len(d.forms))
	copy(out, d.forms)
	return out
}

// Title returns the trimmed <title> text, if any.
func (d *Document) Title() string {
	if d == nil || d.doc == nil {
		return ""
	}
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}
