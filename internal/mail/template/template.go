// Package template renders the fixed email variants sent by the service.
//
// Each family (transaction, host notification) has one HTML layout and one
// plain-text layout. Variant differences are expressed as copy bundles
// selected in a single place, never as branching inside the layouts.
// User-supplied strings are escaped in the HTML output (html/template) and
// used verbatim in the text output (text/template).
package template

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

// Document is a rendered message body pair. Text is composed independently,
// not derived from HTML.
type Document struct {
	HTML string
	Text string
}

// greetingName substitutes "there" when no display name is known.
func greetingName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "there"
	}
	return strings.TrimSpace(name)
}

func execHTML(t *htmltemplate.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute html template %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}

func execText(t *texttemplate.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute text template %s: %w", t.Name(), err)
	}
	return buf.String(), nil
}
