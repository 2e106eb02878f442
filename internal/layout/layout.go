// Package layout composes the outer document shell shared by every page.
// Page metadata (title, description, language) lives here and only here;
// views never carry their own head section.
package layout

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"html/template"
)

const (
	// Lang is the document language attribute for every rendered page.
	Lang = "en"
	// Title is the document title applied at the shell level.
	Title = "Data Analyzer"
	// Description is the document description metadata.
	Description = "Powerful data analysis and visualization dashboard"
	// FontStylesheet is the path the shell references for the font token.
	FontStylesheet = "/assets/fonts.css"
)

//go:embed page.html
var pageTemplateSource string

var pageTemplate = template.Must(template.New("page").Parse(pageTemplateSource))

// Render wraps the given body markup in the document shell. The children
// markup is injected verbatim; the shell never rewrites or escapes it.
func Render(children string) (string, error) {
	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, map[string]any{
		"Lang":           Lang,
		"Title":          Title,
		"Description":    Description,
		"FontStylesheet": FontStylesheet,
		"Children":       template.HTML(children),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Version identifies the current shell markup. Cached documents keyed on it
// are invalidated whenever the template changes.
func Version() string {
	sum := sha256.Sum256([]byte(pageTemplateSource))
	return hex.EncodeToString(sum[:8])
}
