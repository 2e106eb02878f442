// Package views holds the leaf page content rendered inside the layout shell.
package views

import (
	"bytes"
	_ "embed"
	"html/template"
	"strconv"
)

//go:embed home.html
var homeSource string

//go:embed error.html
var errorSource string

var errorTemplate = template.Must(template.New("error").Parse(errorSource))

// Home returns the default route's markup. It takes no input and always
// produces the same bytes.
func Home() string {
	return homeSource
}

// Error renders the error page body for the given status code and message.
func Error(code int, message string) string {
	var buf bytes.Buffer
	if err := errorTemplate.Execute(&buf, map[string]string{
		"Code":    strconv.Itoa(code),
		"Message": message,
	}); err != nil {
		// The template only touches two plain strings; execution cannot
		// fail outside of a broken embed.
		return "<main><h1>" + strconv.Itoa(code) + "</h1></main>"
	}
	return buf.String()
}
