package layout

import (
	"os"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"dataanalyzer/internal/views"
)

func TestRenderDocumentContract(t *testing.T) {
	doc, err := Render(views.Home())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(doc, `<html lang="en">`) {
		t.Error("document missing lang attribute")
	}
	if !strings.Contains(doc, "<title>Data Analyzer</title>") {
		t.Error("document missing title")
	}
	if !strings.Contains(doc, `<meta name="description" content="Powerful data analysis and visualization dashboard" />`) {
		t.Error("document missing description metadata")
	}
	if !strings.Contains(doc, `<link rel="stylesheet" href="/assets/fonts.css" />`) {
		t.Error("document missing font stylesheet link")
	}
	if !strings.Contains(doc, `<body class="font-mono antialiased">`) {
		t.Error("body missing font token and smoothing classes")
	}
}

func TestRenderPreservesChildren(t *testing.T) {
	children := []string{
		"",
		"<div></div>",
		"<section><p>other view</p></section>",
		"plain text with <b>markup</b> & entities",
	}

	for _, child := range children {
		doc, err := Render(child)
		if err != nil {
			t.Fatalf("render failed for %q: %v", child, err)
		}
		if !strings.Contains(doc, child) {
			t.Errorf("children %q not preserved in document", child)
		}
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	first, err := Render(views.Home())
	if err != nil {
		t.Fatalf("first render failed: %v", err)
	}

	for i := 0; i < 10; i++ {
		doc, err := Render(views.Home())
		if err != nil {
			t.Fatalf("render %d failed: %v", i, err)
		}
		if doc != first {
			t.Fatalf("render %d differs from first render", i)
		}
	}
}

func TestRenderHomeSnapshot(t *testing.T) {
	doc, err := Render(views.Home())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	snaps.WithConfig(snaps.Ext(".html")).MatchSnapshot(t, doc)
}

func TestVersionIsStable(t *testing.T) {
	if Version() != Version() {
		t.Error("version changed between calls")
	}
	if len(Version()) != 16 {
		t.Errorf("unexpected version length: %q", Version())
	}
}

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}
