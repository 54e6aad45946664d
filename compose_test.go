package mdpdf

import (
	"strings"
	"testing"
)

func TestComposeDocument(t *testing.T) {
	css := "body { font-family: serif; }"
	fragment := "<h1>Introduction</h1>"

	doc := composeDocument("paper", css, fragment)

	if !strings.Contains(doc, "<title>paper</title>") {
		t.Errorf("composed document missing title:\n%s", doc)
	}
	if !strings.Contains(doc, css) {
		t.Error("composed document missing stylesheet verbatim")
	}
	if !strings.Contains(doc, fragment) {
		t.Error("composed document missing body fragment verbatim")
	}
	if !strings.HasPrefix(doc, "<!DOCTYPE html>") {
		t.Error("composed document missing doctype")
	}
}

func TestComposeDocumentDeterministic(t *testing.T) {
	first := composeDocument("paper", "body {}", "<p>x</p>")
	second := composeDocument("paper", "body {}", "<p>x</p>")

	if first != second {
		t.Error("composeDocument() is not deterministic for identical inputs")
	}
}

func TestComposeDocumentEscapesTitle(t *testing.T) {
	doc := composeDocument(`a<b>&"c"`, "", "")

	if strings.Contains(doc, "<title>a<b>") {
		t.Error("title was not HTML-escaped")
	}
	if !strings.Contains(doc, "&lt;b&gt;") {
		t.Errorf("escaped title missing:\n%s", doc)
	}
}
