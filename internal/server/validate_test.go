package server

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/carbon-tools/carbon-ls/internal/settings"
)

func TestScanAllCaps(t *testing.T) {
	doc := &Document{
		URI:  "file:///a.carbon",
		Text: "fn Main() {\n  var LOUD: i32 = 0;\n  var ALSO: i32 = 1;\n}\n",
	}

	diags := scanAllCaps(doc, settings.Default(), false)

	if len(diags) != 2 {
		t.Fatalf("scan found %d problems, want 2", len(diags))
	}
	first := diags[0]
	if first.Message != "LOUD is all uppercase." {
		t.Errorf("message = %q", first.Message)
	}
	if first.Severity == nil || *first.Severity != protocol.DiagnosticSeverityWarning {
		t.Errorf("severity = %v, want warning", first.Severity)
	}
	if first.Range.Start.Line != 1 || first.Range.Start.Character != 6 {
		t.Errorf("range starts at %d:%d, want 1:6", first.Range.Start.Line, first.Range.Start.Character)
	}
	if first.RelatedInformation != nil {
		t.Error("related information present without client support")
	}
}

func TestScanAllCapsHonorsProblemBudget(t *testing.T) {
	doc := &Document{
		URI:  "file:///a.carbon",
		Text: strings.Repeat("AA BB CC\n", 10),
	}

	diags := scanAllCaps(doc, settings.Settings{MaxNumberOfProblems: 3}, false)
	if len(diags) != 3 {
		t.Errorf("scan found %d problems, want budget cap of 3", len(diags))
	}
}

func TestScanAllCapsRelatedInformation(t *testing.T) {
	doc := &Document{URI: "file:///a.carbon", Text: "SHOUT\n"}

	diags := scanAllCaps(doc, settings.Default(), true)
	if len(diags) != 1 {
		t.Fatalf("scan found %d problems, want 1", len(diags))
	}
	rel := diags[0].RelatedInformation
	if len(rel) != 1 {
		t.Fatalf("related information count = %d, want 1", len(rel))
	}
	if string(rel[0].Location.URI) != doc.URI {
		t.Errorf("related location URI = %q, want %q", rel[0].Location.URI, doc.URI)
	}
	if rel[0].Location.Range != diags[0].Range {
		t.Error("related location range should match the diagnostic range")
	}
}
