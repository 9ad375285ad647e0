package server

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func rng(startLine, startChar, endLine, endChar protocol.UInteger) *protocol.Range {
	return &protocol.Range{
		Start: protocol.Position{Line: startLine, Character: startChar},
		End:   protocol.Position{Line: endLine, Character: endChar},
	}
}

func TestApplyChanges(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		changes []any
		want    string
	}{
		{
			name:    "whole document replacement",
			text:    "old text",
			changes: []any{protocol.TextDocumentContentChangeEventWhole{Text: "new text"}},
			want:    "new text",
		},
		{
			name: "insert at start",
			text: "world",
			changes: []any{protocol.TextDocumentContentChangeEvent{
				Range: rng(0, 0, 0, 0), Text: "hello ",
			}},
			want: "hello world",
		},
		{
			name: "replace within line",
			text: "var x: i32 = 1;",
			changes: []any{protocol.TextDocumentContentChangeEvent{
				Range: rng(0, 4, 0, 5), Text: "y",
			}},
			want: "var y: i32 = 1;",
		},
		{
			name: "delete across lines",
			text: "line one\nline two\nline three\n",
			changes: []any{protocol.TextDocumentContentChangeEvent{
				Range: rng(0, 4, 2, 4), Text: "",
			}},
			want: "line three\n",
		},
		{
			name: "edit on later line",
			text: "fn A() {}\nfn B() {}\n",
			changes: []any{protocol.TextDocumentContentChangeEvent{
				Range: rng(1, 3, 1, 4), Text: "C",
			}},
			want: "fn A() {}\nfn C() {}\n",
		},
		{
			name: "sequential events apply in order",
			text: "abc",
			changes: []any{
				protocol.TextDocumentContentChangeEvent{Range: rng(0, 3, 0, 3), Text: "d"},
				protocol.TextDocumentContentChangeEvent{Range: rng(0, 0, 0, 1), Text: ""},
			},
			want: "bcd",
		},
		{
			name: "utf16 characters after multibyte rune",
			text: "π = 3;",
			changes: []any{protocol.TextDocumentContentChangeEvent{
				Range: rng(0, 4, 0, 5), Text: "4",
			}},
			want: "π = 4;",
		},
		{
			name: "character past line end clamps",
			text: "ab\ncd",
			changes: []any{protocol.TextDocumentContentChangeEvent{
				Range: rng(0, 99, 1, 0), Text: "-",
			}},
			want: "ab-cd",
		},
		{
			name: "line past document end clamps",
			text: "ab",
			changes: []any{protocol.TextDocumentContentChangeEvent{
				Range: rng(5, 0, 6, 0), Text: "!",
			}},
			want: "ab!",
		},
		{
			name: "missing range replaces document",
			text: "before",
			changes: []any{protocol.TextDocumentContentChangeEvent{
				Range: nil, Text: "after",
			}},
			want: "after",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &Document{URI: "file:///a.carbon", Text: tt.text}
			doc.ApplyChanges(tt.changes)
			if doc.Text != tt.want {
				t.Errorf("text = %q, want %q", doc.Text, tt.want)
			}
		})
	}
}

func TestOffsetAt(t *testing.T) {
	doc := &Document{Text: "ab\nπd\nef"}

	tests := []struct {
		name string
		pos  protocol.Position
		want int
	}{
		{"origin", protocol.Position{Line: 0, Character: 0}, 0},
		{"within first line", protocol.Position{Line: 0, Character: 1}, 1},
		{"line end stops at newline", protocol.Position{Line: 0, Character: 99}, 2},
		{"second line start", protocol.Position{Line: 1, Character: 0}, 3},
		{"after multibyte rune", protocol.Position{Line: 1, Character: 1}, 5},
		{"last line end", protocol.Position{Line: 2, Character: 2}, 9},
		{"line beyond document", protocol.Position{Line: 9, Character: 0}, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc.offsetAt(tt.pos); got != tt.want {
				t.Errorf("offsetAt(%d:%d) = %d, want %d", tt.pos.Line, tt.pos.Character, got, tt.want)
			}
		})
	}
}

func TestPositionAt(t *testing.T) {
	doc := &Document{Text: "ab\nπd\nef"}

	tests := []struct {
		name   string
		offset int
		want   protocol.Position
	}{
		{"origin", 0, protocol.Position{Line: 0, Character: 0}},
		{"first line", 2, protocol.Position{Line: 0, Character: 2}},
		{"second line start", 3, protocol.Position{Line: 1, Character: 0}},
		{"after multibyte rune", 5, protocol.Position{Line: 1, Character: 1}},
		{"document end", 9, protocol.Position{Line: 2, Character: 2}},
		{"offset beyond document clamps", 99, protocol.Position{Line: 2, Character: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc.positionAt(tt.offset); got != tt.want {
				t.Errorf("positionAt(%d) = %d:%d, want %d:%d", tt.offset, got.Line, got.Character, tt.want.Line, tt.want.Character)
			}
		})
	}
}
