package server

import (
	"strings"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Document is one open text document tracked for the session. The server
// mirrors the client's edits so the text stays current under incremental
// synchronization.
type Document struct {
	URI        string
	LanguageID string
	Version    protocol.Integer
	Text       string
}

// ApplyChanges folds a didChange batch into the document text, in order.
// Ranged events patch the current text; whole-document events replace it.
func (d *Document) ApplyChanges(changes []any) {
	for _, change := range changes {
		switch ev := change.(type) {
		case protocol.TextDocumentContentChangeEvent:
			d.applyRanged(ev)
		case protocol.TextDocumentContentChangeEventWhole:
			d.Text = ev.Text
		}
	}
}

func (d *Document) applyRanged(ev protocol.TextDocumentContentChangeEvent) {
	if ev.Range == nil {
		d.Text = ev.Text
		return
	}
	start := d.offsetAt(ev.Range.Start)
	end := d.offsetAt(ev.Range.End)
	if end < start {
		start, end = end, start
	}
	d.Text = d.Text[:start] + ev.Text + d.Text[end:]
}

// offsetAt maps an LSP position (0-based line, UTF-16 character) to a byte
// offset. Positions past the end of a line or of the document clamp.
func (d *Document) offsetAt(pos protocol.Position) int {
	offset := 0
	for line := protocol.UInteger(0); line < pos.Line; line++ {
		nl := strings.IndexByte(d.Text[offset:], '\n')
		if nl < 0 {
			return len(d.Text)
		}
		offset += nl + 1
	}

	units := protocol.UInteger(0)
	for i, r := range d.Text[offset:] {
		if units >= pos.Character || r == '\n' {
			return offset + i
		}
		units += protocol.UInteger(utf16.RuneLen(r))
	}
	return len(d.Text)
}

// positionAt maps a byte offset back to an LSP position.
func (d *Document) positionAt(offset int) protocol.Position {
	if offset > len(d.Text) {
		offset = len(d.Text)
	}
	prefix := d.Text[:offset]
	lineStart := strings.LastIndexByte(prefix, '\n') + 1

	units := 0
	for _, r := range prefix[lineStart:] {
		units += utf16.RuneLen(r)
	}

	return protocol.Position{
		Line:      protocol.UInteger(strings.Count(prefix, "\n")),
		Character: protocol.UInteger(units),
	}
}
