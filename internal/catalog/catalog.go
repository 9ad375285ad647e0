// Package catalog holds the fixed completion set for the Carbon keyword
// surface and the lookup table used to resolve detail text for individual
// items. Both tables are defined once and never mutated; completion requests
// receive the full ordered set regardless of cursor context.
package catalog

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Entry is one candidate suggestion in the fixed completion set.
type Entry struct {
	Label string
	Key   Key
}

// Catalog serves the completion set and resolves item detail by tag.
type Catalog struct {
	entries []Entry
	records map[Key]Record
}

// New returns the Carbon keyword catalog.
func New() *Catalog {
	return &Catalog{entries: entries, records: records}
}

// Items materializes the completion list sent to the client. Order is stable
// across calls. Every item carries kind Text and its resolution tag in the
// data field.
func (c *Catalog) Items() []protocol.CompletionItem {
	kind := protocol.CompletionItemKindText
	items := make([]protocol.CompletionItem, len(c.entries))
	for i, e := range c.entries {
		items[i] = protocol.CompletionItem{
			Label: e.Label,
			Kind:  &kind,
			Data:  e.Key.Data(),
		}
	}
	return items
}

// Len reports the number of entries in the completion set.
func (c *Catalog) Len() int { return len(c.entries) }

// The completion set. Order here is display order in the client UI. Several
// labels share one tag on purpose: they resolve to the same record. A few
// tags (12, "reserved") have no record at all and pass through resolution
// untouched.
var entries = []Entry{
	{"package", IntKey(1)},
	{"library", IntKey(1)},
	{"import", IntKey(2)},
	{"api", IntKey(2)},
	{"namespace", IntKey(3)},
	{"alias", IntKey(3)},
	{"fn", IntKey(6)},
	{"match", IntKey(6)},
	{"class", IntKey(6)},
	{"let", IntKey(6)},
	{"var", IntKey(4)},
	{"const", IntKey(5)},
	{"auto", IntKey(8)},
	{"if", IntKey(7)},
	{"then", IntKey(7)},
	{"else", IntKey(7)},
	{"while", IntKey(7)},
	{"for", IntKey(7)},
	{"in", IntKey(7)},
	{"break", IntKey(7)},
	{"continue", IntKey(7)},
	{"return", IntKey(7)},
	{"returned", IntKey(7)},
	{"case", IntKey(7)},
	{"default", IntKey(7)},
	{"and", IntKey(9)},
	{"or", IntKey(9)},
	{"not", IntKey(9)},
	{"true", IntKey(10)},
	{"false", IntKey(10)},
	{"me", IntKey(11)},
	{"base", IntKey(11)},
	{"extends", IntKey(11)},
	{"abstract", IntKey(11)},
	{"virtual", IntKey(11)},
	{"final", IntKey(11)},
	{"override", IntKey(11)},
	{"private", IntKey(11)},
	{"protected", IntKey(11)},
	{"interface", StringKey("interface")},
	{"constraint", StringKey("interface")},
	{"impl", StringKey("generic")},
	{"template", StringKey("generic")},
	{"forall", StringKey("generic")},
	{"where", StringKey("generic")},
	{"is", StringKey("generic")},
	{"like", StringKey("generic")},
	{"bool", StringKey("type")},
	{"i8", StringKey("type")},
	{"i16", StringKey("type")},
	{"i32", StringKey("type")},
	{"i64", StringKey("type")},
	{"u8", StringKey("type")},
	{"u16", StringKey("type")},
	{"u32", StringKey("type")},
	{"u64", StringKey("type")},
	{"f32", StringKey("type")},
	{"f64", StringKey("type")},
	{"String", StringKey("type")},
	{"destructor", IntKey(12)},
	{"observe", IntKey(12)},
	{"friend", StringKey("reserved")},
}
