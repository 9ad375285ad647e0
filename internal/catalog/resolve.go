package catalog

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Record carries the detail attached to a completion item during
// completionItem/resolve.
type Record struct {
	Detail        string
	Documentation string
}

// Resolve populates detail and documentation when the item's tag has a
// record, and returns the item unchanged otherwise. An unknown or malformed
// tag is the normal case for entries that never had documentation, not an
// error. Label, kind, and tag are never modified.
func (c *Catalog) Resolve(item *protocol.CompletionItem) *protocol.CompletionItem {
	key, ok := KeyFromData(item.Data)
	if !ok {
		return item
	}
	rec, ok := c.records[key]
	if !ok {
		return item
	}
	item.Detail = &rec.Detail
	item.Documentation = rec.Documentation
	return item
}

// Resolution records. Deliberately many-to-one: every label sharing a tag in
// the completion set resolves to the same record.
var records = map[Key]Record{
	IntKey(1): {
		Detail:        "Carbon Package",
		Documentation: "Declares the package or library that the current file belongs to.",
	},
	IntKey(2): {
		Detail:        "Carbon Import",
		Documentation: "Brings a library's public names into the current file.",
	},
	IntKey(3): {
		Detail:        "Carbon Namespace",
		Documentation: "Introduces or renames a scoped name.",
	},
	IntKey(4): {
		Detail:        "Carbon Variable",
		Documentation: "Introduces a runtime binding whose value may change.",
	},
	IntKey(5): {
		Detail:        "Carbon Constant",
		Documentation: "Introduces a binding fixed at compile time.",
	},
	IntKey(6): {
		Detail:        "Carbon Function",
		Documentation: "Introduces a callable or pattern-binding construct.",
	},
	IntKey(7): {
		Detail:        "Carbon Control Flow",
		Documentation: "Directs execution through branches and loops.",
	},
	IntKey(8): {
		Detail:        "Carbon Type Inference",
		Documentation: "Lets the compiler deduce the type from the initializer.",
	},
	IntKey(9): {
		Detail:        "Carbon Operator",
		Documentation: "Logical operator keyword.",
	},
	IntKey(10): {
		Detail:        "Carbon Literal",
		Documentation: "Boolean literal value.",
	},
	IntKey(11): {
		Detail:        "Carbon Member Modifier",
		Documentation: "Adjusts visibility or inheritance behavior of a class member.",
	},
	StringKey("interface"): {
		Detail:        "Carbon Interface",
		Documentation: "Declares a named set of requirements that types can implement.",
	},
	StringKey("generic"): {
		Detail:        "Carbon Generic",
		Documentation: "Participates in generic and template declarations.",
	},
	StringKey("type"): {
		Detail:        "Carbon Type",
		Documentation: "Built-in type name.",
	},
}
