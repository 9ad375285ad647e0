package catalog

import "strconv"

// keyKind discriminates the two tag variants carried on completion items.
type keyKind uint8

const (
	keyInt keyKind = iota
	keyString
)

// Key identifies a resolution record. Tags travel on the wire as either JSON
// strings or JSON integers; Key makes the variant explicit so lookups never
// rely on loose cross-type equality.
type Key struct {
	kind keyKind
	num  int64
	str  string
}

// IntKey returns the integer-tag variant.
func IntKey(n int64) Key { return Key{kind: keyInt, num: n} }

// StringKey returns the string-tag variant.
func StringKey(s string) Key { return Key{kind: keyString, str: s} }

// KeyFromData recovers a Key from a completion item's data field. Integer
// tags come back from the client as float64 after the JSON round trip, so
// integral floats fold into the integer variant. Returns false for values
// that are not tags at all.
func KeyFromData(v any) (Key, bool) {
	switch t := v.(type) {
	case string:
		return StringKey(t), true
	case int:
		return IntKey(int64(t)), true
	case int32:
		return IntKey(int64(t)), true
	case int64:
		return IntKey(t), true
	case float64:
		n := int64(t)
		if float64(n) != t {
			return Key{}, false
		}
		return IntKey(n), true
	default:
		return Key{}, false
	}
}

// Data returns the wire form attached to outgoing completion items.
func (k Key) Data() any {
	if k.kind == keyString {
		return k.str
	}
	return k.num
}

// String renders the key for log output.
func (k Key) String() string {
	if k.kind == keyString {
		return k.str
	}
	return strconv.FormatInt(k.num, 10)
}
