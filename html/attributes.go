package html

import (
	"strings"
)

// Attr is one attribute of an element: either a string-valued attribute or
// a bare boolean flag. Value holds the escaped form for string attributes
// and is empty for flags.
type Attr struct {
	Key   string
	Value string
	Flag  bool
}

// Attributes is an insertion-ordered attribute collection. The zero value is
// an empty collection. Attributes values are immutable; Set, SetFlag, Drop
// and Merge return modified copies, so a collection can be shared safely.
type Attributes struct {
	list []Attr
}

// NewAttributes returns an empty attribute collection.
func NewAttributes() Attributes {
	return Attributes{}
}

// Len returns the number of attributes.
func (a Attributes) Len() int {
	return len(a.list)
}

// Get retrieves a string attribute's (escaped) value. For flags it returns
// ("", true).
func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a.list {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Has reports whether the attribute is present (string-valued or flag).
func (a Attributes) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// IsFlag reports whether the attribute is present as a bare flag.
func (a Attributes) IsFlag(key string) bool {
	for _, attr := range a.list {
		if attr.Key == key {
			return attr.Flag
		}
	}
	return false
}

// Keys returns the attribute keys in insertion order.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a.list))
	for _, attr := range a.list {
		keys = append(keys, attr.Key)
	}
	return keys
}

// All returns a copy of the attributes in insertion order.
func (a Attributes) All() []Attr {
	out := make([]Attr, len(a.list))
	copy(out, a.list)
	return out
}

// Set returns a copy with key set to the given value. The value is
// attribute-escaped here, exactly once; an existing attribute keeps its
// position, a new one is appended.
func (a Attributes) Set(key, value string) Attributes {
	return a.put(Attr{Key: key, Value: EscapeAttr(value)})
}

// SetFlag returns a copy with key present as a bare flag.
func (a Attributes) SetFlag(key string) Attributes {
	return a.put(Attr{Key: key, Flag: true})
}

// Drop returns a copy without the given attribute.
func (a Attributes) Drop(key string) Attributes {
	out := make([]Attr, 0, len(a.list))
	for _, attr := range a.list {
		if attr.Key != key {
			out = append(out, attr)
		}
	}
	return Attributes{list: out}
}

// Merge returns a copy with all attributes of other applied in order.
// Values from other are already escaped and are not escaped again.
func (a Attributes) Merge(other Attributes) Attributes {
	out := a
	for _, attr := range other.list {
		out = out.put(attr)
	}
	return out
}

// put replaces the attribute in place or appends it, on a fresh copy.
func (a Attributes) put(attr Attr) Attributes {
	out := make([]Attr, len(a.list))
	copy(out, a.list)
	for i, existing := range out {
		if existing.Key == attr.Key {
			out[i] = attr
			return Attributes{list: out}
		}
	}
	return Attributes{list: append(out, attr)}
}

// Equal reports structural equality: same attributes, same order.
func (a Attributes) Equal(other Attributes) bool {
	if len(a.list) != len(other.list) {
		return false
	}
	for i := range a.list {
		if a.list[i] != other.list[i] {
			return false
		}
	}
	return true
}

// String renders the attributes in their serialized form, space-separated.
func (a Attributes) String() string {
	var sb strings.Builder
	for i, attr := range a.list {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if attr.Flag {
			sb.WriteString(attr.Key)
		} else {
			sb.WriteString(attr.Key)
			sb.WriteString(`="`)
			sb.WriteString(attr.Value)
			sb.WriteString(`"`)
		}
	}
	return sb.String()
}
