package html

import (
	"gopkg.in/yaml.v3"

	"github.com/itsatony/go-cuserr"
)

// Error constants for serialization
const (
	ErrMsgEncodeFailed = "element YAML encoding failed"
	ErrMsgDecodeFailed = "element YAML decoding failed"
	ErrMsgTextWithTag  = "node cannot be both text and element"
	ErrCodeEncode      = "TSTR_HTML_ENCODE"
)

// yamlAttr is the wire form of one attribute. Value carries the escaped
// form, so encode/decode round-trips never re-escape.
type yamlAttr struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value,omitempty"`
	Flag  bool   `yaml:"flag,omitempty"`
}

// yamlNode is the wire form of a node. Exactly one of Text or the element
// fields is used; a fragment is an element with an empty tag.
type yamlNode struct {
	Text     *string    `yaml:"text,omitempty"`
	Tag      string     `yaml:"tag,omitempty"`
	Attrs    []yamlAttr `yaml:"attrs,omitempty"`
	Children []yamlNode `yaml:"children,omitempty"`
}

// EncodeYAML serializes the element tree to YAML, preserving attribute and
// child order.
func EncodeYAML(e Element) ([]byte, error) {
	data, err := yaml.Marshal(e)
	if err != nil {
		return nil, cuserr.WrapStdError(err, ErrCodeEncode, ErrMsgEncodeFailed)
	}
	return data, nil
}

// DecodeYAML deserializes an element tree from YAML.
func DecodeYAML(data []byte) (Element, error) {
	var e Element
	if err := yaml.Unmarshal(data, &e); err != nil {
		return Element{}, cuserr.WrapStdError(err, ErrCodeEncode, ErrMsgDecodeFailed)
	}
	return e, nil
}

// MarshalYAML implements yaml.Marshaler.
func (e Element) MarshalYAML() (any, error) {
	return elementToWire(e), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Element) UnmarshalYAML(node *yaml.Node) error {
	var wire yamlNode
	if err := node.Decode(&wire); err != nil {
		return err
	}
	el, err := elementFromWire(wire)
	if err != nil {
		return err
	}
	*e = el
	return nil
}

func elementToWire(e Element) yamlNode {
	wire := yamlNode{Tag: e.tag}
	for _, attr := range e.attrs.All() {
		wire.Attrs = append(wire.Attrs, yamlAttr{Key: attr.Key, Value: attr.Value, Flag: attr.Flag})
	}
	for _, child := range e.children {
		wire.Children = append(wire.Children, nodeToWire(child))
	}
	return wire
}

func nodeToWire(n Node) yamlNode {
	switch v := n.(type) {
	case Text:
		s := string(v)
		return yamlNode{Text: &s}
	case Element:
		return elementToWire(v)
	default:
		return yamlNode{}
	}
}

func elementFromWire(wire yamlNode) (Element, error) {
	if wire.Text != nil {
		return Element{}, cuserr.NewValidationError(ErrCodeEncode, ErrMsgTextWithTag)
	}
	if wire.Tag == "" && len(wire.Attrs) > 0 {
		return Element{}, NewFragmentAttrsError()
	}
	attrs := Attributes{}
	for _, attr := range wire.Attrs {
		// Values arrive in escaped form; bypass Set to avoid escaping twice.
		attrs = attrs.put(Attr{Key: attr.Key, Value: attr.Value, Flag: attr.Flag})
	}
	children := make([]Node, 0, len(wire.Children))
	for _, child := range wire.Children {
		node, err := nodeFromWire(child)
		if err != nil {
			return Element{}, err
		}
		children = append(children, node)
	}
	if len(children) == 0 {
		children = nil
	}
	return Element{tag: wire.Tag, attrs: attrs, children: children}, nil
}

func nodeFromWire(wire yamlNode) (Node, error) {
	if wire.Text != nil {
		if wire.Tag != "" || len(wire.Attrs) > 0 || len(wire.Children) > 0 {
			return nil, cuserr.NewValidationError(ErrCodeEncode, ErrMsgTextWithTag)
		}
		return Text(*wire.Text), nil
	}
	return elementFromWire(wire)
}
