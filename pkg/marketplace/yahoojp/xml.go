package yahoojp

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/tournevent/marketplace/pkg/marketplace"
)

// requestRoot is the root element of every request document.
const requestRoot = "Req"

// EncodeXML renders a parameter tree as an XML document under root.
// Keys are written in sorted order so the output is deterministic.
func EncodeXML(root string, params marketplace.Params) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	if err := encodeElement(enc, root, params); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush xml: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeElement(enc *xml.Encoder, name string, v any) error {
	// Repeated elements share a name.
	if items, ok := v.([]any); ok {
		for _, item := range items {
			if err := encodeElement(enc, name, item); err != nil {
				return err
			}
		}
		return nil
	}

	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeToken(start); err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	switch val := v.(type) {
	case marketplace.Params:
		if err := encodeChildren(enc, val); err != nil {
			return err
		}
	case map[string]any:
		if err := encodeChildren(enc, val); err != nil {
			return err
		}
	default:
		text, err := leafText(val)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", name, err)
		}
		if err := enc.EncodeToken(xml.CharData(text)); err != nil {
			return fmt.Errorf("failed to encode %s: %w", name, err)
		}
	}

	return enc.EncodeToken(start.End())
}

func encodeChildren(enc *xml.Encoder, m map[string]any) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := encodeElement(enc, k, m[k]); err != nil {
			return err
		}
	}
	return nil
}

func leafText(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case string:
		return val, nil
	case int:
		return strconv.Itoa(val), nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case bool:
		return strconv.FormatBool(val), nil
	case fmt.Stringer:
		return val.String(), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}

// DecodeXML decodes a response document into nested maps. The root
// element is stripped, except an Error root which is kept as the
// "Error" section. Repeated sibling elements become []any, elements
// without children become strings. Attributes are ignored.
func DecodeXML(data []byte) (map[string]any, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty xml document")
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode xml: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		v, err := decodeElement(dec)
		if err != nil {
			return nil, err
		}

		if start.Name.Local == "Error" {
			return map[string]any{"Error": v}, nil
		}
		if m, ok := v.(map[string]any); ok {
			return m, nil
		}
		return map[string]any{start.Name.Local: v}, nil
	}
}

func decodeElement(dec *xml.Decoder) (any, error) {
	var (
		children map[string]any
		text     strings.Builder
	)

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to decode xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			v, err := decodeElement(dec)
			if err != nil {
				return nil, err
			}
			if children == nil {
				children = make(map[string]any)
			}
			addChild(children, t.Name.Local, v)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if children != nil {
				return children, nil
			}
			return text.String(), nil
		}
	}
}

func addChild(children map[string]any, name string, v any) {
	existing, ok := children[name]
	if !ok {
		children[name] = v
		return
	}
	if list, ok := existing.([]any); ok {
		children[name] = append(list, v)
		return
	}
	children[name] = []any{existing, v}
}
