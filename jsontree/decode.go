package jsontree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Decode parses a JSON document preserving member order. Numbers
// without a fraction or exponent decode as int64, everything else as
// float64.
func Decode(d []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after document")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Put(key, v)
			}
			// closing brace
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := NewArray()
			for dec.More() {
				v, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				arr.Append(v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		// string, bool, nil
		return t, nil
	}
}

// Encode renders a value tree as JSON with members in stored order.
func Encode(v any) ([]byte, error) {
	return json.Marshal(wrapMarshal(v))
}

func wrapMarshal(v any) any {
	return marshaler{v}
}

type marshaler struct {
	v any
}

func (m marshaler) MarshalJSON() ([]byte, error) {
	switch t := m.v.(type) {
	case *Object:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i := range t.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(t.keys[i])
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			d, err := marshaler{t.vals[i]}.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(d)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	case *Array:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, e := range t.elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := marshaler{e}.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(d)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	default:
		return json.Marshal(t)
	}
}
