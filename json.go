package scn

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// FromJSON parses one JSON value into a Value tree, preserving object key
// order. Numbers without a fraction or exponent become integers; everything
// else becomes a float, so 40 and 40.0 stay distinct through a round trip.
func FromJSON(r io.Reader) (*Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	v, err := readJSONValue(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("scn: trailing data after JSON value")
	}
	return v, nil
}

// FromJSONBytes parses a JSON byte slice. See FromJSON.
func FromJSONBytes(b []byte) (*Value, error) {
	return FromJSON(bytes.NewReader(b))
}

func readJSONValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return jsonValue(dec, tok)
}

func jsonValue(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return Str(t), nil
	case json.Number:
		return jsonNumber(t)
	case json.Delim:
		switch t {
		case '[':
			var items []*Value
			for dec.More() {
				item, err := readJSONValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return List(items...), nil
		case '{':
			var entries []MapEntry
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("scn: object key is not a string: %v", keyTok)
				}
				val, err := readJSONValue(dec)
				if err != nil {
					return nil, err
				}
				entries = append(entries, MapEntry{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return Map(entries...), nil
		}
	}
	return nil, fmt.Errorf("scn: unexpected JSON token %v", tok)
}

func jsonNumber(n json.Number) (*Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		i, err := n.Int64()
		if err == nil {
			return Int(i), nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("scn: bad number %q: %v", s, err)
	}
	return Float(f), nil
}

// ToJSON serializes a Value tree to compact JSON, keys in stored order.
// Integral floats render with a trailing ".0" so they parse back as floats.
func ToJSON(v *Value) []byte {
	var buf bytes.Buffer
	appendJSON(&buf, v)
	return buf.Bytes()
}

// ToJSONIndent serializes a Value tree to indented JSON.
func ToJSONIndent(v *Value, prefix, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, ToJSON(v), prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func appendJSON(buf *bytes.Buffer, v *Value) {
	switch v.Kind() {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.boolVal {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.intVal, 10))
	case KindFloat:
		appendJSONFloat(buf, v.floatVal)
	case KindStr:
		appendJSONString(buf, v.strVal)
	case KindList:
		buf.WriteByte('[')
		for i, item := range v.listVal {
			if i > 0 {
				buf.WriteByte(',')
			}
			appendJSON(buf, item)
		}
		buf.WriteByte(']')
	case KindMap:
		buf.WriteByte('{')
		for i, e := range v.mapVal {
			if i > 0 {
				buf.WriteByte(',')
			}
			appendJSONString(buf, e.Key)
			buf.WriteByte(':')
			appendJSON(buf, e.Value)
		}
		buf.WriteByte('}')
	}
}

func appendJSONFloat(buf *bytes.Buffer, f float64) {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		buf.WriteString(strconv.FormatFloat(f, 'f', 1, 64))
		return
	}
	buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
}

func appendJSONString(buf *bytes.Buffer, s string) {
	b, err := json.Marshal(s)
	if err != nil {
		// Marshal of a string never fails.
		panic(err)
	}
	buf.Write(b)
}
