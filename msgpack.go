package scn

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// ToMsgpack serializes a Value tree to msgpack, keys in stored order. The
// high-level msgpack API sorts or hashes map keys, so encoding drives the
// low-level writer directly.
func ToMsgpack(v *Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := writeMsgpackValue(enc, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeMsgpackValue(enc *msgpack.Encoder, v *Value) error {
	switch v.Kind() {
	case KindNull:
		return enc.EncodeNil()
	case KindBool:
		return enc.EncodeBool(v.boolVal)
	case KindInt:
		return enc.EncodeInt(v.intVal)
	case KindFloat:
		return enc.EncodeFloat64(v.floatVal)
	case KindStr:
		return enc.EncodeString(v.strVal)
	case KindList:
		if err := enc.EncodeArrayLen(len(v.listVal)); err != nil {
			return err
		}
		for _, item := range v.listVal {
			if err := writeMsgpackValue(enc, item); err != nil {
				return err
			}
		}
		return nil
	case KindMap:
		if err := enc.EncodeMapLen(len(v.mapVal)); err != nil {
			return err
		}
		for _, e := range v.mapVal {
			if err := enc.EncodeString(e.Key); err != nil {
				return err
			}
			if err := writeMsgpackValue(enc, e.Value); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("scn: cannot encode kind %s", v.Kind())
}

// FromMsgpack parses one msgpack value into a Value tree, preserving map
// key order.
func FromMsgpack(b []byte) (*Value, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(b))
	v, err := readMsgpackValue(dec)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func readMsgpackValue(dec *msgpack.Decoder) (*Value, error) {
	code, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}
	switch {
	case code == msgpcode.Nil:
		if err := dec.DecodeNil(); err != nil {
			return nil, err
		}
		return Null(), nil
	case code == msgpcode.True || code == msgpcode.False:
		b, err := dec.DecodeBool()
		if err != nil {
			return nil, err
		}
		return Bool(b), nil
	case msgpcode.IsFixedNum(code),
		code == msgpcode.Int8, code == msgpcode.Int16,
		code == msgpcode.Int32, code == msgpcode.Int64,
		code == msgpcode.Uint8, code == msgpcode.Uint16,
		code == msgpcode.Uint32, code == msgpcode.Uint64:
		n, err := dec.DecodeInt64()
		if err != nil {
			return nil, err
		}
		return Int(n), nil
	case code == msgpcode.Float, code == msgpcode.Double:
		f, err := dec.DecodeFloat64()
		if err != nil {
			return nil, err
		}
		return Float(f), nil
	case msgpcode.IsString(code):
		s, err := dec.DecodeString()
		if err != nil {
			return nil, err
		}
		return Str(s), nil
	case msgpcode.IsFixedArray(code), code == msgpcode.Array16, code == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, err
		}
		items := make([]*Value, n)
		for i := range items {
			if items[i], err = readMsgpackValue(dec); err != nil {
				return nil, err
			}
		}
		return List(items...), nil
	case msgpcode.IsFixedMap(code), code == msgpcode.Map16, code == msgpcode.Map32:
		n, err := dec.DecodeMapLen()
		if err != nil {
			return nil, err
		}
		entries := make([]MapEntry, n)
		for i := range entries {
			if entries[i].Key, err = dec.DecodeString(); err != nil {
				return nil, err
			}
			if entries[i].Value, err = readMsgpackValue(dec); err != nil {
				return nil, err
			}
		}
		return Map(entries...), nil
	}
	return nil, fmt.Errorf("scn: unsupported msgpack code 0x%02x", code)
}
