package scn

import "fmt"

// Kind represents the type of a Value node.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
	KindList
	KindMap
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "str"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is the generic JSON-like tree both decode input and encode output
// are expressed in. Maps keep their entries in insertion order; the format
// is order-sensitive and the codec preserves it.
type Value struct {
	kind Kind

	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string

	listVal []*Value
	mapVal  []MapEntry
}

// MapEntry is one key-value pair of an ordered map.
type MapEntry struct {
	Key   string
	Value *Value
}

// ============================================================
// Constructors
// ============================================================

// Null creates a null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Int creates an integer value.
func Int(v int64) *Value {
	return &Value{kind: KindInt, intVal: v}
}

// Float creates a float value.
func Float(v float64) *Value {
	return &Value{kind: KindFloat, floatVal: v}
}

// Str creates a string value.
func Str(v string) *Value {
	return &Value{kind: KindStr, strVal: v}
}

// List creates a list value.
func List(values ...*Value) *Value {
	return &Value{kind: KindList, listVal: values}
}

// Map creates an ordered map value from key-value pairs.
func Map(entries ...MapEntry) *Value {
	return &Value{kind: KindMap, mapVal: entries}
}

// Entry creates a MapEntry for use in Map construction.
func Entry(key string, value *Value) MapEntry {
	return MapEntry{Key: key, Value: value}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind. A nil Value reads as null.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull returns true if this is a null value.
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if v == nil || v.kind != KindBool {
		return false, fmt.Errorf("scn: expected bool, got %s", v.Kind())
	}
	return v.boolVal, nil
}

// AsInt returns the integer value.
func (v *Value) AsInt() (int64, error) {
	if v == nil || v.kind != KindInt {
		return 0, fmt.Errorf("scn: expected int, got %s", v.Kind())
	}
	return v.intVal, nil
}

// AsFloat returns the float value.
func (v *Value) AsFloat() (float64, error) {
	if v == nil || v.kind != KindFloat {
		return 0, fmt.Errorf("scn: expected float, got %s", v.Kind())
	}
	return v.floatVal, nil
}

// AsStr returns the string value.
func (v *Value) AsStr() (string, error) {
	if v == nil || v.kind != KindStr {
		return "", fmt.Errorf("scn: expected str, got %s", v.Kind())
	}
	return v.strVal, nil
}

// AsList returns the list elements.
func (v *Value) AsList() ([]*Value, error) {
	if v == nil || v.kind != KindList {
		return nil, fmt.Errorf("scn: expected list, got %s", v.Kind())
	}
	return v.listVal, nil
}

// AsMap returns the map entries in insertion order.
func (v *Value) AsMap() ([]MapEntry, error) {
	if v == nil || v.kind != KindMap {
		return nil, fmt.Errorf("scn: expected map, got %s", v.Kind())
	}
	return v.mapVal, nil
}

// Len returns the length of a list or map, 0 for scalars.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindList:
		return len(v.listVal)
	case KindMap:
		return len(v.mapVal)
	default:
		return 0
	}
}

// Get returns a map value by key, or nil if the key is absent.
func (v *Value) Get(key string) *Value {
	if v == nil || v.kind != KindMap {
		return nil
	}
	for _, e := range v.mapVal {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// Index returns the i-th element of a list.
func (v *Value) Index(i int) (*Value, error) {
	if v == nil || v.kind != KindList {
		return nil, fmt.Errorf("scn: not a list")
	}
	if i < 0 || i >= len(v.listVal) {
		return nil, fmt.Errorf("scn: index %d out of bounds (len=%d)", i, len(v.listVal))
	}
	return v.listVal[i], nil
}

// ============================================================
// Structural operations
// ============================================================

// Equal reports structural equality. Map entries compare in order: two maps
// with the same pairs in a different order are not equal, matching the
// codec's fidelity contract.
func (v *Value) Equal(o *Value) bool {
	if v.IsNull() || o.IsNull() {
		return v.IsNull() && o.IsNull()
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.boolVal == o.boolVal
	case KindInt:
		return v.intVal == o.intVal
	case KindFloat:
		return v.floatVal == o.floatVal
	case KindStr:
		return v.strVal == o.strVal
	case KindList:
		if len(v.listVal) != len(o.listVal) {
			return false
		}
		for i := range v.listVal {
			if !v.listVal[i].Equal(o.listVal[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.mapVal) != len(o.mapVal) {
			return false
		}
		for i := range v.mapVal {
			if v.mapVal[i].Key != o.mapVal[i].Key {
				return false
			}
			if !v.mapVal[i].Value.Equal(o.mapVal[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Clone returns a deep copy.
func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	c := *v
	switch v.kind {
	case KindList:
		c.listVal = make([]*Value, len(v.listVal))
		for i, e := range v.listVal {
			c.listVal[i] = e.Clone()
		}
	case KindMap:
		c.mapVal = make([]MapEntry, len(v.mapVal))
		for i, e := range v.mapVal {
			c.mapVal[i] = MapEntry{Key: e.Key, Value: e.Value.Clone()}
		}
	}
	return &c
}

// ============================================================
// Optional field tracking
// ============================================================

// Opt tracks presence of an optional record field. The codec re-emits a
// field only if it was observed at decode time, and an observed null is
// distinct from an absent key.
type Opt[T any] struct {
	Valid bool // key was present
	Null  bool // key was present with a null value
	V     T
}

// Some returns a present non-null Opt.
func Some[T any](v T) Opt[T] {
	return Opt[T]{Valid: true, V: v}
}

// NullOpt returns a present-but-null Opt.
func NullOpt[T any]() Opt[T] {
	return Opt[T]{Valid: true, Null: true}
}
