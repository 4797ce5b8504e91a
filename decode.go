package scn

import "fmt"

// decoder carries decode policy: where fallback diagnostics go and how many
// scenes decode concurrently. Encoding needs no counterpart; it is pure.
type decoder struct {
	log      Logger
	parallel int
}

// DecodeOption configures a decode pass.
type DecodeOption func(*decoder)

// WithLogger routes fallback diagnostics to l.
func WithLogger(l Logger) DecodeOption {
	return func(d *decoder) {
		if l != nil {
			d.log = l
		}
	}
}

// WithParallelism decodes up to n scenes concurrently. Scenes are
// independent subtrees, so results are identical to the sequential order;
// n < 2 keeps decode sequential.
func WithParallelism(n int) DecodeOption {
	return func(d *decoder) {
		if n > 1 {
			d.parallel = n
		}
	}
}

func newDecoder(opts []DecodeOption) *decoder {
	d := &decoder{log: NopLogger{}, parallel: 1}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ============================================================
// Open-object reading
// ============================================================

// objReader walks an object-shaped record: known keys are claimed with take
// or the req/opt helpers, and whatever remains becomes the extra-fields bag,
// in original order.
type objReader struct {
	entity  string
	entries []MapEntry
	seen    []bool
}

func newObjReader(entity string, v *Value) (*objReader, error) {
	entries, err := v.AsMap()
	if err != nil {
		return nil, shapeErrf(entity, "want object, got %s", v.Kind())
	}
	return &objReader{entity: entity, entries: entries, seen: make([]bool, len(entries))}, nil
}

func (r *objReader) take(key string) (*Value, bool) {
	for i, e := range r.entries {
		if e.Key == key {
			r.seen[i] = true
			return e.Value, true
		}
	}
	return nil, false
}

func (r *objReader) require(key string) (*Value, error) {
	v, ok := r.take(key)
	if !ok {
		return nil, shapeErrf(r.entity, "missing required key %q", key)
	}
	return v, nil
}

// extras returns the unclaimed keys in original relative order.
func (r *objReader) extras() []MapEntry {
	var out []MapEntry
	for i, e := range r.entries {
		if !r.seen[i] {
			out = append(out, e)
		}
	}
	return out
}

// takeReq claims a required key and decodes its value.
func takeReq[T any](r *objReader, key string, dec func(*Value) (T, error)) (T, error) {
	var zero T
	v, err := r.require(key)
	if err != nil {
		return zero, err
	}
	t, err := dec(v)
	if err != nil {
		return zero, nestShape(r.entity, fmt.Sprintf("key %q", key), err)
	}
	return t, nil
}

// takeOpt claims an optional key. Absent keys and observed nulls stay
// distinguishable so encode can reproduce exactly what decode saw.
func takeOpt[T any](r *objReader, key string, dec func(*Value) (T, error)) (Opt[T], error) {
	v, ok := r.take(key)
	if !ok {
		return Opt[T]{}, nil
	}
	if v.IsNull() {
		return NullOpt[T](), nil
	}
	t, err := dec(v)
	if err != nil {
		return Opt[T]{}, nestShape(r.entity, fmt.Sprintf("key %q", key), err)
	}
	return Some(t), nil
}

// takeRaw claims an optional key without interpreting the value.
// nil means the key was absent; an observed null comes back as Null().
func (r *objReader) takeRaw(key string) *Value {
	v, ok := r.take(key)
	if !ok {
		return nil
	}
	if v == nil {
		return Null()
	}
	return v
}

// reqList claims a required key whose value must be a list.
func (r *objReader) reqList(key string) ([]*Value, error) {
	return takeReq(r, key, (*Value).AsList)
}

// takeRawList claims an optional key whose value, when not null, must be a
// list; the value itself passes through uninterpreted.
func (r *objReader) takeRawList(key string) (*Value, error) {
	v := r.takeRaw(key)
	if v != nil && !v.IsNull() {
		if _, err := v.AsList(); err != nil {
			return nil, nestShape(r.entity, fmt.Sprintf("key %q", key), err)
		}
	}
	return v, nil
}

// classField validates the record's own "class" key against the expected
// discriminator.
func (r *objReader) classField(want string) error {
	v, err := r.require("class")
	if err != nil {
		return err
	}
	got, err := v.AsStr()
	if err != nil {
		return nestShape(r.entity, `key "class"`, err)
	}
	if got != want {
		return &TagMismatchError{Entity: r.entity, Pos: -1, Want: want, Got: got}
	}
	return nil
}

// ============================================================
// Open-object writing
// ============================================================

// objWriter assembles an object: known fields in declared order first, then
// the extras bag.
type objWriter struct {
	entries []MapEntry
}

func (w *objWriter) put(key string, v *Value) {
	w.entries = append(w.entries, MapEntry{Key: key, Value: v})
}

// putRaw emits key only if the raw field was observed (non-nil).
func (w *objWriter) putRaw(key string, v *Value) {
	if v != nil {
		w.put(key, v)
	}
}

func (w *objWriter) putExtras(extras []MapEntry) {
	w.entries = append(w.entries, extras...)
}

func (w *objWriter) value() *Value {
	return Map(w.entries...)
}

// putOpt emits key only if the field was observed, reproducing an observed
// null as null.
func putOpt[T any](w *objWriter, key string, o Opt[T], enc func(T) *Value) {
	if !o.Valid {
		return
	}
	if o.Null {
		w.put(key, Null())
		return
	}
	w.put(key, enc(o.V))
}
