package scn

// Line is one entry of a scene's "lines" array. The union is discriminated
// by the value's own kind, not a tag: a bare integer is a TextIndexLine, a
// bare string a ResourceLine, an array starting with a string an event, and
// an array starting with an integer a SnapshotPointLine.
type Line interface {
	encodeLine() *Value
}

// DecodeLine decodes one scene line.
func DecodeLine(v *Value, opts ...DecodeOption) (Line, error) {
	return newDecoder(opts).decodeLine(v)
}

// EncodeLine re-encodes a line into its wire form.
func EncodeLine(ln Line) *Value {
	return ln.encodeLine()
}

func (d *decoder) decodeLine(v *Value) (Line, error) {
	switch v.Kind() {
	case KindInt:
		n, _ := v.AsInt()
		return &TextIndexLine{Index: n}, nil
	case KindStr:
		s, _ := v.AsStr()
		return &ResourceLine{Name: s}, nil
	case KindList:
		items := v.listVal
		if len(items) == 0 {
			return nil, shapeErrf("line", "empty array")
		}
		switch items[0].Kind() {
		case KindStr:
			ev, err := d.decodeEvent(v)
			if err != nil {
				return nil, err
			}
			return &EventLine{Event: ev}, nil
		case KindInt:
			return d.decodeSnapshotPointLine(items)
		}
		return nil, shapeErrf("line", "element 0: want string or integer, got %s", items[0].Kind())
	}
	return nil, shapeErrf("line", "want integer, string or array, got %s", v.Kind())
}

// TextIndexLine points into the scene's texts table.
type TextIndexLine struct {
	Index int64
}

func (ln *TextIndexLine) encodeLine() *Value {
	return Int(ln.Index)
}

// ResourceLine names a resource by bare string.
type ResourceLine struct {
	Name string
}

func (ln *ResourceLine) encodeLine() *Value {
	return Str(ln.Name)
}

// EventLine wraps a timeline event appearing directly in the lines array.
type EventLine struct {
	Event Event
}

func (ln *EventLine) encodeLine() *Value {
	return ln.Event.encodeEvent()
}

// SnapshotPointLine is the positional 5- or 8-element line record. Element 1
// is usually a text index integer but may be a full embedded snapshot point;
// exactly one of TextA and Snapshot is set. The three trailing fields exist
// only in the 8-element form, which Extended records.
type SnapshotPointLine struct {
	Index        int64
	TextA        *Value // int or null; nil when Snapshot is set
	Snapshot     *SnapshotPoint
	TextB        *Value // int or null
	Flag         *Value // int or null
	OriginalLine int64
	Extended     bool
	VoiceTag     *Value // int or null, 8-form only
	UnusedA      *Value // any value, sometimes a string
	UnusedB      *Value
}

// intOrNullAt validates a positional int-or-null passthrough field.
func intOrNullAt(entity, field string, items []*Value, i int) (*Value, error) {
	v := items[i]
	if v.Kind() != KindInt && v.Kind() != KindNull {
		return nil, shapeErrf(entity, "%s: want integer or null, got %s", field, v.Kind())
	}
	return v, nil
}

func (d *decoder) decodeSnapshotPointLine(items []*Value) (*SnapshotPointLine, error) {
	const entity = "snapshot point line"
	if len(items) != 5 && len(items) != 8 {
		return nil, arityErr(entity, len(items), 5, 8)
	}
	ln := &SnapshotPointLine{Extended: len(items) == 8}
	var err error
	if ln.Index, err = reqIntAt(entity, "index", items, 0); err != nil {
		return nil, err
	}
	if items[1].Kind() == KindMap {
		if ln.Snapshot, err = d.decodeSnapshotPoint(items[1]); err != nil {
			return nil, wrapf(err, "%s: text index a", entity)
		}
	} else if ln.TextA, err = intOrNullAt(entity, "text index a", items, 1); err != nil {
		return nil, err
	}
	if ln.TextB, err = intOrNullAt(entity, "text index b", items, 2); err != nil {
		return nil, err
	}
	if ln.Flag, err = intOrNullAt(entity, "flag", items, 3); err != nil {
		return nil, err
	}
	if ln.OriginalLine, err = reqIntAt(entity, "original line", items, 4); err != nil {
		return nil, err
	}
	if !ln.Extended {
		return ln, nil
	}
	if ln.VoiceTag, err = intOrNullAt(entity, "voice tag", items, 5); err != nil {
		return nil, err
	}
	ln.UnusedA = items[6]
	ln.UnusedB = items[7]
	return ln, nil
}

func (ln *SnapshotPointLine) encodeLine() *Value {
	textA := ln.TextA
	if ln.Snapshot != nil {
		textA = ln.Snapshot.encode()
	}
	items := []*Value{Int(ln.Index), textA, ln.TextB, ln.Flag, Int(ln.OriginalLine)}
	if ln.Extended {
		items = append(items, ln.VoiceTag, ln.UnusedA, ln.UnusedB)
	}
	return List(items...)
}

// ============================================================
// Text table
// ============================================================

// Dialogue is one language rendering of a spoken line:
// [display_name, content] with an optional trailing length.
type Dialogue struct {
	DisplayName Opt[string] // null for the narrator
	Content     string
	Length      Opt[int64]
}

func decodeDialogue(v *Value) (*Dialogue, error) {
	const entity = "dialogue"
	items, err := v.AsList()
	if err != nil {
		return nil, shapeErrf(entity, "want array, got %s", v.Kind())
	}
	if len(items) != 2 && len(items) != 3 {
		return nil, arityErr(entity, len(items), 2, 3)
	}
	dl := &Dialogue{}
	if dl.DisplayName, err = optOf(entity, "display name", items[0], (*Value).AsStr); err != nil {
		return nil, err
	}
	if dl.Content, err = reqStrAt(entity, "content", items, 1); err != nil {
		return nil, err
	}
	if len(items) == 3 {
		if dl.Length, err = optOf(entity, "length", items[2], (*Value).AsInt); err != nil {
			return nil, err
		}
	}
	return dl, nil
}

func (dl *Dialogue) encode() *Value {
	items := []*Value{optValue(dl.DisplayName, Str), Str(dl.Content)}
	if dl.Length.Valid {
		items = append(items, optValue(dl.Length, Int))
	}
	return List(items...)
}

// VoiceData names the voice clip backing a text entry.
type VoiceData struct {
	Name  string
	Pan   int64
	Type  int64
	Voice string
	Extra []MapEntry
}

func decodeVoiceData(v *Value) (*VoiceData, error) {
	r, err := newObjReader("voice data", v)
	if err != nil {
		return nil, err
	}
	out := &VoiceData{}
	if out.Name, err = takeReq(r, "name", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Pan, err = takeReq(r, "pan", (*Value).AsInt); err != nil {
		return nil, err
	}
	if out.Type, err = takeReq(r, "type", (*Value).AsInt); err != nil {
		return nil, err
	}
	if out.Voice, err = takeReq(r, "voice", (*Value).AsStr); err != nil {
		return nil, err
	}
	out.Extra = r.extras()
	return out, nil
}

func (vd *VoiceData) encode() *Value {
	var w objWriter
	w.put("name", Str(vd.Name))
	w.put("pan", Int(vd.Pan))
	w.put("type", Int(vd.Type))
	w.put("voice", Str(vd.Voice))
	w.putExtras(vd.Extra)
	return w.value()
}

// Text is one entry of a scene's texts table: a 5-element array
// [character, dialogues, voices, value, snapshot_point].
type Text struct {
	Character     Opt[string] // null for the narrator
	Dialogues     []*Dialogue
	Voices        []*VoiceData // nil = observed null
	Value         int64
	SnapshotPoint *SnapshotPoint
}

func (d *decoder) decodeText(v *Value) (*Text, error) {
	const entity = "text"
	items, err := v.AsList()
	if err != nil {
		return nil, shapeErrf(entity, "want array, got %s", v.Kind())
	}
	if len(items) != 5 {
		return nil, arityErr(entity, len(items), 5)
	}
	t := &Text{}
	if t.Character, err = optOf(entity, "character", items[0], (*Value).AsStr); err != nil {
		return nil, err
	}
	dialogues, err := items[1].AsList()
	if err != nil {
		return nil, shapeErrf(entity, "dialogues: %v", err)
	}
	t.Dialogues = make([]*Dialogue, len(dialogues))
	for i, item := range dialogues {
		if t.Dialogues[i], err = decodeDialogue(item); err != nil {
			return nil, wrapf(err, "%s: dialogues[%d]", entity, i)
		}
	}
	if !items[2].IsNull() {
		voices, err := items[2].AsList()
		if err != nil {
			return nil, shapeErrf(entity, "voices: %v", err)
		}
		t.Voices = make([]*VoiceData, len(voices))
		for i, item := range voices {
			if t.Voices[i], err = decodeVoiceData(item); err != nil {
				return nil, wrapf(err, "%s: voices[%d]", entity, i)
			}
		}
	}
	if t.Value, err = reqIntAt(entity, "value", items, 3); err != nil {
		return nil, err
	}
	if t.SnapshotPoint, err = d.decodeSnapshotPoint(items[4]); err != nil {
		return nil, wrapf(err, "%s: snapshot point", entity)
	}
	return t, nil
}

func (t *Text) encode() *Value {
	dialogues := make([]*Value, len(t.Dialogues))
	for i, dl := range t.Dialogues {
		dialogues[i] = dl.encode()
	}
	voices := Null()
	if t.Voices != nil {
		items := make([]*Value, len(t.Voices))
		for i, vd := range t.Voices {
			items[i] = vd.encode()
		}
		voices = List(items...)
	}
	return List(
		optValue(t.Character, Str),
		List(dialogues...),
		voices,
		Int(t.Value),
		t.SnapshotPoint.encode(),
	)
}
