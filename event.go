package scn

// Event is one timeline event of a scene line: a positional array whose
// first element is the discriminator tag.
//
// The event vocabulary is expected to grow. Unknown tags decode to
// FallbackEvent and a Warn diagnostic rather than failing the document;
// shape violations on a recognized tag are fatal.
type Event interface {
	// EventTag returns the discriminator token.
	EventTag() string

	encodeEvent() *Value
}

var eventRegistry = registry[Event]{
	"startline":       decodeStartline,
	"envupdate":       decodeEnvUpdate,
	"delayrun":        decodeDelayRun,
	"wait":            decodeWaitEvent,
	"scnchart":        decodeScnChart,
	"voeff":           decodeVoiceEffect,
	"chapter":         decodeChapter,
	"msgoff":          decodeMsgOff,
	"_meswinchange":   decodeMesWinChange,
	"quickmenu":       decodeQuickMenu,
	"er":              decodeEr,
	"endrecollection": decodeEndRecollection,
	"playvoice":       decodePlayVoice,
	"stopvoice":       decodeStopVoice,
	"exit":            decodeExit,
	"beginskip":       decodeBeginSkip,
	"endskip":         decodeEndSkip,
	"sysvoice":        decodeSysVoice,
}

// DecodeEvent decodes one timeline event array.
func DecodeEvent(v *Value, opts ...DecodeOption) (Event, error) {
	return newDecoder(opts).decodeEvent(v)
}

// EncodeEvent re-encodes an event into its array form.
func EncodeEvent(ev Event) *Value {
	return ev.encodeEvent()
}

func (d *decoder) decodeEvent(v *Value) (Event, error) {
	items, err := v.AsList()
	if err != nil {
		return nil, shapeErrf("event", "want array, got %s", v.Kind())
	}
	if len(items) == 0 {
		return nil, shapeErrf("event", "empty array")
	}
	tag, err := items[0].AsStr()
	if err != nil {
		return nil, shapeErrf("event", "element 0: %v", err)
	}
	fn, ok := eventRegistry.lookup(tag)
	if !ok {
		d.log.Warn("unknown event tag", Fields{"tag": tag})
		return &FallbackEvent{Raw: v}, nil
	}
	ev, err := fn(d, v)
	if err != nil {
		return nil, err
	}
	return ev, nil
}

// keyedAt validates the inline literal key name the format re-declares
// before a keyed field, and returns the value that follows it. The format
// writes e.g. ["playvoice", "loop", 1, "name", ...]; the declared names are
// part of the record and must match before the value is trusted.
func keyedAt(entity string, items []*Value, i int, want string) (*Value, error) {
	got, err := items[i].AsStr()
	if err != nil {
		return nil, &TagMismatchError{Entity: entity, Pos: i, Want: want, Got: items[i].Kind().String()}
	}
	if got != want {
		return nil, &TagMismatchError{Entity: entity, Pos: i, Want: want, Got: got}
	}
	return items[i+1], nil
}

// optOf decodes a nullable keyed value into an Opt.
func optOf[T any](entity, key string, v *Value, dec func(*Value) (T, error)) (Opt[T], error) {
	if v.IsNull() {
		return NullOpt[T](), nil
	}
	t, err := dec(v)
	if err != nil {
		return Opt[T]{}, nestShape(entity, key, err)
	}
	return Some(t), nil
}

// optValue encodes an Opt back to its wire value; callers only emit it when
// the field was observed.
func optValue[T any](o Opt[T], enc func(T) *Value) *Value {
	if o.Null {
		return Null()
	}
	return enc(o.V)
}

// appendOptKV appends a key/value pair only if the field was observed.
func appendOptKV[T any](items []*Value, key string, o Opt[T], enc func(T) *Value) []*Value {
	if !o.Valid {
		return items
	}
	return append(items, Str(key), optValue(o, enc))
}

// reqStrAt reads a positional string field.
func reqStrAt(entity, field string, items []*Value, i int) (string, error) {
	s, err := items[i].AsStr()
	if err != nil {
		return "", shapeErrf(entity, "%s: %v", field, err)
	}
	return s, nil
}

// reqIntAt reads a positional integer field.
func reqIntAt(entity, field string, items []*Value, i int) (int64, error) {
	n, err := items[i].AsInt()
	if err != nil {
		return 0, shapeErrf(entity, "%s: %v", field, err)
	}
	return n, nil
}

// ============================================================
// startline
// ============================================================

// StartlineEvent begins a dialogue line. It has two legal shapes: the
// 1-element dummy form ["startline"] and the 7-element spoken form
// ["startline", "vflag", v, "name", n, "text", t]. In the spoken form all
// three fields are observed, possibly as null.
type StartlineEvent struct {
	VFlag Opt[int64]  // 0 narrator, 2 player, 3 character
	Name  Opt[string] // speaker name; "" for the player
	Text  Opt[int64]  // 1 when there is text to display
}

func (*StartlineEvent) EventTag() string { return "startline" }

// IsDummy reports the 1-element form.
func (ev *StartlineEvent) IsDummy() bool {
	return !ev.VFlag.Valid && !ev.Name.Valid && !ev.Text.Valid
}

func decodeStartline(_ *decoder, v *Value) (Event, error) {
	const entity = "event startline"
	items := v.listVal
	switch len(items) {
	case 1:
		return &StartlineEvent{}, nil
	case 7:
	default:
		return nil, arityErr(entity, len(items), 1, 7)
	}
	ev := &StartlineEvent{}
	val, err := keyedAt(entity, items, 1, "vflag")
	if err != nil {
		return nil, err
	}
	if ev.VFlag, err = optOf(entity, "vflag", val, (*Value).AsInt); err != nil {
		return nil, err
	}
	if val, err = keyedAt(entity, items, 3, "name"); err != nil {
		return nil, err
	}
	if ev.Name, err = optOf(entity, "name", val, (*Value).AsStr); err != nil {
		return nil, err
	}
	if val, err = keyedAt(entity, items, 5, "text"); err != nil {
		return nil, err
	}
	if ev.Text, err = optOf(entity, "text", val, (*Value).AsInt); err != nil {
		return nil, err
	}
	return ev, nil
}

func (ev *StartlineEvent) encodeEvent() *Value {
	if ev.IsDummy() {
		return List(Str("startline"))
	}
	return List(
		Str("startline"),
		Str("vflag"), optValue(ev.VFlag, Int),
		Str("name"), optValue(ev.Name, Str),
		Str("text"), optValue(ev.Text, Int),
	)
}

// ============================================================
// envupdate
// ============================================================

// EnvEntry is one element of an envupdate update/revupdate list. The wire
// shape of the element decides its type: an array is an Instruction, an
// object is snapshot object details. Exactly one field is set.
type EnvEntry struct {
	Instruction Instruction
	Details     ObjectDetails
}

func (e EnvEntry) encode() *Value {
	if e.Instruction != nil {
		return e.Instruction.encodeInstruction()
	}
	return e.Details.encodeDetails()
}

// WaitEntry names one object an envupdate waits on.
type WaitEntry struct {
	Mode  int64 // 0 or 1
	Name  string
	Extra []MapEntry
}

func decodeWaitEntry(v *Value) (*WaitEntry, error) {
	r, err := newObjReader("wait entry", v)
	if err != nil {
		return nil, err
	}
	out := &WaitEntry{}
	if out.Mode, err = takeReq(r, "mode", (*Value).AsInt); err != nil {
		return nil, err
	}
	if out.Name, err = takeReq(r, "name", (*Value).AsStr); err != nil {
		return nil, err
	}
	out.Extra = r.extras()
	return out, nil
}

func (e *WaitEntry) encode() *Value {
	var w objWriter
	w.put("mode", Int(e.Mode))
	w.put("name", Str(e.Name))
	w.putExtras(e.Extra)
	return w.value()
}

// Wait is the wait-list attached to an envupdate. Entries may be null.
type Wait struct {
	List  []*WaitEntry // nil element = observed null
	Extra []MapEntry
}

func decodeWait(v *Value) (*Wait, error) {
	r, err := newObjReader("wait", v)
	if err != nil {
		return nil, err
	}
	items, err := r.reqList("list")
	if err != nil {
		return nil, err
	}
	out := &Wait{List: make([]*WaitEntry, len(items))}
	for i, item := range items {
		if item.IsNull() {
			continue
		}
		if out.List[i], err = decodeWaitEntry(item); err != nil {
			return nil, wrapf(err, "wait: list[%d]", i)
		}
	}
	out.Extra = r.extras()
	return out, nil
}

func (wt *Wait) encode() *Value {
	items := make([]*Value, len(wt.List))
	for i, e := range wt.List {
		if e == nil {
			items[i] = Null()
		} else {
			items[i] = e.encode()
		}
	}
	var w objWriter
	w.put("list", List(items...))
	w.putExtras(wt.Extra)
	return w.value()
}

// EnvUpdateEvent mutates the on-screen environment. After the tag the array
// holds alternating key/value pairs; encode emits the known keys in the
// canonical order pretrans, update, revpretrans, revupdate, wait, trans,
// msgoff, then any unrecognized pairs in observed order.
type EnvUpdateEvent struct {
	Pretrans    Opt[[]Instruction]
	Update      Opt[[]EnvEntry]
	RevPretrans Opt[[]Instruction]
	RevUpdate   Opt[[]EnvEntry]
	Wait        Opt[*Wait]
	Trans       Opt[*Transform]
	MsgOff      Opt[int64] // 0 on, 1 off
	Extra       []MapEntry
}

func (*EnvUpdateEvent) EventTag() string { return "envupdate" }

func (d *decoder) instructionList(entity string) func(*Value) ([]Instruction, error) {
	return func(v *Value) ([]Instruction, error) {
		items, err := v.AsList()
		if err != nil {
			return nil, err
		}
		out := make([]Instruction, len(items))
		for i, item := range items {
			if out[i], err = decodeInstruction(d, item); err != nil {
				return nil, wrapf(err, "%s[%d]", entity, i)
			}
		}
		return out, nil
	}
}

func (d *decoder) envEntryList(entity string) func(*Value) ([]EnvEntry, error) {
	return func(v *Value) ([]EnvEntry, error) {
		items, err := v.AsList()
		if err != nil {
			return nil, err
		}
		out := make([]EnvEntry, len(items))
		for i, item := range items {
			switch item.Kind() {
			case KindList:
				in, err := decodeInstruction(d, item)
				if err != nil {
					return nil, wrapf(err, "%s[%d]", entity, i)
				}
				out[i] = EnvEntry{Instruction: in}
			case KindMap:
				det, err := d.decodeDetails(item)
				if err != nil {
					return nil, wrapf(err, "%s[%d]", entity, i)
				}
				out[i] = EnvEntry{Details: det}
			default:
				return nil, shapeErrf(entity, "[%d]: want array or object, got %s", i, item.Kind())
			}
		}
		return out, nil
	}
}

func decodeEnvUpdate(d *decoder, v *Value) (Event, error) {
	const entity = "event envupdate"
	items := v.listVal
	if len(items) < 2 {
		return nil, shapeErrf(entity, "want at least 2 elements, got %d", len(items))
	}
	if (len(items)-1)%2 != 0 {
		return nil, shapeErrf(entity, "odd key/value count %d", len(items)-1)
	}
	ev := &EnvUpdateEvent{}
	for i := 1; i < len(items); i += 2 {
		key, err := items[i].AsStr()
		if err != nil {
			return nil, shapeErrf(entity, "key at element %d: %v", i, err)
		}
		val := items[i+1]
		switch key {
		case "pretrans":
			ev.Pretrans, err = optOf(entity, key, val, d.instructionList("pretrans"))
		case "update":
			ev.Update, err = optOf(entity, key, val, d.envEntryList("update"))
		case "revpretrans":
			ev.RevPretrans, err = optOf(entity, key, val, d.instructionList("revpretrans"))
		case "revupdate":
			ev.RevUpdate, err = optOf(entity, key, val, d.envEntryList("revupdate"))
		case "wait":
			ev.Wait, err = optOf(entity, key, val, decodeWait)
		case "trans":
			ev.Trans, err = optOf(entity, key, val, decodeTransform)
		case "msgoff":
			ev.MsgOff, err = optOf(entity, key, val, (*Value).AsInt)
		default:
			ev.Extra = append(ev.Extra, MapEntry{Key: key, Value: val})
		}
		if err != nil {
			return nil, err
		}
	}
	if !ev.Update.Valid {
		return nil, shapeErrf(entity, "missing required key %q", "update")
	}
	return ev, nil
}

func encodeInstructionList(ins []Instruction) *Value {
	items := make([]*Value, len(ins))
	for i, in := range ins {
		items[i] = in.encodeInstruction()
	}
	return List(items...)
}

func encodeEnvEntryList(entries []EnvEntry) *Value {
	items := make([]*Value, len(entries))
	for i, e := range entries {
		items[i] = e.encode()
	}
	return List(items...)
}

func (ev *EnvUpdateEvent) encodeEvent() *Value {
	items := []*Value{Str("envupdate")}
	items = appendOptKV(items, "pretrans", ev.Pretrans, encodeInstructionList)
	items = appendOptKV(items, "update", ev.Update, encodeEnvEntryList)
	items = appendOptKV(items, "revpretrans", ev.RevPretrans, encodeInstructionList)
	items = appendOptKV(items, "revupdate", ev.RevUpdate, encodeEnvEntryList)
	items = appendOptKV(items, "wait", ev.Wait, (*Wait).encode)
	items = appendOptKV(items, "trans", ev.Trans, (*Transform).encode)
	items = appendOptKV(items, "msgoff", ev.MsgOff, Int)
	for _, e := range ev.Extra {
		items = append(items, Str(e.Key), e.Value)
	}
	return List(items...)
}

// ============================================================
// delayrun
// ============================================================

// DelayRunEvent schedules a deferred environment update, keyed by a loop
// tuner label. The wire shape is ["delayrun", label, eventType, "update",
// [...], "revupdate", [...]] with an optional trailing trans pair.
type DelayRunEvent struct {
	Label          string
	DelayEventType string // always "envupdate" in observed documents
	Update         Opt[[]ObjectDetails]
	RevUpdate      Opt[[]ObjectDetails]
	Trans          Opt[*Transform]
}

func (*DelayRunEvent) EventTag() string { return "delayrun" }

func (d *decoder) detailsList(entity string) func(*Value) ([]ObjectDetails, error) {
	return func(v *Value) ([]ObjectDetails, error) {
		items, err := v.AsList()
		if err != nil {
			return nil, err
		}
		out := make([]ObjectDetails, len(items))
		for i, item := range items {
			if out[i], err = d.decodeDetails(item); err != nil {
				return nil, wrapf(err, "%s[%d]", entity, i)
			}
		}
		return out, nil
	}
}

func decodeDelayRun(d *decoder, v *Value) (Event, error) {
	const entity = "event delayrun"
	items := v.listVal
	if len(items) != 7 && len(items) != 9 {
		return nil, arityErr(entity, len(items), 7, 9)
	}
	ev := &DelayRunEvent{}
	var err error
	if ev.Label, err = reqStrAt(entity, "label", items, 1); err != nil {
		return nil, err
	}
	if ev.DelayEventType, err = reqStrAt(entity, "delay event type", items, 2); err != nil {
		return nil, err
	}
	for i := 3; i < len(items); i += 2 {
		key, err := items[i].AsStr()
		if err != nil {
			return nil, shapeErrf(entity, "key at element %d: %v", i, err)
		}
		val := items[i+1]
		switch key {
		case "update":
			ev.Update, err = optOf(entity, key, val, d.detailsList("update"))
		case "revupdate":
			ev.RevUpdate, err = optOf(entity, key, val, d.detailsList("revupdate"))
		case "trans":
			ev.Trans, err = optOf(entity, key, val, decodeTransform)
		default:
			return nil, shapeErrf(entity, "unexpected key %q at element %d", key, i)
		}
		if err != nil {
			return nil, err
		}
	}
	if !ev.Update.Valid {
		return nil, shapeErrf(entity, "missing required key %q", "update")
	}
	if !ev.RevUpdate.Valid {
		return nil, shapeErrf(entity, "missing required key %q", "revupdate")
	}
	return ev, nil
}

func encodeDetailsList(dets []ObjectDetails) *Value {
	items := make([]*Value, len(dets))
	for i, det := range dets {
		items[i] = det.encodeDetails()
	}
	return List(items...)
}

func (ev *DelayRunEvent) encodeEvent() *Value {
	items := []*Value{Str("delayrun"), Str(ev.Label), Str(ev.DelayEventType)}
	items = appendOptKV(items, "update", ev.Update, encodeDetailsList)
	items = appendOptKV(items, "revupdate", ev.RevUpdate, encodeDetailsList)
	items = appendOptKV(items, "trans", ev.Trans, (*Transform).encode)
	return List(items...)
}

// ============================================================
// simple events
// ============================================================

// WaitEvent pauses the timeline: ["wait", "time", ms].
type WaitEvent struct {
	Time int64 // milliseconds
}

func (*WaitEvent) EventTag() string { return "wait" }

func decodeWaitEvent(_ *decoder, v *Value) (Event, error) {
	const entity = "event wait"
	items := v.listVal
	if len(items) != 3 {
		return nil, arityErr(entity, len(items), 3)
	}
	val, err := keyedAt(entity, items, 1, "time")
	if err != nil {
		return nil, err
	}
	t, err := val.AsInt()
	if err != nil {
		return nil, shapeErrf(entity, "time: %v", err)
	}
	return &WaitEvent{Time: t}, nil
}

func (ev *WaitEvent) encodeEvent() *Value {
	return List(Str("wait"), Str("time"), Int(ev.Time))
}

// ScnChartEvent enters or leaves a scenario chart node:
// ["scnchart", action, name].
type ScnChartEvent struct {
	Action string // "enter" or "leave"
	Name   string
}

func (*ScnChartEvent) EventTag() string { return "scnchart" }

func decodeScnChart(_ *decoder, v *Value) (Event, error) {
	const entity = "event scnchart"
	items := v.listVal
	if len(items) != 3 {
		return nil, arityErr(entity, len(items), 3)
	}
	action, err := reqStrAt(entity, "action", items, 1)
	if err != nil {
		return nil, err
	}
	name, err := reqStrAt(entity, "name", items, 2)
	if err != nil {
		return nil, err
	}
	return &ScnChartEvent{Action: action, Name: name}, nil
}

func (ev *ScnChartEvent) encodeEvent() *Value {
	return List(Str("scnchart"), Str(ev.Action), Str(ev.Name))
}

// VoiceEffectEvent applies or clears a DSP filter on voice playback:
// ["voeff", action, status].
type VoiceEffectEvent struct {
	Action string // "clear" or "filter"
	Status string
}

func (*VoiceEffectEvent) EventTag() string { return "voeff" }

func decodeVoiceEffect(_ *decoder, v *Value) (Event, error) {
	const entity = "event voeff"
	items := v.listVal
	if len(items) != 3 {
		return nil, arityErr(entity, len(items), 3)
	}
	action, err := reqStrAt(entity, "action", items, 1)
	if err != nil {
		return nil, err
	}
	status, err := reqStrAt(entity, "status", items, 2)
	if err != nil {
		return nil, err
	}
	return &VoiceEffectEvent{Action: action, Status: status}, nil
}

func (ev *VoiceEffectEvent) encodeEvent() *Value {
	return List(Str("voeff"), Str(ev.Action), Str(ev.Status))
}

// ChapterEvent marks a chapter boundary; everything after the tag passes
// through uninterpreted.
type ChapterEvent struct {
	Values []*Value
}

func (*ChapterEvent) EventTag() string { return "chapter" }

func decodeChapter(_ *decoder, v *Value) (Event, error) {
	items := v.listVal
	if len(items) < 2 {
		return nil, shapeErrf("event chapter", "want at least 2 elements, got %d", len(items))
	}
	return &ChapterEvent{Values: items[1:]}, nil
}

func (ev *ChapterEvent) encodeEvent() *Value {
	return List(append([]*Value{Str("chapter")}, ev.Values...)...)
}

// MsgOffEvent hides the message window: ["msgoff"].
type MsgOffEvent struct{}

func (*MsgOffEvent) EventTag() string { return "msgoff" }

func decodeMsgOff(_ *decoder, v *Value) (Event, error) {
	if len(v.listVal) != 1 {
		return nil, arityErr("event msgoff", len(v.listVal), 1)
	}
	return &MsgOffEvent{}, nil
}

func (*MsgOffEvent) encodeEvent() *Value {
	return List(Str("msgoff"))
}

// MesWinChangeEvent switches the message window style:
// ["_meswinchange", "type", t].
type MesWinChangeEvent struct {
	Type string
}

func (*MesWinChangeEvent) EventTag() string { return "_meswinchange" }

func decodeMesWinChange(_ *decoder, v *Value) (Event, error) {
	const entity = "event _meswinchange"
	items := v.listVal
	if len(items) != 3 {
		return nil, arityErr(entity, len(items), 3)
	}
	val, err := keyedAt(entity, items, 1, "type")
	if err != nil {
		return nil, err
	}
	t, err := val.AsStr()
	if err != nil {
		return nil, shapeErrf(entity, "type: %v", err)
	}
	return &MesWinChangeEvent{Type: t}, nil
}

func (ev *MesWinChangeEvent) encodeEvent() *Value {
	return List(Str("_meswinchange"), Str("type"), Str(ev.Type))
}

// QuickMenuEvent fades the quick menu in or out:
// ["quickmenu", action, status].
type QuickMenuEvent struct {
	Action string // "fadein" or "fadeout"
	Status string
}

func (*QuickMenuEvent) EventTag() string { return "quickmenu" }

func decodeQuickMenu(_ *decoder, v *Value) (Event, error) {
	const entity = "event quickmenu"
	items := v.listVal
	if len(items) != 3 {
		return nil, arityErr(entity, len(items), 3)
	}
	action, err := reqStrAt(entity, "action", items, 1)
	if err != nil {
		return nil, err
	}
	status, err := reqStrAt(entity, "status", items, 2)
	if err != nil {
		return nil, err
	}
	return &QuickMenuEvent{Action: action, Status: status}, nil
}

func (ev *QuickMenuEvent) encodeEvent() *Value {
	return List(Str("quickmenu"), Str(ev.Action), Str(ev.Status))
}

// ErEvent passes its payload through uninterpreted.
type ErEvent struct {
	Values []*Value
}

func (*ErEvent) EventTag() string { return "er" }

func decodeEr(_ *decoder, v *Value) (Event, error) {
	items := v.listVal
	if len(items) < 2 {
		return nil, shapeErrf("event er", "want at least 2 elements, got %d", len(items))
	}
	return &ErEvent{Values: items[1:]}, nil
}

func (ev *ErEvent) encodeEvent() *Value {
	return List(append([]*Value{Str("er")}, ev.Values...)...)
}

// EndRecollectionEvent ends recollection playback: ["endrecollection"].
type EndRecollectionEvent struct{}

func (*EndRecollectionEvent) EventTag() string { return "endrecollection" }

func decodeEndRecollection(_ *decoder, v *Value) (Event, error) {
	if len(v.listVal) != 1 {
		return nil, arityErr("event endrecollection", len(v.listVal), 1)
	}
	return &EndRecollectionEvent{}, nil
}

func (*EndRecollectionEvent) encodeEvent() *Value {
	return List(Str("endrecollection"))
}

// PlayVoiceEvent starts voice playback:
// ["playvoice", "loop", l, "name", n, "type", t, "voice", v]. Exactly 9
// elements.
type PlayVoiceEvent struct {
	Loop  int64
	Name  string
	Type  int64
	Voice string
}

func (*PlayVoiceEvent) EventTag() string { return "playvoice" }

func decodePlayVoice(_ *decoder, v *Value) (Event, error) {
	const entity = "event playvoice"
	items := v.listVal
	if len(items) != 9 {
		return nil, arityErr(entity, len(items), 9)
	}
	ev := &PlayVoiceEvent{}
	val, err := keyedAt(entity, items, 1, "loop")
	if err != nil {
		return nil, err
	}
	if ev.Loop, err = val.AsInt(); err != nil {
		return nil, shapeErrf(entity, "loop: %v", err)
	}
	if val, err = keyedAt(entity, items, 3, "name"); err != nil {
		return nil, err
	}
	if ev.Name, err = val.AsStr(); err != nil {
		return nil, shapeErrf(entity, "name: %v", err)
	}
	if val, err = keyedAt(entity, items, 5, "type"); err != nil {
		return nil, err
	}
	if ev.Type, err = val.AsInt(); err != nil {
		return nil, shapeErrf(entity, "type: %v", err)
	}
	if val, err = keyedAt(entity, items, 7, "voice"); err != nil {
		return nil, err
	}
	if ev.Voice, err = val.AsStr(); err != nil {
		return nil, shapeErrf(entity, "voice: %v", err)
	}
	return ev, nil
}

func (ev *PlayVoiceEvent) encodeEvent() *Value {
	return List(
		Str("playvoice"),
		Str("loop"), Int(ev.Loop),
		Str("name"), Str(ev.Name),
		Str("type"), Int(ev.Type),
		Str("voice"), Str(ev.Voice),
	)
}

// StopVoiceEvent stops voice playback:
// ["stopvoice", "name", n, "type", t].
type StopVoiceEvent struct {
	Name string
	Type int64
}

func (*StopVoiceEvent) EventTag() string { return "stopvoice" }

func decodeStopVoice(_ *decoder, v *Value) (Event, error) {
	const entity = "event stopvoice"
	items := v.listVal
	if len(items) != 5 {
		return nil, arityErr(entity, len(items), 5)
	}
	ev := &StopVoiceEvent{}
	val, err := keyedAt(entity, items, 1, "name")
	if err != nil {
		return nil, err
	}
	if ev.Name, err = val.AsStr(); err != nil {
		return nil, shapeErrf(entity, "name: %v", err)
	}
	if val, err = keyedAt(entity, items, 3, "type"); err != nil {
		return nil, err
	}
	if ev.Type, err = val.AsInt(); err != nil {
		return nil, shapeErrf(entity, "type: %v", err)
	}
	return ev, nil
}

func (ev *StopVoiceEvent) encodeEvent() *Value {
	return List(
		Str("stopvoice"),
		Str("name"), Str(ev.Name),
		Str("type"), Int(ev.Type),
	)
}

// ExitEvent leaves the scene for another storage file:
// ["exit", "storage", s, "target", t, "eval", e].
type ExitEvent struct {
	Storage string
	Target  string
	Eval    string
}

func (*ExitEvent) EventTag() string { return "exit" }

func decodeExit(_ *decoder, v *Value) (Event, error) {
	const entity = "event exit"
	items := v.listVal
	if len(items) != 7 {
		return nil, arityErr(entity, len(items), 7)
	}
	ev := &ExitEvent{}
	val, err := keyedAt(entity, items, 1, "storage")
	if err != nil {
		return nil, err
	}
	if ev.Storage, err = val.AsStr(); err != nil {
		return nil, shapeErrf(entity, "storage: %v", err)
	}
	if val, err = keyedAt(entity, items, 3, "target"); err != nil {
		return nil, err
	}
	if ev.Target, err = val.AsStr(); err != nil {
		return nil, shapeErrf(entity, "target: %v", err)
	}
	if val, err = keyedAt(entity, items, 5, "eval"); err != nil {
		return nil, err
	}
	if ev.Eval, err = val.AsStr(); err != nil {
		return nil, shapeErrf(entity, "eval: %v", err)
	}
	return ev, nil
}

func (ev *ExitEvent) encodeEvent() *Value {
	return List(
		Str("exit"),
		Str("storage"), Str(ev.Storage),
		Str("target"), Str(ev.Target),
		Str("eval"), Str(ev.Eval),
	)
}

// BeginSkipEvent marks the start of a skippable region: ["beginskip"].
type BeginSkipEvent struct{}

func (*BeginSkipEvent) EventTag() string { return "beginskip" }

func decodeBeginSkip(_ *decoder, v *Value) (Event, error) {
	if len(v.listVal) != 1 {
		return nil, arityErr("event beginskip", len(v.listVal), 1)
	}
	return &BeginSkipEvent{}, nil
}

func (*BeginSkipEvent) encodeEvent() *Value {
	return List(Str("beginskip"))
}

// EndSkipEvent marks the end of a skippable region: ["endskip"].
type EndSkipEvent struct{}

func (*EndSkipEvent) EventTag() string { return "endskip" }

func decodeEndSkip(_ *decoder, v *Value) (Event, error) {
	if len(v.listVal) != 1 {
		return nil, arityErr("event endskip", len(v.listVal), 1)
	}
	return &EndSkipEvent{}, nil
}

func (*EndSkipEvent) encodeEvent() *Value {
	return List(Str("endskip"))
}

// SysVoiceEvent plays a system voice clip:
// ["sysvoice", "eyecatch", e, "name", n, "chara", c].
type SysVoiceEvent struct {
	Eyecatch string
	Name     string
	Chara    string // shortened character name, matches voice file names
}

func (*SysVoiceEvent) EventTag() string { return "sysvoice" }

func decodeSysVoice(_ *decoder, v *Value) (Event, error) {
	const entity = "event sysvoice"
	items := v.listVal
	if len(items) != 7 {
		return nil, arityErr(entity, len(items), 7)
	}
	ev := &SysVoiceEvent{}
	val, err := keyedAt(entity, items, 1, "eyecatch")
	if err != nil {
		return nil, err
	}
	if ev.Eyecatch, err = val.AsStr(); err != nil {
		return nil, shapeErrf(entity, "eyecatch: %v", err)
	}
	if val, err = keyedAt(entity, items, 3, "name"); err != nil {
		return nil, err
	}
	if ev.Name, err = val.AsStr(); err != nil {
		return nil, shapeErrf(entity, "name: %v", err)
	}
	if val, err = keyedAt(entity, items, 5, "chara"); err != nil {
		return nil, err
	}
	if ev.Chara, err = val.AsStr(); err != nil {
		return nil, shapeErrf(entity, "chara: %v", err)
	}
	return ev, nil
}

func (ev *SysVoiceEvent) encodeEvent() *Value {
	return List(
		Str("sysvoice"),
		Str("eyecatch"), Str(ev.Eyecatch),
		Str("name"), Str(ev.Name),
		Str("chara"), Str(ev.Chara),
	)
}

// FallbackEvent wraps an event whose tag is not in the registry. The raw
// array re-encodes unchanged.
type FallbackEvent struct {
	Raw *Value
}

// EventTag returns the observed tag of the raw array.
func (ev *FallbackEvent) EventTag() string {
	if items, err := ev.Raw.AsList(); err == nil && len(items) > 0 {
		if tag, err := items[0].AsStr(); err == nil {
			return tag
		}
	}
	return ""
}

func (ev *FallbackEvent) encodeEvent() *Value {
	return ev.Raw
}
