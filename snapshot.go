package scn

// DataItem is one entry of a snapshot point's "data" array, encoded on the
// wire as [name, class, details]. The class element is the details
// discriminator; it never changes across decode/encode.
type DataItem struct {
	Name    string
	Class   string
	Details ObjectDetails
}

func (d *decoder) decodeDataItem(v *Value) (*DataItem, error) {
	items, err := v.AsList()
	if err != nil {
		return nil, shapeErrf("data item", "want array, got %s", v.Kind())
	}
	if len(items) != 3 {
		return nil, arityErr("data item", len(items), 3)
	}
	name, err := items[0].AsStr()
	if err != nil {
		return nil, shapeErrf("data item", "name: %v", err)
	}
	class, err := items[1].AsStr()
	if err != nil {
		return nil, shapeErrf("data item", "class: %v", err)
	}
	details, err := d.decodeDetailsByClass(class, items[2])
	if err != nil {
		return nil, err
	}
	return &DataItem{Name: name, Class: class, Details: details}, nil
}

func (it *DataItem) encode() *Value {
	return List(Str(it.Name), Str(it.Class), it.Details.encodeDetails())
}

// Env names the environment a snapshot point was captured in.
type Env struct {
	Name   string
	Action *Value // rarely present, list of nullable strings
	Extra  []MapEntry
}

func decodeEnv(v *Value) (*Env, error) {
	r, err := newObjReader("env", v)
	if err != nil {
		return nil, err
	}
	out := &Env{}
	if out.Name, err = takeReq(r, "name", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Action, err = r.takeRawList("action"); err != nil {
		return nil, err
	}
	out.Extra = r.extras()
	return out, nil
}

func (e *Env) encode() *Value {
	var w objWriter
	w.put("name", Str(e.Name))
	w.putRaw("action", e.Action)
	w.putExtras(e.Extra)
	return w.value()
}

// ShowDate is the in-game date indicator state.
type ShowDate struct {
	Back    *Value
	Date    Opt[string]
	Fore    *Value
	NowShow Opt[int64] // 1 when the date is showing
	Extra   []MapEntry
}

func decodeShowDate(v *Value) (*ShowDate, error) {
	r, err := newObjReader("showdate", v)
	if err != nil {
		return nil, err
	}
	out := &ShowDate{Back: r.takeRaw("back")}
	if out.Date, err = takeOpt(r, "date", (*Value).AsStr); err != nil {
		return nil, err
	}
	out.Fore = r.takeRaw("fore")
	if out.NowShow, err = takeOpt(r, "nowShow", (*Value).AsInt); err != nil {
		return nil, err
	}
	out.Extra = r.extras()
	return out, nil
}

func (s *ShowDate) encode() *Value {
	var w objWriter
	w.putRaw("back", s.Back)
	putOpt(&w, "date", s.Date, Str)
	w.putRaw("fore", s.Fore)
	putOpt(&w, "nowShow", s.NowShow, Int)
	w.putExtras(s.Extra)
	return w.value()
}

// SnapshotPoint is a captured state of all on-screen resources at one point
// of the scene timeline: every layer, audio channel and UI element needed to
// reconstruct the screen from scratch.
type SnapshotPoint struct {
	MesWinChange Opt[string] // "_meswinchange" key
	Data         []*DataItem
	Env          *Env
	Phonechat    Opt[int64] // key is required, value may be null
	ScnChart     Opt[string]
	ShowDate     Opt[*ShowDate]
	Extra        []MapEntry
}

// DecodeSnapshotPoint decodes a snapshot point object.
func DecodeSnapshotPoint(v *Value, opts ...DecodeOption) (*SnapshotPoint, error) {
	return newDecoder(opts).decodeSnapshotPoint(v)
}

// EncodeSnapshotPoint re-encodes a snapshot point into object form.
func EncodeSnapshotPoint(sp *SnapshotPoint) *Value {
	return sp.encode()
}

func (d *decoder) decodeSnapshotPoint(v *Value) (*SnapshotPoint, error) {
	r, err := newObjReader("snapshot point", v)
	if err != nil {
		return nil, err
	}
	out := &SnapshotPoint{}
	if out.MesWinChange, err = takeOpt(r, "_meswinchange", (*Value).AsStr); err != nil {
		return nil, err
	}
	data, err := r.reqList("data")
	if err != nil {
		return nil, err
	}
	out.Data = make([]*DataItem, len(data))
	for i, item := range data {
		out.Data[i], err = d.decodeDataItem(item)
		if err != nil {
			return nil, wrapf(err, "snapshot point: data[%d]", i)
		}
	}
	if out.Env, err = takeReq(r, "env", decodeEnv); err != nil {
		return nil, err
	}
	if out.Phonechat, err = takeOpt(r, "phonechat_showing", (*Value).AsInt); err != nil {
		return nil, err
	}
	if !out.Phonechat.Valid {
		return nil, shapeErrf("snapshot point", "missing required key %q", "phonechat_showing")
	}
	if out.ScnChart, err = takeOpt(r, "scnchart", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.ShowDate, err = takeOpt(r, "showdate", decodeShowDate); err != nil {
		return nil, err
	}
	out.Extra = r.extras()
	return out, nil
}

func (sp *SnapshotPoint) encode() *Value {
	var w objWriter
	putOpt(&w, "_meswinchange", sp.MesWinChange, Str)
	data := make([]*Value, len(sp.Data))
	for i, item := range sp.Data {
		data[i] = item.encode()
	}
	w.put("data", List(data...))
	w.put("env", sp.Env.encode())
	putOpt(&w, "phonechat_showing", sp.Phonechat, Int)
	putOpt(&w, "scnchart", sp.ScnChart, Str)
	putOpt(&w, "showdate", sp.ShowDate, (*ShowDate).encode)
	w.putExtras(sp.Extra)
	return w.value()
}
