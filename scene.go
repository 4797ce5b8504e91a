package scn

// Next is one outgoing edge of a scene: where playback goes when the scene
// ends or branches.
type Next struct {
	Storage string
	Target  string
	Type    int64
	Extra   []MapEntry
}

func decodeNext(v *Value) (*Next, error) {
	r, err := newObjReader("next", v)
	if err != nil {
		return nil, err
	}
	out := &Next{}
	if out.Storage, err = takeReq(r, "storage", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Target, err = takeReq(r, "target", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Type, err = takeReq(r, "type", (*Value).AsInt); err != nil {
		return nil, err
	}
	out.Extra = r.extras()
	return out, nil
}

func (n *Next) encode() *Value {
	var w objWriter
	w.put("storage", Str(n.Storage))
	w.put("target", Str(n.Target))
	w.put("type", Int(n.Type))
	w.putExtras(n.Extra)
	return w.value()
}

// Scene is one playable unit of a document: its line program, its text
// table, and its links to other scenes. The jumplabels, preevals, postevals
// and texts fields are optional and re-emitted only when observed.
type Scene struct {
	FirstLine  int64
	JumpLabels *Value // label -> line index map, passed through
	Label      string
	Lines      []Line
	Nexts      []*Next
	PreEvals   *Value // list of key/value pairs or bare strings
	PostEvals  *Value
	SpCount    int64
	Texts      Opt[[]*Text]
	Title      *Value  // string or list of per-language strings
	Version    int64
	Extra      []MapEntry
}

// DecodeScene decodes one scene object.
func DecodeScene(v *Value, opts ...DecodeOption) (*Scene, error) {
	return newDecoder(opts).decodeScene(v)
}

// EncodeScene re-encodes a scene into object form.
func EncodeScene(sc *Scene) *Value {
	return sc.encode()
}

func (d *decoder) decodeScene(v *Value) (*Scene, error) {
	const entity = "scene"
	r, err := newObjReader(entity, v)
	if err != nil {
		return nil, err
	}
	sc := &Scene{}
	if sc.FirstLine, err = takeReq(r, "firstLine", (*Value).AsInt); err != nil {
		return nil, err
	}
	sc.JumpLabels = r.takeRaw("jumplabels")
	if sc.JumpLabels != nil && !sc.JumpLabels.IsNull() {
		if _, err := sc.JumpLabels.AsMap(); err != nil {
			return nil, shapeErrf(entity, "key %q: %v", "jumplabels", err)
		}
	}
	if sc.Label, err = takeReq(r, "label", (*Value).AsStr); err != nil {
		return nil, err
	}
	lines, err := r.reqList("lines")
	if err != nil {
		return nil, err
	}
	sc.Lines = make([]Line, len(lines))
	for i, item := range lines {
		if sc.Lines[i], err = d.decodeLine(item); err != nil {
			return nil, wrapf(err, "lines[%d]", i)
		}
	}
	nexts, err := r.reqList("nexts")
	if err != nil {
		return nil, err
	}
	sc.Nexts = make([]*Next, len(nexts))
	for i, item := range nexts {
		if sc.Nexts[i], err = decodeNext(item); err != nil {
			return nil, wrapf(err, "nexts[%d]", i)
		}
	}
	if sc.PreEvals, err = r.takeRawList("preevals"); err != nil {
		return nil, err
	}
	if sc.PostEvals, err = r.takeRawList("postevals"); err != nil {
		return nil, err
	}
	if sc.SpCount, err = takeReq(r, "spCount", (*Value).AsInt); err != nil {
		return nil, err
	}
	if sc.Texts, err = takeOpt(r, "texts", d.textList()); err != nil {
		return nil, err
	}
	sc.Title = r.takeRaw("title")
	if sc.Title == nil {
		return nil, shapeErrf(entity, "missing required key %q", "title")
	}
	if sc.Title.Kind() != KindStr && sc.Title.Kind() != KindList {
		return nil, shapeErrf(entity, "key %q: want string or array, got %s", "title", sc.Title.Kind())
	}
	if sc.Version, err = takeReq(r, "version", (*Value).AsInt); err != nil {
		return nil, err
	}
	sc.Extra = r.extras()
	return sc, nil
}

func (d *decoder) textList() func(*Value) ([]*Text, error) {
	return func(v *Value) ([]*Text, error) {
		items, err := v.AsList()
		if err != nil {
			return nil, err
		}
		out := make([]*Text, len(items))
		for i, item := range items {
			if out[i], err = d.decodeText(item); err != nil {
				return nil, wrapf(err, "texts[%d]", i)
			}
		}
		return out, nil
	}
}

func encodeTextList(texts []*Text) *Value {
	items := make([]*Value, len(texts))
	for i, t := range texts {
		items[i] = t.encode()
	}
	return List(items...)
}

func (sc *Scene) encode() *Value {
	var w objWriter
	w.put("firstLine", Int(sc.FirstLine))
	w.putRaw("jumplabels", sc.JumpLabels)
	w.put("label", Str(sc.Label))
	lines := make([]*Value, len(sc.Lines))
	for i, ln := range sc.Lines {
		lines[i] = ln.encodeLine()
	}
	w.put("lines", List(lines...))
	nexts := make([]*Value, len(sc.Nexts))
	for i, n := range sc.Nexts {
		nexts[i] = n.encode()
	}
	w.put("nexts", List(nexts...))
	w.putRaw("preevals", sc.PreEvals)
	w.putRaw("postevals", sc.PostEvals)
	w.put("spCount", Int(sc.SpCount))
	putOpt(&w, "texts", sc.Texts, encodeTextList)
	w.put("title", sc.Title)
	w.put("version", Int(sc.Version))
	w.putExtras(sc.Extra)
	return w.value()
}
