package scn

// ObjectDetails describes one on-screen resource inside a snapshot point:
// background music, a stage layer, a character sprite, the message window
// and so on. The discriminator is a "class" token — either the object's own
// "class" key or, on the DataItem path, the sibling class element.
//
// Unknown classes decode to FallbackDetails, which re-encodes the observed
// value unchanged.
type ObjectDetails interface {
	// Class returns the registry discriminator for this variant.
	Class() string

	encodeDetails() *Value
}

// DecodeObjectDetails decodes an embedded snapshot object by its own
// "class" key. An absent or unrecognized class yields FallbackDetails and a
// Warn diagnostic; the decode itself does not fail.
func DecodeObjectDetails(v *Value, opts ...DecodeOption) (ObjectDetails, error) {
	return newDecoder(opts).decodeDetails(v)
}

// EncodeObjectDetails re-encodes snapshot object details into object form.
func EncodeObjectDetails(det ObjectDetails) *Value {
	return det.encodeDetails()
}

var detailsRegistry = registry[ObjectDetails]{
	"bgm":         decodeBgmDetails,
	"loopse":      decodeLoopSEDetails,
	"stage":       decodeStageDetails,
	"character":   decodeCharacterDetails,
	"msgwin":      decodeMsgwinDetails,
	"event":       decodeEventDetails,
	"event2":      decodeEvent2Details,
	"centerlayer": decodeCenterlayerDetails,
	"se":          decodeSEDetails,
	"fixcaption":  decodeFixCaptionDetails,
}

func (d *decoder) decodeDetails(v *Value) (ObjectDetails, error) {
	if _, err := v.AsMap(); err != nil {
		return nil, shapeErrf("details", "want object, got %s", v.Kind())
	}
	class := ""
	if cv := v.Get("class"); cv != nil {
		if s, err := cv.AsStr(); err == nil {
			class = s
		}
	}
	fn, ok := detailsRegistry.lookup(class)
	if !ok {
		d.log.Warn("unknown snapshot object class", Fields{"class": class})
		return &FallbackDetails{ClassName: class, Raw: v}, nil
	}
	return fn(d, v)
}

// decodeDetailsByClass dispatches on a class token that lives outside the
// details object itself (the [name, class, details] DataItem form).
func (d *decoder) decodeDetailsByClass(class string, v *Value) (ObjectDetails, error) {
	fn, ok := detailsRegistry.lookup(class)
	if !ok {
		d.log.Warn("unknown snapshot object class", Fields{"class": class})
		return &FallbackDetails{ClassName: class, Raw: v}, nil
	}
	return fn(d, v)
}

// ============================================================
// Shared sub-objects
// ============================================================

// Replay is the playback state of an audio resource.
type Replay struct {
	Filename Opt[string]
	Loop     Opt[int64] // 0 no loop, 1 loop
	Start    *Value     // observed only as null so far
	State    Opt[int64] // 0 stopped, 1 playing
	Volume   Opt[int64]
	Extra    []MapEntry
}

func decodeReplay(v *Value) (*Replay, error) {
	r, err := newObjReader("replay", v)
	if err != nil {
		return nil, err
	}
	out := &Replay{Start: r.takeRaw("start")}
	if out.Filename, err = takeOpt(r, "filename", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Loop, err = takeOpt(r, "loop", (*Value).AsInt); err != nil {
		return nil, err
	}
	if out.State, err = takeOpt(r, "state", (*Value).AsInt); err != nil {
		return nil, err
	}
	if out.Volume, err = takeOpt(r, "volume", (*Value).AsInt); err != nil {
		return nil, err
	}
	out.Extra = r.extras()
	return out, nil
}

func (p *Replay) encode() *Value {
	var w objWriter
	putOpt(&w, "filename", p.Filename, Str)
	putOpt(&w, "loop", p.Loop, Int)
	w.putRaw("start", p.Start)
	putOpt(&w, "state", p.State, Int)
	putOpt(&w, "volume", p.Volume, Int)
	w.putExtras(p.Extra)
	return w.value()
}

// UpdateState mirrors Replay.State for the pending update of a resource.
type UpdateState struct {
	State Opt[int64]
	Extra []MapEntry
}

func decodeUpdateState(v *Value) (*UpdateState, error) {
	r, err := newObjReader("update state", v)
	if err != nil {
		return nil, err
	}
	out := &UpdateState{}
	if out.State, err = takeOpt(r, "state", (*Value).AsInt); err != nil {
		return nil, err
	}
	out.Extra = r.extras()
	return out, nil
}

func (u *UpdateState) encode() *Value {
	var w objWriter
	putOpt(&w, "state", u.State, Int)
	w.putExtras(u.Extra)
	return w.value()
}

// Transform describes a visual transition, e.g. a crossfade.
type Transform struct {
	Method Opt[string]
	MsgOff Opt[bool]
	Rule   Opt[string]
	Time   int64 // milliseconds
	Extra  []MapEntry
}

func decodeTransform(v *Value) (*Transform, error) {
	r, err := newObjReader("transform", v)
	if err != nil {
		return nil, err
	}
	out := &Transform{}
	if out.Method, err = takeOpt(r, "method", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.MsgOff, err = takeOpt(r, "msgoff", (*Value).AsBool); err != nil {
		return nil, err
	}
	if out.Rule, err = takeOpt(r, "rule", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Time, err = takeReq(r, "time", (*Value).AsInt); err != nil {
		return nil, err
	}
	out.Extra = r.extras()
	return out, nil
}

func (t *Transform) encode() *Value {
	var w objWriter
	putOpt(&w, "method", t.Method, Str)
	putOpt(&w, "msgoff", t.MsgOff, Bool)
	putOpt(&w, "rule", t.Rule, Str)
	w.put("time", Int(t.Time))
	w.putExtras(t.Extra)
	return w.value()
}

// ImageFileOptions selects a concrete sprite variant.
type ImageFileOptions struct {
	Dress  Opt[string]
	Face   Opt[string]
	Pose   Opt[string]
	Center Opt[int64] // only seen in bar layers
	Extra  []MapEntry
}

func decodeImageFileOptions(v *Value) (*ImageFileOptions, error) {
	r, err := newObjReader("image file options", v)
	if err != nil {
		return nil, err
	}
	out := &ImageFileOptions{}
	if out.Dress, err = takeOpt(r, "dress", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Face, err = takeOpt(r, "face", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Pose, err = takeOpt(r, "pose", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Center, err = takeOpt(r, "center", (*Value).AsInt); err != nil {
		return nil, err
	}
	out.Extra = r.extras()
	return out, nil
}

func (o *ImageFileOptions) encode() *Value {
	var w objWriter
	putOpt(&w, "dress", o.Dress, Str)
	putOpt(&w, "face", o.Face, Str)
	putOpt(&w, "pose", o.Pose, Str)
	putOpt(&w, "center", o.Center, Int)
	w.putExtras(o.Extra)
	return w.value()
}

// ImageFileDetails names the image backing a layer. Redraw holds raw
// post-processing instructions such as [["doBoxBlur", 1, 1], ...].
type ImageFileDetails struct {
	File    string
	Options Opt[*ImageFileOptions]
	Redraw  *Value
	Extra   []MapEntry
}

func decodeImageFileDetails(v *Value) (*ImageFileDetails, error) {
	r, err := newObjReader("image file details", v)
	if err != nil {
		return nil, err
	}
	out := &ImageFileDetails{}
	if out.File, err = takeReq(r, "file", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Options, err = takeOpt(r, "options", decodeImageFileOptions); err != nil {
		return nil, err
	}
	if out.Redraw, err = r.takeRawList("redraw"); err != nil {
		return nil, err
	}
	out.Extra = r.extras()
	return out, nil
}

func (f *ImageFileDetails) encode() *Value {
	var w objWriter
	w.put("file", Str(f.File))
	putOpt(&w, "options", f.Options, (*ImageFileOptions).encode)
	w.putRaw("redraw", f.Redraw)
	w.putExtras(f.Extra)
	return w.value()
}

// Redraw is the display state of a visual layer. Disp 2 means displayed,
// 4 hidden.
type Redraw struct {
	Disp      int64
	ImageFile *ImageFileDetails
	PosName   Opt[string] // position name like '左', '右', '中'
	Extra     []MapEntry
}

func decodeRedraw(v *Value) (*Redraw, error) {
	r, err := newObjReader("redraw", v)
	if err != nil {
		return nil, err
	}
	out := &Redraw{}
	if out.Disp, err = takeReq(r, "disp", (*Value).AsInt); err != nil {
		return nil, err
	}
	if out.ImageFile, err = takeReq(r, "imageFile", decodeImageFileDetails); err != nil {
		return nil, err
	}
	if out.PosName, err = takeOpt(r, "posName", (*Value).AsStr); err != nil {
		return nil, err
	}
	out.Extra = r.extras()
	return out, nil
}

func (rd *Redraw) encode() *Value {
	var w objWriter
	w.put("disp", Int(rd.Disp))
	w.put("imageFile", rd.ImageFile.encode())
	putOpt(&w, "posName", rd.PosName, Str)
	w.putExtras(rd.Extra)
	return w.value()
}

// ============================================================
// Details variants
// ============================================================

// BgmDetails describes background music. It carries no class key of its
// own; the discriminator lives on the enclosing DataItem.
type BgmDetails struct {
	Name   string
	Replay *Replay
	Update *UpdateState
	Extra  []MapEntry
}

func (*BgmDetails) Class() string { return "bgm" }

func decodeBgmDetails(_ *decoder, v *Value) (ObjectDetails, error) {
	r, err := newObjReader("details bgm", v)
	if err != nil {
		return nil, err
	}
	out := &BgmDetails{}
	if out.Name, err = takeReq(r, "name", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Replay, err = takeReq(r, "replay", decodeReplay); err != nil {
		return nil, err
	}
	if out.Update, err = takeReq(r, "update", decodeUpdateState); err != nil {
		return nil, err
	}
	out.Extra = r.extras()
	return out, nil
}

func (dt *BgmDetails) encodeDetails() *Value {
	var w objWriter
	w.put("name", Str(dt.Name))
	w.put("replay", dt.Replay.encode())
	w.put("update", dt.Update.encode())
	w.putExtras(dt.Extra)
	return w.value()
}

// LoopSEDetails describes a looping sound effect.
type LoopSEDetails struct {
	Action *Value
	Name   string
	Replay *Replay
	Trans  Opt[*Transform]
	Update *UpdateState
	Extra  []MapEntry
}

func (*LoopSEDetails) Class() string { return "loopse" }

func decodeLoopSEDetails(_ *decoder, v *Value) (ObjectDetails, error) {
	r, err := newObjReader("details loopse", v)
	if err != nil {
		return nil, err
	}
	out := &LoopSEDetails{}
	if out.Action, err = r.takeRawList("action"); err != nil {
		return nil, err
	}
	if out.Name, err = takeReq(r, "name", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Replay, err = takeReq(r, "replay", decodeReplay); err != nil {
		return nil, err
	}
	if out.Trans, err = takeOpt(r, "trans", decodeTransform); err != nil {
		return nil, err
	}
	if out.Update, err = takeReq(r, "update", decodeUpdateState); err != nil {
		return nil, err
	}
	out.Extra = r.extras()
	return out, nil
}

func (dt *LoopSEDetails) encodeDetails() *Value {
	var w objWriter
	w.putRaw("action", dt.Action)
	w.put("name", Str(dt.Name))
	w.put("replay", dt.Replay.encode())
	putOpt(&w, "trans", dt.Trans, (*Transform).encode)
	w.put("update", dt.Update.encode())
	w.putExtras(dt.Extra)
	return w.value()
}

// StageDetails describes the stage (background) layer.
type StageDetails struct {
	Action   *Value
	Link     Opt[string]
	Name     string
	Redraw   *Redraw
	Showmode int64 // 0 hidden, 1 appearing, 2 disappearing, 3 shown
	Trans    Opt[*Transform]
	Type     *Value
	Extra    []MapEntry
}

func (*StageDetails) Class() string { return "stage" }

func decodeStageDetails(_ *decoder, v *Value) (ObjectDetails, error) {
	r, err := newObjReader("details stage", v)
	if err != nil {
		return nil, err
	}
	out := &StageDetails{}
	if out.Action, err = r.takeRawList("action"); err != nil {
		return nil, err
	}
	if err = r.classField("stage"); err != nil {
		return nil, err
	}
	if out.Link, err = takeOpt(r, "link", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Name, err = takeReq(r, "name", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Redraw, err = takeReq(r, "redraw", decodeRedraw); err != nil {
		return nil, err
	}
	if out.Showmode, err = takeReq(r, "showmode", (*Value).AsInt); err != nil {
		return nil, err
	}
	if out.Trans, err = takeOpt(r, "trans", decodeTransform); err != nil {
		return nil, err
	}
	out.Type = r.takeRaw("type")
	out.Extra = r.extras()
	return out, nil
}

func (dt *StageDetails) encodeDetails() *Value {
	var w objWriter
	w.putRaw("action", dt.Action)
	w.put("class", Str("stage"))
	putOpt(&w, "link", dt.Link, Str)
	w.put("name", Str(dt.Name))
	w.put("redraw", dt.Redraw.encode())
	w.put("showmode", Int(dt.Showmode))
	putOpt(&w, "trans", dt.Trans, (*Transform).encode)
	w.putRaw("type", dt.Type)
	w.putExtras(dt.Extra)
	return w.value()
}

// CharacterDetails describes a character sprite layer.
type CharacterDetails struct {
	Action   *Value
	Hideact  *Value
	Link     Opt[string]
	Name     string
	Redraw   Opt[*Redraw]
	Showmode int64
	Trans    Opt[*Transform]
	Type     *Value
	Extra    []MapEntry
}

func (*CharacterDetails) Class() string { return "character" }

func decodeCharacterDetails(_ *decoder, v *Value) (ObjectDetails, error) {
	r, err := newObjReader("details character", v)
	if err != nil {
		return nil, err
	}
	out := &CharacterDetails{}
	if out.Action, err = r.takeRawList("action"); err != nil {
		return nil, err
	}
	if out.Hideact, err = r.takeRawList("hideact"); err != nil {
		return nil, err
	}
	if err = r.classField("character"); err != nil {
		return nil, err
	}
	if out.Link, err = takeOpt(r, "link", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Name, err = takeReq(r, "name", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Redraw, err = takeOpt(r, "redraw", decodeRedraw); err != nil {
		return nil, err
	}
	if out.Showmode, err = takeReq(r, "showmode", (*Value).AsInt); err != nil {
		return nil, err
	}
	if out.Trans, err = takeOpt(r, "trans", decodeTransform); err != nil {
		return nil, err
	}
	out.Type = r.takeRaw("type")
	out.Extra = r.extras()
	return out, nil
}

func (dt *CharacterDetails) encodeDetails() *Value {
	var w objWriter
	w.putRaw("action", dt.Action)
	w.putRaw("hideact", dt.Hideact)
	w.put("class", Str("character"))
	putOpt(&w, "link", dt.Link, Str)
	w.put("name", Str(dt.Name))
	putOpt(&w, "redraw", dt.Redraw, (*Redraw).encode)
	w.put("showmode", Int(dt.Showmode))
	putOpt(&w, "trans", dt.Trans, (*Transform).encode)
	w.putRaw("type", dt.Type)
	w.putExtras(dt.Extra)
	return w.value()
}

// MsgwinDetails describes the message window layer.
type MsgwinDetails struct {
	Action   *Value
	Hideact  *Value
	Link     Opt[string]
	Name     string
	Redraw   Opt[*Redraw]
	Showmode int64
	Type     *Value
	Extra    []MapEntry
}

func (*MsgwinDetails) Class() string { return "msgwin" }

func decodeMsgwinDetails(_ *decoder, v *Value) (ObjectDetails, error) {
	r, err := newObjReader("details msgwin", v)
	if err != nil {
		return nil, err
	}
	out := &MsgwinDetails{}
	if out.Action, err = r.takeRawList("action"); err != nil {
		return nil, err
	}
	if out.Hideact, err = r.takeRawList("hideact"); err != nil {
		return nil, err
	}
	if err = r.classField("msgwin"); err != nil {
		return nil, err
	}
	if out.Link, err = takeOpt(r, "link", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Name, err = takeReq(r, "name", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Redraw, err = takeOpt(r, "redraw", decodeRedraw); err != nil {
		return nil, err
	}
	if out.Showmode, err = takeReq(r, "showmode", (*Value).AsInt); err != nil {
		return nil, err
	}
	out.Type = r.takeRaw("type")
	out.Extra = r.extras()
	return out, nil
}

func (dt *MsgwinDetails) encodeDetails() *Value {
	var w objWriter
	w.putRaw("action", dt.Action)
	w.putRaw("hideact", dt.Hideact)
	w.put("class", Str("msgwin"))
	putOpt(&w, "link", dt.Link, Str)
	w.put("name", Str(dt.Name))
	putOpt(&w, "redraw", dt.Redraw, (*Redraw).encode)
	w.put("showmode", Int(dt.Showmode))
	w.putRaw("type", dt.Type)
	w.putExtras(dt.Extra)
	return w.value()
}

// eventLayerDetails is the shared shape of the "event" and "event2" CG
// layers, which differ only in class token.
type eventLayerDetails struct {
	Action   *Value
	Name     string
	Redraw   Opt[*Redraw]
	Showmode int64
	Type     *Value
	Extra    []MapEntry
}

func decodeEventLayer(entity, class string, v *Value) (eventLayerDetails, error) {
	var out eventLayerDetails
	r, err := newObjReader(entity, v)
	if err != nil {
		return out, err
	}
	if out.Action, err = r.takeRawList("action"); err != nil {
		return out, err
	}
	if err = r.classField(class); err != nil {
		return out, err
	}
	if out.Name, err = takeReq(r, "name", (*Value).AsStr); err != nil {
		return out, err
	}
	if out.Redraw, err = takeOpt(r, "redraw", decodeRedraw); err != nil {
		return out, err
	}
	if out.Showmode, err = takeReq(r, "showmode", (*Value).AsInt); err != nil {
		return out, err
	}
	out.Type = r.takeRaw("type")
	out.Extra = r.extras()
	return out, nil
}

func (dt *eventLayerDetails) encodeWithClass(class string) *Value {
	var w objWriter
	w.putRaw("action", dt.Action)
	w.put("class", Str(class))
	w.put("name", Str(dt.Name))
	putOpt(&w, "redraw", dt.Redraw, (*Redraw).encode)
	w.put("showmode", Int(dt.Showmode))
	w.putRaw("type", dt.Type)
	w.putExtras(dt.Extra)
	return w.value()
}

// EventDetails describes an event CG layer.
type EventDetails struct {
	eventLayerDetails
}

func (*EventDetails) Class() string { return "event" }

func decodeEventDetails(_ *decoder, v *Value) (ObjectDetails, error) {
	inner, err := decodeEventLayer("details event", "event", v)
	if err != nil {
		return nil, err
	}
	return &EventDetails{inner}, nil
}

func (dt *EventDetails) encodeDetails() *Value {
	return dt.encodeWithClass("event")
}

// Event2Details describes the secondary event CG layer.
type Event2Details struct {
	eventLayerDetails
}

func (*Event2Details) Class() string { return "event2" }

func decodeEvent2Details(_ *decoder, v *Value) (ObjectDetails, error) {
	inner, err := decodeEventLayer("details event2", "event2", v)
	if err != nil {
		return nil, err
	}
	return &Event2Details{inner}, nil
}

func (dt *Event2Details) encodeDetails() *Value {
	return dt.encodeWithClass("event2")
}

// CenterlayerDetails describes a UI overlay layer.
type CenterlayerDetails struct {
	Action   *Value
	Link     Opt[string]
	Name     string
	Redraw   *Redraw
	Showmode int64
	Type     *Value
	Extra    []MapEntry
}

func (*CenterlayerDetails) Class() string { return "centerlayer" }

func decodeCenterlayerDetails(_ *decoder, v *Value) (ObjectDetails, error) {
	r, err := newObjReader("details centerlayer", v)
	if err != nil {
		return nil, err
	}
	out := &CenterlayerDetails{}
	if out.Action, err = r.takeRawList("action"); err != nil {
		return nil, err
	}
	if err = r.classField("centerlayer"); err != nil {
		return nil, err
	}
	if out.Link, err = takeOpt(r, "link", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Name, err = takeReq(r, "name", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Redraw, err = takeReq(r, "redraw", decodeRedraw); err != nil {
		return nil, err
	}
	if out.Showmode, err = takeReq(r, "showmode", (*Value).AsInt); err != nil {
		return nil, err
	}
	out.Type = r.takeRaw("type")
	out.Extra = r.extras()
	return out, nil
}

func (dt *CenterlayerDetails) encodeDetails() *Value {
	var w objWriter
	w.putRaw("action", dt.Action)
	w.put("class", Str("centerlayer"))
	putOpt(&w, "link", dt.Link, Str)
	w.put("name", Str(dt.Name))
	w.put("redraw", dt.Redraw.encode())
	w.put("showmode", Int(dt.Showmode))
	w.putRaw("type", dt.Type)
	w.putExtras(dt.Extra)
	return w.value()
}

// SEDetails describes a one-shot sound effect.
type SEDetails struct {
	Name  string
	Extra []MapEntry
}

func (*SEDetails) Class() string { return "se" }

func decodeSEDetails(_ *decoder, v *Value) (ObjectDetails, error) {
	r, err := newObjReader("details se", v)
	if err != nil {
		return nil, err
	}
	out := &SEDetails{}
	if out.Name, err = takeReq(r, "name", (*Value).AsStr); err != nil {
		return nil, err
	}
	out.Extra = r.extras()
	return out, nil
}

func (dt *SEDetails) encodeDetails() *Value {
	var w objWriter
	w.put("name", Str(dt.Name))
	w.putExtras(dt.Extra)
	return w.value()
}

// FixCaptionDetails describes a fixed caption overlay.
type FixCaptionDetails struct {
	Action   *Value
	Link     Opt[string]
	Name     string
	Redraw   Opt[*Redraw]
	Showmode int64
	Type     *Value
	Extra    []MapEntry
}

func (*FixCaptionDetails) Class() string { return "fixcaption" }

func decodeFixCaptionDetails(_ *decoder, v *Value) (ObjectDetails, error) {
	r, err := newObjReader("details fixcaption", v)
	if err != nil {
		return nil, err
	}
	out := &FixCaptionDetails{}
	if out.Action, err = r.takeRawList("action"); err != nil {
		return nil, err
	}
	if err = r.classField("fixcaption"); err != nil {
		return nil, err
	}
	if out.Link, err = takeOpt(r, "link", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Name, err = takeReq(r, "name", (*Value).AsStr); err != nil {
		return nil, err
	}
	if out.Redraw, err = takeOpt(r, "redraw", decodeRedraw); err != nil {
		return nil, err
	}
	if out.Showmode, err = takeReq(r, "showmode", (*Value).AsInt); err != nil {
		return nil, err
	}
	out.Type = r.takeRaw("type")
	out.Extra = r.extras()
	return out, nil
}

func (dt *FixCaptionDetails) encodeDetails() *Value {
	var w objWriter
	w.putRaw("action", dt.Action)
	w.put("class", Str("fixcaption"))
	putOpt(&w, "link", dt.Link, Str)
	w.put("name", Str(dt.Name))
	putOpt(&w, "redraw", dt.Redraw, (*Redraw).encode)
	w.put("showmode", Int(dt.Showmode))
	w.putRaw("type", dt.Type)
	w.putExtras(dt.Extra)
	return w.value()
}

// FallbackDetails wraps an object whose class token is not in the registry.
// The raw value re-encodes unchanged, keeping the document lossless.
type FallbackDetails struct {
	ClassName string
	Raw       *Value
}

func (f *FallbackDetails) Class() string { return f.ClassName }

func (f *FallbackDetails) encodeDetails() *Value {
	return f.Raw
}
