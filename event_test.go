package scn

import (
	"errors"
	"testing"
)

func eventRoundTrip(t *testing.T, src string) {
	t.Helper()
	checkRoundTrip(t, src, func(v *Value) (*Value, error) {
		ev, err := DecodeEvent(v)
		if err != nil {
			return nil, err
		}
		return EncodeEvent(ev), nil
	})
}

func TestEventRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"startline_dummy", `["startline"]`},
		{"startline_full", `["startline","vflag",2,"name","Yuki","text",1]`},
		{"startline_nulls", `["startline","vflag",null,"name",null,"text",null]`},
		{"wait", `["wait","time",500]`},
		{"scnchart", `["scnchart","enter","chapter1"]`},
		{"voeff", `["voeff","filter","echo"]`},
		{"chapter", `["chapter","title",1,null]`},
		{"msgoff", `["msgoff"]`},
		{"meswinchange", `["_meswinchange","type","novel"]`},
		{"quickmenu", `["quickmenu","fadeout","0"]`},
		{"er", `["er",1]`},
		{"endrecollection", `["endrecollection"]`},
		{"playvoice", `["playvoice","loop",0,"name","yuki","type",0,"voice","yuk_0001"]`},
		{"stopvoice", `["stopvoice","name","yuki","type",0]`},
		{"exit", `["exit","storage","scene02.ks","target","*start","eval",""]`},
		{"beginskip", `["beginskip"]`},
		{"endskip", `["endskip"]`},
		{"sysvoice", `["sysvoice","eyecatch","ec01","name","title","chara","yuk"]`},
		{
			"envupdate",
			`["envupdate","update",[["new","bg","stage"],{"class":"stage","name":"bg","redraw":{"disp":2,"imageFile":{"file":"bg.png"}},"showmode":1}],"trans",{"method":"crossfade","time":300}]`,
		},
		{
			"envupdate_all_keys",
			`["envupdate","pretrans",[["init",0]],"update",[["del","old"]],"revpretrans",[],"revupdate",[{"class":"stage","name":"bg","redraw":{"disp":4,"imageFile":{"file":"bg.png"}},"showmode":0}],"wait",{"list":[{"mode":0,"name":"bg"},null]},"trans",{"time":100},"msgoff",1]`,
		},
		{"envupdate_null_pretrans", `["envupdate","pretrans",null,"update",[]]`},
		{
			"delayrun",
			`["delayrun","tuner01","envupdate","update",[{"class":"event","name":"ev","redraw":{"disp":2,"imageFile":{"file":"ev.png"}},"showmode":1}],"revupdate",[]]`,
		},
		{
			"delayrun_with_trans",
			`["delayrun","tuner01","envupdate","update",[],"revupdate",[],"trans",{"time":200}]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eventRoundTrip(t, tt.src)
		})
	}
}

func TestEventUnknownTagFallback(t *testing.T) {
	log := &captureLogger{}
	src := `["zzzfuturetag",1,2]`
	ev, err := DecodeEvent(mustJSON(t, src), WithLogger(log))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	fb, ok := ev.(*FallbackEvent)
	if !ok {
		t.Fatalf("type = %T, want *FallbackEvent", ev)
	}
	if fb.EventTag() != "zzzfuturetag" {
		t.Errorf("EventTag() = %q, want %q", fb.EventTag(), "zzzfuturetag")
	}
	if got := string(ToJSON(EncodeEvent(fb))); got != src {
		t.Errorf("fallback re-encode = %s, want %s", got, src)
	}
	if log.warnCount() != 1 {
		t.Errorf("warn count = %d, want 1", log.warnCount())
	}
}

func TestEventArityErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"startline_3", `["startline","vflag",2]`},
		{"playvoice_8", `["playvoice","loop",0,"name","yuki","type",0,"voice"]`},
		{"playvoice_10", `["playvoice","loop",0,"name","yuki","type",0,"voice","v","x"]`},
		{"wait_2", `["wait","time"]`},
		{"stopvoice_3", `["stopvoice","name","yuki"]`},
		{"exit_5", `["exit","storage","s","target","t"]`},
		{"msgoff_2", `["msgoff",1]`},
		{"envupdate_odd_pairs", `["envupdate","update",[],"trans"]`},
		{"delayrun_6", `["delayrun","tuner01","envupdate","update",[],"revupdate"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeEvent(mustJSON(t, tt.src))
			var shape *ShapeError
			if !errors.As(err, &shape) {
				t.Errorf("err = %v, want ShapeError", err)
			}
		})
	}
}

func TestEventInlineKeyMismatch(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"startline_bad_vflag", `["startline","flag",2,"name","Yuki","text",1]`, "vflag"},
		{"playvoice_bad_name", `["playvoice","loop",0,"nome","yuki","type",0,"voice","v"]`, "name"},
		{"wait_bad_key", `["wait","delay",500]`, "time"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeEvent(mustJSON(t, tt.src))
			var mismatch *TagMismatchError
			if !errors.As(err, &mismatch) {
				t.Fatalf("err = %v, want TagMismatchError", err)
			}
			if mismatch.Want != tt.want {
				t.Errorf("Want = %q, want %q", mismatch.Want, tt.want)
			}
		})
	}
}

func TestEnvUpdateDecodedEntries(t *testing.T) {
	src := `["envupdate","update",[["new","bg","stage"],{"class":"stage","name":"bg","redraw":{"disp":2,"imageFile":{"file":"bg.png"}},"showmode":1}]]`
	ev, err := DecodeEvent(mustJSON(t, src))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	up, ok := ev.(*EnvUpdateEvent)
	if !ok {
		t.Fatalf("type = %T, want *EnvUpdateEvent", ev)
	}
	entries := up.Update.V
	if len(entries) != 2 {
		t.Fatalf("len(update) = %d, want 2", len(entries))
	}
	if entries[0].Instruction == nil || entries[0].Instruction.Tag() != "new" {
		t.Errorf("update[0] = %+v, want new instruction", entries[0])
	}
	if entries[1].Details == nil || entries[1].Details.Class() != "stage" {
		t.Errorf("update[1] = %+v, want stage details", entries[1])
	}
}

func TestEnvUpdateExtraKeysPreserved(t *testing.T) {
	src := `["envupdate","update",[],"futurekey",{"x":1}]`
	eventRoundTrip(t, src)
}

func TestEnvUpdateMissingUpdate(t *testing.T) {
	_, err := DecodeEvent(mustJSON(t, `["envupdate","trans",{"time":100}]`))
	var shape *ShapeError
	if !errors.As(err, &shape) {
		t.Errorf("err = %v, want ShapeError", err)
	}
}

func TestEnvUpdateUnknownInstructionFatal(t *testing.T) {
	_, err := DecodeEvent(mustJSON(t, `["envupdate","update",[["teleport","bg"]]]`))
	var unknown *UnknownVariantError
	if !errors.As(err, &unknown) {
		t.Errorf("err = %v, want UnknownVariantError", err)
	}
}

func TestDelayRunUnknownKeyFatal(t *testing.T) {
	_, err := DecodeEvent(mustJSON(t, `["delayrun","t1","envupdate","update",[],"bogus",[]]`))
	var shape *ShapeError
	if !errors.As(err, &shape) {
		t.Errorf("err = %v, want ShapeError", err)
	}
}
