package scn

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestObjectDetailsRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		class string
		src   string
	}{
		{
			"bgm", "bgm",
			`{"name":"bgm01","replay":{"filename":"bgm01","loop":1,"start":null,"state":1,"volume":100},"update":{"state":1}}`,
		},
		{
			"loopse", "loopse",
			`{"action":[],"name":"rain","replay":{"filename":"se_rain","loop":1,"start":null,"state":1,"volume":80},"update":{"state":1}}`,
		},
		{
			"loopse_with_trans", "loopse",
			`{"name":"rain","replay":{"state":0},"trans":{"time":300},"update":{"state":0}}`,
		},
		{
			"stage", "stage",
			`{"action":[],"class":"stage","name":"bg01","redraw":{"disp":2,"imageFile":{"file":"bg/day.png"}},"showmode":3,"type":null}`,
		},
		{
			"character", "character",
			`{"action":[],"hideact":null,"class":"character","link":"yuki","name":"chara01","redraw":{"disp":2,"imageFile":{"file":"chara/yuki.png","options":{"dress":"uniform","face":"smile","pose":"a"}},"posName":"左"},"showmode":3}`,
		},
		{
			"character_no_redraw", "character",
			`{"class":"character","name":"chara02","showmode":0}`,
		},
		{
			"msgwin", "msgwin",
			`{"action":[],"hideact":[],"class":"msgwin","name":"message0","redraw":{"disp":2,"imageFile":{"file":"msgwin.png"}},"showmode":3}`,
		},
		{
			"event", "event",
			`{"class":"event","name":"ev01","redraw":{"disp":2,"imageFile":{"file":"ev/ev01.png","redraw":[["doBoxBlur",1,1]]}},"showmode":3}`,
		},
		{
			"event2", "event2",
			`{"class":"event2","name":"ev02","showmode":0}`,
		},
		{
			"centerlayer", "centerlayer",
			`{"class":"centerlayer","name":"center","redraw":{"disp":4,"imageFile":{"file":"ui/center.png"}},"showmode":0}`,
		},
		{"se", "se", `{"name":"se01"}`},
		{
			"fixcaption", "fixcaption",
			`{"class":"fixcaption","name":"caption","showmode":0}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkRoundTrip(t, tt.src, func(v *Value) (*Value, error) {
				det, err := newDecoder(nil).decodeDetailsByClass(tt.class, v)
				if err != nil {
					return nil, err
				}
				if det.Class() != tt.class {
					t.Errorf("Class() = %q, want %q", det.Class(), tt.class)
				}
				return EncodeObjectDetails(det), nil
			})
		})
	}
}

func TestObjectDetailsCanonicalOrderAndExtras(t *testing.T) {
	// Known keys come back in declared order; the unknown "glow" key keeps
	// its observed position at the tail.
	src := `{"showmode":3,"glow":1,"name":"bg01","class":"stage","redraw":{"disp":2,"imageFile":{"file":"bg.png"}}}`
	want := `{"class":"stage","name":"bg01","redraw":{"disp":2,"imageFile":{"file":"bg.png"}},"showmode":3,"glow":1}`
	det, err := DecodeObjectDetails(mustJSON(t, src))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := string(ToJSON(EncodeObjectDetails(det)))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("canonical encode mismatch (-want +got):\n%s", diff)
	}
}

func TestObjectDetailsUnknownClassFallback(t *testing.T) {
	log := &captureLogger{}
	src := `{"class":"newwidget","name":"x","foo":1}`
	det, err := DecodeObjectDetails(mustJSON(t, src), WithLogger(log))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	fb, ok := det.(*FallbackDetails)
	if !ok {
		t.Fatalf("type = %T, want *FallbackDetails", det)
	}
	if fb.Class() != "newwidget" {
		t.Errorf("Class() = %q, want %q", fb.Class(), "newwidget")
	}
	if got := string(ToJSON(EncodeObjectDetails(fb))); got != src {
		t.Errorf("fallback re-encode = %s, want %s", got, src)
	}
	if log.warnCount() != 1 {
		t.Errorf("warn count = %d, want 1", log.warnCount())
	}
}

func TestObjectDetailsClassKeyMismatch(t *testing.T) {
	src := `{"class":"character","name":"bg01","showmode":3}`
	_, err := newDecoder(nil).decodeDetailsByClass("stage", mustJSON(t, src))
	var mismatch *TagMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("err = %v, want TagMismatchError", err)
	}
	if mismatch.Want != "stage" || mismatch.Got != "character" {
		t.Errorf("mismatch = %q/%q, want stage/character", mismatch.Want, mismatch.Got)
	}
}

func TestObjectDetailsMissingRequiredKey(t *testing.T) {
	tests := []struct {
		name  string
		class string
		src   string
	}{
		{"bgm_no_replay", "bgm", `{"name":"bgm01","update":{"state":1}}`},
		{"stage_no_redraw", "stage", `{"class":"stage","name":"bg01","showmode":3}`},
		{"centerlayer_no_redraw", "centerlayer", `{"class":"centerlayer","name":"c","showmode":0}`},
		{"se_no_name", "se", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newDecoder(nil).decodeDetailsByClass(tt.class, mustJSON(t, tt.src))
			var shape *ShapeError
			if !errors.As(err, &shape) {
				t.Errorf("err = %v, want ShapeError", err)
			}
		})
	}
}
