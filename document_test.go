package scn

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sceneFixture = `{"firstLine":1,"jumplabels":{"*start":0},"label":"*scene01","lines":[["startline"],[3,0,null,null,40],12,"title.png",["envupdate","update",[["new","bg","stage"]]]],"nexts":[{"storage":"scene02.ks","target":"*start","type":0}],"preevals":[],"spCount":1,"texts":[[null,[[null,"..."]],null,0,` + snapshotFixture + `]],"title":"Prologue","version":3}`

func documentFixture() string {
	var b strings.Builder
	b.WriteString(`{"hash":"2c1f","languages":["en","cn"],"llmap":[{"*scene01":[0,1],"name":"scene01"}],"name":"scene01.ks","outlines":[],"scenes":[`)
	b.WriteString(sceneFixture)
	b.WriteString(`]}`)
	return b.String()
}

func TestSceneRoundTrip(t *testing.T) {
	checkRoundTrip(t, sceneFixture, func(v *Value) (*Value, error) {
		sc, err := DecodeScene(v)
		if err != nil {
			return nil, err
		}
		return EncodeScene(sc), nil
	})
}

func TestSceneOptionalFieldsOmitted(t *testing.T) {
	src := `{"firstLine":0,"label":"*s","lines":[],"nexts":[],"spCount":0,"title":["Prologue","序章"],"version":3}`
	checkRoundTrip(t, src, func(v *Value) (*Value, error) {
		sc, err := DecodeScene(v)
		if err != nil {
			return nil, err
		}
		if sc.JumpLabels != nil || sc.PreEvals != nil || sc.PostEvals != nil || sc.Texts.Valid {
			t.Errorf("absent optional fields decoded as present")
		}
		return EncodeScene(sc), nil
	})
}

func TestSceneShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing_label", `{"firstLine":0,"lines":[],"nexts":[],"spCount":0,"title":"t","version":3}`},
		{"missing_title", `{"firstLine":0,"label":"*s","lines":[],"nexts":[],"spCount":0,"version":3}`},
		{"title_int", `{"firstLine":0,"label":"*s","lines":[],"nexts":[],"spCount":0,"title":3,"version":3}`},
		{"next_missing_target", `{"firstLine":0,"label":"*s","lines":[],"nexts":[{"storage":"a","type":0}],"spCount":0,"title":"t","version":3}`},
		{"bad_line", `{"firstLine":0,"label":"*s","lines":[true],"nexts":[],"spCount":0,"title":"t","version":3}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeScene(mustJSON(t, tt.src))
			var shape *ShapeError
			if !errors.As(err, &shape) {
				t.Errorf("err = %v, want ShapeError", err)
			}
		})
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	src := documentFixture()
	in := mustJSON(t, src)
	doc, err := DecodeDocument(in)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if doc.Name != "scene01.ks" || doc.Hash != "2c1f" {
		t.Errorf("name/hash = %q/%q", doc.Name, doc.Hash)
	}
	if len(doc.Scenes) != 1 || len(doc.Scenes[0].Lines) != 5 {
		t.Fatalf("scenes/lines = %d/%d, want 1/5", len(doc.Scenes), len(doc.Scenes[0].Lines))
	}
	out := EncodeDocument(doc)
	if !out.Equal(in) {
		t.Errorf("round trip mismatch (-want +got):\n%s",
			cmp.Diff(string(ToJSON(in)), string(ToJSON(out))))
	}
}

func TestDocumentUnknownLanguage(t *testing.T) {
	src := `{"hash":"x","languages":["en","jp"],"llmap":[],"name":"n","outlines":[],"scenes":[]}`
	_, err := DecodeDocument(mustJSON(t, src))
	var shape *ShapeError
	if !errors.As(err, &shape) {
		t.Errorf("err = %v, want ShapeError", err)
	}
}

func TestDocumentParallelMatchesSequential(t *testing.T) {
	// Build a document with enough scenes to exercise the worker pool.
	scenes := make([]string, 16)
	for i := range scenes {
		scenes[i] = sceneFixture
	}
	src := `{"hash":"2c1f","languages":["en"],"llmap":[],"name":"n.ks","outlines":[],"scenes":[` +
		strings.Join(scenes, ",") + `]}`
	in := mustJSON(t, src)

	seq, err := DecodeDocument(in)
	if err != nil {
		t.Fatalf("sequential decode: %v", err)
	}
	par, err := DecodeDocument(in, WithParallelism(4))
	if err != nil {
		t.Fatalf("parallel decode: %v", err)
	}
	if len(par.Scenes) != len(seq.Scenes) {
		t.Fatalf("scene count = %d, want %d", len(par.Scenes), len(seq.Scenes))
	}
	seqOut := string(ToJSON(EncodeDocument(seq)))
	parOut := string(ToJSON(EncodeDocument(par)))
	if diff := cmp.Diff(seqOut, parOut); diff != "" {
		t.Errorf("parallel output differs (-seq +par):\n%s", diff)
	}
	if parOut != src {
		t.Errorf("parallel round trip mismatch")
	}
}

func TestDocumentParallelFirstErrorWins(t *testing.T) {
	bad := `{"firstLine":0,"label":"*bad","lines":[true],"nexts":[],"spCount":0,"title":"t","version":3}`
	src := `{"hash":"x","languages":["en"],"llmap":[],"name":"n","outlines":[],"scenes":[` +
		sceneFixture + `,` + bad + `,` + bad + `]}`
	_, err := DecodeDocument(mustJSON(t, src), WithParallelism(4))
	if err == nil {
		t.Fatalf("want error")
	}
	if !strings.Contains(err.Error(), "scenes[1]") {
		t.Errorf("err = %v, want first failing scene index", err)
	}
}

func TestDocumentErrorContextPath(t *testing.T) {
	bad := `{"firstLine":0,"label":"*bad","lines":[["playvoice","loop",0]],"nexts":[],"spCount":0,"title":"t","version":3}`
	src := `{"hash":"x","languages":["en"],"llmap":[],"name":"n","outlines":[],"scenes":[` + bad + `]}`
	_, err := DecodeDocument(mustJSON(t, src))
	if err == nil {
		t.Fatalf("want error")
	}
	for _, part := range []string{"scenes[0]", "lines[0]", "playvoice"} {
		if !strings.Contains(err.Error(), part) {
			t.Errorf("err %q missing %q", err, part)
		}
	}
	var shape *ShapeError
	if !errors.As(err, &shape) {
		t.Errorf("err = %v, want wrapped ShapeError", err)
	}
}
