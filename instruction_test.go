package scn

import (
	"errors"
	"testing"
)

func TestInstructionRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"init", `["init",0]`},
		{"new", `["new","bg","stage"]`},
		{"new_with_extras", `["new","bg","stage",{"zorder":10,"opacity":255}]`},
		{"new_with_empty_extras", `["new","bg","stage",{}]`},
		{"del", `["del","chara01"]`},
		{"ren", `["ren","chara01","chara02"]`},
		{"ren_with_extras", `["ren","chara01","chara02",{"keepstate":1}]`},
		{"ren_with_empty_extras", `["ren","chara01","chara02",{}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkRoundTrip(t, tt.src, func(v *Value) (*Value, error) {
				in, err := DecodeInstruction(v)
				if err != nil {
					return nil, err
				}
				return EncodeInstruction(in), nil
			})
		})
	}
}

func TestInstructionShapeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"init_too_short", `["init"]`},
		{"init_too_long", `["init",0,1]`},
		{"init_status_not_int", `["init","x"]`},
		{"del_too_long", `["del","a","b"]`},
		{"new_extras_not_object", `["new","bg","stage",5]`},
		{"empty", `[]`},
		{"not_array", `{"class":"stage"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeInstruction(mustJSON(t, tt.src))
			var shape *ShapeError
			if !errors.As(err, &shape) {
				t.Errorf("err = %v, want ShapeError", err)
			}
		})
	}
}

func TestInstructionUnknownTagFatal(t *testing.T) {
	_, err := DecodeInstruction(mustJSON(t, `["teleport","bg"]`))
	var unknown *UnknownVariantError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownVariantError", err)
	}
	if unknown.Tag != "teleport" {
		t.Errorf("Tag = %q, want %q", unknown.Tag, "teleport")
	}
}

func TestInstructionDecodedFields(t *testing.T) {
	in, err := DecodeInstruction(mustJSON(t, `["new","bg","stage",{"zorder":10}]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	n, ok := in.(*NewInstruction)
	if !ok {
		t.Fatalf("type = %T, want *NewInstruction", in)
	}
	if n.Name != "bg" || n.Class != "stage" {
		t.Errorf("fields = %q/%q, want bg/stage", n.Name, n.Class)
	}
	if len(n.Extra) != 1 || n.Extra[0].Key != "zorder" {
		t.Errorf("Extra = %v, want one zorder entry", n.Extra)
	}
}

func TestInstructionExtrasPresence(t *testing.T) {
	// An observed empty trailing object is distinct from no trailing element.
	with, err := DecodeInstruction(mustJSON(t, `["new","bg","stage",{}]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if with.(*NewInstruction).Extra == nil {
		t.Errorf("Extra = nil for observed empty trailing object")
	}
	without, err := DecodeInstruction(mustJSON(t, `["new","bg","stage"]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if without.(*NewInstruction).Extra != nil {
		t.Errorf("Extra non-nil for absent trailing object")
	}
}
