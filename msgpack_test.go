package scn

import "testing"

func TestMsgpackRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"scalars", `[null,true,false,0,-1,250,70000,1.5]`},
		{"strings", `["","bgm01","長い文字列のテスト"]`},
		{"object_key_order", `{"z":1,"a":2,"m":3}`},
		{"nested", `{"data":[["bgm01","bgm",{"name":"bgm01"}]],"env":{"name":"day"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := mustJSON(t, tt.src)
			b, err := ToMsgpack(v)
			if err != nil {
				t.Fatalf("ToMsgpack: %v", err)
			}
			back, err := FromMsgpack(b)
			if err != nil {
				t.Fatalf("FromMsgpack: %v", err)
			}
			if !back.Equal(v) {
				t.Errorf("round trip mismatch:\n in  %s\n out %s", ToJSON(v), ToJSON(back))
			}
		})
	}
}

func TestMsgpackKeyOrderPreserved(t *testing.T) {
	v := mustJSON(t, `{"z":1,"a":2,"m":3}`)
	b, err := ToMsgpack(v)
	if err != nil {
		t.Fatalf("ToMsgpack: %v", err)
	}
	back, err := FromMsgpack(b)
	if err != nil {
		t.Fatalf("FromMsgpack: %v", err)
	}
	entries, err := back.AsMap()
	if err != nil {
		t.Fatalf("AsMap: %v", err)
	}
	want := []string{"z", "a", "m"}
	for i, key := range want {
		if entries[i].Key != key {
			t.Errorf("entries[%d].Key = %q, want %q", i, entries[i].Key, key)
		}
	}
}
