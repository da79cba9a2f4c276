package banyan

import (
	"encoding/json"
	"strings"
	"testing"
)

// stroke is a minimal content payload for persistence tests.
type stroke struct {
	Label string `json:"label"`
}

func strokeEncode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func strokeDecode(raw []byte) (any, error) {
	var s stroke
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func TestEncodeDecodeRoundtrip(t *testing.T) {
	g := NewGrid(1000, 1000)
	top := NewTile()
	top.Content = &stroke{Label: "top"}
	a := top.Child(GridAddress{1, 2})
	a.Content = &stroke{Label: "a"}
	deep := a.Child(GridAddress{4, 0})
	deep.Content = &stroke{Label: "deep"}
	top.Child(GridAddress{3, 3}) // empty tile, topology only

	data, err := EncodeTree(g, top, strokeEncode)
	if err != nil {
		t.Fatalf("EncodeTree: %v", err)
	}

	g2, top2, err := DecodeTree(data, strokeDecode)
	if err != nil {
		t.Fatalf("DecodeTree: %v", err)
	}
	if g2.Extent != g.Extent {
		t.Errorf("extent = %+v, want %+v", g2.Extent, g.Extent)
	}

	if s, _ := top2.Content.(*stroke); s == nil || s.Label != "top" {
		t.Errorf("top content = %v, want label \"top\"", top2.Content)
	}
	a2, ok := top2.ChildAt(GridAddress{1, 2})
	if !ok {
		t.Fatal("child (1,2) missing after roundtrip")
	}
	if s, _ := a2.Content.(*stroke); s == nil || s.Label != "a" {
		t.Errorf("child content = %v, want label \"a\"", a2.Content)
	}
	deep2, ok := a2.ChildAt(GridAddress{4, 0})
	if !ok {
		t.Fatal("grandchild (4,0) missing after roundtrip")
	}
	if s, _ := deep2.Content.(*stroke); s == nil || s.Label != "deep" {
		t.Errorf("grandchild content = %v, want label \"deep\"", deep2.Content)
	}
	if empty, ok := top2.ChildAt(GridAddress{3, 3}); !ok {
		t.Error("empty child (3,3) missing after roundtrip")
	} else if empty.Content != nil {
		t.Error("empty child grew content")
	}
	if top2.ChildCount() != 2 {
		t.Errorf("top has %d children, want 2", top2.ChildCount())
	}
}

func TestEncodeFromNonTopTile(t *testing.T) {
	g := NewGrid(1000, 1000)
	top := NewTile()
	top.Content = &stroke{Label: "root"}
	leaf := top.Child(GridAddress{0, 4}).Child(GridAddress{2, 1})

	// Encoding from any tile captures the whole tree from the top.
	data, err := EncodeTree(g, leaf, strokeEncode)
	if err != nil {
		t.Fatalf("EncodeTree: %v", err)
	}
	_, top2, err := DecodeTree(data, strokeDecode)
	if err != nil {
		t.Fatalf("DecodeTree: %v", err)
	}
	if s, _ := top2.Content.(*stroke); s == nil || s.Label != "root" {
		t.Error("top content lost when encoding from a leaf")
	}
	mid, ok := top2.ChildAt(GridAddress{0, 4})
	if !ok {
		t.Fatal("intermediate tile missing")
	}
	if _, ok := mid.ChildAt(GridAddress{2, 1}); !ok {
		t.Error("leaf tile missing")
	}
}

func TestDecodeNilHooksKeepRawContent(t *testing.T) {
	g := NewGrid(1000, 1000)
	top := NewTile()
	top.Content = map[string]int{"n": 7}

	// nil encode falls back to json.Marshal; nil decode leaves the raw
	// JSON attached so a host can defer payload parsing.
	data, err := EncodeTree(g, top, nil)
	if err != nil {
		t.Fatalf("EncodeTree: %v", err)
	}
	_, top2, err := DecodeTree(data, nil)
	if err != nil {
		t.Fatalf("DecodeTree: %v", err)
	}
	raw, ok := top2.Content.(json.RawMessage)
	if !ok {
		t.Fatalf("content = %T, want json.RawMessage", top2.Content)
	}
	var m map[string]int
	if err := json.Unmarshal(raw, &m); err != nil || m["n"] != 7 {
		t.Errorf("raw content = %s, want {\"n\":7}", raw)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"malformed json", `{"extent":`, "parse tree"},
		{"missing root", `{"extent":{"width":100,"height":100}}`, "missing root"},
		{"zero extent", `{"extent":{"width":0,"height":100},"root":{}}`, "invalid extent"},
		{"negative extent", `{"extent":{"width":100,"height":-5},"root":{}}`, "invalid extent"},
		{
			"address out of range",
			`{"extent":{"width":100,"height":100},"root":{"children":{"9,9":{}}}}`,
			"out of range",
		},
		{
			"unparseable address",
			`{"extent":{"width":100,"height":100},"root":{"children":{"north":{}}}}`,
			"bad address key",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeTree([]byte(tt.data), nil)
			if err == nil {
				t.Fatal("DecodeTree accepted bad input")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestEncodeSkipsNilContent(t *testing.T) {
	g := NewGrid(1000, 1000)
	top := NewTile()
	top.Child(GridAddress{2, 2})

	data, err := EncodeTree(g, top, nil)
	if err != nil {
		t.Fatalf("EncodeTree: %v", err)
	}
	if strings.Contains(string(data), "content") {
		t.Error("tiles without content should not emit a content field")
	}
}
