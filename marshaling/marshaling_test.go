package marshaling

import (
	"bytes"
	"testing"
)

func TestNamed(t *testing.T) {
	for _, name := range []string{NameJSON, NameMessagePack} {
		if _, err := Named(name); err != nil {
			t.Errorf("Named(%q) error: %v", name, err)
		}
	}
	if _, err := Named("gob"); err == nil {
		t.Error("Named(\"gob\") should fail")
	}
}

func TestMarshalersAreDeterministic(t *testing.T) {
	value := map[string]any{
		"zeta": 1, "alpha": "a", "mid": []string{"x", "y"}, "nested": map[string]any{"b": 2, "a": 1},
	}
	for _, m := range []Marshaler{JSON{}, MessagePack{}} {
		first, err := m.Marshal(value)
		if err != nil {
			t.Fatalf("%T.Marshal error: %v", m, err)
		}
		for i := 0; i < 20; i++ {
			again, err := m.Marshal(value)
			if err != nil {
				t.Fatalf("%T.Marshal error: %v", m, err)
			}
			if !bytes.Equal(first, again) {
				t.Fatalf("%T.Marshal output changed between calls", m)
			}
		}
	}
}

func TestMessagePackUsesJSONTags(t *testing.T) {
	type item struct {
		Title string `json:"title"`
	}
	m := MessagePack{}
	marshaled, err := m.Marshal(item{Title: "Buy milk"})
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := m.Unmarshal(marshaled, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["title"] != "Buy milk" {
		t.Errorf("decoded[title] = %v, want %q", decoded["title"], "Buy milk")
	}
}
