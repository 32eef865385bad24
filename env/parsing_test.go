package env

import (
	"slices"
	"testing"
)

func TestGetBool(t *testing.T) {
	const name = "ENV_TEST_BOOL"
	for value, want := range map[string]bool{"": false, "true": true, "False": false, "TRUE": true} {
		t.Setenv(name, value)
		got, err := GetBool(name)
		if err != nil {
			t.Fatalf("GetBool(%q) error: %v", value, err)
		}
		if got != want {
			t.Errorf("GetBool(%q) = %v, want %v", value, got, want)
		}
	}

	t.Setenv(name, "yes")
	if _, err := GetBool(name); err == nil {
		t.Error("GetBool(\"yes\") should fail")
	}
}

func TestGetInt64(t *testing.T) {
	const name = "ENV_TEST_INT64"
	t.Setenv(name, "")
	if got, err := GetInt64(name, 42); err != nil || got != 42 {
		t.Errorf("GetInt64 default = %d, %v; want 42, nil", got, err)
	}

	t.Setenv(name, "-7")
	if got, err := GetInt64(name, 42); err != nil || got != -7 {
		t.Errorf("GetInt64 = %d, %v; want -7, nil", got, err)
	}

	t.Setenv(name, "seven")
	if _, err := GetInt64(name, 42); err == nil {
		t.Error("GetInt64(\"seven\") should fail")
	}
}

func TestGetString(t *testing.T) {
	const name = "ENV_TEST_STRING"
	t.Setenv(name, "")
	if got := GetString(name, "fallback"); got != "fallback" {
		t.Errorf("GetString default = %q, want %q", got, "fallback")
	}
	t.Setenv(name, "value")
	if got := GetString(name, "fallback"); got != "value" {
		t.Errorf("GetString = %q, want %q", got, "value")
	}
}

func TestGetStrings(t *testing.T) {
	const name = "ENV_TEST_STRINGS"
	t.Setenv(name, " ")
	if got := GetStrings(name, []string{"d"}); !slices.Equal(got, []string{"d"}) {
		t.Errorf("GetStrings default = %v, want [d]", got)
	}

	t.Setenv(name, "todos/todo.html, base.html,,")
	want := []string{"todos/todo.html", "base.html"}
	if got := GetStrings(name, nil); !slices.Equal(got, want) {
		t.Errorf("GetStrings = %v, want %v", got, want)
	}
}
