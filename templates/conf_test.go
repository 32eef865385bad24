package templates

import (
	"context"
	"slices"
	"testing"
	"testing/fstest"
)

func TestGetConfigDefaults(t *testing.T) {
	for _, name := range []string{
		"PARTIALPREFIX", "DEFAULTNAMES", "PATTERN", "CACHE_ENABLED", "CACHE_MAXCOST", "CACHE_KEYCODEC",
	} {
		t.Setenv(envPrefix+name, "")
	}
	c, err := GetConfig()
	if err != nil {
		t.Fatal(err)
	}
	if c.PartialPrefix != "_" || c.Pattern != "**/*.html" || len(c.DefaultNames) != 0 {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if c.Cache.Enabled || c.Cache.MaxCost != 64*1024*1024 || c.Cache.KeyCodec != "msgpack" {
		t.Errorf("unexpected cache defaults: %+v", c.Cache)
	}
}

func TestGetConfig(t *testing.T) {
	t.Setenv("TEMPLATES_PARTIALPREFIX", "partial-")
	t.Setenv("TEMPLATES_DEFAULTNAMES", "app/page.html, base.html")
	t.Setenv("TEMPLATES_CACHE_ENABLED", "true")
	t.Setenv("TEMPLATES_CACHE_MAXCOST", "2048")
	t.Setenv("TEMPLATES_CACHE_KEYCODEC", "json")
	c, err := GetConfig()
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Resolver().Partial("todos/form.html"); got != "todos/partial-form.html" {
		t.Errorf("Resolver().Partial() = %q", got)
	}
	if got := c.Names(); !slices.Equal(got, []string{"app/page.html", "base.html"}) {
		t.Errorf("Names() = %v", got)
	}
	if got := c.Names("todos/form.html"); !slices.Equal(got, []string{"todos/form.html"}) {
		t.Errorf("Names(explicit) = %v", got)
	}
	if !c.Cache.Enabled || c.Cache.MaxCost != 2048 || c.Cache.KeyCodec != "json" {
		t.Errorf("unexpected cache config: %+v", c.Cache)
	}

	t.Setenv("TEMPLATES_CACHE_MAXCOST", "0")
	if _, err := GetConfig(); err == nil {
		t.Error("GetConfig should reject a non-positive max cost")
	}
}

func TestNewRenderer(t *testing.T) {
	fsys := fstest.MapFS{"simple.html": {Data: []byte(`my content`)}}
	c := Config{Pattern: "**/*.html", Cache: CacheConfig{MaxCost: 1 << 20, KeyCodec: "msgpack"}}

	r, err := NewRenderer(fsys, c)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.(*Engine); !ok {
		t.Errorf("renderer is %T, want *Engine", r)
	}

	c.Cache.Enabled = true
	r, err = NewRenderer(fsys, c)
	if err != nil {
		t.Fatal(err)
	}
	cache, ok := r.(*Cache)
	if !ok {
		t.Fatalf("renderer is %T, want *Cache", r)
	}
	defer cache.Close()
	rendered, err := RenderString(context.Background(), r, []string{"simple.html"}, nil)
	if err != nil || rendered != "my content" {
		t.Errorf("rendered %q, %v", rendered, err)
	}
}
