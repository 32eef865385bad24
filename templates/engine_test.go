package templates

import (
	"context"
	"fmt"
	"html/template"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/benbjohnson/hashfs"
	"github.com/pkg/errors"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"simple.html":            {Data: []byte(`my content {{.testvar}}`)},
		"todos/_todo_form.html":  {Data: []byte(`<form>{{.title}}</form>`)},
		"todos/todo_form.html":   {Data: []byte(`<main>{{.title}}</main>`)},
		"todos/item.html":        {Data: []byte(`<li>{{upper .title}}</li>`)},
		"assets/asset-link.html": {Data: []byte(`{{hashed "css/main.css"}}`)},
		"css/main.css":           {Data: []byte(`body { color: black; }`)},
		"README.md":              {Data: []byte(`{{ not a template`)},
	}
}

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Debugf(format string, args ...interface{}) {
	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}

func TestEngineRenderFirstMatch(t *testing.T) {
	fsys := testFS()
	logger := &recordingLogger{}
	e, err := NewEngine(
		fsys, "**/*.html",
		WithFuncs(template.FuncMap{"upper": strings.ToUpper}),
		WithHashFS(hashfs.NewFS(fsys)),
		WithLogger(logger),
	)
	if err != nil {
		t.Fatal(err)
	}
	if !e.Has("simple.html") || !e.Has("todos/_todo_form.html") || e.Has("README.md") {
		t.Error("engine loaded the wrong set of templates")
	}
	if len(logger.messages) != 5 {
		t.Errorf("logged %d template loads, want 5", len(logger.messages))
	}

	rendered, err := RenderString(
		context.Background(), e,
		[]string{"todos/missing.html", "todos/_todo_form.html", "todos/todo_form.html"},
		map[string]any{"title": "Buy milk"},
	)
	if err != nil {
		t.Fatal(err)
	}
	if rendered != "<form>Buy milk</form>" {
		t.Errorf("rendered %q, want the first existing template", rendered)
	}

	rendered, err = RenderString(
		context.Background(), e, []string{"todos/item.html"}, map[string]any{"title": "milk"},
	)
	if err != nil || rendered != "<li>MILK</li>" {
		t.Errorf("rendered %q, %v; want custom func output", rendered, err)
	}

	rendered, err = RenderString(context.Background(), e, []string{"assets/asset-link.html"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(rendered, "css/main-") || !strings.HasSuffix(rendered, ".css") ||
		rendered == "css/main.css" {
		t.Errorf("hashed asset path %q isn't content-hashed", rendered)
	}
}

func TestEngineRenderNotFound(t *testing.T) {
	fsys := fstest.MapFS{"simple.html": {Data: []byte(`my content`)}}
	e, err := NewEngine(fsys, "**/*.html")
	if err != nil {
		t.Fatal(err)
	}
	for _, names := range [][]string{{"nope.html", "_nope.html"}, {""}, nil} {
		_, err = RenderString(context.Background(), e, names, nil)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("error for %q = %v, want ErrNotFound", names, err)
		}
	}
	if e.Has("") {
		t.Error("engine reports having a template with an empty name")
	}
}

func TestNewEngineParseError(t *testing.T) {
	fsys := fstest.MapFS{"broken.html": {Data: []byte(`{{ if }}`)}}
	if _, err := NewEngine(fsys, "**/*.html"); err == nil {
		t.Error("NewEngine should fail on an unparsable template")
	}
}
