package templates

import (
	"context"
	"html/template"
	"io"
	"io/fs"

	"github.com/benbjohnson/hashfs"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// Logger is a reduced interface for loggers, satisfied by Echo's Logger.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// Engine is a [Renderer] for html/template files, where each file is addressed by its path
// within the filesystem it was loaded from.
type Engine struct {
	root *template.Template
}

type engineOptions struct {
	funcs  template.FuncMap
	logger Logger
}

// EngineOption modifies the loading of an [Engine]. For use with [NewEngine].
type EngineOption func(o *engineOptions)

// WithFuncs adds functions to the template function map.
func WithFuncs(funcs template.FuncMap) EngineOption {
	return func(o *engineOptions) {
		for name, f := range funcs {
			o.funcs[name] = f
		}
	}
}

// WithHashFS adds a "hashed" template function which maps an asset path to its content-hashed
// path in the [hashfs.FS], for cache-busting URLs of static assets referenced by fragments.
func WithHashFS(assets *hashfs.FS) EngineOption {
	return WithFuncs(template.FuncMap{
		"hashed": assets.HashName,
	})
}

// WithLogger sets a logger to report loaded templates at the debug level.
func WithLogger(logger Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// NewEngine parses every file in fsys matching the doublestar glob pattern (e.g. "**/*.html").
func NewEngine(fsys fs.FS, pattern string, opts ...EngineOption) (*Engine, error) {
	o := engineOptions{funcs: template.FuncMap{}}
	for _, opt := range opts {
		opt(&o)
	}

	paths, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't list templates matching %s", pattern)
	}
	root := template.New("").Funcs(o.funcs)
	for _, path := range paths {
		contents, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, errors.Wrapf(err, "couldn't read template %s", path)
		}
		if _, err = root.New(path).Parse(string(contents)); err != nil {
			return nil, errors.Wrapf(err, "couldn't parse template %s", path)
		}
		if o.logger != nil {
			o.logger.Debugf("loaded template %s", path)
		}
	}
	return &Engine{root: root}, nil
}

// Has checks whether a template with the name was loaded.
func (e *Engine) Has(name string) bool {
	return e.lookup(name) != nil
}

func (e *Engine) lookup(name string) *template.Template {
	t := e.root.Lookup(name)
	if t == nil || t.Tree == nil {
		// the unnamed root holds the loaded templates but has no content of its own
		return nil
	}
	return t
}

// Render executes the first template among names which was loaded.
func (e *Engine) Render(_ context.Context, w io.Writer, names []string, data map[string]any) error {
	for _, name := range names {
		t := e.lookup(name)
		if t == nil {
			continue
		}
		if err := t.Execute(w, data); err != nil {
			return errors.Wrapf(err, "couldn't render template %s", name)
		}
		return nil
	}
	return notFound(names)
}
