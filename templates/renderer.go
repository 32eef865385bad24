// Package templates provides the template-rendering contract used to fill Turbo Stream and Turbo
// Frame fragments, conventions for naming partial templates, and reference implementations of the
// contract backed by html/template files, templ components, and a rendered-output cache.
package templates

import (
	"context"
	"io"
	"maps"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotFound is the error returned by renderers when none of the candidate template names
// matches a template.
var ErrNotFound = errors.New("template not found")

// ErrNoRenderer is returned when rendering by template is requested without a [Renderer].
var ErrNoRenderer = errors.New("no template renderer was provided")

// Renderer renders the first template among names which exists, with the provided data. When no
// name matches, Render should return an error for which errors.Is(err, [ErrNotFound]) is true.
type Renderer interface {
	Render(ctx context.Context, w io.Writer, names []string, data map[string]any) error
}

// RendererFunc is an adapter to allow the use of ordinary functions as renderers.
type RendererFunc func(ctx context.Context, w io.Writer, names []string, data map[string]any) error

// Render calls f(ctx, w, names, data).
func (f RendererFunc) Render(
	ctx context.Context, w io.Writer, names []string, data map[string]any,
) error {
	return f(ctx, w, names, data)
}

// RenderString renders the templates into a string. Errors from the renderer are returned
// unchanged.
func RenderString(
	ctx context.Context, r Renderer, names []string, data map[string]any,
) (string, error) {
	if r == nil {
		return "", ErrNoRenderer
	}
	var b strings.Builder
	if err := r.Render(ctx, &b, names, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Merge returns a copy of data with the entries of extra added, overwriting entries with the same
// keys. Neither input map is modified.
func Merge(data map[string]any, extra map[string]any) map[string]any {
	merged := make(map[string]any, len(data)+len(extra))
	maps.Copy(merged, data)
	maps.Copy(merged, extra)
	return merged
}

func notFound(names []string) error {
	return errors.Wrapf(ErrNotFound, "none of the templates %v exist", names)
}
