package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ComponentFunc creates a templ component from template data.
type ComponentFunc func(data map[string]any) templ.Component

// Components is a [Renderer] for templ components, keyed by template name.
type Components map[string]ComponentFunc

// Render renders the component for the first name among names which is registered.
func (c Components) Render(
	ctx context.Context, w io.Writer, names []string, data map[string]any,
) error {
	for _, name := range names {
		if f, ok := c[name]; ok {
			return f(data).Render(ctx, w)
		}
	}
	return notFound(names)
}
