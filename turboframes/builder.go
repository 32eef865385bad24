package turboframes

import (
	"context"

	"github.com/sargassum-world/turboresponse/responses"
	"github.com/sargassum-world/turboresponse/templates"
)

// Builder builds a frame and its response step by step. Each method returns a new Builder.
type Builder struct {
	domID    string
	status   int
	renderer templates.Renderer
}

// Frame starts building a frame with the DOM ID.
func Frame(domID string) Builder {
	return Builder{domID: domID}
}

// Status sets the status code of built responses.
func (b Builder) Status(code int) Builder {
	b.status = code
	return b
}

// Using sets the renderer for templates.
func (b Builder) Using(r templates.Renderer) Builder {
	b.renderer = r
	return b
}

// Render renders the content into the frame.
func (b Builder) Render(content string) (string, error) {
	return Render(content, b.domID)
}

// Response creates a response with the content rendered into the frame.
func (b Builder) Response(content string) (*responses.Envelope, error) {
	return NewResponse(content, b.domID, b.status)
}

// Template switches to building the frame's content from the first existing template among names.
func (b Builder) Template(data map[string]any, names ...string) TemplateBuilder {
	return TemplateBuilder{builder: b, names: names, data: data}
}

// TemplateBuilder builds a frame whose content is rendered from a template.
type TemplateBuilder struct {
	builder Builder
	names   []string
	data    map[string]any
}

func (b TemplateBuilder) Render(ctx context.Context) (string, error) {
	rendered, _, err := RenderTemplate(ctx, b.builder.renderer, b.builder.domID, b.names, b.data)
	return rendered, err
}

func (b TemplateBuilder) Response(ctx context.Context) (*responses.Envelope, error) {
	return NewTemplateResponse(
		ctx, b.builder.renderer, b.builder.domID, b.names, b.data, b.builder.status,
	)
}
